package wire

import (
	"usuarios-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth registers the public login route. There is no session, so
// nothing else is protected.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/login", authHandler.Login)
}
