package wire

import (
	"usuarios-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUsuario registers the CRUD routes for usuarios
func wireUsuario(r chi.Router, usuarioHandler *adaptor.UsuarioHandler) {
	r.Route("/usuarios", func(r chi.Router) {
		r.Get("/", usuarioHandler.List)
		r.Post("/", usuarioHandler.Create)
		r.Get("/{id}", usuarioHandler.Get)
		r.Put("/{id}", usuarioHandler.Update)
		r.Patch("/{id}", usuarioHandler.Patch)
		r.Delete("/{id}", usuarioHandler.Delete)
	})
}
