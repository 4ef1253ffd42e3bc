package adaptor

import (
	"encoding/json"
	"net/http"

	"usuarios-admin/internal/dto/request"
	"usuarios-admin/internal/usecase"
	"usuarios-admin/pkg/utils"

	"go.uber.org/zap"
)

const msgInvalidCredentials = "Credenciales inválidas"

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, utils.MsgInvalidBody, nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "login")
		return
	}

	utils.ResponseSuccess(w, resp)
}
