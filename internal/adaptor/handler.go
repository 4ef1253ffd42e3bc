package adaptor

import (
	"errors"
	"net/http"

	"usuarios-admin/internal/usecase"
	"usuarios-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Usuario *UsuarioHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Usuario: NewUsuarioHandler(service.Usuario, log),
	}
}

// handleServiceError maps usecase errors to status codes; anything
// unrecognised is logged and answered with 500
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrUsuarioNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, utils.MsgNotFound)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, msgInvalidCredentials)

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, utils.MsgValidation, validationErr.Fields)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, utils.MsgInternalError)
	}
}
