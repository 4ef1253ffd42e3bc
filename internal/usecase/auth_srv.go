package usecase

import (
	"context"
	"fmt"

	"usuarios-admin/internal/data/repository"
	"usuarios-admin/internal/dto/request"
	"usuarios-admin/internal/dto/response"
	"usuarios-admin/pkg/metrics"

	"go.uber.org/zap"
)

const msgLoginOK = "Login exitoso"

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	log         *zap.Logger
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, log *zap.Logger) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		log:         log,
	}
}

// Login looks the usuario up by email and compares the password as plain
// text. There is no hashing, session or attempt limit: not suitable for
// production.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	usuario, err := s.usuarioRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find usuario for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("login: %w", err)
	}

	if usuario == nil {
		metrics.IncrementLoginAttempt("not_found")
		s.log.Warn("Usuario not found for login", zap.String("email", req.Email))
		return nil, ErrUsuarioNotFound
	}

	if usuario.Password != req.Password {
		metrics.IncrementLoginAttempt("invalid_credentials")
		s.log.Warn("Invalid password", zap.Int64("usuario_id", usuario.ID))
		return nil, ErrInvalidCredentials
	}

	metrics.IncrementLoginAttempt("success")
	s.log.Info("Usuario logged in",
		zap.Int64("usuario_id", usuario.ID),
		zap.String("email", usuario.Email))

	resp := response.LoginToResponse(usuario, msgLoginOK)
	return &resp, nil
}
