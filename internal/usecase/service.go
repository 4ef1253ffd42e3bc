package usecase

import (
	"usuarios-admin/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Usuario UsuarioService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.Usuario, log),
		Usuario: NewUsuarioService(repo.Usuario, log),
	}
}
