package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usuarios-admin/internal/data/entity"
	"usuarios-admin/internal/data/repository"
	"usuarios-admin/internal/dto/request"
	"usuarios-admin/internal/dto/response"
	"usuarios-admin/pkg/utils"

	"go.uber.org/zap"
)

type UsuarioService interface {
	List(ctx context.Context) ([]response.UsuarioResponse, error)
	Get(ctx context.Context, id int64) (*response.UsuarioResponse, error)
	Create(ctx context.Context, req *request.UsuarioRequest) (*response.UsuarioResponse, error)
	Update(ctx context.Context, id int64, req *request.UsuarioRequest) (*response.UsuarioResponse, error)
	Patch(ctx context.Context, id int64, req *request.UsuarioPatchRequest) (*response.UsuarioResponse, error)
	Delete(ctx context.Context, id int64) error
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
	log         *zap.Logger
	now         func() time.Time
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository, log *zap.Logger) UsuarioService {
	return &usuarioService{
		usuarioRepo: usuarioRepo,
		log:         log,
		now:         time.Now,
	}
}

func (s *usuarioService) List(ctx context.Context) ([]response.UsuarioResponse, error) {
	usuarios, err := s.usuarioRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}

	s.log.Debug("Usuarios retrieved", zap.Int("count", len(usuarios)))
	return response.UsuariosToResponse(usuarios), nil
}

func (s *usuarioService) Get(ctx context.Context, id int64) (*response.UsuarioResponse, error) {
	usuario, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.UsuarioToResponse(usuario)
	return &resp, nil
}

func (s *usuarioService) Create(ctx context.Context, req *request.UsuarioRequest) (*response.UsuarioResponse, error) {
	// 1. Validate payload
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create usuario validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	// 2. Email must be unique
	if err := s.ensureEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	// 3. Build and save
	now := s.timestamp()
	usuario := &entity.Usuario{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyRequest(usuario, req)

	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, emailTakenError()
		}
		return nil, fmt.Errorf("create usuario: %w", err)
	}

	s.log.Info("Usuario created",
		zap.Int64("usuario_id", usuario.ID),
		zap.String("email", usuario.Email))

	resp := response.UsuarioToResponse(usuario)
	return &resp, nil
}

// Update replaces every mutable field with req
func (s *usuarioService) Update(ctx context.Context, id int64, req *request.UsuarioRequest) (*response.UsuarioResponse, error) {
	usuario, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.save(ctx, usuario, req)
}

// Patch changes only the fields present in req
func (s *usuarioService) Patch(ctx context.Context, id int64, req *request.UsuarioPatchRequest) (*response.UsuarioResponse, error) {
	usuario, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := req.Apply(toRequest(usuario))
	return s.save(ctx, usuario, &merged)
}

func (s *usuarioService) Delete(ctx context.Context, id int64) error {
	if err := s.usuarioRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUsuarioNotFound
		}
		return fmt.Errorf("delete usuario: %w", err)
	}

	s.log.Info("Usuario deleted", zap.Int64("usuario_id", id))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *usuarioService) find(ctx context.Context, id int64) (*entity.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	if usuario == nil {
		return nil, ErrUsuarioNotFound
	}
	return usuario, nil
}

func (s *usuarioService) save(ctx context.Context, usuario *entity.Usuario, req *request.UsuarioRequest) (*response.UsuarioResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update usuario validation failed",
			zap.Int64("usuario_id", usuario.ID),
			zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	if req.Email != usuario.Email {
		if err := s.ensureEmailFree(ctx, req.Email, usuario.ID); err != nil {
			return nil, err
		}
	}

	applyRequest(usuario, req)
	usuario.UpdatedAt = s.nextUpdate(usuario.UpdatedAt)

	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUsuarioNotFound
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, emailTakenError()
		}
		return nil, fmt.Errorf("update usuario: %w", err)
	}

	s.log.Info("Usuario updated", zap.Int64("usuario_id", usuario.ID))

	resp := response.UsuarioToResponse(usuario)
	return &resp, nil
}

// ensureEmailFree fails with a validation error when another usuario than
// selfID already owns email
func (s *usuarioService) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		s.log.Warn("Email already registered", zap.String("email", email))
		return emailTakenError()
	}
	return nil
}

// timestamp is truncated to the microsecond precision PostgreSQL keeps
func (s *usuarioService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// nextUpdate never returns a value at or before prev
func (s *usuarioService) nextUpdate(prev time.Time) time.Time {
	now := s.timestamp()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

func applyRequest(usuario *entity.Usuario, req *request.UsuarioRequest) {
	usuario.Email = req.Email
	usuario.Password = req.Password
	usuario.FirstName = req.FirstName
	usuario.LastName = req.LastName
	usuario.AccountType = entity.AccountType(req.AccountType)
}

func toRequest(usuario *entity.Usuario) request.UsuarioRequest {
	return request.UsuarioRequest{
		Email:       usuario.Email,
		Password:    usuario.Password,
		FirstName:   usuario.FirstName,
		LastName:    usuario.LastName,
		AccountType: string(usuario.AccountType),
	}
}
