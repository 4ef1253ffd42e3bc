package usecase

import (
	"context"
	"errors"
	"testing"

	"usuarios-admin/internal/data/entity"
	"usuarios-admin/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	stored := &entity.Usuario{
		Base:        entity.Base{ID: 1},
		Email:       "a@x.com",
		Password:    "p",
		FirstName:   "A",
		LastName:    "B",
		AccountType: entity.AccountTypeAdmin,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUsuarioRepository)
		svc := NewAuthService(mockRepo, zap.NewNop())

		mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		resp, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p"})
		require.NoError(t, err)
		assert.Equal(t, "Login exitoso", resp.Message)
		assert.Equal(t, int64(1), resp.User.ID)
		assert.Equal(t, "a@x.com", resp.User.Email)
		assert.Equal(t, "A", resp.User.FirstName)
		assert.Equal(t, entity.AccountTypeAdmin, resp.User.AccountType)

		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUsuarioRepository)
		svc := NewAuthService(mockRepo, zap.NewNop())

		mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.NotErrorIs(t, err, ErrUsuarioNotFound)

		mockRepo.AssertExpectations(t)
	})

	t.Run("password compared exactly", func(t *testing.T) {
		mockRepo := new(MockUsuarioRepository)
		svc := NewAuthService(mockRepo, zap.NewNop())

		mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "P"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockUsuarioRepository)
		svc := NewAuthService(mockRepo, zap.NewNop())

		mockRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, nil)

		_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "nobody@x.com", Password: "p"})
		require.ErrorIs(t, err, ErrUsuarioNotFound)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)

		mockRepo.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		mockRepo := new(MockUsuarioRepository)
		svc := NewAuthService(mockRepo, zap.NewNop())
		dbErr := errors.New("connection refused")

		mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, dbErr)

		_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p"})
		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrUsuarioNotFound)
	})
}
