package adaptor

import (
	"context"

	"usuarios-admin/internal/dto/request"
	"usuarios-admin/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LoginResponse), args.Error(1)
}

type MockUsuarioService struct {
	mock.Mock
}

func (m *MockUsuarioService) List(ctx context.Context) ([]response.UsuarioResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) Get(ctx context.Context, id int64) (*response.UsuarioResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) Create(ctx context.Context, req *request.UsuarioRequest) (*response.UsuarioResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) Update(ctx context.Context, id int64, req *request.UsuarioRequest) (*response.UsuarioResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) Patch(ctx context.Context, id int64, req *request.UsuarioPatchRequest) (*response.UsuarioResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
