package usecase

import (
	"context"
	"fmt"
	"sync"

	"usuarios-admin/internal/data/entity"
	"usuarios-admin/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindAll(ctx context.Context) ([]*entity.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memoryRepository keeps usuarios in a map and enforces the unique email
// constraint like the table does
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Usuario
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: make(map[int64]entity.Usuario)}
}

func (r *memoryRepository) emailTaken(email string, selfID int64) bool {
	for id, u := range r.rows {
		if u.Email == email && id != selfID {
			return true
		}
	}
	return false
}

func (r *memoryRepository) Create(_ context.Context, usuario *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(usuario.Email, 0) {
		return repository.ErrDuplicateEmail
	}
	r.nextID++
	usuario.ID = r.nextID
	r.rows[usuario.ID] = *usuario
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*entity.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]*entity.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Usuario, 0, len(r.rows))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.rows[id]; ok {
			out = append(out, &u)
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, usuario *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[usuario.ID]; !ok {
		return fmt.Errorf("update usuario %d: %w", usuario.ID, repository.ErrNotFound)
	}
	if r.emailTaken(usuario.Email, usuario.ID) {
		return repository.ErrDuplicateEmail
	}
	r.rows[usuario.ID] = *usuario
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("delete usuario %d: %w", id, repository.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}
