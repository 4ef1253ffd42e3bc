package repository

import (
	"errors"
	"time"

	"usuarios-admin/pkg/database"
	"usuarios-admin/pkg/metrics"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by writes that matched no row
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when the usuarios_email_key constraint rejects a write
	ErrDuplicateEmail = errors.New("email already exists")
)

type Repository struct {
	Usuario UsuarioRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Usuario: NewUsuarioRepository(db, log),
	}
}

func observe(operation, table string, start time.Time) {
	metrics.RecordDBQueryDuration(operation, table, time.Since(start))
}
