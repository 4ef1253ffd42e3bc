package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usuarios-admin/internal/data/entity"
	"usuarios-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	usuariosTable   = "usuarios"
	uniqueViolation = "23505"
	emailUniqueKey  = "usuarios_email_key"
	usuarioColumns  = `id, email, password, nombre, apellido, tipo_usuario, fecha_creacion, fecha_actualizacion`
)

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	FindByID(ctx context.Context, id int64) (*entity.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	FindAll(ctx context.Context) ([]*entity.Usuario, error)
	Update(ctx context.Context, usuario *entity.Usuario) error
	Delete(ctx context.Context, id int64) error
}

type usuarioRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUsuarioRepository(db database.PgxIface, log *zap.Logger) UsuarioRepository {
	return &usuarioRepository{
		db:  db,
		log: log,
	}
}

// Create inserts usuario and stores the generated id on it
func (ur *usuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	defer observe("insert", usuariosTable, time.Now())

	query := `
		INSERT INTO usuarios (email, password, nombre, apellido, tipo_usuario,
		                      fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := ur.db.QueryRow(ctx, query,
		usuario.Email,
		usuario.Password,
		usuario.FirstName,
		usuario.LastName,
		string(usuario.AccountType),
		usuario.CreatedAt,
		usuario.UpdatedAt,
	).Scan(&usuario.ID)

	if err != nil {
		if isDuplicateEmail(err) {
			return ErrDuplicateEmail
		}
		ur.log.Error("Failed to create usuario",
			zap.Error(err),
			zap.String("email", usuario.Email),
		)
		return fmt.Errorf("create usuario %s: %w", usuario.Email, err)
	}

	return nil
}

func (ur *usuarioRepository) FindByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	defer observe("select", usuariosTable, time.Now())

	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`

	usuario, err := scanUsuario(ur.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find usuario by ID",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return nil, fmt.Errorf("find usuario by ID %d: %w", id, err)
	}

	return usuario, nil
}

func (ur *usuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	defer observe("select", usuariosTable, time.Now())

	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1`

	usuario, err := scanUsuario(ur.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find usuario by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find usuario by email %s: %w", email, err)
	}

	return usuario, nil
}

// FindAll returns every usuario ordered by id
func (ur *usuarioRepository) FindAll(ctx context.Context) ([]*entity.Usuario, error) {
	defer observe("select", usuariosTable, time.Now())

	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY id`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to list usuarios", zap.Error(err))
		return nil, fmt.Errorf("find all usuarios: %w", err)
	}
	defer rows.Close()

	usuarios := make([]*entity.Usuario, 0)
	for rows.Next() {
		usuario, err := scanUsuario(rows)
		if err != nil {
			ur.log.Error("Failed to scan usuario row", zap.Error(err))
			return nil, fmt.Errorf("scan usuario row: %w", err)
		}
		usuarios = append(usuarios, usuario)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate usuarios rows: %w", err)
	}

	return usuarios, nil
}

// Update overwrites every mutable column. fecha_creacion is never written.
func (ur *usuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	defer observe("update", usuariosTable, time.Now())

	query := `
		UPDATE usuarios
		SET email = $2, password = $3, nombre = $4, apellido = $5,
		    tipo_usuario = $6, fecha_actualizacion = $7
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		usuario.ID,
		usuario.Email,
		usuario.Password,
		usuario.FirstName,
		usuario.LastName,
		string(usuario.AccountType),
		usuario.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEmail(err) {
			return ErrDuplicateEmail
		}
		ur.log.Error("Failed to update usuario",
			zap.Error(err),
			zap.Int64("id", usuario.ID),
		)
		return fmt.Errorf("update usuario %d: %w", usuario.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update usuario %d: %w", usuario.ID, ErrNotFound)
	}

	return nil
}

func (ur *usuarioRepository) Delete(ctx context.Context, id int64) error {
	defer observe("delete", usuariosTable, time.Now())

	result, err := ur.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete usuario",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete usuario %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete usuario %d: %w", id, ErrNotFound)
	}

	ur.log.Info("Usuario deleted", zap.Int64("id", id))
	return nil
}

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var (
		usuario     entity.Usuario
		accountType string
	)

	err := row.Scan(
		&usuario.ID,
		&usuario.Email,
		&usuario.Password,
		&usuario.FirstName,
		&usuario.LastName,
		&accountType,
		&usuario.CreatedAt,
		&usuario.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	usuario.AccountType = entity.AccountType(accountType)
	return &usuario, nil
}

func isDuplicateEmail(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == emailUniqueKey
}
