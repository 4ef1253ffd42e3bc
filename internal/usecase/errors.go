package usecase

import (
	"errors"

	"usuarios-admin/pkg/utils"
)

var (
	ErrUsuarioNotFound    = errors.New("usuario not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const msgEmailTaken = "Ya existe un usuario con este email"

// ValidationError lists the rejected fields by JSON key.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func emailTakenError() *ValidationError {
	return newValidationError(map[string]string{"email": msgEmailTaken})
}
