package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://u@db/x", "pgx5://u@db/x"},
		{"pgx5://already/set", "pgx5://already/set"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migrateURL(tt.in))
	}
}
