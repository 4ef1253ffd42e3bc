package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "usuarios")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_NAME=admin\nDB_USER=django\nDB_PASS=secret\nPORT=9000\nCORS_ALLOWED_ORIGINS=http://localhost:5173, http://localhost:3000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "9100")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.App.Port)
	assert.Equal(t, "admin", cfg.Database.Name)
	assert.Equal(t, "django", cfg.Database.User)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadConfigFrom_RequiresDBName(t *testing.T) {
	t.Setenv("DB_NAME", "")

	_, err := LoadConfigFrom("")
	require.Error(t, err)
}

func TestDatabaseConfig_URL(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		Name:     "usuarios",
		User:     "admin",
		Password: "p@ss word",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://admin:p%40ss%20word@db:5433/usuarios?sslmode=disable", cfg.URL())
}
