package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/pkg/resource"
)

func loadProperties(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, resource.Init(path))
}

func TestConfigFromResource_Defaults(t *testing.T) {
	loadProperties(t, `
app:
  db:
    url: ${TEST_POOL_DATABASE_URL}
`)

	cfg := ConfigFromResource()
	assert.Equal(t, DefaultMaxOpenConns, cfg.MaxOpenConns)
	assert.Equal(t, DefaultMaxOpenConns, cfg.MaxIdleConns)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingURL)
}

func TestConfigFromResource_Values(t *testing.T) {
	t.Setenv("TEST_POOL_DATABASE_URL", "postgres://todo@localhost/todo")
	loadProperties(t, `
app:
  db:
    url: ${TEST_POOL_DATABASE_URL}
    pool:
      max-open: 8
      max-idle: 20
      max-lifetime: 30m
`)

	cfg := ConfigFromResource()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "postgres://todo@localhost/todo", cfg.URL)
	assert.Equal(t, 8, cfg.MaxOpenConns)
	assert.Equal(t, 8, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
}

func TestApplyPool(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	Config{MaxOpenConns: 5, MaxIdleConns: 5}.ApplyPool(db)
	assert.Equal(t, 5, db.Stats().MaxOpenConnections)
}
