package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  server:
    host: ${TEST_SERVER_HOST:127.0.0.1}
    port: ${TEST_SERVER_PORT:8000}
    context-path: ""
    shutdown-timeout: 10s
  db:
    url: ${TEST_DATABASE_URL}
    driver: sql
    pool:
      max-open: 5
  events:
    redis:
      address: ${TEST_REDIS_HOST:localhost}:${TEST_REDIS_PORT:6379}
`

func loadSample(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	require.NoError(t, Init(path))
}

func TestInit_ResolvesDefaults(t *testing.T) {
	loadSample(t)

	assert.Equal(t, "127.0.0.1", GetString("app.server.host"))
	assert.Equal(t, 8000, GetInt("app.server.port"))
	assert.Equal(t, "", GetString("app.db.url"))
	assert.Equal(t, "sql", GetString("app.db.driver"))
	assert.Equal(t, 5, GetInt("app.db.pool.max-open"))
	assert.Equal(t, 10*time.Second, GetDuration("app.server.shutdown-timeout"))
	assert.Equal(t, "localhost:6379", GetString("app.events.redis.address"))
}

func TestInit_ResolvesEnvironment(t *testing.T) {
	t.Setenv("TEST_DATABASE_URL", "postgres://todo:todo@db:5432/todo?sslmode=disable")
	t.Setenv("TEST_SERVER_PORT", "9090")
	t.Setenv("TEST_REDIS_HOST", "cache")
	loadSample(t)

	assert.Equal(t, "postgres://todo:todo@db:5432/todo?sslmode=disable", GetString("app.db.url"))
	assert.Equal(t, 9090, GetInt("app.server.port"))
	assert.Equal(t, "cache:6379", GetString("app.events.redis.address"))
}

func TestGetStringOrDefault(t *testing.T) {
	loadSample(t)

	assert.Equal(t, "fallback", GetStringOrDefault("app.db.url", "fallback"))
	assert.Equal(t, "sql", GetStringOrDefault("app.db.driver", "gorm"))
}

func TestSet_Overrides(t *testing.T) {
	loadSample(t)
	Set("app.todo.default-owner", 3)

	assert.True(t, IsSet("app.todo.default-owner"))
	assert.Equal(t, int64(3), GetInt64("app.todo.default-owner"))
}

func TestResolveEnvVariable_PlainValue(t *testing.T) {
	assert.Equal(t, "/api", resolveEnvVariable("/api"))
}
