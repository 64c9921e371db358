package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("VALIDATE_ALL_CLIENTS", "")

	cfg := Load()

	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.False(t, cfg.ValidateAllClients)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("S3_PATH_STYLE", "true")
	t.Setenv("VALIDATE_ALL_CLIENTS", "1")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "9000")

	cfg := Load()

	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.S3PathStyle)
	assert.True(t, cfg.ValidateAllClients)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")
	assert.Equal(t, 7, getEnvInt("REDIS_DB", 7))
}
