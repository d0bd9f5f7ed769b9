package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Server.ClientOrigin)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenExpiration())
	assert.Equal(t, int64(10*1024*1024), cfg.Uploads.MaxFileSize)
	assert.Equal(t, []string{"pdf", "doc", "docx"}, cfg.Uploads.ResumeExtensions)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: "8080"
  mode: production
jwt:
  secret: file-secret
  token_expiration: 24h
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port, "environment beats the file")
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration())
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_BadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_EXPIRES_IN", "seven days")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
