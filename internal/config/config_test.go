package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with env override", func(t *testing.T) {
		t.Setenv("ONBOARD_AUTH_JWT_SECRET", "a-very-long-test-secret")
		t.Setenv("ONBOARD_STORE_RETRY_ATTEMPTS", "5")

		cfg, err := config.Load("")
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Server.Port)
		assert.Equal(t, 5, cfg.Store.RetryAttempts)
		assert.Equal(t, 3*time.Second, cfg.Store.Timeout)
		assert.Equal(t, "a-very-long-test-secret", cfg.Auth.JWTSecret)
	})

	t.Run("yaml file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := "server:\n  port: 8081\nauth:\n  jwt_secret: from-file-secret-123\nstore:\n  timeout: 2s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, 2*time.Second, cfg.Store.Timeout)
	})

	t.Run("missing secret rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8081\n"), 0o600))

		_, err := config.Load(path)
		assert.Error(t, err)
	})
}
