package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	// t.Setenv registers the restore; unset so the defaults apply.
	t.Setenv("PORT", "ignored")
	os.Unsetenv("PORT")
	t.Setenv("TOKEN_TTL", "ignored")
	os.Unsetenv("TOKEN_TTL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9999")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.ServerPort)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}
