package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("CONTACT_TO", "owner@example.com")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, "Contact Form <onboarding@resend.dev>", cfg.ContactFrom)
	assert.False(t, cfg.IsProduction())
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("CONTACT_TO", "owner@example.com")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidContactTo(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("CONTACT_TO", "not-an-email")

	_, err := Load()
	require.Error(t, err)
}
