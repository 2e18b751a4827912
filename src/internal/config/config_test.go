package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_ADDR", "CHANNEL_ID", "CHANNEL_KEY", "CHANNEL_KEY_HASH", "AUTH_DISABLED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHANNEL_KEY", "key-001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "BankLookupApp", cfg.ChannelID)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.AuthDisabled)
}

func TestLoadRequiresCredentials(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoadAuthDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_DISABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AuthDisabled)
	assert.False(t, cfg.AuthEnabled())

	t.Setenv("AUTH_DISABLED", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", " :9090 ")
	t.Setenv("CHANNEL_ID", "Teller")
	t.Setenv("CHANNEL_KEY", "key-001")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "Teller", cfg.ChannelID)
	assert.Equal(t, "key-001", cfg.ChannelKey)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoadHashTakesPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHANNEL_KEY", "plain")
	t.Setenv("CHANNEL_KEY_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ChannelKey)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.ChannelKeyHash)
}

func TestLoadRejectsBadShutdownTimeout(t *testing.T) {
	for _, raw := range []string{"soon", "-1s", "0s"} {
		clearEnv(t)
		t.Setenv("CHANNEL_KEY", "key-001")
		t.Setenv("SHUTDOWN_TIMEOUT", raw)

		_, err := Load()
		assert.Error(t, err, "value %q", raw)
	}
}
