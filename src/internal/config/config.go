package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultHTTPAddr = ":8080"
const defaultChannelID = "BankLookupApp"
const defaultShutdownTimeout = 10 * time.Second

type Config struct {
	HTTPAddr        string
	ChannelID       string
	ChannelKey      string
	ChannelKeyHash  string
	AuthDisabled    bool
	ShutdownTimeout time.Duration
}

var ErrMissingCredentials = errors.New("CHANNEL_KEY or CHANNEL_KEY_HASH is required unless AUTH_DISABLED=true")

// Load reads the server configuration from the environment. CHANNEL_KEY_HASH, a
// bcrypt hash, takes precedence over the plain CHANNEL_KEY when both are set.
func Load() (Config, error) {
	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = defaultHTTPAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	channelKeyHash := strings.TrimSpace(os.Getenv("CHANNEL_KEY_HASH"))
	if channelKeyHash != "" {
		channelKey = ""
	}

	authDisabled := false
	if raw := strings.TrimSpace(os.Getenv("AUTH_DISABLED")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse AUTH_DISABLED: %w", err)
		}
		authDisabled = parsed
	}

	shutdownTimeout := defaultShutdownTimeout
	if raw := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", raw)
		}
		shutdownTimeout = parsed
	}

	cfg := Config{
		HTTPAddr:        addr,
		ChannelID:       channelID,
		ChannelKey:      channelKey,
		ChannelKeyHash:  channelKeyHash,
		AuthDisabled:    authDisabled,
		ShutdownTimeout: shutdownTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate fails when no channel credential is set and auth was not
// explicitly turned off.
func (c Config) Validate() error {
	if !c.AuthEnabled() && !c.AuthDisabled {
		return ErrMissingCredentials
	}

	return nil
}

// AuthEnabled reports whether a channel credential was configured.
func (c Config) AuthEnabled() bool {
	return c.ChannelKey != "" || c.ChannelKeyHash != ""
}
