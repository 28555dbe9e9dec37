package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimgate/claimgate-go/pkg/protocol"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultAddress, cfg.Address)
	assert.Equal(t, defaultHTTPTimeout, cfg.HTTPTimeout)
	assert.NotEmpty(t, cfg.SharePageURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLAIMGATE_HTTP_ADDR", ":9999")
	t.Setenv("CLAIMGATE_HTTP_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Address)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("CLAIMGATE_HTTP_TIMEOUT_SECONDS", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CLAIMGATE_HTTP_TIMEOUT_SECONDS", "-5")
	_, err = Load()
	assert.Error(t, err)
}

func TestIdentity_Missing(t *testing.T) {
	cfg := Config{}

	_, err := cfg.Identity()
	require.Error(t, err)

	var ce *protocol.ConfigurationError
	assert.True(t, errors.As(err, &ce))
}

func TestIdentity_InvalidSecret(t *testing.T) {
	cfg := Config{AppSecret: "not-a-private-key"}

	_, err := cfg.Identity()
	var ce *protocol.ConfigurationError
	assert.True(t, errors.As(err, &ce))
}

func TestIdentity_Valid(t *testing.T) {
	cfg := Config{AppSecret: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"}

	s, err := cfg.Identity()
	require.NoError(t, err)
	assert.NotEmpty(t, s.Address())
}
