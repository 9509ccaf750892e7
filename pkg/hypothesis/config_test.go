package hypothesis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Username = "testuser"
	cfg.DeveloperKey = "6879-deadbeef"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing username", mutate: func(c *Config) { c.Username = "" }, wantErr: true},
		{name: "username too short", mutate: func(c *Config) { c.Username = "ab" }, wantErr: true},
		{name: "username bad characters", mutate: func(c *Config) { c.Username = "has spaces" }, wantErr: true},
		{name: "missing developer key", mutate: func(c *Config) { c.DeveloperKey = "" }, wantErr: true},
		{name: "key with control characters", mutate: func(c *Config) { c.DeveloperKey = "bad\nkey" }, wantErr: true},
		{name: "base URL not a URL", mutate: func(c *Config) { c.BaseURL = "not a url" }, wantErr: true},
		{name: "missing authority", mutate: func(c *Config) { c.Authority = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewClientRejectsInvalidKey(t *testing.T) {
	_, err := NewClient("testuser", "bad\nkey")
	assert.Error(t, err)
}

func TestNewClientSetsIdentity(t *testing.T) {
	client, err := NewClient("testuser", "6879-deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "testuser", client.Username)
	assert.Equal(t, AccountID("acct:testuser@hypothes.is"), client.User)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvUsername, "testuser")
	t.Setenv(EnvDeveloperKey, "6879-deadbeef")

	client, err := FromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AccountID("acct:testuser@hypothes.is"), client.User)
}

func TestFromEnvMissingKey(t *testing.T) {
	t.Setenv(EnvUsername, "testuser")
	t.Setenv(EnvDeveloperKey, "")

	_, err := FromEnv(context.Background())
	var envErr *EnvironmentError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, EnvDeveloperKey, envErr.Variable)
	assert.Contains(t, envErr.Error(), EnvDeveloperKey)
}

func TestFromEnvMissingUsername(t *testing.T) {
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvDeveloperKey, "6879-deadbeef")

	_, err := FromEnv(context.Background())
	var envErr *EnvironmentError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, EnvUsername, envErr.Variable)
	assert.False(t, errors.Is(err, context.Canceled))
}
