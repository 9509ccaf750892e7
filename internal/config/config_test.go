package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hypothesis.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(hypothesis.EnvUsername, "")
	t.Setenv(hypothesis.EnvDeveloperKey, "")

	path := writeConfigFile(t, `
username      = "alice"
developer_key = "6879-deadbeef"
base_url      = "http://localhost:9999/api"
timeout       = "5s"
`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, "6879-deadbeef", cfg.DeveloperKey)
	assert.Equal(t, "http://localhost:9999/api", cfg.BaseURL)
	assert.Equal(t, "hypothes.is", cfg.Authority)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv(hypothesis.EnvUsername, "bob")
	t.Setenv(hypothesis.EnvDeveloperKey, "env-key")

	path := writeConfigFile(t, `
username      = "alice"
developer_key = "file-key"
`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.Username)
	assert.Equal(t, "env-key", cfg.DeveloperKey)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv(hypothesis.EnvUsername, "alice")
	t.Setenv(hypothesis.EnvDeveloperKey, "6879-deadbeef")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, hypothesis.DefaultBaseURL, cfg.BaseURL)
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv(hypothesis.EnvUsername, "alice")
	t.Setenv(hypothesis.EnvDeveloperKey, "")

	_, err := Load(context.Background(), "")
	var envErr *hypothesis.EnvironmentError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, hypothesis.EnvDeveloperKey, envErr.Variable)
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv(hypothesis.EnvUsername, "alice")
	t.Setenv(hypothesis.EnvDeveloperKey, "6879-deadbeef")

	path := writeConfigFile(t, `timeout = "soon"`)
	_, err := Load(context.Background(), path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
