// Package config assembles the client configuration for the CLI from an
// optional HCL config file overlaid with environment variables. The
// environment always wins for credentials so a key checked into a config
// file by mistake can be overridden without editing it.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/sethvargo/go-envconfig"

	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

// fileConfig is the HCL shape of a hypothesis CLI config file:
//
//	base_url      = "https://api.hypothes.is/api"
//	username      = "alice"
//	developer_key = "6879-..."
//	timeout       = "30s"
type fileConfig struct {
	BaseURL      string `hcl:"base_url,optional"`
	Username     string `hcl:"username,optional"`
	DeveloperKey string `hcl:"developer_key,optional"`
	Authority    string `hcl:"authority,optional"`
	Timeout      string `hcl:"timeout,optional"`
}

type envConfig struct {
	Username     string `env:"HYPOTHESIS_NAME"`
	DeveloperKey string `env:"HYPOTHESIS_KEY"`
}

// Load builds a client Config. path may be empty, in which case only the
// environment is consulted. Missing credentials surface as the client's
// typed environment error so the CLI prints the variable to set.
func Load(ctx context.Context, path string) (*hypothesis.Config, error) {
	cfg := hypothesis.DefaultConfig()

	if path != "" {
		var f fileConfig
		if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		if f.BaseURL != "" {
			cfg.BaseURL = f.BaseURL
		}
		if f.Authority != "" {
			cfg.Authority = f.Authority
		}
		cfg.Username = f.Username
		cfg.DeveloperKey = f.DeveloperKey
		if f.Timeout != "" {
			d, err := time.ParseDuration(f.Timeout)
			if err != nil {
				return nil, fmt.Errorf("parsing timeout in %s: %w", path, err)
			}
			cfg.Timeout = d
		}
	}

	var env envConfig
	if err := envconfig.Process(ctx, &env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if env.Username != "" {
		cfg.Username = env.Username
	}
	if env.DeveloperKey != "" {
		cfg.DeveloperKey = env.DeveloperKey
	}

	if cfg.Username == "" {
		return nil, &hypothesis.EnvironmentError{
			Variable:   hypothesis.EnvUsername,
			Suggestion: "set the environment variable " + hypothesis.EnvUsername + " to your username",
		}
	}
	if cfg.DeveloperKey == "" {
		return nil, &hypothesis.EnvironmentError{
			Variable:   hypothesis.EnvDeveloperKey,
			Suggestion: "set the environment variable " + hypothesis.EnvDeveloperKey + " to your personal API key",
		}
	}
	return cfg, nil
}
