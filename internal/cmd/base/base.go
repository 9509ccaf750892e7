// Package base carries the shared state and helpers for hypothesis CLI
// commands: the UI, the logger, the client factory and output rendering.
package base

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/out-of-cheese-error/go-hypothesis/internal/config"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

// ClientFactory builds an authenticated client. It is replaceable in tests.
type ClientFactory func(ctx context.Context, configPath string) (*hypothesis.Client, error)

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// Fs is the filesystem output files are written to.
	Fs afero.Fs

	// Factory builds the API client; defaults to DefaultClientFactory.
	Factory ClientFactory

	flagConfig string
	flagOutput string
}

// DefaultClientFactory builds a client from the config file and environment.
func DefaultClientFactory(ctx context.Context, configPath string) (*hypothesis.Client, error) {
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return nil, err
	}
	return hypothesis.NewClientWithConfig(cfg)
}

// NewFlagSet returns a flag set pre-populated with the flags every command
// shares (-config).
func (c *Command) NewFlagSet(name string) *FlagSet {
	f := NewFlagSet(flag.NewFlagSet(name, flag.ContinueOnError))
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an optional HCL config file with base_url, username and developer_key.",
	)
	return f
}

// AddOutputFlag registers -output for commands that render records.
func (c *Command) AddOutputFlag(f *FlagSet) {
	f.StringVar(
		&c.flagOutput, "output", "",
		"File to write JSON output to; standard output when absent.",
	)
}

// Client builds the authenticated API client.
func (c *Command) Client(ctx context.Context) (*hypothesis.Client, error) {
	factory := c.Factory
	if factory == nil {
		factory = DefaultClientFactory
	}
	return factory(ctx, c.flagConfig)
}

// SplitList splits a comma-separated flag value, trimming whitespace and
// dropping empty entries. Returns nil for an empty value so omit-if-default
// payload fields stay omitted.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// WriteRecords renders each record as one line of JSON, to the -output file
// if one was given and to standard output otherwise.
func (c *Command) WriteRecords(records ...any) error {
	lines := make([][]byte, 0, len(records))
	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding output record: %w", err)
		}
		lines = append(lines, raw)
	}
	if c.flagOutput == "" {
		for _, line := range lines {
			c.UI.Output(string(line))
		}
		return nil
	}
	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	var buf []byte
	for _, line := range lines {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	if err := afero.WriteFile(fs, c.flagOutput, buf, 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", c.flagOutput, err)
	}
	return nil
}
