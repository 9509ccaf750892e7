// Package annotations implements the "hypothesis annotations" subcommands.
package annotations

import (
	"github.com/mitchellh/cli"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage annotations"
}

func (c *Command) Help() string {
	return `Usage: hypothesis annotations <subcommand> [options] [args]

  This command groups subcommands for creating, updating, searching,
  fetching, deleting and moderating annotations.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
