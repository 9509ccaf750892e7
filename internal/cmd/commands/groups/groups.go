// Package groups implements the "hypothesis groups" subcommands.
package groups

import (
	"github.com/mitchellh/cli"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage groups"
}

func (c *Command) Help() string {
	return `Usage: hypothesis groups <subcommand> [options] [args]

  This command groups subcommands for listing, creating, fetching and
  updating groups, and for group membership.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
