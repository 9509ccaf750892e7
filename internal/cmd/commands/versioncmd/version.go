// Package versioncmd implements the "hypothesis version" command.
package versioncmd

import (
	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: hypothesis version

  Print the CLI version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("hypothesis v" + version.Version)
	return 0
}
