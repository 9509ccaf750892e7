package groups

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command
}

func (c *CreateCommand) Synopsis() string {
	return "Create a new private group"
}

func (c *CreateCommand) Help() string {
	return `Usage: hypothesis groups create NAME [DESCRIPTION]

  Create a new private group owned by the authenticated user.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("groups create")
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() < 1 || f.NArg() > 2 {
		c.UI.Error("a group name argument is required, with an optional description")
		return 1
	}
	description := ""
	if f.NArg() == 2 {
		description = f.Arg(1)
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	group, err := client.CreateGroup(ctx, f.Arg(0), description)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Info(fmt.Sprintf("Created group %s", group.ID))
	return 0
}
