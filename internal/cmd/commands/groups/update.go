package groups

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type UpdateCommand struct {
	*base.Command

	flagName        string
	flagDescription string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a group's name or description"
}

func (c *UpdateCommand) Help() string {
	return `Usage: hypothesis groups update [options] ID

  Patch the group with the given ID. Only the fields passed as options
  are sent.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("groups update")
	f.StringVar(&c.flagName, "name", "", "New group name.")
	f.StringVar(&c.flagDescription, "description", "", "New group description.")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one group ID argument is required")
		return 1
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	group, err := client.UpdateGroup(ctx, f.Arg(0), c.flagName, c.flagDescription)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Info(fmt.Sprintf("Updated group %s", group.ID))
	return 0
}
