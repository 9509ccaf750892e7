package groups

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type LeaveCommand struct {
	*base.Command
}

func (c *LeaveCommand) Synopsis() string {
	return "Remove yourself from a group"
}

func (c *LeaveCommand) Help() string {
	return `Usage: hypothesis groups leave ID

  Remove the authenticated user from the group.` +
		c.Flags().Help()
}

func (c *LeaveCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("groups leave")
}

func (c *LeaveCommand) Run(args []string) int {
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

	id := f.Arg(0)
	if err := client.LeaveGroup(ctx, id); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Info(fmt.Sprintf("Left group %s", id))
	return 0
}
