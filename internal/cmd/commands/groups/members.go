package groups

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type MembersCommand struct {
	*base.Command
}

func (c *MembersCommand) Synopsis() string {
	return "List the members of a group"
}

func (c *MembersCommand) Help() string {
	return `Usage: hypothesis groups members [options] ID

  List all members of the group, one JSON record per line. Only
  public-facing user data is returned, unsorted. Reading members of a
  public group does not require authentication.` +
		c.Flags().Help()
}

func (c *MembersCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("groups members")
	c.AddOutputFlag(f)
	return f
}

func (c *MembersCommand) Run(args []string) int {
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

	members, err := client.GetGroupMembers(ctx, f.Arg(0))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	records := make([]any, len(members))
	for i := range members {
		records[i] = members[i]
	}
	if err := c.WriteRecords(records...); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
