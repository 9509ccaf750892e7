// Package profile implements the "hypothesis profile" subcommands.
package profile

import (
	"context"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage user profile"
}

func (c *Command) Help() string {
	return `Usage: hypothesis profile <subcommand> [options]

  This command groups subcommands for the currently-authenticated user's
  profile.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type UserCommand struct {
	*base.Command
}

func (c *UserCommand) Synopsis() string {
	return "Fetch profile information for the authenticated user"
}

func (c *UserCommand) Help() string {
	return `Usage: hypothesis profile user [options]

  Fetch the authenticated user's profile and write it as JSON, to
  standard output or to the -output file.` +
		c.Flags().Help()
}

func (c *UserCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("profile user")
	c.AddOutputFlag(f)
	return f
}

func (c *UserCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	profile, err := client.FetchUserProfile(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := c.WriteRecords(profile); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}

type GroupsCommand struct {
	*base.Command
}

func (c *GroupsCommand) Synopsis() string {
	return "Fetch the groups the authenticated user is a member of"
}

func (c *GroupsCommand) Help() string {
	return `Usage: hypothesis profile groups [options]

  List the authenticated user's groups, one JSON record per line.` +
		c.Flags().Help()
}

func (c *GroupsCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("profile groups")
	c.AddOutputFlag(f)
	return f
}

func (c *GroupsCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	groups, err := client.FetchUserGroups(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	records := make([]any, len(groups))
	for i := range groups {
		records[i] = groups[i]
	}
	if err := c.WriteRecords(records...); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
