package groups

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

type FetchCommand struct {
	*base.Command

	flagExpand string
}

func (c *FetchCommand) Synopsis() string {
	return "Fetch a single group by ID"
}

func (c *FetchCommand) Help() string {
	return `Usage: hypothesis groups fetch [options] ID

  Fetch one group and write it as JSON, to standard output or to the
  -output file.` +
		c.Flags().Help()
}

func (c *FetchCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("groups fetch")
	c.AddOutputFlag(f)
	f.StringVar(&c.flagExpand, "expand", "",
		"Comma-separated relations to expand: organization, scopes.")
	return f
}

func (c *FetchCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one group ID argument is required")
		return 1
	}

	var expand []hypothesis.Expand
	for _, e := range base.SplitList(c.flagExpand) {
		expand = append(expand, hypothesis.Expand(e))
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	group, err := client.FetchGroup(ctx, f.Arg(0), expand)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := c.WriteRecords(group); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
