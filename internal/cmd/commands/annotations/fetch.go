package annotations

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
)

type FetchCommand struct {
	*base.Command
}

func (c *FetchCommand) Synopsis() string {
	return "Fetch an annotation by ID"
}

func (c *FetchCommand) Help() string {
	return `Usage: hypothesis annotations fetch [options] ID

  Fetch one annotation and write it as JSON, to standard output or to the
  -output file.` +
		c.Flags().Help()
}

func (c *FetchCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("annotations fetch")
	c.AddOutputFlag(f)
	return f
}

func (c *FetchCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one annotation ID argument is required")
		return 1
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	annotation, err := client.FetchAnnotation(ctx, f.Arg(0))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := c.WriteRecords(annotation); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
