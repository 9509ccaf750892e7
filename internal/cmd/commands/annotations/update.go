package annotations

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

type UpdateCommand struct {
	*base.Command

	flagURI        string
	flagText       string
	flagTags       string
	flagGroup      string
	flagReferences string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update an existing annotation"
}

func (c *UpdateCommand) Help() string {
	return `Usage: hypothesis annotations update [options] ID

  Patch the annotation with the given ID. Only the fields passed as
  options are sent; everything else keeps its server-side value.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("annotations update")
	f.StringVar(&c.flagURI, "uri", "", "New document URI.")
	f.StringVar(&c.flagText, "text", "", "New annotation text.")
	f.StringVar(&c.flagTags, "tags", "", "Comma-separated replacement tags.")
	f.StringVar(&c.flagGroup, "group", "", "New group ID.")
	f.StringVar(&c.flagReferences, "references", "",
		"Comma-separated replacement reply references.")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
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

	annotation, err := client.UpdateAnnotation(ctx, f.Arg(0), &hypothesis.InputAnnotation{
		URI:        c.flagURI,
		Text:       c.flagText,
		Tags:       base.SplitList(c.flagTags),
		Group:      c.flagGroup,
		References: base.SplitList(c.flagReferences),
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Info(fmt.Sprintf("Annotation %s updated", annotation.ID))
	return 0
}
