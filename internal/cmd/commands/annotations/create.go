package annotations

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

type CreateCommand struct {
	*base.Command

	flagText       string
	flagTags       string
	flagGroup      string
	flagReferences string
}

func (c *CreateCommand) Synopsis() string {
	return "Create and upload a new annotation"
}

func (c *CreateCommand) Help() string {
	return `Usage: hypothesis annotations create [options] URI

  Create an annotation attached to the document at URI and upload it.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("annotations create")
	f.StringVar(&c.flagText, "text", "", "Annotation text / comment.")
	f.StringVar(&c.flagTags, "tags", "", "Comma-separated tags to attach.")
	f.StringVar(&c.flagGroup, "group", "", "Group ID the annotation belongs to.")
	f.StringVar(&c.flagReferences, "references", "",
		"Comma-separated annotation IDs this annotation replies to.")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one URI argument is required")
		return 1
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	annotation, err := client.CreateAnnotation(ctx, &hypothesis.InputAnnotation{
		URI:        f.Arg(0),
		Text:       c.flagText,
		Tags:       base.SplitList(c.flagTags),
		Group:      c.flagGroup,
		References: base.SplitList(c.flagReferences),
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Info(fmt.Sprintf("Annotation %s created", annotation.ID))
	return 0
}
