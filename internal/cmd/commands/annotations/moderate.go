package annotations

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

// The delete, flag, hide and show commands all take a single annotation ID
// and differ only in the client call and the status line, so they share one
// implementation.

type idCommand struct {
	*base.Command

	name     string
	synopsis string
	detail   string
	done     string
	call     func(ctx context.Context, client *hypothesis.Client, id string) error
}

func (c *idCommand) Synopsis() string { return c.synopsis }

func (c *idCommand) Help() string {
	return fmt.Sprintf(`Usage: hypothesis annotations %s ID

  %s`, c.name, c.detail) + c.Flags().Help()
}

func (c *idCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("annotations " + c.name)
}

func (c *idCommand) Run(args []string) int {
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

	id := f.Arg(0)
	if err := c.call(ctx, client, id); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Info(fmt.Sprintf(c.done, id))
	return 0
}

// NewDeleteCommand deletes an annotation by ID.
func NewDeleteCommand(b *base.Command) *idCommand {
	return &idCommand{
		Command:  b,
		name:     "delete",
		synopsis: "Delete an annotation by ID",
		detail:   "Delete the annotation with the given ID.",
		done:     "Annotation %s deleted",
		call: func(ctx context.Context, client *hypothesis.Client, id string) error {
			deleted, err := client.DeleteAnnotation(ctx, id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("couldn't delete annotation %s", id)
			}
			return nil
		},
	}
}

// NewFlagCommand flags an annotation for moderation. Flags persist and
// cannot be removed once set.
func NewFlagCommand(b *base.Command) *idCommand {
	return &idCommand{
		Command:  b,
		name:     "flag",
		synopsis: "Flag an annotation for moderation",
		detail: `Flag the annotation for review. The moderator of its group is notified
  and can decide whether to hide it. Flags persist and cannot be removed.`,
		done: "Annotation %s flagged",
		call: func(ctx context.Context, client *hypothesis.Client, id string) error {
			return client.FlagAnnotation(ctx, id)
		},
	}
}

// NewHideCommand hides an annotation; requires the moderate permission for
// its group.
func NewHideCommand(b *base.Command) *idCommand {
	return &idCommand{
		Command:  b,
		name:     "hide",
		synopsis: "Hide an annotation from public view",
		detail: `Hide the annotation. Requires the moderate permission for the group
  containing it, granted to the user who created the group.`,
		done: "Annotation %s hidden",
		call: func(ctx context.Context, client *hypothesis.Client, id string) error {
			return client.HideAnnotation(ctx, id)
		},
	}
}

// NewShowCommand un-hides an annotation; requires the moderate permission
// for its group.
func NewShowCommand(b *base.Command) *idCommand {
	return &idCommand{
		Command:  b,
		name:     "show",
		synopsis: "Show (un-hide) an annotation",
		detail: `Un-hide the annotation. Requires the moderate permission for the group
  containing it, granted to the user who created the group.`,
		done: "Annotation %s unhidden",
		call: func(ctx context.Context, client *hypothesis.Client, id string) error {
			return client.ShowAnnotation(ctx, id)
		},
	}
}
