package groups

import (
	"context"
	"fmt"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

type ListCommand struct {
	*base.Command

	flagAuthority   string
	flagDocumentURI string
	flagExpand      string
}

func (c *ListCommand) Synopsis() string {
	return "List applicable groups, including your private groups"
}

func (c *ListCommand) Help() string {
	return `Usage: hypothesis groups list [options]

  List groups filtered by authority and target document, one JSON record
  per line.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("groups list")
	c.AddOutputFlag(f)
	f.StringVar(&c.flagAuthority, "authority", hypothesis.DefaultAuthority,
		"Filter returned groups to this authority.")
	f.StringVar(&c.flagDocumentURI, "document-uri", "",
		"Only retrieve public groups that apply to this document URI.")
	f.StringVar(&c.flagExpand, "expand", "",
		"Comma-separated relations to expand: organization, scopes.")
	return f
}

func (c *ListCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	filters := hypothesis.NewGroupFilters()
	filters.Authority = c.flagAuthority
	filters.DocumentURI = c.flagDocumentURI
	for _, e := range base.SplitList(c.flagExpand) {
		filters.Expand = append(filters.Expand, hypothesis.Expand(e))
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	groups, err := client.GetGroups(ctx, filters)
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
