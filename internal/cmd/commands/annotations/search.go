package annotations

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd/base"
	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

type SearchCommand struct {
	*base.Command

	flagLimit       int
	flagSort        string
	flagOrder       string
	flagSearchAfter string
	flagOffset      int
	flagURI         string
	flagURIParts    string
	flagWildcardURI string
	flagUser        string
	flagGroup       string
	flagTag         string
	flagTags        string
	flagAny         string
	flagQuote       string
	flagReferences  string
	flagText        string
	flagAll         bool
}

func (c *SearchCommand) Synopsis() string {
	return "Search for annotations with optional filters"
}

func (c *SearchCommand) Help() string {
	return `Usage: hypothesis annotations search [options]

  Search annotations. Each matching annotation is written as one line of
  JSON, to standard output or to the -output file.` +
		c.Flags().Help()
}

func (c *SearchCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("annotations search")
	c.AddOutputFlag(f)
	f.IntVar(&c.flagLimit, "limit", 20, "Maximum number of annotations to return (0-200).")
	f.StringVar(&c.flagSort, "sort", "updated", "Sort field: created, updated, id, group or user.")
	f.StringVar(&c.flagOrder, "order", "desc", "Sort order: asc or desc.")
	f.StringVar(&c.flagSearchAfter, "search-after", "",
		"Start point for a page of results; most common timestamp formats are accepted. Use -order=asc with it.")
	f.IntVar(&c.flagOffset, "offset", 0, "Number of initial results to skip.")
	f.StringVar(&c.flagURI, "uri", "", "Match annotations on this URI or equivalents.")
	f.StringVar(&c.flagURIParts, "uri-parts", "", "Match a tokenized keyword in the URI.")
	f.StringVar(&c.flagWildcardURI, "wildcard-uri", "", "Match URIs against a wildcard pattern.")
	f.StringVar(&c.flagUser, "user", "", "Match annotations by this account (acct:<name>@<authority>).")
	f.StringVar(&c.flagGroup, "group", "", "Comma-separated group IDs to search in.")
	f.StringVar(&c.flagTag, "tag", "", "Match annotations carrying this tag.")
	f.StringVar(&c.flagTags, "tags", "", "Comma-separated tags that must all match.")
	f.StringVar(&c.flagAny, "any", "", "Match the keyword in quote, tags, text or url.")
	f.StringVar(&c.flagQuote, "quote", "", "Match this text inside the selected text.")
	f.StringVar(&c.flagReferences, "references", "", "Match replies to this annotation ID.")
	f.StringVar(&c.flagText, "text", "", "Match this text in the annotation body.")
	f.BoolVar(&c.flagAll, "all", false,
		"Follow the search_after cursor until all matching annotations are fetched; forces -order=asc.")
	return f
}

func (c *SearchCommand) query() (*hypothesis.SearchQuery, error) {
	q := hypothesis.NewSearchQuery()
	q.Limit = c.flagLimit
	q.Sort = hypothesis.Sort(c.flagSort)
	q.Order = hypothesis.Order(c.flagOrder)
	q.Offset = c.flagOffset
	q.URI = c.flagURI
	q.URIParts = c.flagURIParts
	q.WildcardURI = c.flagWildcardURI
	q.User = c.flagUser
	q.Group = base.SplitList(c.flagGroup)
	q.Tag = c.flagTag
	q.Tags = base.SplitList(c.flagTags)
	q.Any = c.flagAny
	q.Quote = c.flagQuote
	q.References = c.flagReferences
	q.Text = c.flagText
	if c.flagSearchAfter != "" {
		t, err := dateparse.ParseAny(c.flagSearchAfter)
		if err != nil {
			return nil, fmt.Errorf("cannot parse -search-after %q: %w", c.flagSearchAfter, err)
		}
		q.SearchAfter = t.UTC().Format(time.RFC3339Nano)
	}
	if c.flagAll {
		// Cursoring is only correct over an ascending result set.
		q.Order = hypothesis.OrderAsc
	}
	return q, nil
}

func (c *SearchCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	query, err := c.query()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	client, err := c.Client(ctx)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	var rows []hypothesis.Annotation
	if c.flagAll {
		rows, err = client.SearchAnnotationsAll(ctx, query)
	} else {
		rows, err = client.SearchAnnotations(ctx, query)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	records := make([]any, len(rows))
	for i := range rows {
		records[i] = rows[i]
	}
	if err := c.WriteRecords(records...); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
