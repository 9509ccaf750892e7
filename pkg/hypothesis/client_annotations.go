package hypothesis

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// CreateAnnotation uploads a new annotation and returns the server's
// canonical echo of it.
func (c *Client) CreateAnnotation(ctx context.Context, in *InputAnnotation) (*Annotation, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid annotation input: %w", err)
	}
	var out Annotation
	if err := c.do(ctx, http.MethodPost, "/annotations", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAnnotation patches the annotation with the given ID. Zero-valued
// input fields are omitted from the payload, so server-side values the
// caller left untouched are preserved.
func (c *Client) UpdateAnnotation(ctx context.Context, id string, in *InputAnnotation) (*Annotation, error) {
	var out Annotation
	if err := c.do(ctx, http.MethodPatch, "/annotations/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchAnnotation retrieves a single annotation by ID.
func (c *Client) FetchAnnotation(ctx context.Context, id string) (*Annotation, error) {
	var out Annotation
	if err := c.do(ctx, http.MethodGet, "/annotations/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAnnotation deletes an annotation and reports whether the service
// confirmed the deletion.
func (c *Client) DeleteAnnotation(ctx context.Context, id string) (bool, error) {
	var out deleteResult
	if err := c.do(ctx, http.MethodDelete, "/annotations/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return false, err
	}
	return out.Deleted, nil
}

// SearchAnnotations returns one page of annotations matching the query.
// A nil query searches with the service defaults.
func (c *Client) SearchAnnotations(ctx context.Context, query *SearchQuery) ([]Annotation, error) {
	if query == nil {
		query = NewSearchQuery()
	}
	params, err := queryParams(query, NewSearchQuery())
	if err != nil {
		return nil, err
	}
	var out searchResult
	if err := c.do(ctx, http.MethodGet, "/search", params, nil, &out); err != nil {
		return nil, err
	}
	return out.Rows, nil
}

// SearchAnnotationsAll repeatedly calls SearchAnnotations, advancing the
// search_after cursor to the updated timestamp of the last row of each page,
// and accumulates rows until a page comes back empty.
//
// Precondition: set query.Order to OrderAsc. The service neither enforces
// nor signals this, and cursoring a descending result set will silently
// loop or skip rows.
func (c *Client) SearchAnnotationsAll(ctx context.Context, query *SearchQuery) ([]Annotation, error) {
	q := *NewSearchQuery()
	if query != nil {
		q = *query
	}
	var all []Annotation
	for {
		page, err := c.SearchAnnotations(ctx, &q)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return all, nil
		}
		all = append(all, page...)
		q.SearchAfter = page[len(page)-1].Updated.UTC().Format(time.RFC3339Nano)
	}
}

// FlagAnnotation flags an annotation for review by the group's moderator.
// Flags persist; there is no API to remove one.
func (c *Client) FlagAnnotation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/annotations/"+url.PathEscape(id)+"/flag", nil, nil, nil)
}

// HideAnnotation hides an annotation from public view. Requires the
// moderate permission for the annotation's group.
func (c *Client) HideAnnotation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/annotations/"+url.PathEscape(id)+"/hide", nil, nil, nil)
}

// ShowAnnotation un-hides an annotation. Requires the moderate permission
// for the annotation's group.
func (c *Client) ShowAnnotation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/annotations/"+url.PathEscape(id)+"/hide", nil, nil, nil)
}
