package hypothesis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Bulk helpers fan out one independent API call per input element on the
// shared transport and join on all of them. On success the results are in
// input order; any failure makes the whole batch report that first error
// (already-dispatched calls still run to completion). Nothing here imposes
// an ordering on what the service observes.

// CreateAnnotations creates the given annotations concurrently.
func (c *Client) CreateAnnotations(ctx context.Context, inputs []*InputAnnotation) ([]*Annotation, error) {
	results := make([]*Annotation, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		g.Go(func() error {
			a, err := c.CreateAnnotation(gctx, in)
			if err != nil {
				return err
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateAnnotations patches the annotations named by ids with the zipped
// inputs. The two slices must have the same length.
func (c *Client) UpdateAnnotations(ctx context.Context, ids []string, inputs []*InputAnnotation) ([]*Annotation, error) {
	if len(ids) != len(inputs) {
		return nil, fmt.Errorf("got %d ids but %d inputs", len(ids), len(inputs))
	}
	results := make([]*Annotation, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			a, err := c.UpdateAnnotation(gctx, id, inputs[i])
			if err != nil {
				return err
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FetchAnnotations retrieves the annotations named by ids concurrently.
func (c *Client) FetchAnnotations(ctx context.Context, ids []string) ([]*Annotation, error) {
	results := make([]*Annotation, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			a, err := c.FetchAnnotation(gctx, id)
			if err != nil {
				return err
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteAnnotations deletes the annotations named by ids concurrently and
// returns the per-annotation deletion confirmations in input order.
func (c *Client) DeleteAnnotations(ctx context.Context, ids []string) ([]bool, error) {
	results := make([]bool, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			deleted, err := c.DeleteAnnotation(gctx, id)
			if err != nil {
				return err
			}
			results[i] = deleted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CreateGroups creates one group per zipped name/description pair. The two
// slices must have the same length.
func (c *Client) CreateGroups(ctx context.Context, names, descriptions []string) ([]*Group, error) {
	if len(names) != len(descriptions) {
		return nil, fmt.Errorf("got %d names but %d descriptions", len(names), len(descriptions))
	}
	results := make([]*Group, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			grp, err := c.CreateGroup(gctx, name, descriptions[i])
			if err != nil {
				return err
			}
			results[i] = grp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FetchGroups retrieves the groups named by ids concurrently, expanding the
// given relations on each.
func (c *Client) FetchGroups(ctx context.Context, ids []string, expand []Expand) ([]*Group, error) {
	results := make([]*Group, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			grp, err := c.FetchGroup(gctx, id, expand)
			if err != nil {
				return err
			}
			results[i] = grp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateGroups patches the groups named by ids with the zipped names and
// descriptions. All three slices must have the same length.
func (c *Client) UpdateGroups(ctx context.Context, ids, names, descriptions []string) ([]*Group, error) {
	if len(ids) != len(names) || len(ids) != len(descriptions) {
		return nil, fmt.Errorf("got %d ids, %d names, %d descriptions", len(ids), len(names), len(descriptions))
	}
	results := make([]*Group, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			grp, err := c.UpdateGroup(gctx, id, names[i], descriptions[i])
			if err != nil {
				return err
			}
			results[i] = grp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
