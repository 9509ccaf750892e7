package hypothesis

import (
	"context"
	"net/http"
	"net/url"
)

// GetGroups lists the groups matching the filters, including the
// authenticated user's private groups. A nil filter lists with the service
// defaults.
func (c *Client) GetGroups(ctx context.Context, filters *GroupFilters) ([]Group, error) {
	if filters == nil {
		filters = NewGroupFilters()
	}
	params, err := queryParams(filters, NewGroupFilters())
	if err != nil {
		return nil, err
	}
	var out []Group
	if err := c.do(ctx, http.MethodGet, "/groups", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGroup creates a new private group owned by the authenticated user.
// The description may be empty.
func (c *Client) CreateGroup(ctx context.Context, name, description string) (*Group, error) {
	var out Group
	payload := groupPayload{Name: name, Description: description}
	if err := c.do(ctx, http.MethodPost, "/groups", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchGroup retrieves a single group, optionally expanding the
// organization and scopes relations inline.
func (c *Client) FetchGroup(ctx context.Context, id string, expand []Expand) (*Group, error) {
	params := url.Values{}
	for _, e := range expand {
		params.Add("expand", string(e))
	}
	var out Group
	if err := c.do(ctx, http.MethodGet, "/groups/"+url.PathEscape(id), params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGroup changes a group's name and/or description. Empty arguments
// are omitted from the payload and leave the server-side value untouched.
func (c *Client) UpdateGroup(ctx context.Context, id, name, description string) (*Group, error) {
	var out Group
	payload := groupPayload{Name: name, Description: description}
	if err := c.do(ctx, http.MethodPatch, "/groups/"+url.PathEscape(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGroupMembers lists the members of a group. Only public-facing user
// data is returned, unsorted.
func (c *Client) GetGroupMembers(ctx context.Context, id string) ([]Member, error) {
	var out []Member
	if err := c.do(ctx, http.MethodGet, "/groups/"+url.PathEscape(id)+"/members", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LeaveGroup removes the authenticated user from a group.
func (c *Client) LeaveGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/groups/"+url.PathEscape(id)+"/members/me", nil, nil, nil)
}
