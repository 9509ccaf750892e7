package hypothesis

import (
	"context"
	"net/http"
)

// FetchUserProfile retrieves the authenticated user's profile.
func (c *Client) FetchUserProfile(ctx context.Context) (*UserProfile, error) {
	var out UserProfile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchUserGroups lists the groups the authenticated user is a member of.
func (c *Client) FetchUserGroups(ctx context.Context) ([]Group, error) {
	var out []Group
	if err := c.do(ctx, http.MethodGet, "/profile/groups", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
