package hypothesis

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GroupType says who can view and edit annotations in a group.
type GroupType string

const (
	// GroupPrivate groups are visible only to their creator.
	GroupPrivate GroupType = "private"
	// GroupOpen groups can be viewed and edited by anyone.
	GroupOpen GroupType = "open"
	// GroupRestricted groups are shared between chosen users.
	GroupRestricted GroupType = "restricted"
)

// Expand names a group relation that can be expanded inline on fetch.
type Expand string

const (
	// ExpandOrganization expands the group's organization field to the
	// full Org object.
	ExpandOrganization Expand = "organization"
	// ExpandScopes expands the group's scopes field.
	ExpandScopes Expand = "scopes"
)

// GroupFilters filters the group listing by authority and target document.
// Fields equal to their declared default (the value set by NewGroupFilters)
// are omitted from the request query string.
type GroupFilters struct {
	// Authority filters returned groups to this authority. For
	// authenticated requests the user's own authority supersedes it.
	// Default "hypothes.is".
	Authority string `json:"authority"`

	// DocumentURI restricts results to public groups that apply to the
	// given target document.
	DocumentURI string `json:"document_uri,omitempty"`

	// Expand lists relations to expand inline. Repeatable.
	Expand []Expand `json:"expand,omitempty"`
}

// NewGroupFilters returns filters populated with the service's defaults.
func NewGroupFilters() *GroupFilters {
	return &GroupFilters{Authority: DefaultAuthority}
}

// GroupLinks holds hypermedia links for a group.
type GroupLinks struct {
	// HTML is the URL of the group's activity page.
	HTML *string `json:"html,omitempty"`
}

// Scope describes URL restrictions for annotations within a group.
type Scope struct {
	Enforced    bool     `json:"enforced"`
	URIPatterns []string `json:"uri_patterns"`
}

// Org is the expanded representation of an organization.
type Org struct {
	ID string `json:"id"`

	// Default is true if this is the default organization for the
	// current authority.
	Default bool `json:"default"`

	// Logo is a URI to the logo image, or nil if none exists.
	Logo *string `json:"logo"`

	Name string `json:"name"`
}

// Organization is the organization a group belongs to. The API serves it in
// one of three shapes from the same position: a bare ID string when not
// expanded, a full object when expanded, or null when expanded but the
// caller is not authorized to see it. There is no discriminator field; the
// shape is probed at decode time in a fixed order (null, string, object).
type Organization struct {
	// ID holds the organization ID for the unexpanded shape.
	ID string

	// Org holds the expanded object; nil when unexpanded or unauthorized.
	Org *Org

	expanded bool
}

// Expanded reports whether the wire value was the expanded shape (object or
// null) rather than a bare ID string.
func (o Organization) Expanded() bool { return o.expanded }

func (o *Organization) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	// null must be checked before the string probe: unmarshalling null into
	// a string is a no-op that reports success.
	if bytes.Equal(data, []byte("null")) {
		*o = Organization{expanded: true}
		return nil
	}
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*o = Organization{ID: id}
		return nil
	}
	var org Org
	if err := json.Unmarshal(data, &org); err != nil {
		return fmt.Errorf("organization is neither a string, null, nor an object: %w", err)
	}
	*o = Organization{Org: &org, expanded: true}
	return nil
}

func (o Organization) MarshalJSON() ([]byte, error) {
	if !o.expanded {
		return json.Marshal(o.ID)
	}
	return json.Marshal(o.Org)
}

// Group is a named collection scoping annotation visibility and membership.
type Group struct {
	ID string `json:"id"`

	// GroupID is an authority-unique identifier set for groups owned by a
	// third-party authority; nil for first-party groups.
	GroupID *string `json:"groupid"`

	Name string `json:"name"`

	Links GroupLinks `json:"links"`

	Organization Organization `json:"organization"`

	// Scopes describes the group's URL restrictions; nil unless expanded.
	Scopes *Scope `json:"scopes,omitempty"`

	// Scoped reports whether the group restricts which documents may be
	// annotated within it.
	Scoped bool `json:"scoped"`

	Type GroupType `json:"type"`
}

// Member is the public-facing projection of a user within a group.
type Member struct {
	Authority   string  `json:"authority"`
	Username    string  `json:"username"`
	UserID      string  `json:"userid"`
	DisplayName *string `json:"display_name,omitempty"`
}

// groupPayload is the request body for group create and update calls.
type groupPayload struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}
