package hypothesis

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Annotation is the full representation of an annotation resource as echoed
// by the service. Annotations are created, mutated and deleted only through
// API round trips; the client never constructs one except as an update
// payload echo.
type Annotation struct {
	// ID is the server-assigned annotation ID.
	ID string `json:"id"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`

	// User is the creator's account ID, "acct:<username>@<authority>".
	User AccountID `json:"user"`

	// URI of the document this annotation is attached to.
	URI string `json:"uri"`

	// Text is the annotation body written by the user, not the selected
	// text in the document.
	Text string `json:"text"`

	Tags []string `json:"tags"`

	// Group is the ID of the group the annotation belongs to.
	Group string `json:"group"`

	Permissions Permissions `json:"permissions"`

	// Target describes which part of the document the annotation anchors to.
	Target []Target `json:"target"`

	// Links holds hypermedia links for this annotation, keyed by relation.
	Links map[string]string `json:"links"`

	// Hidden reports whether the annotation is hidden from public view.
	Hidden bool `json:"hidden"`

	// Flagged reports whether the annotation has been flagged for moderation.
	Flagged bool `json:"flagged"`

	Document *Document `json:"document,omitempty"`

	// References lists annotation IDs this annotation replies to.
	References []string `json:"references,omitempty"`

	UserInfo *UserInfo `json:"user_info,omitempty"`
}

// UserInfo carries the annotation creator's display name.
type UserInfo struct {
	DisplayName *string `json:"display_name"`
}

// Permissions names the principals allowed each action on an annotation.
type Permissions struct {
	Read   []string `json:"read"`
	Delete []string `json:"delete"`
	Admin  []string `json:"admin"`
	Update []string `json:"update"`
}

// InputAnnotation is the client-side payload for creating or updating an
// annotation. Every field is optional; zero-valued fields are omitted from
// the wire representation so a partial update never clobbers server-side
// values the caller left untouched. Note the flip side: an explicit default
// value (empty text, say) cannot be force-sent through these fields.
type InputAnnotation struct {
	// URI that the annotation is attached to. A URL, or a URN such as a
	// DOI or a PDF fingerprint.
	URI string `json:"uri,omitempty"`

	// Text is the annotation comment, not the selected document text.
	Text string `json:"text,omitempty"`

	Tags []string `json:"tags,omitempty"`

	// Document carries further metadata about the target document.
	Document *Document `json:"document,omitempty"`

	// Group is the annotation's group ID. Ignored for replies, which
	// always live in their parent's group.
	Group string `json:"group,omitempty"`

	// Target selects the part of the document to annotate. When nil the
	// annotation is linked to the whole page.
	Target *Target `json:"target,omitempty"`

	// References lists annotation IDs this annotation is a reply to.
	References []string `json:"references,omitempty"`
}

// Validate checks that the input is acceptable for a create call.
func (in *InputAnnotation) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.URI, validation.Required),
	)
}

// ApplyTo overlays the non-empty fields of the input onto a fetched
// annotation, producing the payload for a full-representation PATCH.
func (in *InputAnnotation) ApplyTo(a *Annotation) {
	if in.URI != "" {
		a.URI = in.URI
	}
	if in.Text != "" {
		a.Text = in.Text
	}
	if in.Tags != nil {
		a.Tags = in.Tags
	}
	if in.Group != "" {
		a.Group = in.Group
	}
	if in.References != nil {
		a.References = in.References
	}
	if in.Document != nil {
		a.Document = in.Document
	}
	if in.Target != nil {
		a.Target = []Target{*in.Target}
	}
}

// Target describes the part of a document an annotation anchors to.
type Target struct {
	// Source is the target URI. Leave empty when creating an annotation.
	Source string `json:"source,omitempty"`

	// Selector refines the target to a segment of the source document.
	Selector []Selector `json:"selector,omitempty"`
}

// Document is optional metadata about an annotated document.
type Document struct {
	Title    []string  `json:"title,omitempty"`
	Dc       *Dc       `json:"dc,omitempty"`
	Highwire *HighWire `json:"highwire,omitempty"`
	Link     []DocLink `json:"link,omitempty"`
}

// Dc carries Dublin Core document identifiers.
type Dc struct {
	Identifier []string `json:"identifier,omitempty"`
}

// HighWire carries HighWire Press document metadata.
type HighWire struct {
	DOI    []string `json:"doi,omitempty"`
	PDFURL []string `json:"pdf_url,omitempty"`
}

// DocLink is an alternate link for a document.
type DocLink struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// Sort names the field by which search results are sorted.
type Sort string

const (
	SortCreated Sort = "created"
	SortUpdated Sort = "updated"
	SortID      Sort = "id"
	SortGroup   Sort = "group"
	SortUser    Sort = "user"
)

// Order is the direction in which search results are sorted.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// SearchQuery filters and sorts annotation search results. Fields equal to
// their declared default (the value set by NewSearchQuery) are omitted from
// the request query string. See the Hypothesis API reference for the exact
// meaning of each filter.
type SearchQuery struct {
	// Limit is the maximum number of annotations to return. Default 20,
	// range 0..200.
	Limit int `json:"limit"`

	// Sort is the field to sort on. Default SortUpdated.
	Sort Sort `json:"sort"`

	// SearchAfter defines the start point for a page of results, as an
	// RFC 3339 timestamp matching the Sort field. Set Order to OrderAsc
	// when cursoring with it.
	SearchAfter string `json:"search_after,omitempty"`

	// Offset is the number of initial results to skip. Default 0, max
	// 9800. SearchAfter is more efficient.
	Offset int `json:"offset"`

	// Order is the sort direction. Default OrderDesc.
	Order Order `json:"order"`

	// URI limits results to annotations on the given URI or equivalents.
	URI string `json:"uri,omitempty"`

	// URIParts limits results to annotations whose URI contains the given
	// tokenized keyword.
	URIParts string `json:"uri.parts,omitempty"`

	// WildcardURI limits results to URIs matching a wildcard pattern.
	WildcardURI string `json:"wildcard_uri,omitempty"`

	// User limits results to annotations by the given account
	// ("acct:<username>@<authority>").
	User string `json:"user,omitempty"`

	// Group limits results to the given group IDs. Repeatable.
	Group []string `json:"group,omitempty"`

	// Tag limits results to annotations carrying the given tag.
	Tag string `json:"tag,omitempty"`

	// Tags is like Tag but matches several tags. Repeatable.
	Tags []string `json:"tags,omitempty"`

	// Any matches the keyword against quote, tags, text and url.
	Any string `json:"any,omitempty"`

	// Quote limits results to annotations whose selected text contains
	// the given text.
	Quote string `json:"quote,omitempty"`

	// References limits results to replies to the given annotation ID.
	References string `json:"references,omitempty"`

	// Text limits results to annotations containing this text in their body.
	Text string `json:"text,omitempty"`
}

// NewSearchQuery returns a query populated with the service's documented
// defaults.
func NewSearchQuery() *SearchQuery {
	return &SearchQuery{
		Limit: 20,
		Sort:  SortUpdated,
		Order: OrderDesc,
	}
}

// searchResult is the wire envelope of GET /search.
type searchResult struct {
	Rows  []Annotation `json:"rows"`
	Total int          `json:"total"`
}

// deleteResult is the wire envelope of DELETE /annotations/{id}.
type deleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
