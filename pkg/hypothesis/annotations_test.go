package hypothesis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputAnnotationOmitsEmptyFields(t *testing.T) {
	in := InputAnnotation{URI: "https://example.com", Text: "a comment"}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))

	assert.Equal(t, "https://example.com", keys["uri"])
	assert.Equal(t, "a comment", keys["text"])
	for _, absent := range []string{"tags", "document", "group", "target", "references"} {
		assert.NotContains(t, keys, absent)
	}
}

func TestInputAnnotationValidate(t *testing.T) {
	in := InputAnnotation{Text: "no uri"}
	assert.Error(t, in.Validate())

	in.URI = "https://example.com"
	assert.NoError(t, in.Validate())
}

func TestInputAnnotationApplyTo(t *testing.T) {
	existing := Annotation{
		ID:    "abc",
		URI:   "https://example.com/old",
		Text:  "old text",
		Tags:  []string{"keep"},
		Group: "__world__",
	}

	in := InputAnnotation{
		Text: "new text",
		Tags: []string{"replaced"},
		Target: &Target{
			Selector: []Selector{NewQuoteSelector("e", "p", "s")},
		},
	}
	in.ApplyTo(&existing)

	// Untouched fields survive; set fields overlay.
	assert.Equal(t, "https://example.com/old", existing.URI)
	assert.Equal(t, "new text", existing.Text)
	assert.Equal(t, []string{"replaced"}, existing.Tags)
	assert.Equal(t, "__world__", existing.Group)
	require.Len(t, existing.Target, 1)
	require.Len(t, existing.Target[0].Selector, 1)
	assert.Equal(t, SelectorTextQuote, existing.Target[0].Selector[0].Type)
}

func TestAnnotationDecode(t *testing.T) {
	raw := `{
		"id": "X8vLyLZ1EeqDdFeeyyrzUg",
		"created": "2020-06-10T05:51:00.555906+00:00",
		"updated": "2020-06-10T05:51:00.555906+00:00",
		"user": "acct:alice@hypothes.is",
		"uri": "https://example.com",
		"text": "a body",
		"tags": ["one", "two"],
		"group": "__world__",
		"permissions": {
			"read": ["group:__world__"],
			"delete": ["acct:alice@hypothes.is"],
			"admin": ["acct:alice@hypothes.is"],
			"update": ["acct:alice@hypothes.is"]
		},
		"target": [{
			"source": "https://example.com",
			"selector": [{"type": "TextQuoteSelector", "exact": "e", "prefix": "p", "suffix": "s"}]
		}],
		"links": {"html": "https://hypothes.is/a/X8vLyLZ1EeqDdFeeyyrzUg"},
		"hidden": false,
		"flagged": false,
		"user_info": {"display_name": null}
	}`
	var a Annotation
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, "X8vLyLZ1EeqDdFeeyyrzUg", a.ID)
	assert.Equal(t, "alice", a.User.Username())
	assert.Equal(t, 2020, a.Created.Year())
	require.Len(t, a.Target, 1)
	require.Len(t, a.Target[0].Selector, 1)
	require.NotNil(t, a.Target[0].Selector[0].TextQuote)
	assert.Equal(t, "e", a.Target[0].Selector[0].TextQuote.Exact)
	require.NotNil(t, a.UserInfo)
	assert.Nil(t, a.UserInfo.DisplayName)
}
