package hypothesis

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Selector kinds known to the Hypothesis client. Only TextQuoteSelector is
// strongly typed; the upstream API treats the rest loosely, so they are kept
// as opaque key/value bags (see Selector).
const (
	SelectorTextQuote    = "TextQuoteSelector"
	SelectorTextPosition = "TextPositionSelector"
	SelectorRange        = "RangeSelector"
	SelectorFragment     = "FragmentSelector"
	SelectorCSS          = "CssSelector"
	SelectorXPath        = "XPathSelector"
	SelectorDataPosition = "DataPositionSelector"
	SelectorSvg          = "SvgSelector"
	SelectorPage         = "PageSelector"
	SelectorEPUBContent  = "EPUBContentSelector"
	SelectorMediaTime    = "MediaTimeSelector"
)

// Selector describes how an annotation's target segment is located within
// the source document. It is a tagged union: the wire "type" field alone
// decides the variant, and exactly one variant is populated at a time.
//
// TextQuoteSelector is decoded into the typed TextQuote variant; every other
// kind, including kinds this package has never heard of, is preserved
// losslessly in Fields so no data is dropped on a round trip.
type Selector struct {
	// Type is the wire discriminator, e.g. "TextQuoteSelector".
	Type string

	// TextQuote is set when Type is SelectorTextQuote.
	TextQuote *TextQuoteSelector

	// Fields holds the remaining properties for all other selector kinds.
	Fields map[string]any
}

// TextQuoteSelector selects a range of text by copying it together with a
// snippet of surrounding context, per the W3C Web Annotation Data Model.
type TextQuoteSelector struct {
	// Exact is a copy of the selected text, after normalization.
	Exact string `json:"exact"`

	// Prefix is a snippet of text occurring immediately before Exact.
	Prefix string `json:"prefix"`

	// Suffix is a snippet of text occurring immediately after Exact.
	Suffix string `json:"suffix"`
}

// NewQuoteSelector builds a TextQuoteSelector variant.
func NewQuoteSelector(exact, prefix, suffix string) Selector {
	return Selector{
		Type: SelectorTextQuote,
		TextQuote: &TextQuoteSelector{
			Exact:  exact,
			Prefix: prefix,
			Suffix: suffix,
		},
	}
}

// UnmarshalJSON decodes a selector object, choosing the variant from the
// "type" tag.
func (s *Selector) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("selector is not a JSON object: %w", err)
	}
	typ, _ := fields["type"].(string)
	if typ == "" {
		return fmt.Errorf("selector has no \"type\" tag")
	}
	if typ == SelectorTextQuote {
		var quote TextQuoteSelector
		if err := json.Unmarshal(data, &quote); err != nil {
			return fmt.Errorf("decoding TextQuoteSelector: %w", err)
		}
		*s = Selector{Type: typ, TextQuote: &quote}
		return nil
	}
	delete(fields, "type")
	*s = Selector{Type: typ, Fields: fields}
	return nil
}

// MarshalJSON restores the wire shape: the variant's properties plus the
// "type" tag.
func (s Selector) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Fields)+4)
	if s.TextQuote != nil {
		out["exact"] = s.TextQuote.Exact
		out["prefix"] = s.TextQuote.Prefix
		out["suffix"] = s.TextQuote.Suffix
	}
	for k, v := range s.Fields {
		out[k] = v
	}
	out["type"] = s.Type
	return json.Marshal(out)
}

// Decode maps an opaque selector's fields onto a caller-supplied struct.
// This lets callers promote loosely-typed kinds (RangeSelector, say) to
// their own typed representation without this package committing to a shape
// the upstream API does not guarantee.
func (s *Selector) Decode(out any) error {
	if s.TextQuote != nil {
		return fmt.Errorf("selector %s is already typed; read TextQuote directly", s.Type)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("building selector decoder: %w", err)
	}
	if err := dec.Decode(s.Fields); err != nil {
		return fmt.Errorf("decoding %s fields: %w", s.Type, err)
	}
	return nil
}
