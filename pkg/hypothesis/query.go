package hypothesis

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// queryParams serializes a filter struct into URL query parameters,
// omitting every field whose value equals the corresponding field of
// defaults. Both values are round-tripped through JSON so the parameter
// names come from the structs' json tags and nested values compare
// structurally. Scalars are stringified with surrounding quotes stripped;
// slice fields become repeated parameters, which is how the upstream API
// documents its repeatable filters (group, tags, expand).
func queryParams(v, defaults any) (url.Values, error) {
	m, err := toMap(v)
	if err != nil {
		return nil, fmt.Errorf("serializing query: %w", err)
	}
	d, err := toMap(defaults)
	if err != nil {
		return nil, fmt.Errorf("serializing query defaults: %w", err)
	}
	values := url.Values{}
	for key, val := range m {
		if def, ok := d[key]; ok && reflect.DeepEqual(val, def) {
			continue
		}
		if list, ok := val.([]any); ok {
			for _, item := range list {
				values.Add(key, stringifyParam(item))
			}
			continue
		}
		values.Add(key, stringifyParam(val))
	}
	return values, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func stringifyParam(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return strings.Trim(string(raw), `"`)
}
