package faas

import (
	"encoding/json"
	"fmt"
)

// Result holds the response of an operation. For a single input Body is the
// decoded response document; for a batch input Items holds one Result per
// input element, in input order.
type Result struct {
	Body  json.RawMessage
	Items []*Result
}

// IsBatch reports whether the result came from a batch input.
func (r *Result) IsBatch() bool {
	return r.Items != nil
}

// Decode unmarshals the response body into v.
func (r *Result) Decode(v interface{}) error {
	if len(r.Body) == 0 {
		return nil
	}

	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}

	return nil
}

// Map decodes a JSON object body into a mapping.
func (r *Result) Map() (map[string]interface{}, error) {
	var mapping map[string]interface{}

	err := r.Decode(&mapping)
	if err != nil {
		return nil, err
	}

	return mapping, nil
}
