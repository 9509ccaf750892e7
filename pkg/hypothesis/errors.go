package hypothesis

import (
	"encoding/json"
	"fmt"
)

// APIError is an error response returned by the Hypothesis API. The wire
// shape is {"status": "...", "reason": "..."}. When the service responds
// with a body that cannot even be parsed as this shape, an APIError with
// zero-valued Status and Reason is returned so callers always get a typed
// error rather than an opaque parse failure.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`

	// Status is the status string reported by the API, usually "failure".
	Status string `json:"status"`

	// Reason is the API's human-readable cause of failure.
	Reason string `json:"reason"`

	// Raw is the raw response body, kept for diagnosis.
	Raw string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("hypothesis: API error (status %d): %s: %s", e.StatusCode, e.Status, e.Reason)
	}
	return fmt.Sprintf("hypothesis: API error (status %d)", e.StatusCode)
}

// parseAPIError interprets a response body as the API error shape. It never
// fails: an unparseable body yields an APIError with empty Status and Reason.
func parseAPIError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Raw: string(raw)}
	// Best effort; the zero value stands when the body is not the error shape.
	_ = json.Unmarshal(raw, apiErr)
	return apiErr
}

// TransportError is a network-level failure (connection, timeout, TLS).
// The call was not answered by the service; it is never retried.
type TransportError struct {
	// Op is the attempted operation, e.g. "POST /annotations".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hypothesis: transport error on %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that matched neither the expected
// success shape nor the API error shape. Raw carries the body text so the
// mismatch can be diagnosed.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("hypothesis: cannot decode response: %v (raw: %q)", e.Err, truncate(e.Raw, 256))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EnvironmentError reports a missing environment variable when constructing
// a client with FromEnv.
type EnvironmentError struct {
	// Variable is the name of the missing environment variable.
	Variable string

	// Suggestion tells the user how to fix the problem.
	Suggestion string
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("hypothesis: environment variable %s is not set: %s", e.Variable, e.Suggestion)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
