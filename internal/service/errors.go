package service

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means the vision API endpoint or credential is missing.
// It is raised before any network attempt is made.
var ErrNotConfigured = errors.New("vision API not configured (QWEN_API_URL and QWEN_API_KEY are required)")

// ErrEmptyResponse means the model call succeeded but returned no usable
// textual content.
var ErrEmptyResponse = errors.New("vision API returned no content")

// UpstreamError is a transport failure or non-success HTTP status from the
// vision API. StatusCode is zero when the request never got a response.
// Nothing is retried; the error propagates to the caller as-is.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vision API request failed: %v", e.Err)
	}
	return fmt.Sprintf("vision API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// MalformedResponseError means the model returned content that could not be
// decoded as the expected JSON shape. Terminal for the request; no record is
// ever built from partially-decoded content.
type MalformedResponseError struct {
	Content string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v (content: %s)", e.Err, e.Content)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// PersistenceError wraps a storage write failure. Extraction results are
// still returned to the caller when persistence fails; storage is a side
// effect, not a precondition.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
