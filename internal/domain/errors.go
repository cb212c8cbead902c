package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when request parameters fail an
	// endpoint's declared schema. It is raised before any upstream call.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUpstreamFailure is the sentinel wrapped by UpstreamError so
	// callers can match the class with errors.Is.
	ErrUpstreamFailure = errors.New("upstream food database request failed")
)

// UpstreamError reports a non-success HTTP status from the upstream food
// database. No partial data accompanies it and it is never retried.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream food database request failed: status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamFailure
}
