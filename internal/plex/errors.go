package plex

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a device or item lookup came back empty.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the server rejected the token.
	ErrUnauthorized = errors.New("unauthorized")
)

// UpstreamError is returned when Plex answers with a non-success status.
type UpstreamError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream returned %s", e.Op, e.Status)
}

// Unwrap lets errors.Is match ErrNotFound and ErrUnauthorized by status code.
func (e *UpstreamError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return nil
}
