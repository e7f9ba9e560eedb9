package catalog

import (
	"context"
	"errors"
)

var (
	// ErrCancelled marks a request superseded by a newer one. Callers
	// drop it silently; it is never a failure.
	ErrCancelled = errors.New("request cancelled")

	// ErrNotFound is returned by detail fetches for unknown titles.
	ErrNotFound = errors.New("title not found")
)

// IsCancelled reports whether err represents a superseded request
// rather than a real failure.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
