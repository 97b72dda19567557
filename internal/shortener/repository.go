package shortener

import (
	"context"
	"errors"
)

var (
	// ErrInvalidURL is returned when the input is not an absolute http or https URL.
	ErrInvalidURL = errors.New("invalid url: must be an absolute http or https URL")

	// ErrNotFound is returned when no link exists for a short id.
	ErrNotFound = errors.New("short url not found")

	// ErrDuplicateKey is returned when a short id is already taken.
	ErrDuplicateKey = errors.New("short id already exists")
)

// Repository persists links keyed by short id.
type Repository interface {
	// Insert stores a new link atomically.
	// Returns ErrDuplicateKey if the short id is already stored.
	Insert(ctx context.Context, link Link) error

	// Lookup returns the link stored under id, or ErrNotFound.
	Lookup(ctx context.Context, id ShortID) (Link, error)
}

// SchemaBootstrapper is implemented by stores that need their schema created before use.
type SchemaBootstrapper interface {
	EnsureSchema(ctx context.Context) error
}
