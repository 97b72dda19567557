package shortener

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
)

// DefaultShortIDLength yields 48 bits of entropy over a 64-symbol URL-safe alphabet.
const DefaultShortIDLength = 8

// Generator returns a fresh random short id on every call.
type Generator func() string

// NewGenerator returns a Generator backed by crypto/rand using the
// alphabet A-Z, a-z, 0-9, '-' and '_'.
func NewGenerator(length int) (Generator, error) {
	gen, err := nanoid.Standard(length)
	if err != nil {
		return nil, fmt.Errorf("short id generator: %w", err)
	}

	return gen, nil
}
