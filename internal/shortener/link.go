package shortener

import (
	"fmt"
	"net/url"
	"strings"
)

// ShortID is the public token identifying a stored link.
type ShortID string

// Link maps a short id to the URL it redirects to.
// Links are immutable once stored.
type Link struct {
	ShortID     ShortID
	OriginalURL string
}

// TargetURL is an absolute http or https URL that passed validation.
// The zero value is not valid; use ParseTargetURL.
type TargetURL struct {
	raw string
}

// ParseTargetURL validates rawURL as an absolute http(s) URL with a host.
// The original string is kept as-is; nothing is normalized.
func ParseTargetURL(rawURL string) (TargetURL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return TargetURL{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if !u.IsAbs() {
		return TargetURL{}, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, rawURL)
	}

	if !strings.EqualFold(u.Scheme, "http") && !strings.EqualFold(u.Scheme, "https") {
		return TargetURL{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return TargetURL{}, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return TargetURL{raw: rawURL}, nil
}

func (t TargetURL) String() string {
	return t.raw
}
