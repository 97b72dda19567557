package shortener

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Service creates and resolves short links.
type Service struct {
	store       Repository
	generateID  Generator
	maxAttempts int
	logger      *zap.Logger
}

// NewService creates a new link service.
// maxAttempts bounds how many fresh ids are tried when an insert hits a duplicate key;
// values below 1 are treated as 1.
func NewService(store Repository, generator Generator, maxAttempts int, logger *zap.Logger) *Service {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Service{
		store:       store,
		generateID:  generator,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Shorten validates rawURL and stores it under a newly generated short id.
func (s *Service) Shorten(ctx context.Context, rawURL string) (Link, error) {
	target, err := ParseTargetURL(rawURL)
	if err != nil {
		return Link{}, err
	}

	for attempt := 1; ; attempt++ {
		link := Link{
			ShortID:     ShortID(s.generateID()),
			OriginalURL: target.String(),
		}

		err = s.store.Insert(ctx, link)
		if err == nil {
			return link, nil
		}

		if !errors.Is(err, ErrDuplicateKey) {
			return Link{}, fmt.Errorf("insert link: %w", err)
		}

		s.logger.Warn("short id collision",
			zap.String("short_id", string(link.ShortID)),
			zap.Int("attempt", attempt),
		)

		if attempt >= s.maxAttempts {
			return Link{}, fmt.Errorf("after %d attempts: %w", attempt, ErrDuplicateKey)
		}
	}
}

// Resolve returns the link stored under id.
func (s *Service) Resolve(ctx context.Context, id ShortID) (Link, error) {
	link, err := s.store.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Link{}, err
		}

		return Link{}, fmt.Errorf("lookup link: %w", err)
	}

	return link, nil
}
