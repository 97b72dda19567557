package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/link-shortener/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

// mockService is a test double for LinkService that returns configured errors.
type mockService struct {
	shortenErr error
	resolveErr error
}

func (m *mockService) Shorten(_ context.Context, rawURL string) (shortener.Link, error) {
	if m.shortenErr != nil {
		return shortener.Link{}, m.shortenErr
	}

	return shortener.Link{ShortID: "abc123", OriginalURL: rawURL}, nil
}

func (m *mockService) Resolve(_ context.Context, id shortener.ShortID) (shortener.Link, error) {
	if m.resolveErr != nil {
		return shortener.Link{}, m.resolveErr
	}

	return shortener.Link{ShortID: id, OriginalURL: testURL}, nil
}
