package store

import (
	"context"
	"sync"

	"github.com/serroba/link-shortener/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
// It is not durable and is meant for tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	links map[shortener.ShortID]string // short id -> original url
}

// NewMemoryStore creates a new in-memory link store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links: make(map[shortener.ShortID]string),
	}
}

func (m *MemoryStore) Insert(_ context.Context, link shortener.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.ShortID]; exists {
		return shortener.ErrDuplicateKey
	}

	m.links[link.ShortID] = link.OriginalURL

	return nil
}

func (m *MemoryStore) Lookup(_ context.Context, id shortener.ShortID) (shortener.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.links[id]
	if !ok {
		return shortener.Link{}, shortener.ErrNotFound
	}

	return shortener.Link{ShortID: id, OriginalURL: url}, nil
}

// Len returns the number of stored links.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.links)
}

// Ping always succeeds.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

var _ shortener.Repository = (*MemoryStore)(nil)
