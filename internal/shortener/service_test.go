package shortener_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/serroba/link-shortener/internal/shortener"
	"github.com/serroba/link-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStore = errors.New("disk full")

// failingStore is a test double whose operations always fail.
type failingStore struct {
	inserts int
}

func (f *failingStore) Insert(_ context.Context, _ shortener.Link) error {
	f.inserts++

	return errStore
}

func (f *failingStore) Lookup(_ context.Context, _ shortener.ShortID) (shortener.Link, error) {
	return shortener.Link{}, errStore
}

// sequence returns a generator that yields ids in order, repeating the last one.
func sequence(ids ...string) shortener.Generator {
	var mu sync.Mutex

	i := 0

	return func() string {
		mu.Lock()
		defer mu.Unlock()

		id := ids[min(i, len(ids)-1)]
		i++

		return id
	}
}

func newTestService(t *testing.T, repo shortener.Repository) *shortener.Service {
	t.Helper()

	gen, err := shortener.NewGenerator(shortener.DefaultShortIDLength)
	require.NoError(t, err)

	return shortener.NewService(repo, gen, 3, zap.NewNop())
}

func TestService_Shorten(t *testing.T) {
	t.Run("resolves back to the original url", func(t *testing.T) {
		svc := newTestService(t, store.NewMemoryStore())

		for _, raw := range []string{
			"http://example.com",
			"https://example.com/very/long/path?with=query&and=more",
			"https://example.com/trailing/",
		} {
			link, err := svc.Shorten(context.Background(), raw)
			require.NoError(t, err)
			assert.Regexp(t, shortIDPattern, string(link.ShortID))

			resolved, err := svc.Resolve(context.Background(), link.ShortID)
			require.NoError(t, err)
			assert.Equal(t, raw, resolved.OriginalURL)
		}
	})

	t.Run("rejects invalid urls without touching the store", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		svc := newTestService(t, memStore)

		for _, raw := range []string{"not a url", "ftp://x"} {
			_, err := svc.Shorten(context.Background(), raw)

			require.ErrorIs(t, err, shortener.ErrInvalidURL)
		}

		assert.Zero(t, memStore.Len())
	})

	t.Run("same url twice yields distinct ids", func(t *testing.T) {
		svc := newTestService(t, store.NewMemoryStore())

		first, err1 := svc.Shorten(context.Background(), "https://example.com")
		second, err2 := svc.Shorten(context.Background(), "https://example.com")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ShortID, second.ShortID)

		for _, link := range []shortener.Link{first, second} {
			resolved, err := svc.Resolve(context.Background(), link.ShortID)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com", resolved.OriginalURL)
		}
	})

	t.Run("concurrent shortens never collide", func(t *testing.T) {
		svc := newTestService(t, store.NewMemoryStore())

		const n = 50

		links := make([]shortener.Link, n)
		errs := make([]error, n)

		var wg sync.WaitGroup

		for i := range n {
			wg.Add(1)

			go func() {
				defer wg.Done()

				links[i], errs[i] = svc.Shorten(context.Background(), fmt.Sprintf("https://example.com/%d", i))
			}()
		}

		wg.Wait()

		for i := range n {
			require.NoError(t, errs[i])

			resolved, err := svc.Resolve(context.Background(), links[i].ShortID)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), resolved.OriginalURL)
		}
	})

	t.Run("retries with a fresh id on collision", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		require.NoError(t, memStore.Insert(context.Background(), shortener.Link{
			ShortID: "taken", OriginalURL: "https://first.com",
		}))

		svc := shortener.NewService(memStore, sequence("taken", "free"), 3, zap.NewNop())

		link, err := svc.Shorten(context.Background(), "https://second.com")

		require.NoError(t, err)
		assert.Equal(t, shortener.ShortID("free"), link.ShortID)

		original, err := svc.Resolve(context.Background(), "taken")
		require.NoError(t, err)
		assert.Equal(t, "https://first.com", original.OriginalURL)
	})

	t.Run("fails with ErrDuplicateKey once attempts are exhausted", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		svc := shortener.NewService(memStore, sequence("same"), 3, zap.NewNop())

		_, err := svc.Shorten(context.Background(), "https://first.com")
		require.NoError(t, err)

		_, err = svc.Shorten(context.Background(), "https://second.com")
		require.ErrorIs(t, err, shortener.ErrDuplicateKey)
		assert.Equal(t, 1, memStore.Len())
	})

	t.Run("single attempt does not retry", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		svc := shortener.NewService(memStore, sequence("same", "same", "other"), 1, zap.NewNop())

		_, err := svc.Shorten(context.Background(), "https://first.com")
		require.NoError(t, err)

		_, err = svc.Shorten(context.Background(), "https://second.com")
		require.ErrorIs(t, err, shortener.ErrDuplicateKey)
	})

	t.Run("does not retry on storage errors", func(t *testing.T) {
		failing := &failingStore{}
		svc := newTestService(t, failing)

		_, err := svc.Shorten(context.Background(), "https://example.com")

		require.ErrorIs(t, err, errStore)
		assert.NotErrorIs(t, err, shortener.ErrDuplicateKey)
		assert.Equal(t, 1, failing.inserts)
	})
}

func TestService_Resolve(t *testing.T) {
	t.Run("returns ErrNotFound for ids never issued", func(t *testing.T) {
		svc := newTestService(t, store.NewMemoryStore())

		_, err := svc.Resolve(context.Background(), "doesnotexist")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("wraps storage errors", func(t *testing.T) {
		svc := newTestService(t, &failingStore{})

		_, err := svc.Resolve(context.Background(), "abc123")

		require.ErrorIs(t, err, errStore)
		assert.NotErrorIs(t, err, shortener.ErrNotFound)
	})
}
