package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/serroba/link-shortener/internal/shortener"
)

// insertSameIDConcurrently races n inserts of short id "same", each with its own url,
// and tallies the outcomes.
func insertSameIDConcurrently(t *testing.T, repo shortener.Repository, n int) (successes, duplicates int, others []error) {
	t.Helper()

	start := make(chan struct{})
	errs := make(chan error, n)

	var wg sync.WaitGroup

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			<-start

			errs <- repo.Insert(context.Background(), shortener.Link{
				ShortID:     "same",
				OriginalURL: fmt.Sprintf("https://example.com/%d", i),
			})
		}()
	}

	close(start)
	wg.Wait()
	close(errs)

	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, shortener.ErrDuplicateKey):
			duplicates++
		default:
			others = append(others, err)
		}
	}

	return successes, duplicates, others
}
