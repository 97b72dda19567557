package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/serroba/link-shortener/internal/handlers"
	"github.com/serroba/link-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createResponseBody struct {
	ShortID     string `json:"short_id"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	handlers.RegisterRoutes(api, newTestHandler(t, newService(t, store.NewMemoryStore())))

	return api
}

func TestRoutes(t *testing.T) {
	t.Run("shorten then redirect", func(t *testing.T) {
		api := newTestAPI(t)

		created := api.Post("/", map[string]any{"url": "http://example.com"})
		require.Equal(t, http.StatusCreated, created.Code)

		var body createResponseBody
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &body))
		assert.Regexp(t, `^[A-Za-z0-9_-]{8}$`, body.ShortID)
		assert.Equal(t, testBaseURL+"/"+body.ShortID, body.ShortURL)
		assert.Equal(t, body.ShortURL, created.Header().Get("Location"))

		shortID := body.ShortURL[strings.LastIndex(body.ShortURL, "/")+1:]

		redirect := api.Get("/" + shortID)
		assert.Equal(t, http.StatusTemporaryRedirect, redirect.Code)
		assert.Equal(t, "http://example.com", redirect.Header().Get("Location"))
	})

	t.Run("unknown short id returns 404", func(t *testing.T) {
		api := newTestAPI(t)

		resp := api.Get("/doesnotexist")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "short url not found")
	})

	t.Run("invalid url returns 400 with message", func(t *testing.T) {
		api := newTestAPI(t)

		resp := api.Post("/", map[string]any{"url": "ftp://x"})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "absolute http or https URL")
	})

	t.Run("missing url field is rejected", func(t *testing.T) {
		api := newTestAPI(t)

		resp := api.Post("/", map[string]any{})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}
