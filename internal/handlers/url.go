package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/link-shortener/internal/audit"
	"github.com/serroba/link-shortener/internal/messaging"
	"github.com/serroba/link-shortener/internal/shortener"
	"go.uber.org/zap"
)

// LinkService creates and resolves short links.
type LinkService interface {
	Shorten(ctx context.Context, rawURL string) (shortener.Link, error)
	Resolve(ctx context.Context, id shortener.ShortID) (shortener.Link, error)
}

// URLHandler handles URL shortening operations.
type URLHandler struct {
	links              LinkService
	baseURL            string
	publishLinkCreated messaging.Publish[audit.LinkCreatedEvent]
	logger             *zap.Logger
}

// NewURLHandler creates a new URL handler.
// baseURL is the public prefix short ids are appended to.
func NewURLHandler(
	links LinkService,
	baseURL string,
	publishLinkCreated messaging.Publish[audit.LinkCreatedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		links:              links,
		baseURL:            baseURL,
		publishLinkCreated: publishLinkCreated,
		logger:             logger,
	}
}

func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	link, err := h.links.Shorten(ctx, req.Body.URL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			return nil, huma.Error400BadRequest(shortener.ErrInvalidURL.Error(), err)
		case errors.Is(err, shortener.ErrDuplicateKey):
			h.logger.Warn("short id allocation exhausted", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to allocate short id")
		default:
			h.logger.Error("failed to save url", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to save url")
		}
	}

	meta := RequestMetaFromContext(ctx)
	event := &audit.LinkCreatedEvent{
		ShortID:     string(link.ShortID),
		OriginalURL: link.OriginalURL,
		CreatedAt:   time.Now().UTC(),
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
		Referrer:    meta.Referrer,
	}

	if err := h.publishLinkCreated(ctx, event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("short_id", event.ShortID),
			zap.Error(err),
		)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, link.ShortID)

	resp := &CreateShortURLResponse{}
	resp.Location = shortURL
	resp.Body.ShortID = string(link.ShortID)
	resp.Body.ShortURL = shortURL
	resp.Body.OriginalURL = link.OriginalURL

	return resp, nil
}

func (h *URLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.links.Resolve(ctx, shortener.ShortID(req.ShortID))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to get url", zap.String("short_id", req.ShortID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	return &RedirectResponse{
		Status:   http.StatusTemporaryRedirect,
		Location: link.OriginalURL,
	}, nil
}
