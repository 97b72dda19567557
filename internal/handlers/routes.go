package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the link creation and redirect routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	// POST / - Create short URL
	huma.Register(api, huma.Operation{
		OperationID:   "create-short-url",
		Method:        http.MethodPost,
		Path:          "/",
		Summary:       "Create short URL",
		Description:   "Stores the URL under a newly generated short id and returns the full short URL.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
	}, urlHandler.CreateShortURL)

	// GET /{shortId} - Redirect to original URL
	huma.Register(api, huma.Operation{
		OperationID: "redirect-to-url",
		Method:      http.MethodGet,
		Path:        "/{shortId}",
		Summary:     "Redirect to original URL",
		Description: "Redirects with 307 to the original URL associated with the short id.",
		Tags:        []string{"URLs"},
	}, urlHandler.RedirectToURL)
}
