package handlers

// CreateShortURLRequest is the request body for creating a short URL.
type CreateShortURLRequest struct {
	Body struct {
		URL string `doc:"Absolute http or https URL to shorten" example:"https://example.com/very/long/path" json:"url"`
	}
}

// CreateShortURLResponse is the response for a successfully created short URL.
type CreateShortURLResponse struct {
	Location string `doc:"The short URL" header:"Location"`
	Body     struct {
		ShortID     string `doc:"The short id"       example:"Xq3_a-9Z"                           json:"short_id"`
		ShortURL    string `doc:"The full short URL" example:"http://127.0.0.1:8080/Xq3_a-9Z"    json:"short_url"`
		OriginalURL string `doc:"The original URL"   example:"https://example.com/very/long/path" json:"original_url"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	ShortID string `doc:"The short id" example:"Xq3_a-9Z" path:"shortId"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `header:"Location"`
}
