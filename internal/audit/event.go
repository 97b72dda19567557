// Package audit records link creation as an append-only event trail.
package audit

import "time"

// TopicLinkCreated is the stream link creation events are published to.
const TopicLinkCreated = "link.created"

// LinkCreatedEvent is emitted after a link is stored.
type LinkCreatedEvent struct {
	ShortID     string    `json:"short_id"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	ClientIP    string    `json:"client_ip,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	Referrer    string    `json:"referrer,omitempty"`
}
