package audit

import (
	"context"

	"go.uber.org/zap"
)

// Log writes audit events to a structured logger.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a new audit log.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

// LinkCreated records a link creation event.
func (l *Log) LinkCreated(_ context.Context, event *LinkCreatedEvent) error {
	l.logger.Info("link created",
		zap.String("short_id", event.ShortID),
		zap.String("original_url", event.OriginalURL),
		zap.Time("created_at", event.CreatedAt),
		zap.String("client_ip", event.ClientIP),
		zap.String("user_agent", event.UserAgent),
		zap.String("referrer", event.Referrer),
	)

	return nil
}
