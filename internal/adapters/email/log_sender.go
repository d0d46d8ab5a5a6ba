package email

import (
	"context"
	"log/slog"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

// LogSender logs outbound email instead of sending it. Used in development and
// whenever SES is not configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a log-only email sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

var _ portssvc.EmailSender = (*LogSender)(nil)

func (s *LogSender) SendEmail(_ context.Context, to, subject, body string) error {
	s.logger.Info("outbound email suppressed",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(body)),
	)
	return nil
}
