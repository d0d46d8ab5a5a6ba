package services

import (
	"context"
	"log/slog"

	"github.com/FarmEase/farmease_backend/internal/middleware"
)

// BaseService provides common functionality for all services, primarily the
// request-scoped logger lookup.
type BaseService struct{}

// GetLogger retrieves the logger from the context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogInfo logs an informational message using the context's logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Info(msg, args...)
}

// LogWarn logs a warning message using the context's logger.
func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Warn(msg, args...)
}

// LogError logs an error message using the context's logger.
func (s *BaseService) LogError(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Error(msg, args...)
}

// LogDebug logs a debug message using the context's logger.
func (s *BaseService) LogDebug(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Debug(msg, args...)
}
