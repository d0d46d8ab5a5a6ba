package services

import (
	"context"
	"time"
)

// EmailSender abstracts outbound email. The SES adapter implements it in
// production; a log-only implementation is used when SES is not configured.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// OTPStore holds short-lived one-time codes keyed by username. Backed by Redis.
type OTPStore interface {
	PutOTP(ctx context.Context, username, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, username string) (string, error)
	DeleteOTP(ctx context.Context, username string) error
}

// ForecastProvider abstracts the external weather API.
type ForecastProvider interface {
	FetchForecast(ctx context.Context, query string, days int) ([]byte, error)
}

// ForecastCache holds serialized provider responses for a short TTL.
type ForecastCache interface {
	GetForecast(ctx context.Context, key string) ([]byte, bool, error)
	PutForecast(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
