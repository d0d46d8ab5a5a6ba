package services

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// MarketSvcFacade manages the market price data set.
type MarketSvcFacade interface {
	// SyncDaily generates the deterministic price set for the given day
	// (YYYY-MM-DD, empty means today) and upserts it. Idempotent per day.
	SyncDaily(ctx context.Context, date string) (*domain.MarketSyncStats, error)

	// ListPrices retrieves prices matching the filters together with listing
	// metadata (distinct filter values, total count, last sync time).
	ListPrices(ctx context.Context, filters domain.MarketFilters) ([]domain.MarketPrice, *domain.MarketMetadata, error)
}
