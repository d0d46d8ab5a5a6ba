package repositories

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// MarketPriceReader defines read operations for market prices.
type MarketPriceReader interface {
	// ListPrices retrieves prices matching the filters, newest first, plus the
	// total row count before pagination.
	ListPrices(ctx context.Context, filters domain.MarketFilters) ([]domain.MarketPrice, int, error)

	// Metadata returns the distinct filter values and last sync time for the
	// current price set.
	Metadata(ctx context.Context) (*domain.MarketMetadata, error)
}

// MarketPriceWriter defines write operations for market prices.
type MarketPriceWriter interface {
	// UpsertPrices inserts or updates the given prices keyed on
	// (commodity, market, state, date). Idempotent for identical input.
	UpsertPrices(ctx context.Context, prices []domain.MarketPrice) (*domain.MarketSyncStats, error)
}

// MarketPriceRepositoryFacade combines all market price repository interfaces.
type MarketPriceRepositoryFacade interface {
	MarketPriceReader
	MarketPriceWriter
}
