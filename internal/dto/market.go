package dto

import (
	"time"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Market Price DTOs ---

// MarketPriceResponse mirrors one commodity price quote.
type MarketPriceResponse struct {
	Commodity   string          `json:"commodity"`
	Market      string          `json:"market"`
	State       string          `json:"state"`
	District    string          `json:"district"`
	MinPrice    decimal.Decimal `json:"minPrice"`
	MaxPrice    decimal.Decimal `json:"maxPrice"`
	ModalPrice  decimal.Decimal `json:"modalPrice"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Source      string          `json:"source"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ListMarketPricesResponse wraps prices with listing metadata.
type ListMarketPricesResponse struct {
	Prices   []MarketPriceResponse  `json:"prices"`
	Metadata *domain.MarketMetadata `json:"metadata"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
}

// ToListMarketPricesResponse converts domain prices to DTO.
func ToListMarketPricesResponse(ps []domain.MarketPrice, meta *domain.MarketMetadata, page, limit int) ListMarketPricesResponse {
	list := make([]MarketPriceResponse, len(ps))
	for i, p := range ps {
		list[i] = MarketPriceResponse{
			Commodity:   p.Commodity,
			Market:      p.Market,
			State:       p.State,
			District:    p.District,
			MinPrice:    p.MinPrice,
			MaxPrice:    p.MaxPrice,
			ModalPrice:  p.ModalPrice,
			Unit:        p.Unit,
			Category:    p.Category,
			Date:        p.Date,
			Source:      p.Source,
			LastUpdated: p.LastUpdated,
		}
	}
	return ListMarketPricesResponse{Prices: list, Metadata: meta, Page: page, Limit: limit}
}

// MarketSyncResponse reports the outcome of a sync run.
type MarketSyncResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Stats   domain.MarketSyncStats `json:"stats"`
	Date    string                 `json:"date"`
}
