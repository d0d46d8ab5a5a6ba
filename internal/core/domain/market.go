package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketPrice is one commodity's price quote for a given market and date.
// Prices are in rupees per unit; MinPrice <= ModalPrice <= MaxPrice.
type MarketPrice struct {
	Commodity   string          `json:"commodity"`
	Market      string          `json:"market"`
	State       string          `json:"state"`
	District    string          `json:"district"`
	MinPrice    decimal.Decimal `json:"minPrice"`
	MaxPrice    decimal.Decimal `json:"maxPrice"`
	ModalPrice  decimal.Decimal `json:"modalPrice"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Source      string          `json:"source"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// MarketSyncStats summarises one sync run.
type MarketSyncStats struct {
	Total    int `json:"total"`
	Upserted int `json:"upserted"`
	Modified int `json:"modified"`
	Errors   int `json:"errors"`
}

// MarketFilters narrows a price listing. String filters match case-insensitively.
type MarketFilters struct {
	Commodity string
	Market    string
	State     string
	Category  string
	Limit     int
	Page      int
}

// MarketMetadata carries the distinct filter values alongside a price listing.
type MarketMetadata struct {
	Commodities []string   `json:"commodities"`
	States      []string   `json:"states"`
	Markets     []string   `json:"markets"`
	Categories  []string   `json:"categories"`
	LastSync    *time.Time `json:"lastSync"`
	TotalCount  int        `json:"totalCount"`
}
