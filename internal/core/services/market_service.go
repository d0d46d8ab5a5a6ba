package services

import (
	"context"
	"hash/fnv"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

const priceSource = "FarmEase Daily Sync"

// maxDriftPercent bounds the date-seeded price drift around the baseline.
const maxDriftPercent = 4.0

// marketService generates and serves the daily commodity price set. Prices for
// a given day are a pure function of (commodity, market, date), so re-running
// the sync for the same day writes identical rows.
type marketService struct {
	BaseService
	repo portsrepo.MarketPriceRepositoryFacade
	now  func() time.Time
}

// NewMarketService creates a new market price service.
func NewMarketService(repo portsrepo.MarketPriceRepositoryFacade) portssvc.MarketSvcFacade {
	return &marketService{repo: repo, now: time.Now}
}

var _ portssvc.MarketSvcFacade = (*marketService)(nil)

func (s *marketService) SyncDaily(ctx context.Context, date string) (*domain.MarketSyncStats, error) {
	if date == "" {
		date = s.now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperrors.NewValidationFailedError("date must be YYYY-MM-DD")
	}

	prices := GenerateDailyPrices(date, s.now())
	stats, err := s.repo.UpsertPrices(ctx, prices)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "market price sync completed",
		"date", date, "total", stats.Total, "upserted", stats.Upserted, "modified", stats.Modified)
	return stats, nil
}

func (s *marketService) ListPrices(ctx context.Context, filters domain.MarketFilters) ([]domain.MarketPrice, *domain.MarketMetadata, error) {
	prices, total, err := s.repo.ListPrices(ctx, filters)
	if err != nil {
		return nil, nil, err
	}
	meta, err := s.repo.Metadata(ctx)
	if err != nil {
		return nil, nil, err
	}
	meta.TotalCount = total
	return prices, meta, nil
}

// GenerateDailyPrices builds the full quote set for one day from the reference
// tables. lastUpdated stamps the rows; it does not influence the prices.
func GenerateDailyPrices(date string, lastUpdated time.Time) []domain.MarketPrice {
	prices := make([]domain.MarketPrice, 0, len(referenceCommodities)*len(referenceMarkets))
	for _, c := range referenceCommodities {
		for _, m := range referenceMarkets {
			modal := driftedPrice(c.BasePrice, c.Name+"|"+m.Name+"|"+date)
			spread := modal.Mul(decimal.NewFromFloat(0.06)).Round(2)
			prices = append(prices, domain.MarketPrice{
				Commodity:   c.Name,
				Market:      m.Name,
				State:       m.State,
				District:    m.District,
				MinPrice:    modal.Sub(spread),
				MaxPrice:    modal.Add(spread),
				ModalPrice:  modal,
				Unit:        c.Unit,
				Category:    c.Category,
				Date:        date,
				Source:      priceSource,
				LastUpdated: lastUpdated,
			})
		}
	}
	return prices
}

// driftedPrice applies a deterministic drift of at most maxDriftPercent to the
// baseline, seeded by the given key.
func driftedPrice(base decimal.Decimal, seed string) decimal.Decimal {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	// abs(sin) spreads the hash over [0, 1]; recentre to [-1, 1].
	unit := math.Abs(math.Sin(float64(h.Sum64())))*2 - 1
	factor := 1 + unit*maxDriftPercent/100
	return base.Mul(decimal.NewFromFloat(factor)).Round(2)
}
