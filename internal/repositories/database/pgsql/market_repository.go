package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxMarketPriceRepository persists daily commodity price quotes, keyed on
// (commodity, market, state, date).
type PgxMarketPriceRepository struct {
	BaseRepository
}

func newPgxMarketPriceRepository(pool *pgxpool.Pool) portsrepo.MarketPriceRepositoryFacade {
	return &PgxMarketPriceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MarketPriceRepositoryFacade = (*PgxMarketPriceRepository)(nil)

const defaultPriceLimit = 50

func (r *PgxMarketPriceRepository) ListPrices(ctx context.Context, filters domain.MarketFilters) ([]domain.MarketPrice, int, error) {
	conditions := []string{}
	args := []any{}
	argPos := 1

	addFilter := func(column, value string) {
		if value == "" {
			return
		}
		conditions = append(conditions, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", column, argPos))
		args = append(args, value)
		argPos++
	}
	addFilter("commodity", filters.Commodity)
	addFilter("market", filters.Market)
	addFilter("state", filters.State)
	addFilter("category", filters.Category)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM market_prices` + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count market prices", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultPriceLimit
	}
	page := filters.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `
		SELECT commodity, market, state, district, min_price, max_price, modal_price,
		       unit, category, date, source, last_updated
		FROM market_prices` + where + fmt.Sprintf(`
		ORDER BY date DESC, commodity ASC
		LIMIT $%d OFFSET $%d;`, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query market prices", err)
	}
	defer rows.Close()

	prices := []domain.MarketPrice{}
	for rows.Next() {
		var p domain.MarketPrice
		err := rows.Scan(
			&p.Commodity,
			&p.Market,
			&p.State,
			&p.District,
			&p.MinPrice,
			&p.MaxPrice,
			&p.ModalPrice,
			&p.Unit,
			&p.Category,
			&p.Date,
			&p.Source,
			&p.LastUpdated,
		)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan market price row", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to iterate market price rows", err)
	}
	return prices, total, nil
}

func (r *PgxMarketPriceRepository) Metadata(ctx context.Context) (*domain.MarketMetadata, error) {
	meta := &domain.MarketMetadata{
		Commodities: []string{},
		States:      []string{},
		Markets:     []string{},
		Categories:  []string{},
	}

	distinct := func(column string, dest *[]string) error {
		query := fmt.Sprintf(`SELECT DISTINCT %s FROM market_prices ORDER BY %s;`, column, column)
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			*dest = append(*dest, v)
		}
		return rows.Err()
	}

	if err := distinct("commodity", &meta.Commodities); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load distinct commodities", err)
	}
	if err := distinct("state", &meta.States); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load distinct states", err)
	}
	if err := distinct("market", &meta.Markets); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load distinct markets", err)
	}
	if err := distinct("category", &meta.Categories); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load distinct categories", err)
	}

	query := `SELECT MAX(last_updated), COUNT(*) FROM market_prices;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&meta.LastSync, &meta.TotalCount); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load market metadata", err)
	}
	return meta, nil
}

func (r *PgxMarketPriceRepository) UpsertPrices(ctx context.Context, prices []domain.MarketPrice) (*domain.MarketSyncStats, error) {
	stats := &domain.MarketSyncStats{Total: len(prices)}
	if len(prices) == 0 {
		return stats, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO market_prices (
			commodity, market, state, district, min_price, max_price, modal_price,
			unit, category, date, source, last_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (commodity, market, state, date)
		DO UPDATE SET
			district = EXCLUDED.district,
			min_price = EXCLUDED.min_price,
			max_price = EXCLUDED.max_price,
			modal_price = EXCLUDED.modal_price,
			unit = EXCLUDED.unit,
			category = EXCLUDED.category,
			source = EXCLUDED.source,
			last_updated = EXCLUDED.last_updated
		WHERE market_prices.modal_price IS DISTINCT FROM EXCLUDED.modal_price
		   OR market_prices.min_price IS DISTINCT FROM EXCLUDED.min_price
		   OR market_prices.max_price IS DISTINCT FROM EXCLUDED.max_price
		RETURNING (xmax = 0) AS inserted;
	`
	for _, p := range prices {
		var inserted bool
		err := tx.QueryRow(ctx, query,
			p.Commodity, p.Market, p.State, p.District,
			p.MinPrice, p.MaxPrice, p.ModalPrice,
			p.Unit, p.Category, p.Date, p.Source, p.LastUpdated,
		).Scan(&inserted)
		if err != nil {
			// No row returned means the conflict target matched and the prices
			// were unchanged. That is the idempotent re-run case, not an error.
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			stats.Errors++
			continue
		}
		if inserted {
			stats.Upserted++
		} else {
			stats.Modified++
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return stats, nil
}
