package pgsql

import (
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository onto a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		FarmWorkRepo:     newPgxFarmWorkRepository(pool),
		UserRepo:         newPgxUserRepository(pool),
		CropRepo:         newPgxCropRepository(pool),
		NotificationRepo: newPgxNotificationRepository(pool),
		MarketRepo:       newPgxMarketPriceRepository(pool),
		CommunityRepo:    newPgxCommunityRepository(pool),
	}
}
