package repositories

// RepositoryProvider bundles every repository implementation for injection into
// the service container.
type RepositoryProvider struct {
	FarmWorkRepo     FarmWorkRepositoryFacade
	UserRepo         UserRepositoryFacade
	CropRepo         CropRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	MarketRepo       MarketPriceRepositoryFacade
	CommunityRepo    CommunityRepositoryFacade
}
