package services

// ServiceContainer holds instances of all the application services. This is the
// main entry point for accessing service functionality from the handlers.
type ServiceContainer struct {
	FarmWork     FarmWorkSvcFacade
	User         UserSvcFacade
	Crop         CropSvcFacade
	Notification NotificationSvcFacade
	Market       MarketSvcFacade
	Weather      WeatherSvcFacade
	Community    CommunitySvcFacade
}
