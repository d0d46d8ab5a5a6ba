package services

import (
	"time"

	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

// ContainerDeps carries the non-repository collaborators the services need.
type ContainerDeps struct {
	OTPStore        portssvc.OTPStore
	EmailSender     portssvc.EmailSender
	Forecasts       portssvc.ForecastProvider
	ForecastCache   portssvc.ForecastCache
	WeatherCacheTTL time.Duration
	SignupOTPTTL    time.Duration
}

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, deps ContainerDeps) *portssvc.ServiceContainer {
	notification := NewNotificationService(repos.NotificationRepo, repos.UserRepo, deps.EmailSender)
	return &portssvc.ServiceContainer{
		FarmWork:     NewFarmWorkService(repos.FarmWorkRepo, repos.UserRepo, repos.CropRepo, notification),
		User:         NewUserService(repos.UserRepo, deps.OTPStore, deps.EmailSender, deps.SignupOTPTTL),
		Crop:         NewCropService(repos.CropRepo),
		Notification: notification,
		Market:       NewMarketService(repos.MarketRepo),
		Weather:      NewWeatherService(deps.Forecasts, deps.ForecastCache, deps.WeatherCacheTTL),
		Community:    NewCommunityService(repos.CommunityRepo),
	}
}
