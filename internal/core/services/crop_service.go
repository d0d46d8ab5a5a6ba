package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

// cropService manages the crops registered on farmer profiles.
type cropService struct {
	BaseService
	repo portsrepo.CropRepositoryFacade
}

// NewCropService creates a new crop service.
func NewCropService(repo portsrepo.CropRepositoryFacade) portssvc.CropSvcFacade {
	return &cropService{repo: repo}
}

var _ portssvc.CropSvcFacade = (*cropService)(nil)

func (s *cropService) AddCrop(ctx context.Context, username string, req dto.AddCropRequest) (*domain.UserCrop, error) {
	now := time.Now()
	crop := domain.UserCrop{
		CropID:   uuid.NewString(),
		Username: username,
		CropName: req.CropName,
		SoilType: req.SoilType,
		Environment: domain.EnvironmentalParameters{
			Temperature: req.Temperature,
			Humidity:    req.Humidity,
			Rainfall:    req.Rainfall,
			PH:          req.PH,
		},
		Nutrients: domain.NutrientLevels{
			Nitrogen:    req.Nitrogen,
			Phosphorous: req.Phosphorous,
			Potassium:   req.Potassium,
			Carbon:      req.Carbon,
		},
		AddedAt:      now,
		LastModified: now,
	}
	if err := s.repo.SaveCrop(ctx, crop); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "crop registered", "username", username, "crop", req.CropName)
	return &crop, nil
}

func (s *cropService) ListCrops(ctx context.Context, username string) ([]domain.UserCrop, error) {
	return s.repo.ListCropsByUsername(ctx, username)
}

func (s *cropService) ListCropNames(ctx context.Context, username string) ([]string, error) {
	return s.repo.ListCropNames(ctx, username)
}

func (s *cropService) DeleteCrop(ctx context.Context, cropID, username string) error {
	if err := s.repo.DeleteCrop(ctx, cropID, username); err != nil {
		return err
	}
	s.LogInfo(ctx, "crop deleted", "username", username, "crop_id", cropID)
	return nil
}
