package services

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

// CropSvcFacade manages the crops registered on a farmer's profile.
type CropSvcFacade interface {
	// AddCrop registers a crop on the farmer's profile.
	AddCrop(ctx context.Context, username string, req dto.AddCropRequest) (*domain.UserCrop, error)

	// ListCrops retrieves all crops registered by the farmer.
	ListCrops(ctx context.Context, username string) ([]domain.UserCrop, error)

	// ListCropNames retrieves the distinct crop names registered by the farmer.
	ListCropNames(ctx context.Context, username string) ([]string, error)

	// DeleteCrop removes a crop record owned by the farmer.
	DeleteCrop(ctx context.Context, cropID, username string) error
}
