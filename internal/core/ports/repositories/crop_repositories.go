package repositories

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// CropReader defines read operations for farmer crop records.
type CropReader interface {
	// ListCropsByUsername retrieves all crops registered by the farmer.
	ListCropsByUsername(ctx context.Context, username string) ([]domain.UserCrop, error)

	// ListCropNames retrieves the distinct crop names registered by the farmer.
	ListCropNames(ctx context.Context, username string) ([]string, error)
}

// CropWriter defines write operations for farmer crop records.
type CropWriter interface {
	// SaveCrop persists a new crop record.
	SaveCrop(ctx context.Context, crop domain.UserCrop) error

	// DeleteCrop removes a crop record owned by the farmer.
	DeleteCrop(ctx context.Context, cropID, username string) error
}

// CropRepositoryFacade combines all crop repository interfaces.
type CropRepositoryFacade interface {
	CropReader
	CropWriter
}
