package dto

import (
	"time"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// --- Crop DTOs ---

// AddCropRequest defines data for registering a crop on a farmer's profile.
type AddCropRequest struct {
	CropName    string  `json:"cropName" binding:"required"`
	SoilType    string  `json:"soilType" binding:"required"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	PH          float64 `json:"ph"`
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorous float64 `json:"phosphorous"`
	Potassium   float64 `json:"potassium"`
	Carbon      float64 `json:"carbon"`
}

// CropResponse defines data returned for a registered crop.
type CropResponse struct {
	CropID       string                         `json:"cropId"`
	Username     string                         `json:"username"`
	CropName     string                         `json:"cropName"`
	SoilType     string                         `json:"soilType"`
	Environment  domain.EnvironmentalParameters `json:"environmentalParameters"`
	Nutrients    domain.NutrientLevels          `json:"nutrientLevels"`
	AddedAt      time.Time                      `json:"addedAt"`
	LastModified time.Time                      `json:"lastModified"`
}

// ToCropResponse converts domain.UserCrop to DTO.
func ToCropResponse(c *domain.UserCrop) CropResponse {
	return CropResponse{
		CropID:       c.CropID,
		Username:     c.Username,
		CropName:     c.CropName,
		SoilType:     c.SoilType,
		Environment:  c.Environment,
		Nutrients:    c.Nutrients,
		AddedAt:      c.AddedAt,
		LastModified: c.LastModified,
	}
}

// ListCropsResponse wraps a list of crops.
type ListCropsResponse struct {
	Crops []CropResponse `json:"crops"`
}

// ToListCropsResponse converts a slice of domain.UserCrop to DTO.
func ToListCropsResponse(cs []domain.UserCrop) ListCropsResponse {
	list := make([]CropResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCropResponse(&c)
	}
	return ListCropsResponse{Crops: list}
}
