package domain

import "time"

// EnvironmentalParameters captures the growing conditions recorded for a crop.
type EnvironmentalParameters struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	PH          float64 `json:"ph"`
}

// NutrientLevels captures the soil nutrient profile recorded for a crop.
type NutrientLevels struct {
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorous float64 `json:"phosphorous"`
	Potassium   float64 `json:"potassium"`
	Carbon      float64 `json:"carbon"`
}

// UserCrop is a crop registered on a farmer's profile. A farmer must have at
// least one registered crop before posting farm work, and the posting's crop
// name must match one of them.
type UserCrop struct {
	CropID       string                  `json:"cropId"`
	Username     string                  `json:"username"`
	CropName     string                  `json:"cropName"`
	SoilType     string                  `json:"soilType"`
	Environment  EnvironmentalParameters `json:"environmentalParameters"`
	Nutrients    NutrientLevels          `json:"nutrientLevels"`
	AddedAt      time.Time               `json:"addedAt"`
	LastModified time.Time               `json:"lastModified"`
}
