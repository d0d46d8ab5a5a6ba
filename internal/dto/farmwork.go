package dto

import (
	"time"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// --- Farm Work DTOs ---

// CreateFarmWorkRequest defines data for posting new farm work. WorkDate is a
// calendar date (YYYY-MM-DD) and must be tomorrow or later.
type CreateFarmWorkRequest struct {
	CropName          string `json:"cropName" binding:"required"`
	WorkType          string `json:"workType" binding:"required,oneof=planting harvesting weeding irrigation fertilizing pest-control land-preparation other"`
	LaboursRequired   int    `json:"laboursRequired" binding:"required,min=1,max=50"`
	WorkDate          string `json:"workDate" binding:"required,datetime=2006-01-02"`
	AdditionalDetails string `json:"additionalDetails"`
}

// ApplyToWorkRequest defines the labourer's contact details captured at
// application time.
type ApplyToWorkRequest struct {
	Name     string `json:"name" binding:"required"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile" binding:"required,mobile_in"`
}

// LabourApplicationResponse mirrors the embedded application entry.
type LabourApplicationResponse struct {
	LabourUsername string    `json:"labourUsername"`
	Name           string    `json:"name"`
	FullName       string    `json:"fullName"`
	Mobile         string    `json:"mobile"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// FarmWorkResponse defines data returned for a posting. Field names match the
// historical client wire format.
type FarmWorkResponse struct {
	WorkID             string                      `json:"workId"`
	FarmerUsername     string                      `json:"farmerUsername"`
	CropName           string                      `json:"cropName"`
	WorkType           string                      `json:"workType"`
	LaboursRequired    int                         `json:"laboursRequired"`
	WorkDate           string                      `json:"workDate"`
	AdditionalDetails  string                      `json:"additionalDetails"`
	Area               string                      `json:"area"`
	State              string                      `json:"state"`
	Status             string                      `json:"status"`
	LabourApplications []LabourApplicationResponse `json:"labourApplications"`
	CreatedAt          time.Time                   `json:"createdAt"`
	CancelledAt        *time.Time                  `json:"cancelledAt,omitempty"`
}

// ToFarmWorkResponse converts domain.FarmWork to DTO.
func ToFarmWorkResponse(w *domain.FarmWork) FarmWorkResponse {
	apps := make([]LabourApplicationResponse, len(w.LabourApplications))
	for i, a := range w.LabourApplications {
		apps[i] = LabourApplicationResponse{
			LabourUsername: a.LabourUsername,
			Name:           a.Name,
			FullName:       a.FullName,
			Mobile:         a.Mobile,
			AppliedAt:      a.AppliedAt,
		}
	}
	return FarmWorkResponse{
		WorkID:             w.WorkID,
		FarmerUsername:     w.FarmerUsername,
		CropName:           w.CropName,
		WorkType:           string(w.WorkType),
		LaboursRequired:    w.LaboursRequired,
		WorkDate:           w.WorkDate.Format("2006-01-02"),
		AdditionalDetails:  w.AdditionalDetails,
		Area:               w.Area,
		State:              w.State,
		Status:             string(w.Status),
		LabourApplications: apps,
		CreatedAt:          w.CreatedAt,
		CancelledAt:        w.CancelledAt,
	}
}

// ListFarmWorksResponse wraps a list of postings.
type ListFarmWorksResponse struct {
	Works []FarmWorkResponse `json:"works"`
}

// ToListFarmWorksResponse converts a slice of domain.FarmWork to DTO.
func ToListFarmWorksResponse(ws []domain.FarmWork) ListFarmWorksResponse {
	list := make([]FarmWorkResponse, len(ws))
	for i, w := range ws {
		list[i] = ToFarmWorkResponse(&w)
	}
	return ListFarmWorksResponse{Works: list}
}

// SweepResponse reports how many postings the expiry sweep transitioned.
type SweepResponse struct {
	Success      bool  `json:"success"`
	UpdatedCount int64 `json:"updatedCount"`
}

// FarmerDashboardResponse partitions the farmer's postings.
type FarmerDashboardResponse struct {
	ActiveWorks       []FarmWorkResponse `json:"activeWorks"`
	PastWorks         []FarmWorkResponse `json:"pastWorks"`
	TotalApplications int                `json:"totalApplications"`
}

// ToFarmerDashboardResponse converts domain.FarmerDashboard to DTO.
func ToFarmerDashboardResponse(d *domain.FarmerDashboard) FarmerDashboardResponse {
	return FarmerDashboardResponse{
		ActiveWorks:       ToListFarmWorksResponse(d.ActiveWorks).Works,
		PastWorks:         ToListFarmWorksResponse(d.PastWorks).Works,
		TotalApplications: d.TotalApplications,
	}
}

// LabourDashboardResponse summarises the labourer's applied and available works.
type LabourDashboardResponse struct {
	AppliedActive []FarmWorkResponse `json:"appliedActive"`
	AppliedPast   []FarmWorkResponse `json:"appliedPast"`
	AvailableJobs int                `json:"availableJobs"`
}

// ToLabourDashboardResponse converts domain.LabourDashboard to DTO.
func ToLabourDashboardResponse(d *domain.LabourDashboard) LabourDashboardResponse {
	return LabourDashboardResponse{
		AppliedActive: ToListFarmWorksResponse(d.AppliedActive).Works,
		AppliedPast:   ToListFarmWorksResponse(d.AppliedPast).Works,
		AvailableJobs: d.AvailableJobs,
	}
}
