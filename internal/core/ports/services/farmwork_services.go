package services

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

// FarmWorkReaderSvc defines read operations for farm work postings.
type FarmWorkReaderSvc interface {
	// GetWork retrieves a single posting.
	GetWork(ctx context.Context, workID string) (*domain.FarmWork, error)

	// ListFarmerWorks retrieves every posting created by the farmer.
	ListFarmerWorks(ctx context.Context, farmerUsername string) ([]domain.FarmWork, error)

	// ListAvailableWorks retrieves active postings in the labourer's area that
	// still have open slots and that the labourer has not applied to.
	ListAvailableWorks(ctx context.Context, labourUsername string) ([]domain.FarmWork, error)

	// ListAppliedWorks retrieves postings the labourer has applied to.
	ListAppliedWorks(ctx context.Context, labourUsername string) ([]domain.FarmWork, error)

	// FarmerDashboard runs the expiry sweep and partitions the farmer's
	// postings into active and past with the total application count.
	FarmerDashboard(ctx context.Context, farmerUsername string) (*domain.FarmerDashboard, error)

	// LabourDashboard runs the expiry sweep and summarises the labourer's
	// applied and available postings.
	LabourDashboard(ctx context.Context, labourUsername string) (*domain.LabourDashboard, error)
}

// FarmWorkWriterSvc defines lifecycle mutations for farm work postings.
type FarmWorkWriterSvc interface {
	// PostWork validates and creates a new posting for the farmer. The crop
	// must be registered on the farmer's profile; location is stamped from it.
	PostWork(ctx context.Context, farmerUsername string, req dto.CreateFarmWorkRequest) (*domain.FarmWork, error)

	// Apply appends the labourer's application, subject to status, deadline,
	// duplicate and capacity rules. Capacity is enforced atomically.
	Apply(ctx context.Context, workID, labourUsername, name, fullName, mobile string) error

	// Withdraw removes the labourer's application before the cutoff.
	Withdraw(ctx context.Context, workID, labourUsername string) error

	// Cancel moves the farmer's active posting to cancelled before the cutoff
	// and notifies every applicant.
	Cancel(ctx context.Context, workID, farmerUsername string) error

	// Delete removes a terminal-state posting owned by the farmer.
	Delete(ctx context.Context, workID, farmerUsername string) error

	// SweepExpired completes every active posting whose work date has passed.
	// Idempotent; returns the number of postings transitioned.
	SweepExpired(ctx context.Context) (int64, error)
}

// FarmWorkSvcFacade combines all farm work service interfaces.
type FarmWorkSvcFacade interface {
	FarmWorkReaderSvc
	FarmWorkWriterSvc
}
