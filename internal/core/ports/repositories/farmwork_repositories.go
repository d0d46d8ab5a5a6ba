package repositories

import (
	"context"
	"time"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// FarmWorkReader defines read operations for farm work postings.
type FarmWorkReader interface {
	// FindWorkByID retrieves a single posting by its ID.
	FindWorkByID(ctx context.Context, workID string) (*domain.FarmWork, error)

	// ListWorksByFarmer retrieves every posting created by the farmer, newest first.
	ListWorksByFarmer(ctx context.Context, farmerUsername string) ([]domain.FarmWork, error)

	// ListActiveWorksInArea retrieves active postings matching area and state
	// (case-insensitive) whose work date is not before the given day.
	ListActiveWorksInArea(ctx context.Context, area, state string, notBefore time.Time) ([]domain.FarmWork, error)

	// ListWorksByApplicant retrieves every posting containing an application by
	// the labourer, newest first.
	ListWorksByApplicant(ctx context.Context, labourUsername string) ([]domain.FarmWork, error)
}

// FarmWorkWriter defines write operations for farm work postings.
//
// AppendApplication and RemoveApplication are atomic conditional updates: the
// precondition (status, capacity, membership) is re-evaluated inside the UPDATE
// so that concurrent requests cannot overbook a posting or double-remove an
// application. Implementations report which precondition failed via apperrors
// sentinels (ErrNotFound, ErrNotActive, ErrDuplicate, ErrCapacityFull).
type FarmWorkWriter interface {
	// SaveWork persists a new posting.
	SaveWork(ctx context.Context, work domain.FarmWork) error

	// AppendApplication pushes an application onto the posting's list if and
	// only if the posting is active, not full, and the labourer has not applied.
	AppendApplication(ctx context.Context, workID string, app domain.LabourApplication) error

	// RemoveApplication removes the labourer's application if the posting is
	// active and such an application exists.
	RemoveApplication(ctx context.Context, workID, labourUsername string) error

	// CancelWork moves an active posting owned by the farmer to cancelled.
	CancelWork(ctx context.Context, workID, farmerUsername string, cancelledAt time.Time) error

	// DeleteWork removes a terminal-state posting owned by the farmer.
	DeleteWork(ctx context.Context, workID, farmerUsername string) error

	// CompleteExpiredWorks transitions every active posting with a work date
	// before the given day to completed and returns how many rows changed.
	// Safe to invoke repeatedly.
	CompleteExpiredWorks(ctx context.Context, before time.Time) (int64, error)
}

// FarmWorkRepositoryFacade combines all farm work repository interfaces.
type FarmWorkRepositoryFacade interface {
	FarmWorkReader
	FarmWorkWriter
}
