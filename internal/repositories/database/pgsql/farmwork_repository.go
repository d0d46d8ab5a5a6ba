package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFarmWorkRepository persists farm work postings. Applications are stored as
// a JSONB array on the posting row so that capacity and duplicate checks can be
// expressed as a single conditional UPDATE.
type PgxFarmWorkRepository struct {
	BaseRepository
}

func newPgxFarmWorkRepository(pool *pgxpool.Pool) portsrepo.FarmWorkRepositoryFacade {
	return &PgxFarmWorkRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FarmWorkRepositoryFacade = (*PgxFarmWorkRepository)(nil)

const farmWorkSelectColumns = `
	w.work_id, w.farmer_username, w.crop_name, w.work_type, w.labours_required,
	w.work_date, w.additional_details, w.area, w.state, w.status,
	w.labour_applications, w.created_at, w.cancelled_at
`

func scanFarmWork(row pgx.Row) (*domain.FarmWork, error) {
	var w domain.FarmWork
	err := row.Scan(
		&w.WorkID,
		&w.FarmerUsername,
		&w.CropName,
		&w.WorkType,
		&w.LaboursRequired,
		&w.WorkDate,
		&w.AdditionalDetails,
		&w.Area,
		&w.State,
		&w.Status,
		&w.LabourApplications,
		&w.CreatedAt,
		&w.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	if w.LabourApplications == nil {
		w.LabourApplications = []domain.LabourApplication{}
	}
	return &w, nil
}

func (r *PgxFarmWorkRepository) getWorks(ctx context.Context, filterQuery string, args ...any) ([]domain.FarmWork, error) {
	query := `SELECT ` + farmWorkSelectColumns + ` FROM farm_works w ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query farm works", err)
	}
	defer rows.Close()

	works := []domain.FarmWork{}
	for rows.Next() {
		w, err := scanFarmWork(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan farm work row", err)
		}
		works = append(works, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate farm work rows", err)
	}
	return works, nil
}

func (r *PgxFarmWorkRepository) SaveWork(ctx context.Context, work domain.FarmWork) error {
	apps, err := json.Marshal(work.LabourApplications)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal labour applications", err)
	}

	query := `
		INSERT INTO farm_works (
			work_id, farmer_username, crop_name, work_type, labours_required,
			work_date, additional_details, area, state, status,
			labour_applications, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = r.Pool.Exec(ctx, query,
		work.WorkID,
		work.FarmerUsername,
		work.CropName,
		work.WorkType,
		work.LaboursRequired,
		work.WorkDate,
		work.AdditionalDetails,
		work.Area,
		work.State,
		work.Status,
		apps,
		work.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("work ID " + work.WorkID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("farmer " + work.FarmerUsername + " does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save farm work "+work.WorkID, err)
	}
	return nil
}

func (r *PgxFarmWorkRepository) FindWorkByID(ctx context.Context, workID string) (*domain.FarmWork, error) {
	query := `SELECT ` + farmWorkSelectColumns + ` FROM farm_works w WHERE w.work_id = $1`
	w, err := scanFarmWork(r.Pool.QueryRow(ctx, query, workID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find farm work "+workID, err)
	}
	return w, nil
}

func (r *PgxFarmWorkRepository) ListWorksByFarmer(ctx context.Context, farmerUsername string) ([]domain.FarmWork, error) {
	return r.getWorks(ctx, `WHERE w.farmer_username = $1 ORDER BY w.created_at DESC`, farmerUsername)
}

func (r *PgxFarmWorkRepository) ListActiveWorksInArea(ctx context.Context, area, state string, notBefore time.Time) ([]domain.FarmWork, error) {
	filter := `
		WHERE w.area ILIKE '%' || $1 || '%'
		  AND w.state ILIKE '%' || $2 || '%'
		  AND w.status = 'active'
		  AND w.work_date >= $3
		ORDER BY w.created_at DESC`
	return r.getWorks(ctx, filter, area, state, notBefore)
}

func (r *PgxFarmWorkRepository) ListWorksByApplicant(ctx context.Context, labourUsername string) ([]domain.FarmWork, error) {
	filter := `
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements(w.labour_applications) AS app
			WHERE app->>'labourUsername' = $1
		)
		ORDER BY w.created_at DESC`
	return r.getWorks(ctx, filter, labourUsername)
}

// AppendApplication pushes the application in a single conditional UPDATE. The
// status, capacity and duplicate predicates are evaluated by the database at
// write time, so two labourers racing for the last slot cannot both succeed.
func (r *PgxFarmWorkRepository) AppendApplication(ctx context.Context, workID string, app domain.LabourApplication) error {
	payload, err := json.Marshal(app)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal labour application", err)
	}

	query := `
		UPDATE farm_works
		SET labour_applications = labour_applications || $2::jsonb
		WHERE work_id = $1
		  AND status = 'active'
		  AND jsonb_array_length(labour_applications) < labours_required
		  AND NOT EXISTS (
			SELECT 1 FROM jsonb_array_elements(labour_applications) AS existing
			WHERE existing->>'labourUsername' = $3
		  );
	`
	result, err := r.Pool.Exec(ctx, query, workID, payload, app.LabourUsername)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append application to work "+workID, err)
	}
	if result.RowsAffected() == 1 {
		return nil
	}
	return r.diagnoseApplyFailure(ctx, workID, app.LabourUsername)
}

// diagnoseApplyFailure re-reads the posting to report which precondition the
// conditional update failed on.
func (r *PgxFarmWorkRepository) diagnoseApplyFailure(ctx context.Context, workID, labourUsername string) error {
	work, err := r.FindWorkByID(ctx, workID)
	if err != nil {
		return err // includes ErrNotFound
	}
	if !work.IsActive() {
		return apperrors.ErrNotActive
	}
	if work.HasApplicant(labourUsername) {
		return apperrors.ErrDuplicate
	}
	if work.IsFull() {
		return apperrors.ErrCapacityFull
	}
	// The posting mutated between the update and this read. Treat as a lost
	// race for the last slot.
	return apperrors.ErrCapacityFull
}

func (r *PgxFarmWorkRepository) RemoveApplication(ctx context.Context, workID, labourUsername string) error {
	query := `
		UPDATE farm_works
		SET labour_applications = (
			SELECT COALESCE(jsonb_agg(app ORDER BY ord), '[]'::jsonb)
			FROM jsonb_array_elements(labour_applications) WITH ORDINALITY AS t(app, ord)
			WHERE app->>'labourUsername' <> $2
		)
		WHERE work_id = $1
		  AND status = 'active'
		  AND EXISTS (
			SELECT 1 FROM jsonb_array_elements(labour_applications) AS existing
			WHERE existing->>'labourUsername' = $2
		  );
	`
	result, err := r.Pool.Exec(ctx, query, workID, labourUsername)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove application from work "+workID, err)
	}
	if result.RowsAffected() == 1 {
		return nil
	}

	work, err := r.FindWorkByID(ctx, workID)
	if err != nil {
		return err
	}
	if !work.IsActive() {
		return apperrors.ErrNotActive
	}
	return apperrors.NewNotFoundError("no application by " + labourUsername + " on work " + workID)
}

func (r *PgxFarmWorkRepository) CancelWork(ctx context.Context, workID, farmerUsername string, cancelledAt time.Time) error {
	query := `
		UPDATE farm_works
		SET status = 'cancelled', cancelled_at = $3
		WHERE work_id = $1
		  AND farmer_username = $2
		  AND status = 'active';
	`
	result, err := r.Pool.Exec(ctx, query, workID, farmerUsername, cancelledAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to cancel farm work "+workID, err)
	}
	if result.RowsAffected() == 1 {
		return nil
	}

	work, err := r.FindWorkByID(ctx, workID)
	if err != nil {
		return err
	}
	if work.FarmerUsername != farmerUsername {
		return apperrors.ErrForbidden
	}
	return apperrors.ErrNotActive
}

func (r *PgxFarmWorkRepository) DeleteWork(ctx context.Context, workID, farmerUsername string) error {
	query := `
		DELETE FROM farm_works
		WHERE work_id = $1
		  AND farmer_username = $2
		  AND status <> 'active';
	`
	result, err := r.Pool.Exec(ctx, query, workID, farmerUsername)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete farm work "+workID, err)
	}
	if result.RowsAffected() == 1 {
		return nil
	}

	work, err := r.FindWorkByID(ctx, workID)
	if err != nil {
		return err
	}
	if work.FarmerUsername != farmerUsername {
		return apperrors.ErrForbidden
	}
	return apperrors.NewValidationFailedError("active works cannot be deleted; cancel first")
}

// CompleteExpiredWorks is the idempotent expiry sweep. Each row transition is
// an independent atomic update; re-running after success changes nothing.
func (r *PgxFarmWorkRepository) CompleteExpiredWorks(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE farm_works
		SET status = 'completed'
		WHERE status = 'active'
		  AND work_date < $1;
	`
	result, err := r.Pool.Exec(ctx, query, before)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to complete expired farm works", err)
	}
	return result.RowsAffected(), nil
}
