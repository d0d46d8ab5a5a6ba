package pgsql

import (
	"context"
	"errors"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCropRepository persists the crops registered on farmer profiles.
type PgxCropRepository struct {
	BaseRepository
}

func newPgxCropRepository(pool *pgxpool.Pool) portsrepo.CropRepositoryFacade {
	return &PgxCropRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CropRepositoryFacade = (*PgxCropRepository)(nil)

func (r *PgxCropRepository) ListCropsByUsername(ctx context.Context, username string) ([]domain.UserCrop, error) {
	query := `
		SELECT crop_id, username, crop_name, soil_type,
		       temperature, humidity, rainfall, ph,
		       nitrogen, phosphorous, potassium, carbon,
		       added_at, last_modified
		FROM user_crops
		WHERE username = $1
		ORDER BY added_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, username)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query crops for "+username, err)
	}
	defer rows.Close()

	crops := []domain.UserCrop{}
	for rows.Next() {
		var c domain.UserCrop
		err := rows.Scan(
			&c.CropID,
			&c.Username,
			&c.CropName,
			&c.SoilType,
			&c.Environment.Temperature,
			&c.Environment.Humidity,
			&c.Environment.Rainfall,
			&c.Environment.PH,
			&c.Nutrients.Nitrogen,
			&c.Nutrients.Phosphorous,
			&c.Nutrients.Potassium,
			&c.Nutrients.Carbon,
			&c.AddedAt,
			&c.LastModified,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan crop row", err)
		}
		crops = append(crops, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate crop rows", err)
	}
	return crops, nil
}

func (r *PgxCropRepository) ListCropNames(ctx context.Context, username string) ([]string, error) {
	query := `SELECT DISTINCT crop_name FROM user_crops WHERE username = $1 ORDER BY crop_name;`
	rows, err := r.Pool.Query(ctx, query, username)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query crop names for "+username, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan crop name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate crop names", err)
	}
	return names, nil
}

func (r *PgxCropRepository) SaveCrop(ctx context.Context, crop domain.UserCrop) error {
	query := `
		INSERT INTO user_crops (
			crop_id, username, crop_name, soil_type,
			temperature, humidity, rainfall, ph,
			nitrogen, phosphorous, potassium, carbon,
			added_at, last_modified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		crop.CropID,
		crop.Username,
		crop.CropName,
		crop.SoilType,
		crop.Environment.Temperature,
		crop.Environment.Humidity,
		crop.Environment.Rainfall,
		crop.Environment.PH,
		crop.Nutrients.Nitrogen,
		crop.Nutrients.Phosphorous,
		crop.Nutrients.Potassium,
		crop.Nutrients.Carbon,
		crop.AddedAt,
		crop.LastModified,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("crop " + crop.CropName + " is already registered")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("farmer " + crop.Username + " does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save crop "+crop.CropName, err)
	}
	return nil
}

func (r *PgxCropRepository) DeleteCrop(ctx context.Context, cropID, username string) error {
	query := `DELETE FROM user_crops WHERE crop_id = $1 AND username = $2;`
	result, err := r.Pool.Exec(ctx, query, cropID, username)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete crop "+cropID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
