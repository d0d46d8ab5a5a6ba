package pgsql

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxNotificationRepository persists per-user lifecycle notifications.
type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, user_id, role, event_type, work_id, crop_name,
		       work_name, message, related_user_id, timestamp, is_read
		FROM notifications
		WHERE user_id = $1
	`
	if unreadOnly {
		query += ` AND is_read = FALSE`
	}
	query += ` ORDER BY timestamp DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query notifications for "+userID, err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.NotificationID,
			&n.UserID,
			&n.Role,
			&n.EventType,
			&n.WorkID,
			&n.CropName,
			&n.WorkName,
			&n.Message,
			&n.RelatedUserID,
			&n.Timestamp,
			&n.IsRead,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan notification row", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate notification rows", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE;`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count unread notifications for "+userID, err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (
			notification_id, user_id, role, event_type, work_id, crop_name,
			work_name, message, related_user_id, timestamp, is_read
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		n.NotificationID,
		n.UserID,
		n.Role,
		n.EventType,
		n.WorkID,
		n.CropName,
		n.WorkName,
		n.Message,
		n.RelatedUserID,
		n.Timestamp,
		n.IsRead,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save notification for "+n.UserID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, userID string, notificationIDs []string) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND notification_id = ANY($2) AND is_read = FALSE;
	`
	result, err := r.Pool.Exec(ctx, query, userID, notificationIDs)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark notifications read for "+userID, err)
	}
	return result.RowsAffected(), nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE;`
	result, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark all notifications read for "+userID, err)
	}
	return result.RowsAffected(), nil
}
