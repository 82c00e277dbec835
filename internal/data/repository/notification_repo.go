package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	CountByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNotificationRepository(db database.PgxIface, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

const notificationColumns = `id, user_id, notification_type, message, read_at, created_at`

func (r *notificationRepository) scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Message,
		&n.ReadAt,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, notification_type, message, read_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.UserID,
		notification.Type,
		notification.Message,
		notification.ReadAt,
		notification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.String("user_id", notification.UserID.String()),
			zap.String("type", string(notification.Type)),
		)
		return fmt.Errorf("create notification for user %s: %w", notification.UserID.String(), err)
	}

	return nil
}

func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	notification, err := r.scanNotification(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find notification by ID",
			zap.Error(err),
			zap.String("notification_id", id.String()),
		)
		return nil, fmt.Errorf("find notification by ID %s: %w", id.String(), err)
	}

	return notification, nil
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		  AND ($2 = false OR read_at IS NULL)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, userID, unreadOnly, limit, offset)
	if err != nil {
		r.log.Error("Failed to find notifications by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find notifications for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		notification, err := r.scanNotification(rows)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func (r *notificationRepository) CountByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1
		  AND ($2 = false OR read_at IS NULL)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, userID, unreadOnly).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count notifications by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count notifications for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET read_at = NOW()
		WHERE id = $1
		  AND read_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", id.String()),
		)
		return fmt.Errorf("mark notification %s read: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification %s not found or already read", id.String())
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET read_at = NOW()
		WHERE user_id = $1
		  AND read_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to mark all notifications read",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("mark all notifications read for user %s: %w", userID.String(), err)
	}

	return result.RowsAffected(), nil
}
