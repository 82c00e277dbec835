package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

type AdminActionRepository interface {
	Create(ctx context.Context, action *entity.AdminAction) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.AdminAction, error)
	Count(ctx context.Context) (int64, error)
}

type adminActionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminActionRepository(db database.PgxIface, log *zap.Logger) AdminActionRepository {
	return &adminActionRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin_action")),
	}
}

func (r *adminActionRepository) Create(ctx context.Context, action *entity.AdminAction) error {
	query := `
		INSERT INTO admin_actions (id, admin_id, action, target_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		action.ID,
		action.AdminID,
		action.Action,
		action.TargetID,
		action.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to record admin action",
			zap.Error(err),
			zap.String("admin_id", action.AdminID.String()),
			zap.String("action", action.Action),
		)
		return fmt.Errorf("record admin action %s: %w", action.Action, err)
	}

	return nil
}

func (r *adminActionRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.AdminAction, error) {
	query := `
		SELECT id, admin_id, action, target_id, created_at
		FROM admin_actions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find admin actions", zap.Error(err))
		return nil, fmt.Errorf("find admin actions: %w", err)
	}
	defer rows.Close()

	var actions []*entity.AdminAction
	for rows.Next() {
		var action entity.AdminAction
		err := rows.Scan(
			&action.ID,
			&action.AdminID,
			&action.Action,
			&action.TargetID,
			&action.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan admin action row", zap.Error(err))
			return nil, fmt.Errorf("scan admin action row: %w", err)
		}
		actions = append(actions, &action)
	}

	return actions, nil
}

func (r *adminActionRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM admin_actions`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count admin actions", zap.Error(err))
		return 0, fmt.Errorf("count admin actions: %w", err)
	}

	return count, nil
}
