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

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Event, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, title, venue, description, starts_at, price, currency, capacity, created_at, updated_at`

func (r *eventRepository) scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Venue,
		&event.Description,
		&event.StartsAt,
		&event.Price,
		&event.Currency,
		&event.Capacity,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, venue, description, starts_at, price, currency, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Venue,
		event.Description,
		event.StartsAt,
		event.Price,
		event.Currency,
		event.Capacity,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("title", event.Title),
		)
		return fmt.Errorf("create event %s: %w", event.Title, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := r.scanEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY starts_at ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find events",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM events`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count events", zap.Error(err))
		return 0, fmt.Errorf("count events: %w", err)
	}

	return count, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, venue = $3, description = $4, starts_at = $5,
		    price = $6, currency = $7, capacity = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Venue,
		event.Description,
		event.StartsAt,
		event.Price,
		event.Currency,
		event.Capacity,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return fmt.Errorf("update event %s: %w", event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", event.ID.String())
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", id.String())
	}

	r.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}
