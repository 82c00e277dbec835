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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID, status string) (int64, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, status string) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Business queries
	CountActiveByEventID(ctx context.Context, eventID uuid.UUID) (int64, error)
	SeatTaken(ctx context.Context, eventID uuid.UUID, seatLabel string) (bool, error)
	CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, order_id, user_id, event_id, seat_label, quantity, total_price, status, idempotency_key, created_at, updated_at`

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.UserID,
		&booking.EventID,
		&booking.SeatLabel,
		&booking.Quantity,
		&booking.TotalPrice,
		&booking.Status,
		&booking.IdempotencyKey,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, order_id, user_id, event_id, seat_label, quantity, total_price, status, idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.UserID,
		booking.EventID,
		booking.SeatLabel,
		booking.Quantity,
		booking.TotalPrice,
		booking.Status,
		booking.IdempotencyKey,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, orderID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 AND idempotency_key = $2`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, userID, key))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by idempotency key",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find booking by idempotency key: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND ($2 = '' OR status = $2)`

	var count int64
	err := r.db.QueryRow(ctx, query, userID, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) Count(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR status = $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET seat_label = $2, quantity = $3, total_price = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.SeatLabel,
		booking.Quantity,
		booking.TotalPrice,
		booking.Status,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

// CountActiveByEventID counts seats held by pending and confirmed bookings.
func (r *bookingRepository) CountActiveByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM bookings
		WHERE event_id = $1
		  AND status IN ('pending', 'confirmed')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, eventID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings for event",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return 0, fmt.Errorf("count active bookings for event %s: %w", eventID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) SeatTaken(ctx context.Context, eventID uuid.UUID, seatLabel string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE event_id = $1
			  AND seat_label = $2
			  AND status IN ('pending', 'confirmed')
		)
	`

	var taken bool
	err := r.db.QueryRow(ctx, query, eventID, seatLabel).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to check seat availability",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
			zap.String("seat_label", seatLabel),
		)
		return false, fmt.Errorf("check seat %s for event %s: %w", seatLabel, eventID.String(), err)
	}

	return taken, nil
}

func (r *bookingRepository) CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE event_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, eventID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings for event",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return 0, fmt.Errorf("count bookings for event %s: %w", eventID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
