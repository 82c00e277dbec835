package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ticket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingStore struct {
	s   *store
	log *zap.Logger
}

func (r *bookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if booking.IdempotencyKey != nil {
		for _, existing := range r.s.bookings {
			if existing.UserID == booking.UserID &&
				existing.IdempotencyKey != nil &&
				*existing.IdempotencyKey == *booking.IdempotencyKey {
				return fmt.Errorf("create booking %s: duplicate idempotency key", booking.OrderID)
			}
		}
	}

	clone := *booking
	r.s.bookings[booking.ID] = &clone
	return nil
}

func (r *bookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *booking
	return &clone, nil
}

func (r *bookingStore) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, booking := range r.s.bookings {
		if booking.OrderID == orderID {
			clone := *booking
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *bookingStore) FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, booking := range r.s.bookings {
		if booking.UserID == userID && booking.IdempotencyKey != nil && *booking.IdempotencyKey == key {
			clone := *booking
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *bookingStore) FindByUserID(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range r.s.bookings {
		if booking.UserID != userID {
			continue
		}
		if status != "" && string(booking.Status) != status {
			continue
		}
		clone := *booking
		bookings = append(bookings, &clone)
	}
	sortBookingsNewestFirst(bookings)

	return paginate(bookings, limit, offset), nil
}

func (r *bookingStore) CountByUserID(ctx context.Context, userID uuid.UUID, status string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, booking := range r.s.bookings {
		if booking.UserID != userID {
			continue
		}
		if status != "" && string(booking.Status) != status {
			continue
		}
		count++
	}
	return count, nil
}

func (r *bookingStore) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range r.s.bookings {
		if status != "" && string(booking.Status) != status {
			continue
		}
		clone := *booking
		bookings = append(bookings, &clone)
	}
	sortBookingsNewestFirst(bookings)

	return paginate(bookings, limit, offset), nil
}

func (r *bookingStore) Count(ctx context.Context, status string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, booking := range r.s.bookings {
		if status != "" && string(booking.Status) != status {
			continue
		}
		count++
	}
	return count, nil
}

func (r *bookingStore) Update(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[booking.ID]; !ok {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}
	clone := *booking
	r.s.bookings[booking.ID] = &clone
	return nil
}

func (r *bookingStore) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking, ok := r.s.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *bookingStore) CountActiveByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var total int64
	for _, booking := range r.s.bookings {
		if booking.EventID != eventID {
			continue
		}
		if booking.Status == entity.BookingStatusPending || booking.Status == entity.BookingStatusConfirmed {
			total += int64(booking.Quantity)
		}
	}
	return total, nil
}

func (r *bookingStore) SeatTaken(ctx context.Context, eventID uuid.UUID, seatLabel string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, booking := range r.s.bookings {
		if booking.EventID != eventID || booking.SeatLabel == nil {
			continue
		}
		if *booking.SeatLabel != seatLabel {
			continue
		}
		if booking.Status == entity.BookingStatusPending || booking.Status == entity.BookingStatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

func (r *bookingStore) CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, booking := range r.s.bookings {
		if booking.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func sortBookingsNewestFirst(bookings []*entity.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
