package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// ValidBookingStatus reports whether s names a known booking status.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusExpired:
		return true
	}
	return false
}

type Booking struct {
	Base
	OrderID        string        `db:"order_id"`
	UserID         uuid.UUID     `db:"user_id"`
	EventID        uuid.UUID     `db:"event_id"`
	SeatLabel      *string       `db:"seat_label"`
	Quantity       int           `db:"quantity"`
	TotalPrice     float64       `db:"total_price"`
	Status         BookingStatus `db:"status"`
	IdempotencyKey *string       `db:"idempotency_key"`
}

// CanCancel reports whether the booking may still be cancelled.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
