package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "booking_created"
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationPaymentCompleted NotificationType = "payment_completed"
)

type Notification struct {
	BaseSimple
	UserID  uuid.UUID        `db:"user_id"`
	Type    NotificationType `db:"notification_type"`
	Message string           `db:"message"`
	ReadAt  *time.Time       `db:"read_at"`
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
