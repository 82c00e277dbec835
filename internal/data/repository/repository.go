package repository

import (
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

// Repository groups every store behind its interface so the postgres and
// in-memory implementations are interchangeable.
type Repository struct {
	User          UserRepository
	Session       SessionRepository
	OTP           OTPRepository
	Event         EventRepository
	Booking       BookingRepository
	PaymentMethod PaymentMethodRepository
	Payment       PaymentRepository
	Notification  NotificationRepository
	AdminAction   AdminActionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		OTP:           NewOTPRepository(db, log),
		Event:         NewEventRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		PaymentMethod: NewPaymentMethodRepository(db, log),
		Payment:       NewPaymentRepository(db, log),
		Notification:  NewNotificationRepository(db, log),
		AdminAction:   NewAdminActionRepository(db, log),
	}
}
