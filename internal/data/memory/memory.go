// Package memory implements the repository interfaces on mutex-guarded
// maps. It backs the scaffold when DATABASE_URL is not configured and the
// service-level tests. Nothing survives a restart.
package memory

import (
	"sync"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type store struct {
	mu sync.RWMutex

	users          map[uuid.UUID]*entity.User
	sessions       map[uuid.UUID]*entity.Session
	otps           map[uuid.UUID]*entity.OTP
	events         map[uuid.UUID]*entity.Event
	bookings       map[uuid.UUID]*entity.Booking
	paymentMethods map[uuid.UUID]*entity.PaymentMethod
	payments       map[uuid.UUID]*entity.Payment
	notifications  map[uuid.UUID]*entity.Notification
	adminActions   map[uuid.UUID]*entity.AdminAction
}

// NewRepository builds a Repository where every store shares one in-memory
// dataset, so cross-repo invariants (bookings per event, payments per
// booking) behave like the relational store.
func NewRepository(log *zap.Logger) *repository.Repository {
	s := &store{
		users:          make(map[uuid.UUID]*entity.User),
		sessions:       make(map[uuid.UUID]*entity.Session),
		otps:           make(map[uuid.UUID]*entity.OTP),
		events:         make(map[uuid.UUID]*entity.Event),
		bookings:       make(map[uuid.UUID]*entity.Booking),
		paymentMethods: make(map[uuid.UUID]*entity.PaymentMethod),
		payments:       make(map[uuid.UUID]*entity.Payment),
		notifications:  make(map[uuid.UUID]*entity.Notification),
		adminActions:   make(map[uuid.UUID]*entity.AdminAction),
	}

	return &repository.Repository{
		User:          &userStore{s: s, log: log.With(zap.String("repository", "user"))},
		Session:       &sessionStore{s: s, log: log.With(zap.String("repository", "session"))},
		OTP:           &otpStore{s: s, log: log.With(zap.String("repository", "otp"))},
		Event:         &eventStore{s: s, log: log.With(zap.String("repository", "event"))},
		Booking:       &bookingStore{s: s, log: log.With(zap.String("repository", "booking"))},
		PaymentMethod: &paymentMethodStore{s: s, log: log.With(zap.String("repository", "payment_method"))},
		Payment:       &paymentStore{s: s, log: log.With(zap.String("repository", "payment"))},
		Notification:  &notificationStore{s: s, log: log.With(zap.String("repository", "notification"))},
		AdminAction:   &adminActionStore{s: s, log: log.With(zap.String("repository", "admin_action"))},
	}
}

func paginate[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
