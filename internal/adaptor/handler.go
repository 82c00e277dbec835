package adaptor

import (
	"ticket-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Event        *EventHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Event:        NewEventHandler(service.Event, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Admin:        NewAdminHandler(service.Admin, log),
	}
}
