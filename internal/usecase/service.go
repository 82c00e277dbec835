package usecase

import (
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Event        EventService
	Booking      BookingService
	Payment      PaymentService
	Notification NotificationService
	Admin        AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo, log),
		Event:        NewEventService(repo, log),
		Booking:      NewBookingService(repo, log),
		Payment:      NewPaymentService(repo, log),
		Notification: NewNotificationService(repo, log),
		Admin:        NewAdminService(repo, log),
	}
}
