package wire

import (
	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/user/notifications", notificationHandler.GetUserNotifications)
		r.Put("/api/user/notifications/read-all", notificationHandler.MarkAllRead)
		r.Put("/api/user/notifications/{id}/read", notificationHandler.MarkRead)
	})
}
