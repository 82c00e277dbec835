package wire

import (
	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/events", eventHandler.GetAllEvents)
	r.Get("/api/events/{id}", eventHandler.GetEvent)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/events", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", eventHandler.AdminCreateEvent)
		r.Put("/{id}", eventHandler.AdminUpdateEvent)
		r.Delete("/{id}", eventHandler.AdminDeleteEvent)
	})
}
