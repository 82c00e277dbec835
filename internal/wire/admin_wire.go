package wire

import (
	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/actions", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", adminHandler.GetActions)
		r.Post("/", adminHandler.RecordAction)
	})
}
