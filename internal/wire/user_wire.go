package wire

import (
	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Put("/api/user/profile", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", userHandler.AdminGetUsers)
		r.Delete("/{id}", userHandler.AdminDeleteUser)
	})
}
