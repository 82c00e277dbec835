package wire

import (
	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/send-otp", authHandler.SendOTP)
	r.Post("/api/verify-email", authHandler.VerifyEmail)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/logout", authHandler.Logout)
	})
}
