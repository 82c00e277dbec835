package wire

import (
	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/booking", bookingHandler.CreateBooking)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", bookingHandler.AdminGetBookings)
		r.Get("/{id}", bookingHandler.AdminGetBooking)
		r.Put("/{id}/cancel", bookingHandler.AdminCancelBooking)
	})
}
