package wire

import (
	"net/http"

	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/openapi"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router.
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS))

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireEvent(r, handler.Event, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wirePayment(r, handler.Payment, repo, config, logger)
	wireNotification(r, handler.Notification, repo, config, logger)
	wireAdmin(r, handler.Admin, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API description for frontend codegen
	doc := openapi.NewDocument(config.CORS.BackendURL)
	r.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		data, err := doc.JSON()
		if err != nil {
			logger.Error("Failed to render openapi document", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	})

	return r
}
