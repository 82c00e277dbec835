package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/booking (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	result, err := h.service.CreateBooking(r.Context(), userID.String(), idempotencyKey, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	// Replays of an earlier request return the original booking, not a
	// second created resource.
	if result.Replayed {
		utils.ResponseSuccess(w, "success", result.Booking)
		return
	}

	utils.ResponseCreated(w, "success", result.Booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)
	status := r.URL.Query().Get("status")

	bookings, err := h.service.GetUserBookings(r.Context(), userID.String(), status, req)
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{id} (protected, owner only)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), userID.String(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel (protected, owner only)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), userID.String(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== ADMIN METHODS ====================

// AdminGetBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) AdminGetBookings(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)
	status := r.URL.Query().Get("status")

	bookings, err := h.service.AdminGetBookings(r.Context(), status, req)
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// AdminGetBooking handles GET /api/admin/bookings/{id} (admin only)
func (h *BookingHandler) AdminGetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.AdminGetBooking(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// AdminCancelBooking handles PUT /api/admin/bookings/{id}/cancel (admin only)
func (h *BookingHandler) AdminCancelBooking(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.AdminCancelBooking(r.Context(), adminID.String(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// handleServiceError maps service errors to HTTP responses.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already taken"),
		strings.Contains(errMsg, "not enough seats"):
		h.log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "already started"):
		h.log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
