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

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// GetAllEvents handles GET /api/events (public)
func (h *EventHandler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	events, err := h.service.GetAllEvents(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// GetEvent handles GET /api/events/{id} (public)
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	event, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		h.handleServiceError(w, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// ==================== ADMIN METHODS ====================

// AdminCreateEvent handles POST /api/admin/events (admin only)
func (h *EventHandler) AdminCreateEvent(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), adminID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create event")
		return
	}

	utils.ResponseCreated(w, "success", event)
}

// AdminUpdateEvent handles PUT /api/admin/events/{id} (admin only)
func (h *EventHandler) AdminUpdateEvent(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	var req request.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), adminID.String(), eventID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// AdminDeleteEvent handles DELETE /api/admin/events/{id} (admin only)
func (h *EventHandler) AdminDeleteEvent(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), adminID.String(), eventID); err != nil {
		h.handleServiceError(w, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps service errors to HTTP responses.
func (h *EventHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "has bookings"):
		h.log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - bad request",
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

// paginationFromQuery reads page and per_page query parameters.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}
}
