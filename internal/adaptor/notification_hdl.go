package adaptor

import (
	"net/http"
	"strings"

	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// GetUserNotifications handles GET /api/user/notifications (protected)
func (h *NotificationHandler) GetUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)
	unreadOnly := utils.ParseBool(r.URL.Query().Get("unread"))

	notifications, err := h.service.GetUserNotifications(r.Context(), userID.String(), unreadOnly, req)
	if err != nil {
		h.handleServiceError(w, err, "get notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}

// MarkRead handles PUT /api/user/notifications/{id}/read (protected)
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	notificationID := chi.URLParam(r, "id")
	if notificationID == "" {
		utils.ResponseBadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.service.MarkRead(r.Context(), userID.String(), notificationID); err != nil {
		h.handleServiceError(w, err, "mark notification read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// MarkAllRead handles PUT /api/user/notifications/read-all (protected)
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	updated, err := h.service.MarkAllRead(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "mark all notifications read")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]int64{"updated": updated})
}

// handleServiceError maps service errors to HTTP responses.
func (h *NotificationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
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
