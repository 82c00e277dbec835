package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetActions handles GET /api/admin/actions (admin only)
func (h *AdminHandler) GetActions(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	actions, err := h.service.GetActions(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get admin actions")
		return
	}

	utils.ResponseSuccess(w, "success", actions)
}

// RecordAction handles POST /api/admin/actions (admin only)
func (h *AdminHandler) RecordAction(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RecordAdminActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	action, err := h.service.RecordAction(r.Context(), adminID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "record admin action")
		return
	}

	utils.ResponseCreated(w, "success", action)
}

// handleServiceError maps service errors to HTTP responses.
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
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
