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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfile handles PUT /api/user/profile (protected)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ==================== ADMIN METHODS ====================

// AdminGetUsers handles GET /api/admin/users (admin only)
func (h *UserHandler) AdminGetUsers(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// AdminDeleteUser handles DELETE /api/admin/users/{id} (admin only)
func (h *UserHandler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), adminID.String(), userID); err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps service errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"):
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
