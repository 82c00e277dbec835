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

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register (public)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "success", auth)
}

// Login handles POST /api/login (public)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Logout handles POST /api/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SendOTP handles POST /api/send-otp (public)
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SendOTP(r.Context(), req.Email, req.Type); err != nil {
		h.handleServiceError(w, err, "send OTP")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// VerifyEmail handles POST /api/verify-email (public)
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "verify email")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps service errors to HTTP responses.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid credentials"):
		h.log.Warn(operation+" failed - invalid credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already verified"):
		h.log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "deactivated"):
		h.log.Warn(operation+" failed - account deactivated",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "expired"):
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
