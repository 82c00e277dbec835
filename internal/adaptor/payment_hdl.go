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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// ProcessPayment handles POST /api/pay (protected)
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.ProcessPayment(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "process payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// GetPayment handles GET /api/payments/{id} (protected, owner or admin)
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.GetPayment(r.Context(), userID.String(), role, paymentID)
	if err != nil {
		h.handleServiceError(w, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// GetPaymentMethods handles GET /api/payment-methods (public)
func (h *PaymentHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	paymentMethods, err := h.service.GetPaymentMethods(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get payment methods")
		return
	}

	utils.ResponseSuccess(w, "success", paymentMethods)
}

// handleServiceError maps service errors to HTTP responses.
func (h *PaymentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already has a payment"):
		h.log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "does not match"),
		strings.Contains(errMsg, "not available"),
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
