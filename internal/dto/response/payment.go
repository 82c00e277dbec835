package response

import (
	"time"

	"ticket-booking/internal/data/entity"
)

type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type PaymentResponse struct {
	ID            string                `json:"id"`
	BookingID     string                `json:"booking_id"`
	PaymentMethod PaymentMethodResponse `json:"payment_method"`
	Amount        float64               `json:"amount"`
	Currency      string                `json:"currency"`
	Status        entity.PaymentStatus  `json:"status"`
	TransactionID *string               `json:"transaction_id,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// Helper converters
func PaymentMethodToResponse(pm *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:       pm.ID.String(),
		Code:     pm.Code,
		Name:     pm.Name,
		IsActive: pm.IsActive,
	}
}

func PaymentToResponse(payment *entity.Payment, paymentMethod *entity.PaymentMethod) PaymentResponse {
	resp := PaymentResponse{
		ID:            payment.ID.String(),
		BookingID:     payment.BookingID.String(),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}

	if paymentMethod != nil {
		resp.PaymentMethod = PaymentMethodToResponse(paymentMethod)
	}

	return resp
}
