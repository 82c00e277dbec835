package response

import (
	"time"

	"ticket-booking/internal/data/entity"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	OrderID    string               `json:"order_id"`
	UserID     string               `json:"user_id"`
	EventID    string               `json:"event_id"`
	EventTitle string               `json:"event_title,omitempty"`
	Venue      string               `json:"venue,omitempty"`
	StartsAt   *time.Time           `json:"starts_at,omitempty"`
	SeatLabel  *string              `json:"seat_label,omitempty"`
	Quantity   int                  `json:"quantity"`
	TotalPrice float64              `json:"total_price"`
	Currency   string               `json:"currency,omitempty"`
	Status     entity.BookingStatus `json:"status"`
	Payment    *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// Helper converter; event and payment are optional enrichments.
func BookingToResponse(booking *entity.Booking, event *entity.Event, payment *PaymentResponse) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		OrderID:    booking.OrderID,
		UserID:     booking.UserID.String(),
		EventID:    booking.EventID.String(),
		SeatLabel:  booking.SeatLabel,
		Quantity:   booking.Quantity,
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
		Payment:    payment,
		CreatedAt:  booking.CreatedAt,
	}

	if event != nil {
		resp.EventTitle = event.Title
		resp.Venue = event.Venue
		startsAt := event.StartsAt
		resp.StartsAt = &startsAt
		resp.Currency = event.Currency
	}

	return resp
}
