package request

type CreateBookingRequest struct {
	EventID   string  `json:"event_id" validate:"required,uuid4"`
	SeatLabel *string `json:"seat_label,omitempty" validate:"omitempty,min=1,max=10"`
	Quantity  int     `json:"quantity" validate:"required,min=1,max=10"`
}

type ProcessPaymentRequest struct {
	BookingID     string  `json:"booking_id" validate:"required,uuid4"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}
