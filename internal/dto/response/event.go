package response

import (
	"time"

	"ticket-booking/internal/data/entity"
)

type EventResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Venue          string    `json:"venue"`
	Description    *string   `json:"description,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	Price          float64   `json:"price"`
	Currency       string    `json:"currency"`
	Capacity       int       `json:"capacity"`
	SeatsAvailable int64     `json:"seats_available"`
	CreatedAt      time.Time `json:"created_at"`
}

func EventToResponse(event *entity.Event, seatsTaken int64) EventResponse {
	available := int64(event.Capacity) - seatsTaken
	if available < 0 {
		available = 0
	}

	return EventResponse{
		ID:             event.ID.String(),
		Title:          event.Title,
		Venue:          event.Venue,
		Description:    event.Description,
		StartsAt:       event.StartsAt,
		Price:          event.Price,
		Currency:       event.Currency,
		Capacity:       event.Capacity,
		SeatsAvailable: available,
		CreatedAt:      event.CreatedAt,
	}
}
