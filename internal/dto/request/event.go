package request

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Venue       string    `json:"venue" validate:"required,min=2,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
}

type UpdateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Venue       string    `json:"venue" validate:"required,min=2,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
}
