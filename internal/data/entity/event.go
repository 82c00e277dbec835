package entity

import (
	"time"
)

type Event struct {
	Base
	Title       string    `db:"title"`
	Venue       string    `db:"venue"`
	Description *string   `db:"description"`
	StartsAt    time.Time `db:"starts_at"`
	Price       float64   `db:"price"`
	Currency    string    `db:"currency"`
	Capacity    int       `db:"capacity"`
}
