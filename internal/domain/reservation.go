package domain

import "time"

// Reservation is a booking snapshot. Price is fixed at creation and never
// re-derived from the catalog. Done=false is pending, Done=true completed.
type Reservation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FlightID  int64     `json:"flight_id"`
	FareClass FareClass `json:"fare_class"`
	MealID    *int64    `json:"meal_id"`
	Price     Money     `json:"price"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	// SeatHeld records whether a seat was taken from the offering's inventory.
	SeatHeld bool `json:"-"`
}

type ReservationFilter struct {
	UserID   *int64
	FlightID *int64
}
