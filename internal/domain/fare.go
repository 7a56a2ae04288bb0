package domain

// FareDetails is the read-only view of one fare offering of a flight.
// Economy fares carry BaggageCapacity and ExtraBaggageCost, business fares
// carry BaggageAllowance and LoungeAccess.
type FareDetails struct {
	FlightID         int64        `json:"flight_id"`
	FareClass        FareClass    `json:"fare_class"`
	Destination      string       `json:"destination"`
	Airline          string       `json:"airline"`
	Date             string       `json:"date"`
	Depart           string       `json:"depart"`
	AvailableSeats   int          `json:"available_seats"`
	Price            Money        `json:"price"`
	BaggageCapacity  *int         `json:"baggage_capacity,omitempty"`
	ExtraBaggageCost *Money       `json:"extra_baggage_cost,omitempty"`
	BaggageAllowance *int         `json:"baggage_allowance,omitempty"`
	LoungeAccess     *bool        `json:"lounge_access,omitempty"`
	Meals            []MealOption `json:"meals"`
}

func (d *FareDetails) Meal(id int64) (MealOption, bool) {
	for _, m := range d.Meals {
		if m.ID == id {
			return m, true
		}
	}
	return MealOption{}, false
}

type Quote struct {
	Details FareDetails `json:"details"`
	Meal    *MealOption `json:"meal,omitempty"`
	Total   Money       `json:"total"`
}
