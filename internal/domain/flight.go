package domain

type FareClass string

const (
	FareClassEconomy  FareClass = "economy"
	FareClassBusiness FareClass = "business"
)

func ParseFareClass(s string) (FareClass, error) {
	switch FareClass(s) {
	case FareClassEconomy, FareClassBusiness:
		return FareClass(s), nil
	}
	return "", Invalid("class must be economy or business")
}

// Flight is the base record shared by both fare classes. Date is YYYY-MM-DD,
// Depart is the local time of day as HH:MM.
type Flight struct {
	ID          int64  `json:"id"`
	Destination string `json:"destination"`
	Depart      string `json:"depart"`
	Airline     string `json:"airline"`
	Date        string `json:"date"`
}

type EconomyOffering struct {
	FlightID         int64 `json:"flight_id"`
	AvailableSeats   int   `json:"available_seats"`
	Price            Money `json:"price"`
	BaggageCapacity  int   `json:"baggage_capacity"`
	ExtraBaggageCost Money `json:"extra_baggage_cost"`
}

type BusinessOffering struct {
	FlightID         int64 `json:"flight_id"`
	AvailableSeats   int   `json:"available_seats"`
	Price            Money `json:"price"`
	BaggageAllowance int   `json:"baggage_allowance"`
	LoungeAccess     bool  `json:"lounge_access"`
}

// FlightOverview is a flight with whichever offerings it sells. A nil
// offering means the class is not sold on the flight.
type FlightOverview struct {
	Flight
	Economy  *EconomyOffering  `json:"economy,omitempty"`
	Business *BusinessOffering `json:"business,omitempty"`
}

type SearchParams struct {
	Destination string
	Class       FareClass
	MaxPrice    *Money
}
