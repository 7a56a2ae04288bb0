package repository

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

// FareRepository reads the composite flight + offering view. Meals are loaded
// separately through MealRepository.ListForOffering.
type FareRepository interface {
	GetFare(ctx context.Context, flightID int64, class domain.FareClass) (*domain.FareDetails, error)
	Search(ctx context.Context, params domain.SearchParams) ([]domain.FareDetails, error)
}

type PGFareRepository struct {
	db DB
}

func NewFareRepository(db DB) FareRepository {
	return &PGFareRepository{db: db}
}

const fareSelect = `SELECT f.id, f.destination, f.airline, to_char(f.date, 'YYYY-MM-DD'), to_char(f.depart, 'HH24:MI'),
	o.available_seats, (o.flight_price*100)::bigint, `

func fareQuery(class domain.FareClass) (string, error) {
	table, _, _, err := offeringTable(class)
	if err != nil {
		return "", err
	}
	terms := `o.baggage_capacity, (o.extra_baggage_cost*100)::bigint`
	if class == domain.FareClassBusiness {
		terms = `o.baggage_allowance, o.lounge_access`
	}
	return fareSelect + terms + ` FROM flight f JOIN ` + table + ` o ON o.flight_id = f.id`, nil
}

func scanFare(row pgx.Row, class domain.FareClass, d *domain.FareDetails) error {
	d.FareClass = class
	d.Meals = []domain.MealOption{}
	dest := []any{&d.FlightID, &d.Destination, &d.Airline, &d.Date, &d.Depart, &d.AvailableSeats, &d.Price}
	if class == domain.FareClassBusiness {
		var allowance int
		var lounge bool
		if err := row.Scan(append(dest, &allowance, &lounge)...); err != nil {
			return err
		}
		d.BaggageAllowance, d.LoungeAccess = &allowance, &lounge
		return nil
	}
	var capacity int
	var extra domain.Money
	if err := row.Scan(append(dest, &capacity, &extra)...); err != nil {
		return err
	}
	d.BaggageCapacity, d.ExtraBaggageCost = &capacity, &extra
	return nil
}

// GetFare returns NotFound when the flight does not exist or does not sell class.
func (r *PGFareRepository) GetFare(ctx context.Context, flightID int64, class domain.FareClass) (*domain.FareDetails, error) {
	query, err := fareQuery(class)
	if err != nil {
		return nil, err
	}
	var d domain.FareDetails
	if err := scanFare(r.db.QueryRow(ctx, query+` WHERE f.id=$1`, flightID), class, &d); err != nil {
		return nil, readErr(string(class)+" fare", err)
	}
	return &d, nil
}

// Search matches destination case-insensitively. An empty destination or a
// nil MaxPrice does not filter.
func (r *PGFareRepository) Search(ctx context.Context, params domain.SearchParams) ([]domain.FareDetails, error) {
	query, err := fareQuery(params.Class)
	if err != nil {
		return nil, err
	}
	var maxPrice *int64
	if params.MaxPrice != nil {
		v := int64(*params.MaxPrice)
		maxPrice = &v
	}
	rows, err := r.db.Query(ctx, query+`
		WHERE ($1 = '' OR LOWER(f.destination) = LOWER($1))
		AND ($2::bigint IS NULL OR (o.flight_price*100)::bigint <= $2::bigint)
		ORDER BY o.flight_price, f.date, f.depart`, params.Destination, maxPrice)
	if err != nil {
		return nil, readErr("fares", err)
	}
	return collect(rows, func(rows pgx.Rows, d *domain.FareDetails) error { return scanFare(rows, params.Class, d) })
}

var _ FareRepository = (*PGFareRepository)(nil)
