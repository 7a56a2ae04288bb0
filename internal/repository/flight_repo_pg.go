package repository

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	Overview(ctx context.Context) ([]domain.FlightOverview, error)
}

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, destination, to_char(depart, 'HH24:MI'), airline, to_char(date, 'YYYY-MM-DD')`

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.Destination, &f.Depart, &f.Airline, &f.Date)
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flight ORDER BY date, depart, id`)
	if err != nil {
		return nil, readErr("flights", err)
	}
	return collect(rows, func(rows pgx.Rows, f *domain.Flight) error { return scanFlight(rows, f) })
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var f domain.Flight
	if err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flight WHERE id=$1`, id), &f); err != nil {
		return nil, readErr("flight", err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	row := r.db.QueryRow(ctx, `INSERT INTO flight (destination, depart, airline, date)
		VALUES ($1, $2::time, $3, $4::date)
		RETURNING `+flightColumns, flight.Destination, flight.Depart, flight.Airline, flight.Date)
	if err := scanFlight(row, flight); err != nil {
		return writeErr("flight", err)
	}
	return nil
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	row := r.db.QueryRow(ctx, `UPDATE flight SET destination=$1, depart=$2::time, airline=$3, date=$4::date
		WHERE id=$5
		RETURNING `+flightColumns, flight.Destination, flight.Depart, flight.Airline, flight.Date, flight.ID)
	if err := scanFlight(row, flight); err != nil {
		return writeErr("flight", err)
	}
	return nil
}

// Delete removes the flight with its offerings and their meal associations.
// Flights with reservations are kept.
func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flight WHERE id=$1`, id)
	if err != nil {
		return deleteErr("flight", err)
	}
	return affected("flight", tag)
}

func (r *PGFlightRepository) Overview(ctx context.Context) ([]domain.FlightOverview, error) {
	rows, err := r.db.Query(ctx, `SELECT f.id, f.destination, to_char(f.depart, 'HH24:MI'), f.airline, to_char(f.date, 'YYYY-MM-DD'),
		e.available_seats, (e.flight_price*100)::bigint, e.baggage_capacity, (e.extra_baggage_cost*100)::bigint,
		b.available_seats, (b.flight_price*100)::bigint, b.baggage_allowance, b.lounge_access
		FROM flight f
		LEFT JOIN economy_flight e ON e.flight_id = f.id
		LEFT JOIN business_flight b ON b.flight_id = f.id
		ORDER BY f.date, f.depart, f.id`)
	if err != nil {
		return nil, readErr("flights", err)
	}
	return collect(rows, func(rows pgx.Rows, o *domain.FlightOverview) error {
		var (
			eSeats, eBaggage, bSeats, bAllowance *int
			ePrice, eExtra, bPrice               *int64
			bLounge                              *bool
		)
		if err := rows.Scan(&o.ID, &o.Destination, &o.Depart, &o.Airline, &o.Date,
			&eSeats, &ePrice, &eBaggage, &eExtra,
			&bSeats, &bPrice, &bAllowance, &bLounge); err != nil {
			return err
		}
		if eSeats != nil {
			o.Economy = &domain.EconomyOffering{
				FlightID:         o.ID,
				AvailableSeats:   *eSeats,
				Price:            domain.Money(*ePrice),
				BaggageCapacity:  *eBaggage,
				ExtraBaggageCost: domain.Money(*eExtra),
			}
		}
		if bSeats != nil {
			o.Business = &domain.BusinessOffering{
				FlightID:         o.ID,
				AvailableSeats:   *bSeats,
				Price:            domain.Money(*bPrice),
				BaggageAllowance: *bAllowance,
				LoungeAccess:     *bLounge,
			}
		}
		return nil
	})
}

var _ FlightRepository = (*PGFlightRepository)(nil)
