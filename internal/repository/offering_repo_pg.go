package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

// OfferingRepository manages the per-class extensions of a flight. Each flight
// has at most one offering per class.
type OfferingRepository interface {
	CreateEconomy(ctx context.Context, o *domain.EconomyOffering) error
	GetEconomy(ctx context.Context, flightID int64) (*domain.EconomyOffering, error)
	ListEconomy(ctx context.Context) ([]domain.EconomyOffering, error)
	UpdateEconomy(ctx context.Context, o *domain.EconomyOffering) error
	DeleteEconomy(ctx context.Context, flightID int64) error

	CreateBusiness(ctx context.Context, o *domain.BusinessOffering) error
	GetBusiness(ctx context.Context, flightID int64) (*domain.BusinessOffering, error)
	ListBusiness(ctx context.Context) ([]domain.BusinessOffering, error)
	UpdateBusiness(ctx context.Context, o *domain.BusinessOffering) error
	DeleteBusiness(ctx context.Context, flightID int64) error
}

type PGOfferingRepository struct {
	db DB
}

func NewOfferingRepository(db DB) OfferingRepository {
	return &PGOfferingRepository{db: db}
}

const (
	economyColumns  = `flight_id, available_seats, (flight_price*100)::bigint, baggage_capacity, (extra_baggage_cost*100)::bigint`
	businessColumns = `flight_id, available_seats, (flight_price*100)::bigint, baggage_allowance, lounge_access`
)

func scanEconomy(row pgx.Row, o *domain.EconomyOffering) error {
	return row.Scan(&o.FlightID, &o.AvailableSeats, &o.Price, &o.BaggageCapacity, &o.ExtraBaggageCost)
}

func scanBusiness(row pgx.Row, o *domain.BusinessOffering) error {
	return row.Scan(&o.FlightID, &o.AvailableSeats, &o.Price, &o.BaggageAllowance, &o.LoungeAccess)
}

func (r *PGOfferingRepository) CreateEconomy(ctx context.Context, o *domain.EconomyOffering) error {
	row := r.db.QueryRow(ctx, `INSERT INTO economy_flight (flight_id, available_seats, flight_price, baggage_capacity, extra_baggage_cost)
		VALUES ($1, $2, $3::bigint::numeric/100, $4, $5::bigint::numeric/100)
		RETURNING `+economyColumns,
		o.FlightID, o.AvailableSeats, int64(o.Price), o.BaggageCapacity, int64(o.ExtraBaggageCost))
	if err := scanEconomy(row, o); err != nil {
		return writeErr("economy offering", err)
	}
	return nil
}

func (r *PGOfferingRepository) GetEconomy(ctx context.Context, flightID int64) (*domain.EconomyOffering, error) {
	var o domain.EconomyOffering
	if err := scanEconomy(r.db.QueryRow(ctx, `SELECT `+economyColumns+` FROM economy_flight WHERE flight_id=$1`, flightID), &o); err != nil {
		return nil, readErr("economy offering", err)
	}
	return &o, nil
}

func (r *PGOfferingRepository) ListEconomy(ctx context.Context) ([]domain.EconomyOffering, error) {
	rows, err := r.db.Query(ctx, `SELECT `+economyColumns+` FROM economy_flight ORDER BY flight_id`)
	if err != nil {
		return nil, readErr("economy offerings", err)
	}
	return collect(rows, func(rows pgx.Rows, o *domain.EconomyOffering) error { return scanEconomy(rows, o) })
}

func (r *PGOfferingRepository) UpdateEconomy(ctx context.Context, o *domain.EconomyOffering) error {
	row := r.db.QueryRow(ctx, `UPDATE economy_flight
		SET available_seats=$1, flight_price=$2::bigint::numeric/100, baggage_capacity=$3, extra_baggage_cost=$4::bigint::numeric/100
		WHERE flight_id=$5
		RETURNING `+economyColumns,
		o.AvailableSeats, int64(o.Price), o.BaggageCapacity, int64(o.ExtraBaggageCost), o.FlightID)
	if err := scanEconomy(row, o); err != nil {
		return writeErr("economy offering", err)
	}
	return nil
}

func (r *PGOfferingRepository) DeleteEconomy(ctx context.Context, flightID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM economy_flight WHERE flight_id=$1`, flightID)
	if err != nil {
		return deleteErr("economy offering", err)
	}
	return affected("economy offering", tag)
}

func (r *PGOfferingRepository) CreateBusiness(ctx context.Context, o *domain.BusinessOffering) error {
	row := r.db.QueryRow(ctx, `INSERT INTO business_flight (flight_id, available_seats, flight_price, baggage_allowance, lounge_access)
		VALUES ($1, $2, $3::bigint::numeric/100, $4, $5)
		RETURNING `+businessColumns,
		o.FlightID, o.AvailableSeats, int64(o.Price), o.BaggageAllowance, o.LoungeAccess)
	if err := scanBusiness(row, o); err != nil {
		return writeErr("business offering", err)
	}
	return nil
}

func (r *PGOfferingRepository) GetBusiness(ctx context.Context, flightID int64) (*domain.BusinessOffering, error) {
	var o domain.BusinessOffering
	if err := scanBusiness(r.db.QueryRow(ctx, `SELECT `+businessColumns+` FROM business_flight WHERE flight_id=$1`, flightID), &o); err != nil {
		return nil, readErr("business offering", err)
	}
	return &o, nil
}

func (r *PGOfferingRepository) ListBusiness(ctx context.Context) ([]domain.BusinessOffering, error) {
	rows, err := r.db.Query(ctx, `SELECT `+businessColumns+` FROM business_flight ORDER BY flight_id`)
	if err != nil {
		return nil, readErr("business offerings", err)
	}
	return collect(rows, func(rows pgx.Rows, o *domain.BusinessOffering) error { return scanBusiness(rows, o) })
}

func (r *PGOfferingRepository) UpdateBusiness(ctx context.Context, o *domain.BusinessOffering) error {
	row := r.db.QueryRow(ctx, `UPDATE business_flight
		SET available_seats=$1, flight_price=$2::bigint::numeric/100, baggage_allowance=$3, lounge_access=$4
		WHERE flight_id=$5
		RETURNING `+businessColumns,
		o.AvailableSeats, int64(o.Price), o.BaggageAllowance, o.LoungeAccess, o.FlightID)
	if err := scanBusiness(row, o); err != nil {
		return writeErr("business offering", err)
	}
	return nil
}

func (r *PGOfferingRepository) DeleteBusiness(ctx context.Context, flightID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM business_flight WHERE flight_id=$1`, flightID)
	if err != nil {
		return deleteErr("business offering", err)
	}
	return affected("business offering", tag)
}

// offeringTable returns the offering table and its meal association table
// and column for class.
func offeringTable(class domain.FareClass) (table, assocTable, assocColumn string, err error) {
	switch class {
	case domain.FareClassEconomy:
		return "economy_flight", "economyflightmealoption", "economy_flight_id", nil
	case domain.FareClassBusiness:
		return "business_flight", "businessflightmealoption", "business_flight_id", nil
	}
	return "", "", "", domain.Invalid(fmt.Sprintf("unknown fare class %q", class))
}

// reserveSeat takes one seat of the offering if any is left.
func reserveSeat(ctx context.Context, q Querier, class domain.FareClass, flightID int64) error {
	table, _, _, err := offeringTable(class)
	if err != nil {
		return err
	}
	var left int
	err = q.QueryRow(ctx, `UPDATE `+table+` SET available_seats = available_seats - 1
		WHERE flight_id=$1 AND available_seats > 0
		RETURNING available_seats`, flightID).Scan(&left)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the offering does not exist or it is sold out.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE flight_id=$1)`, flightID).Scan(&exists); err != nil {
			return readErr(string(class)+" offering", err)
		}
		if !exists {
			return domain.NotFound(string(class) + " offering")
		}
		return domain.ErrSoldOut
	}
	if err != nil {
		return fmt.Errorf("reserve seat: %w", err)
	}
	return nil
}

func releaseSeat(ctx context.Context, q Querier, class domain.FareClass, flightID int64) error {
	table, _, _, err := offeringTable(class)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `UPDATE `+table+` SET available_seats = available_seats + 1 WHERE flight_id=$1`, flightID); err != nil {
		return fmt.Errorf("release seat: %w", err)
	}
	return nil
}

var _ OfferingRepository = (*PGOfferingRepository)(nil)
