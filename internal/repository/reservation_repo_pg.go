package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository interface {
	// Create inserts the reservation. With holdSeat the offering's seat count
	// is decremented in the same transaction and ErrSoldOut is returned when
	// no seat is left.
	Create(ctx context.Context, r *domain.Reservation, holdSeat bool) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	// Delete removes the reservation. A pending reservation gives back its
	// held seat.
	Delete(ctx context.Context, id int64) (*domain.Reservation, error)
	// MarkDone completes a pending reservation. changed is false when it was
	// already completed.
	MarkDone(ctx context.Context, id int64) (r *domain.Reservation, changed bool, err error)
}

type PGReservationRepository struct {
	db DB
}

func NewReservationRepository(db DB) ReservationRepository {
	return &PGReservationRepository{db: db}
}

const reservationColumns = `id, userid, flightid, fare_class, mealid, (price*100)::bigint, done, seat_held, created_at`

func scanReservation(row pgx.Row, r *domain.Reservation) error {
	return row.Scan(&r.ID, &r.UserID, &r.FlightID, &r.FareClass, &r.MealID, &r.Price, &r.Done, &r.SeatHeld, &r.CreatedAt)
}

func (repo *PGReservationRepository) Create(ctx context.Context, r *domain.Reservation, holdSeat bool) error {
	return WithTx(ctx, repo.db, func(tx pgx.Tx) error {
		if holdSeat {
			if err := reserveSeat(ctx, tx, r.FareClass, r.FlightID); err != nil {
				return err
			}
		}
		row := tx.QueryRow(ctx, `INSERT INTO reservation (userid, flightid, fare_class, mealid, price, done, seat_held)
			VALUES ($1, $2, $3, $4, $5::bigint::numeric/100, false, $6)
			RETURNING `+reservationColumns,
			r.UserID, r.FlightID, string(r.FareClass), r.MealID, int64(r.Price), holdSeat)
		if err := scanReservation(row, r); err != nil {
			return writeErr("reservation", err)
		}
		return nil
	})
}

func (repo *PGReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var r domain.Reservation
	if err := scanReservation(repo.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservation WHERE id=$1`, id), &r); err != nil {
		return nil, readErr("reservation", err)
	}
	return &r, nil
}

func (repo *PGReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	rows, err := repo.db.Query(ctx, `SELECT `+reservationColumns+` FROM reservation
		WHERE ($1::bigint IS NULL OR userid = $1::bigint)
		AND ($2::bigint IS NULL OR flightid = $2::bigint)
		ORDER BY created_at DESC, id DESC`, filter.UserID, filter.FlightID)
	if err != nil {
		return nil, readErr("reservations", err)
	}
	return collect(rows, func(rows pgx.Rows, r *domain.Reservation) error { return scanReservation(rows, r) })
}

// Update is the admin correction path. A held seat follows the reservation
// when its flight or fare class changes.
func (repo *PGReservationRepository) Update(ctx context.Context, r *domain.Reservation) error {
	return WithTx(ctx, repo.db, func(tx pgx.Tx) error {
		var current domain.Reservation
		row := tx.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservation WHERE id=$1 FOR UPDATE`, r.ID)
		if err := scanReservation(row, &current); err != nil {
			return readErr("reservation", err)
		}
		if current.SeatHeld && (current.FlightID != r.FlightID || current.FareClass != r.FareClass) {
			if err := releaseSeat(ctx, tx, current.FareClass, current.FlightID); err != nil {
				return err
			}
			if err := reserveSeat(ctx, tx, r.FareClass, r.FlightID); err != nil {
				return err
			}
		}

		row = tx.QueryRow(ctx, `UPDATE reservation
			SET userid=$1, flightid=$2, fare_class=$3, mealid=$4, price=$5::bigint::numeric/100, done=$6
			WHERE id=$7
			RETURNING `+reservationColumns,
			r.UserID, r.FlightID, string(r.FareClass), r.MealID, int64(r.Price), r.Done, r.ID)
		if err := scanReservation(row, r); err != nil {
			return writeErr("reservation", err)
		}
		return nil
	})
}

func (repo *PGReservationRepository) Delete(ctx context.Context, id int64) (*domain.Reservation, error) {
	var deleted domain.Reservation
	err := WithTx(ctx, repo.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `DELETE FROM reservation WHERE id=$1 RETURNING `+reservationColumns, id)
		if err := scanReservation(row, &deleted); err != nil {
			return readErr("reservation", err)
		}
		if deleted.SeatHeld && !deleted.Done {
			return releaseSeat(ctx, tx, deleted.FareClass, deleted.FlightID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (repo *PGReservationRepository) MarkDone(ctx context.Context, id int64) (*domain.Reservation, bool, error) {
	var r domain.Reservation
	err := scanReservation(repo.db.QueryRow(ctx, `UPDATE reservation SET done=true WHERE id=$1 AND NOT done RETURNING `+reservationColumns, id), &r)
	if err == nil {
		return &r, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("complete reservation: %w", err)
	}
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
