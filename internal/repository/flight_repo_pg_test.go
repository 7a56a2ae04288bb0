package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flightRowColumns = []string{"id", "destination", "depart", "airline", "date"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestNewFlightRepository(t *testing.T) {
	repo := NewFlightRepository(newMock(t))
	assert.NotNil(t, repo)
}

func TestPGFlightRepository_CreateThenGet(t *testing.T) {
	mock := newMock(t)
	repo := NewFlightRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO flight (destination, depart, airline, date)")).
		WithArgs("Lisbon", "09:30", "TAP", "2026-11-02").
		WillReturnRows(pgxmock.NewRows(flightRowColumns).AddRow(int64(7), "Lisbon", "09:30", "TAP", "2026-11-02"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM flight WHERE id=$1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(flightRowColumns).AddRow(int64(7), "Lisbon", "09:30", "TAP", "2026-11-02"))

	in := domain.Flight{Destination: "Lisbon", Depart: "09:30", Airline: "TAP", Date: "2026-11-02"}
	created := in
	require.NoError(t, repo.Create(ctx, &created))
	assert.Equal(t, int64(7), created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	in.ID = created.ID
	assert.Equal(t, in, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGFlightRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewFlightRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM flight WHERE id=$1")).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPGFlightRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewFlightRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM flight WHERE id=$1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM flight WHERE id=$1")).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM flight WHERE id=$1")).
		WithArgs(int64(3)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	assert.NoError(t, repo.Delete(ctx, 1))
	assert.ErrorIs(t, repo.Delete(ctx, 2), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 3), domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGFlightRepository_Overview(t *testing.T) {
	mock := newMock(t)
	repo := NewFlightRepository(mock)

	seats, baggage := 10, 20
	price, extra := int64(25000), int64(3000)
	rows := pgxmock.NewRows([]string{"id", "destination", "depart", "airline", "date",
		"e_seats", "e_price", "e_baggage", "e_extra", "b_seats", "b_price", "b_allowance", "b_lounge"}).
		AddRow(int64(7), "Lisbon", "09:30", "TAP", "2026-11-02",
			&seats, &price, &baggage, &extra, (*int)(nil), (*int64)(nil), (*int)(nil), (*bool)(nil))
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN economy_flight e ON e.flight_id = f.id")).WillReturnRows(rows)

	overview, err := repo.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, overview, 1)
	require.NotNil(t, overview[0].Economy)
	assert.Equal(t, domain.Money(25000), overview[0].Economy.Price)
	assert.Equal(t, domain.Money(3000), overview[0].Economy.ExtraBaggageCost)
	assert.Nil(t, overview[0].Business)
}

func TestErrorMapping(t *testing.T) {
	assert.ErrorIs(t, writeErr("user", &pgconn.PgError{Code: pgUniqueViolation}), domain.ErrConflict)
	assert.ErrorIs(t, writeErr("reservation", &pgconn.PgError{Code: pgForeignKeyViolation}), domain.ErrNotFound)
	assert.ErrorIs(t, writeErr("meal", &pgconn.PgError{Code: pgCheckViolation}), domain.ErrValidation)
	assert.ErrorIs(t, readErr("meal", pgx.ErrNoRows), domain.ErrNotFound)

	boom := errors.New("connection reset")
	err := readErr("meal", boom)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
