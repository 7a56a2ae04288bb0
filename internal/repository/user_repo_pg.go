package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// Ensure returns the user with email, creating a non-admin one if needed.
	Ensure(ctx context.Context, name, email string) (*domain.User, bool, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type PGUserRepository struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, name, email, role`

func scanUser(row pgx.Row, u *domain.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.Role)
}

func (r *PGUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, readErr("users", err)
	}
	return collect(rows, func(rows pgx.Rows, u *domain.User) error { return scanUser(rows, u) })
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id), &u); err != nil {
		return nil, readErr("user", err)
	}
	return &u, nil
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email)=LOWER($1)`, email), &u); err != nil {
		return nil, readErr("user", err)
	}
	return &u, nil
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	row := r.db.QueryRow(ctx, `INSERT INTO users (name, email, role) VALUES ($1, $2, $3) RETURNING `+userColumns,
		user.Name, user.Email, user.Role)
	if err := scanUser(row, user); err != nil {
		return writeErr("user", err)
	}
	return nil
}

func (r *PGUserRepository) Ensure(ctx context.Context, name, email string) (*domain.User, bool, error) {
	var u domain.User
	row := r.db.QueryRow(ctx, `INSERT INTO users (name, email, role) VALUES ($1, $2, false)
		ON CONFLICT (email) DO NOTHING
		RETURNING `+userColumns, name, email)
	err := scanUser(row, &u)
	if err == nil {
		return &u, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, writeErr("user", err)
	}
	existing, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *PGUserRepository) Update(ctx context.Context, user *domain.User) error {
	row := r.db.QueryRow(ctx, `UPDATE users SET name=$1, email=$2, role=$3 WHERE id=$4 RETURNING `+userColumns,
		user.Name, user.Email, user.Role, user.ID)
	if err := scanUser(row, user); err != nil {
		return writeErr("user", err)
	}
	return nil
}

func (r *PGUserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return deleteErr("user", err)
	}
	return affected("user", tag)
}

var _ UserRepository = (*PGUserRepository)(nil)
