package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

// FollowRepository stores directed edges: followerID follows userID.
type FollowRepository interface {
	Follow(ctx context.Context, userID, followerID int64) error
	Unfollow(ctx context.Context, userID, followerID int64) error
	Followers(ctx context.Context, userID int64) ([]domain.UserSummary, error)
	Following(ctx context.Context, followerID int64) ([]domain.UserSummary, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, followerID int64) (int64, error)
}

type PGFollowRepository struct {
	db DB
}

func NewFollowRepository(db DB) FollowRepository {
	return &PGFollowRepository{db: db}
}

func scanSummary(rows pgx.Rows, s *domain.UserSummary) error {
	return rows.Scan(&s.ID, &s.Name)
}

func (r *PGFollowRepository) Follow(ctx context.Context, userID, followerID int64) error {
	var created int64
	err := r.db.QueryRow(ctx, `INSERT INTO user_followers (user_id, follower_id) VALUES ($1, $2)
		ON CONFLICT (user_id, follower_id) DO NOTHING
		RETURNING user_id`, userID, followerID).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Conflict("already following this user")
	}
	if err != nil {
		return writeErr("user", err)
	}
	return nil
}

func (r *PGFollowRepository) Unfollow(ctx context.Context, userID, followerID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_followers WHERE user_id=$1 AND follower_id=$2`, userID, followerID)
	if err != nil {
		return deleteErr("follow relationship", err)
	}
	return affected("follow relationship", tag)
}

func (r *PGFollowRepository) Followers(ctx context.Context, userID int64) ([]domain.UserSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT u.id, u.name FROM user_followers uf
		JOIN users u ON u.id = uf.follower_id
		WHERE uf.user_id=$1
		ORDER BY uf.follow_date, u.id`, userID)
	if err != nil {
		return nil, readErr("followers", err)
	}
	return collect(rows, scanSummary)
}

func (r *PGFollowRepository) Following(ctx context.Context, followerID int64) ([]domain.UserSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT u.id, u.name FROM user_followers uf
		JOIN users u ON u.id = uf.user_id
		WHERE uf.follower_id=$1
		ORDER BY uf.follow_date, u.id`, followerID)
	if err != nil {
		return nil, readErr("following", err)
	}
	return collect(rows, scanSummary)
}

func (r *PGFollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_followers WHERE user_id=$1`, userID).Scan(&n); err != nil {
		return 0, readErr("followers", err)
	}
	return n, nil
}

func (r *PGFollowRepository) CountFollowing(ctx context.Context, followerID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_followers WHERE follower_id=$1`, followerID).Scan(&n); err != nil {
		return 0, readErr("following", err)
	}
	return n, nil
}

var _ FollowRepository = (*PGFollowRepository)(nil)
