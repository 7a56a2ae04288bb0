package repository

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Post, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	// Feed lists posts of the users followerID follows, newest first.
	Feed(ctx context.Context, followerID int64) ([]domain.FeedItem, error)

	// Vote records one vote per (post, user); a second vote is a conflict.
	Vote(ctx context.Context, postID, userID int64, kind domain.VoteKind) error
	VoteTotals(ctx context.Context, postID int64) (domain.VoteTotals, error)

	AddComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, postID int64) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, comment *domain.Comment) error
	DeleteComment(ctx context.Context, id int64) error
}

type PGPostRepository struct {
	db DB
}

func NewPostRepository(db DB) PostRepository {
	return &PGPostRepository{db: db}
}

const postColumns = `id, userid, content, created_at`

func scanPost(row pgx.Row, p *domain.Post) error {
	return row.Scan(&p.ID, &p.UserID, &p.Content, &p.CreatedAt)
}

func (r *PGPostRepository) Create(ctx context.Context, post *domain.Post) error {
	row := r.db.QueryRow(ctx, `INSERT INTO post (userid, content) VALUES ($1, $2) RETURNING `+postColumns, post.UserID, post.Content)
	if err := scanPost(row, post); err != nil {
		return writeErr("post", err)
	}
	return nil
}

func (r *PGPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	if err := scanPost(r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM post WHERE id=$1`, id), &p); err != nil {
		return nil, readErr("post", err)
	}
	return &p, nil
}

func (r *PGPostRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM post WHERE userid=$1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, readErr("posts", err)
	}
	return collect(rows, func(rows pgx.Rows, p *domain.Post) error { return scanPost(rows, p) })
}

func (r *PGPostRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM post WHERE userid=$1`, userID).Scan(&n); err != nil {
		return 0, readErr("posts", err)
	}
	return n, nil
}

func (r *PGPostRepository) Update(ctx context.Context, post *domain.Post) error {
	row := r.db.QueryRow(ctx, `UPDATE post SET content=$1 WHERE id=$2 RETURNING `+postColumns, post.Content, post.ID)
	if err := scanPost(row, post); err != nil {
		return writeErr("post", err)
	}
	return nil
}

func (r *PGPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM post WHERE id=$1`, id)
	if err != nil {
		return deleteErr("post", err)
	}
	return affected("post", tag)
}

func (r *PGPostRepository) Feed(ctx context.Context, followerID int64) ([]domain.FeedItem, error) {
	rows, err := r.db.Query(ctx, `SELECT p.id, p.userid, p.content, p.created_at, u.name,
		COALESCE(SUM(v.upvote), 0), COALESCE(SUM(v.downvote), 0)
		FROM post p
		JOIN user_followers uf ON uf.user_id = p.userid
		JOIN users u ON u.id = p.userid
		LEFT JOIN post_user v ON v.postid = p.id
		WHERE uf.follower_id=$1
		GROUP BY p.id, u.name
		ORDER BY p.created_at DESC, p.id DESC`, followerID)
	if err != nil {
		return nil, readErr("feed", err)
	}
	return collect(rows, func(rows pgx.Rows, f *domain.FeedItem) error {
		return rows.Scan(&f.ID, &f.UserID, &f.Content, &f.CreatedAt, &f.AuthorName, &f.Upvotes, &f.Downvotes)
	})
}

func (r *PGPostRepository) Vote(ctx context.Context, postID, userID int64, kind domain.VoteKind) error {
	up, down := 0, 0
	if kind == domain.VoteUp {
		up = 1
	} else {
		down = 1
	}
	if _, err := r.db.Exec(ctx, `INSERT INTO post_user (postid, userid, upvote, downvote) VALUES ($1, $2, $3, $4)`,
		postID, userID, up, down); err != nil {
		return writeErr("vote", err)
	}
	return nil
}

func (r *PGPostRepository) VoteTotals(ctx context.Context, postID int64) (domain.VoteTotals, error) {
	var t domain.VoteTotals
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(upvote), 0), COALESCE(SUM(downvote), 0) FROM post_user WHERE postid=$1`, postID).
		Scan(&t.Upvotes, &t.Downvotes)
	if err != nil {
		return t, readErr("votes", err)
	}
	return t, nil
}

const commentColumns = `id, postid, user_id, comment_content, created_at`

func scanComment(row pgx.Row, c *domain.Comment) error {
	return row.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt)
}

func (r *PGPostRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	row := r.db.QueryRow(ctx, `INSERT INTO post_comment (postid, user_id, comment_content) VALUES ($1, $2, $3) RETURNING `+commentColumns,
		comment.PostID, comment.UserID, comment.Content)
	if err := scanComment(row, comment); err != nil {
		return writeErr("comment", err)
	}
	return nil
}

func (r *PGPostRepository) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT c.id, c.postid, c.user_id, u.name, c.comment_content, c.created_at
		FROM post_comment c
		JOIN users u ON u.id = c.user_id
		WHERE c.postid=$1
		ORDER BY c.created_at, c.id`, postID)
	if err != nil {
		return nil, readErr("comments", err)
	}
	return collect(rows, func(rows pgx.Rows, c *domain.Comment) error {
		return rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt)
	})
}

func (r *PGPostRepository) UpdateComment(ctx context.Context, comment *domain.Comment) error {
	row := r.db.QueryRow(ctx, `UPDATE post_comment SET comment_content=$1 WHERE id=$2 RETURNING `+commentColumns, comment.Content, comment.ID)
	if err := scanComment(row, comment); err != nil {
		return writeErr("comment", err)
	}
	return nil
}

func (r *PGPostRepository) DeleteComment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM post_comment WHERE id=$1`, id)
	if err != nil {
		return deleteErr("comment", err)
	}
	return affected("comment", tag)
}

var _ PostRepository = (*PGPostRepository)(nil)
