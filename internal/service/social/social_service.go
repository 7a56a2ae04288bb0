// Package social covers follows, posts, votes and comments.
package social

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/validation"
)

type SocialUseCase interface {
	Follow(ctx context.Context, userID, followerID int64) error
	Unfollow(ctx context.Context, userID, followerID int64) error
	ListFollowerNames(ctx context.Context, userID int64) ([]domain.UserSummary, error)
	ListFollowingNames(ctx context.Context, userID int64) ([]domain.UserSummary, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)

	CreatePost(ctx context.Context, input PostInput) (*domain.Post, error)
	ListPosts(ctx context.Context, userID int64) ([]domain.Post, error)
	CountPosts(ctx context.Context, userID int64) (int64, error)
	UpdatePost(ctx context.Context, id int64, content string) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
	Feed(ctx context.Context, userID int64) ([]domain.FeedItem, error)

	Vote(ctx context.Context, input VoteInput) error
	VoteTotals(ctx context.Context, postID int64) (domain.VoteTotals, error)

	AddComment(ctx context.Context, input CommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, id int64, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type PostInput struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=2000"`
}

type VoteInput struct {
	PostID int64  `json:"post_id" validate:"required,gt=0"`
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Kind   string `json:"kind" validate:"required,oneof=up down"`
}

type CommentInput struct {
	PostID  int64  `json:"post_id" validate:"required,gt=0"`
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"comment_content" validate:"required,max=2000"`
}

type contentInput struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type SocialService struct {
	follows repository.FollowRepository
	posts   repository.PostRepository
}

func NewSocialService(follows repository.FollowRepository, posts repository.PostRepository) *SocialService {
	return &SocialService{follows: follows, posts: posts}
}

// Follow records that followerID follows userID. A repeated follow is a
// conflict, never a second edge.
func (s *SocialService) Follow(ctx context.Context, userID, followerID int64) error {
	if userID <= 0 || followerID <= 0 {
		return domain.Invalid("user_id and follower_id are required")
	}
	if userID == followerID {
		return domain.Invalid("users cannot follow themselves")
	}
	return s.follows.Follow(ctx, userID, followerID)
}

func (s *SocialService) Unfollow(ctx context.Context, userID, followerID int64) error {
	return s.follows.Unfollow(ctx, userID, followerID)
}

func (s *SocialService) ListFollowerNames(ctx context.Context, userID int64) ([]domain.UserSummary, error) {
	return s.follows.Followers(ctx, userID)
}

func (s *SocialService) ListFollowingNames(ctx context.Context, userID int64) ([]domain.UserSummary, error) {
	return s.follows.Following(ctx, userID)
}

func (s *SocialService) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	return s.follows.CountFollowers(ctx, userID)
}

func (s *SocialService) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	return s.follows.CountFollowing(ctx, userID)
}

func (s *SocialService) CreatePost(ctx context.Context, input PostInput) (*domain.Post, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	post := &domain.Post{UserID: input.UserID, Content: input.Content}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *SocialService) ListPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	return s.posts.ListByUser(ctx, userID)
}

func (s *SocialService) CountPosts(ctx context.Context, userID int64) (int64, error) {
	return s.posts.CountByUser(ctx, userID)
}

func (s *SocialService) UpdatePost(ctx context.Context, id int64, content string) (*domain.Post, error) {
	if err := validation.Struct(contentInput{Content: content}); err != nil {
		return nil, err
	}
	post := &domain.Post{ID: id, Content: content}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *SocialService) DeletePost(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

func (s *SocialService) Feed(ctx context.Context, userID int64) ([]domain.FeedItem, error) {
	return s.posts.Feed(ctx, userID)
}

// Vote allows one vote per user per post.
func (s *SocialService) Vote(ctx context.Context, input VoteInput) error {
	if err := validation.Struct(input); err != nil {
		return err
	}
	return s.posts.Vote(ctx, input.PostID, input.UserID, domain.VoteKind(input.Kind))
}

func (s *SocialService) VoteTotals(ctx context.Context, postID int64) (domain.VoteTotals, error) {
	return s.posts.VoteTotals(ctx, postID)
}

func (s *SocialService) AddComment(ctx context.Context, input CommentInput) (*domain.Comment, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	comment := &domain.Comment{PostID: input.PostID, UserID: input.UserID, Content: input.Content}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *SocialService) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.posts.ListComments(ctx, postID)
}

func (s *SocialService) UpdateComment(ctx context.Context, id int64, content string) (*domain.Comment, error) {
	if err := validation.Struct(contentInput{Content: content}); err != nil {
		return nil, err
	}
	comment := &domain.Comment{ID: id, Content: content}
	if err := s.posts.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *SocialService) DeleteComment(ctx context.Context, id int64) error {
	return s.posts.DeleteComment(ctx, id)
}

var _ SocialUseCase = (*SocialService)(nil)
