// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/stretchr/testify/mock"
)

type FlightRepository struct {
	mock.Mock
}

func (m *FlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *FlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *FlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *FlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *FlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FlightRepository) Overview(ctx context.Context) ([]domain.FlightOverview, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightOverview), args.Error(1)
}

type FareRepository struct {
	mock.Mock
}

func (m *FareRepository) GetFare(ctx context.Context, flightID int64, class domain.FareClass) (*domain.FareDetails, error) {
	args := m.Called(ctx, flightID, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareDetails), args.Error(1)
}

func (m *FareRepository) Search(ctx context.Context, params domain.SearchParams) ([]domain.FareDetails, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.FareDetails), args.Error(1)
}

type MealRepository struct {
	mock.Mock
}

func (m *MealRepository) List(ctx context.Context) ([]domain.MealOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MealOption), args.Error(1)
}

func (m *MealRepository) GetByID(ctx context.Context, id int64) (*domain.MealOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealOption), args.Error(1)
}

func (m *MealRepository) Create(ctx context.Context, meal *domain.MealOption) error {
	return m.Called(ctx, meal).Error(0)
}

func (m *MealRepository) Update(ctx context.Context, meal *domain.MealOption) error {
	return m.Called(ctx, meal).Error(0)
}

func (m *MealRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MealRepository) Attach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error {
	return m.Called(ctx, class, flightID, mealID).Error(0)
}

func (m *MealRepository) Detach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error {
	return m.Called(ctx, class, flightID, mealID).Error(0)
}

func (m *MealRepository) ListForOffering(ctx context.Context, class domain.FareClass, flightID int64) ([]domain.MealOption, error) {
	args := m.Called(ctx, class, flightID)
	return args.Get(0).([]domain.MealOption), args.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func (m *ReservationRepository) Create(ctx context.Context, r *domain.Reservation, holdSeat bool) error {
	return m.Called(ctx, r, holdSeat).Error(0)
}

func (m *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) Update(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReservationRepository) Delete(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) MarkDone(ctx context.Context, id int64) (*domain.Reservation, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Reservation), args.Bool(1), args.Error(2)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Ensure(ctx context.Context, name, email string) (*domain.User, bool, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}

func (m *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type FollowRepository struct {
	mock.Mock
}

func (m *FollowRepository) Follow(ctx context.Context, userID, followerID int64) error {
	return m.Called(ctx, userID, followerID).Error(0)
}

func (m *FollowRepository) Unfollow(ctx context.Context, userID, followerID int64) error {
	return m.Called(ctx, userID, followerID).Error(0)
}

func (m *FollowRepository) Followers(ctx context.Context, userID int64) ([]domain.UserSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *FollowRepository) Following(ctx context.Context, followerID int64) ([]domain.UserSummary, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *FollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FollowRepository) CountFollowing(ctx context.Context, followerID int64) (int64, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).(int64), args.Error(1)
}

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *PostRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PostRepository) Feed(ctx context.Context, followerID int64) ([]domain.FeedItem, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]domain.FeedItem), args.Error(1)
}

func (m *PostRepository) Vote(ctx context.Context, postID, userID int64, kind domain.VoteKind) error {
	return m.Called(ctx, postID, userID, kind).Error(0)
}

func (m *PostRepository) VoteTotals(ctx context.Context, postID int64) (domain.VoteTotals, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(domain.VoteTotals), args.Error(1)
}

func (m *PostRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *PostRepository) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *PostRepository) UpdateComment(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *PostRepository) DeleteComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Producer records published events.
type Producer struct {
	mock.Mock
}

func (m *Producer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	return m.Called(ctx, topic, key, value).Error(0)
}

var (
	_ repository.FlightRepository      = (*FlightRepository)(nil)
	_ repository.FareRepository        = (*FareRepository)(nil)
	_ repository.MealRepository        = (*MealRepository)(nil)
	_ repository.ReservationRepository = (*ReservationRepository)(nil)
	_ repository.UserRepository        = (*UserRepository)(nil)
	_ repository.FollowRepository      = (*FollowRepository)(nil)
	_ repository.PostRepository        = (*PostRepository)(nil)
)
