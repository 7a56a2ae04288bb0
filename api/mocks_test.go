package api

import (
	"context"
	"encoding/json"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/payment"
	"github.com/Domenick1991/altera/internal/service/checkout"
	"github.com/Domenick1991/altera/internal/service/flights"
	"github.com/Domenick1991/altera/internal/service/reservation"
	"github.com/Domenick1991/altera/internal/service/social"
	"github.com/Domenick1991/altera/internal/service/users"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Overview(ctx context.Context) ([]domain.FlightOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightOverview), args.Error(1)
}

func (m *MockFlightUseCase) Search(ctx context.Context, input flights.SearchInput) ([]domain.FareDetails, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FareDetails), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.FlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, id int64, input flights.FlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFlightUseCase) RefreshCache(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockOfferingUseCase only implements what the tests call.
type MockOfferingUseCase struct {
	mock.Mock
	flights.OfferingUseCase
}

func (m *MockOfferingUseCase) CreateEconomy(ctx context.Context, flightID int64, input flights.EconomyInput) (*domain.EconomyOffering, error) {
	args := m.Called(ctx, flightID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomyOffering), args.Error(1)
}

type MockQuoteUseCase struct {
	mock.Mock
}

func (m *MockQuoteUseCase) GetFareDetails(ctx context.Context, flightID int64, class domain.FareClass) (*domain.FareDetails, error) {
	args := m.Called(ctx, flightID, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareDetails), args.Error(1)
}

func (m *MockQuoteUseCase) Quote(ctx context.Context, flightID int64, class domain.FareClass, mealID *int64) (*domain.Quote, error) {
	args := m.Called(ctx, flightID, class, mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

type MockReservationUseCase struct {
	mock.Mock
	reservation.ReservationUseCase
}

func (m *MockReservationUseCase) Book(ctx context.Context, input reservation.BookInput) (*domain.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCheckoutUseCase struct {
	mock.Mock
}

func (m *MockCheckoutUseCase) Checkout(ctx context.Context, input checkout.CheckoutInput) (*payment.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

func (m *MockCheckoutUseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.Called(ctx, payload, signature).Error(0)
}

type MockSocialUseCase struct {
	mock.Mock
	social.SocialUseCase
}

func (m *MockSocialUseCase) Follow(ctx context.Context, userID, followerID int64) error {
	return m.Called(ctx, userID, followerID).Error(0)
}

func (m *MockSocialUseCase) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialUseCase) Vote(ctx context.Context, input social.VoteInput) error {
	return m.Called(ctx, input).Error(0)
}

type MockUserUseCase struct {
	mock.Mock
	users.UserUseCase
}

func (m *MockUserUseCase) Sync(ctx context.Context, input users.SyncInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) ForUser(ctx context.Context, userID int64) (json.RawMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockHotels struct {
	mock.Mock
}

func (m *MockHotels) HotelsByCity(ctx context.Context, cityCode string) (json.RawMessage, error) {
	args := m.Called(ctx, cityCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockHotels) HotelOffers(ctx context.Context, hotelIDs []string) (json.RawMessage, error) {
	args := m.Called(ctx, hotelIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
