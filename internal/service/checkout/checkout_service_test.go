package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/mocks"
	"github.com/Domenick1991/altera/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservations struct {
	mock.Mock
}

func (m *MockReservations) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservations) Complete(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) AcquireCheckoutLock(ctx context.Context, reservationID int64, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, reservationID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocker) ReleaseCheckoutLock(ctx context.Context, reservationID int64) error {
	return m.Called(ctx, reservationID).Error(0)
}

type fixture struct {
	reservations *MockReservations
	flights      *mocks.FlightRepository
	gateway      *MockGateway
	locks        *MockLocker
	service      *CheckoutService
}

const secret = "whsec_test"

func newFixture() *fixture {
	f := &fixture{
		reservations: &MockReservations{},
		flights:      &mocks.FlightRepository{},
		gateway:      &MockGateway{},
		locks:        &MockLocker{},
	}
	f.service = NewCheckoutService(f.reservations, f.flights, f.gateway, f.locks,
		payment.NewWebhookVerifier(secret, 0), 30*time.Second)
	return f
}

func pending() *domain.Reservation {
	return &domain.Reservation{ID: 42, UserID: 1, FlightID: 7, FareClass: domain.FareClassEconomy, Price: 26500}
}

func TestCheckoutService_Checkout(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.reservations.On("GetByID", ctx, int64(42)).Return(pending(), nil).Once()
	f.locks.On("AcquireCheckoutLock", ctx, int64(42), 30*time.Second).Return(true, nil).Once()
	f.flights.On("GetByID", ctx, int64(7)).Return(&domain.Flight{ID: 7, Destination: "Lisbon", Airline: "TAP"}, nil).Once()
	f.gateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(req payment.CheckoutRequest) bool {
		return req.AmountMinorUnits == 26500 &&
			req.Title == "TAP flight to Lisbon (economy)" &&
			req.Metadata["reservation_id"] == "42" &&
			req.IdempotencyKey != ""
	})).Return(&payment.Session{ID: "cs_1", RedirectURL: "https://checkout.stripe.com/cs_1"}, nil).Once()

	session, err := f.service.Checkout(ctx, CheckoutInput{ReservationID: 42, Email: "ana@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/cs_1", session.RedirectURL)
	f.gateway.AssertExpectations(t)
	f.locks.AssertNotCalled(t, "ReleaseCheckoutLock", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_AlreadyPaid(t *testing.T) {
	f := newFixture()
	r := pending()
	r.Done = true
	f.reservations.On("GetByID", mock.Anything, int64(42)).Return(r, nil).Once()

	_, err := f.service.Checkout(context.Background(), CheckoutInput{ReservationID: 42})

	assert.ErrorIs(t, err, domain.ErrConflict)
	f.gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_InProgress(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(42)).Return(pending(), nil).Once()
	f.locks.On("AcquireCheckoutLock", mock.Anything, int64(42), mock.Anything).Return(false, nil).Once()

	_, err := f.service.Checkout(context.Background(), CheckoutInput{ReservationID: 42})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "in progress")
}

func TestCheckoutService_Checkout_GatewayFailureReleasesLock(t *testing.T) {
	f := newFixture()
	f.reservations.On("GetByID", mock.Anything, int64(42)).Return(pending(), nil).Once()
	f.locks.On("AcquireCheckoutLock", mock.Anything, int64(42), mock.Anything).Return(true, nil).Once()
	f.locks.On("ReleaseCheckoutLock", mock.Anything, int64(42)).Return(nil).Once()
	f.flights.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.NotFound("flight")).Once()
	f.gateway.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(req payment.CheckoutRequest) bool {
		return req.Title == "Reservation #42"
	})).Return(nil, domain.ErrExternalTimeout).Once()

	_, err := f.service.Checkout(context.Background(), CheckoutInput{ReservationID: 42})

	assert.ErrorIs(t, err, domain.ErrExternalService)
	f.locks.AssertExpectations(t)
}

func signed(body string) (string, []byte) {
	ts := time.Now().Unix()
	return fmt.Sprintf("t=%d,v1=%s", ts, payment.Sign(secret, ts, []byte(body))), []byte(body)
}

func TestCheckoutService_HandleWebhook_Completes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	header, body := signed(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_status":"paid","metadata":{"reservation_id":"42"}}}}`)

	done := pending()
	done.Done = true
	f.reservations.On("Complete", ctx, int64(42)).Return(done, nil).Once()
	f.locks.On("ReleaseCheckoutLock", ctx, int64(42)).Return(nil).Once()

	require.NoError(t, f.service.HandleWebhook(ctx, body, header))
	f.reservations.AssertExpectations(t)
}

func TestCheckoutService_HandleWebhook_IgnoresOtherEvents(t *testing.T) {
	f := newFixture()
	header, body := signed(`{"type":"payment_intent.created","data":{"object":{"id":"pi_1"}}}`)

	require.NoError(t, f.service.HandleWebhook(context.Background(), body, header))
	f.reservations.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandleWebhook_BadSignature(t *testing.T) {
	f := newFixture()
	body := []byte(`{"type":"checkout.session.completed"}`)

	err := f.service.HandleWebhook(context.Background(), body, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestCheckoutService_HandleWebhook_MissingReservation(t *testing.T) {
	f := newFixture()
	header, body := signed(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_status":"paid"}}}`)

	assert.ErrorIs(t, f.service.HandleWebhook(context.Background(), body, header), domain.ErrValidation)
}

func TestCheckoutService_HandleWebhook_UnpaidSessionIgnored(t *testing.T) {
	f := newFixture()
	header, body := signed(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_status":"unpaid","metadata":{"reservation_id":"42"}}}}`)

	require.NoError(t, f.service.HandleWebhook(context.Background(), body, header))
	f.reservations.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	f.locks.AssertNotCalled(t, "ReleaseCheckoutLock", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandleWebhook_AsyncPaymentCompletes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	header, body := signed(`{"type":"checkout.session.async_payment_succeeded","data":{"object":{"id":"cs_1","payment_status":"paid","metadata":{"reservation_id":"42"}}}}`)

	f.reservations.On("Complete", ctx, int64(42)).Return(pending(), nil).Once()
	f.locks.On("ReleaseCheckoutLock", ctx, int64(42)).Return(nil).Once()

	require.NoError(t, f.service.HandleWebhook(ctx, body, header))
	f.reservations.AssertExpectations(t)
}
