// Package checkout turns a pending reservation into a hosted payment page
// and completes it when the payment provider confirms.
package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/payment"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/validation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const metadataReservationID = "reservation_id"

type CheckoutUseCase interface {
	Checkout(ctx context.Context, input CheckoutInput) (*payment.Session, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type CheckoutInput struct {
	ReservationID int64  `json:"reservation_id" validate:"required,gt=0"`
	Email         string `json:"email" validate:"omitempty,email"`
}

type Reservations interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Complete(ctx context.Context, id int64) (*domain.Reservation, error)
}

type Locker interface {
	AcquireCheckoutLock(ctx context.Context, reservationID int64, ttl time.Duration) (bool, error)
	ReleaseCheckoutLock(ctx context.Context, reservationID int64) error
}

type Verifier interface {
	Parse(payload []byte, header string) (*payment.Event, error)
}

type CheckoutService struct {
	reservations Reservations
	flights      repository.FlightRepository
	gateway      payment.Gateway
	locks        Locker
	verifier     Verifier
	lockTTL      time.Duration
}

func NewCheckoutService(
	reservations Reservations,
	flights repository.FlightRepository,
	gateway payment.Gateway,
	locks Locker,
	verifier Verifier,
	lockTTL time.Duration,
) *CheckoutService {
	return &CheckoutService{
		reservations: reservations,
		flights:      flights,
		gateway:      gateway,
		locks:        locks,
		verifier:     verifier,
		lockTTL:      lockTTL,
	}
}

// Checkout charges the reservation's stored price, never a client supplied
// amount. Only one session per reservation may be in flight at a time.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*payment.Session, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	r, err := s.reservations.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if r.Done {
		return nil, domain.Conflict("reservation is already paid")
	}

	acquired, err := s.locks.AcquireCheckoutLock(ctx, r.ID, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire checkout lock: %w", err)
	}
	if !acquired {
		return nil, domain.Conflict("checkout already in progress")
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		Title:            s.title(ctx, r),
		AmountMinorUnits: r.Price.MinorUnits(),
		PayerEmail:       input.Email,
		Metadata:         map[string]string{metadataReservationID: strconv.FormatInt(r.ID, 10)},
		IdempotencyKey:   uuid.NewString(),
	})
	if err != nil {
		if rerr := s.locks.ReleaseCheckoutLock(ctx, r.ID); rerr != nil {
			logrus.WithError(rerr).WithField("reservation_id", r.ID).Warn("failed to release checkout lock")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"reservation_id": r.ID,
		"session_id":     session.ID,
		"amount":         r.Price.String(),
	}).Info("checkout session created")
	return session, nil
}

func (s *CheckoutService) title(ctx context.Context, r *domain.Reservation) string {
	flight, err := s.flights.GetByID(ctx, r.FlightID)
	if err != nil {
		return fmt.Sprintf("Reservation #%d", r.ID)
	}
	return fmt.Sprintf("%s flight to %s (%s)", flight.Airline, flight.Destination, r.FareClass)
}

// HandleWebhook completes the reservation named by a paid checkout session.
// Other event types and unpaid sessions are acknowledged and ignored.
func (s *CheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.verifier.Parse(payload, signature)
	if err != nil {
		return err
	}
	if ev.Type != payment.EventCheckoutCompleted && ev.Type != payment.EventAsyncPaymentSucceeded {
		logrus.WithField("type", ev.Type).Debug("ignoring payment event")
		return nil
	}
	// Delayed payment methods complete the session unpaid and settle later
	// with an async_payment_succeeded event.
	if ev.Data.Object.PaymentStatus != payment.PaymentStatusPaid {
		logrus.WithFields(logrus.Fields{
			"session_id":     ev.Data.Object.ID,
			"payment_status": ev.Data.Object.PaymentStatus,
		}).Info("checkout session not paid yet")
		return nil
	}

	raw := ev.Data.Object.Metadata[metadataReservationID]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return domain.Invalid("checkout session has no reservation_id")
	}

	if _, err := s.reservations.Complete(ctx, id); err != nil {
		return err
	}
	if err := s.locks.ReleaseCheckoutLock(ctx, id); err != nil {
		logrus.WithError(err).WithField("reservation_id", id).Warn("failed to release checkout lock")
	}
	return nil
}

var _ CheckoutUseCase = (*CheckoutService)(nil)
