package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/kafka"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/service/quote"
	"github.com/Domenick1991/altera/internal/validation"
	"github.com/sirupsen/logrus"
)

type ReservationUseCase interface {
	// Book prices the selection on the server and stores that total.
	Book(ctx context.Context, input BookInput) (*domain.Reservation, error)
	// Create stores a reservation at the given price (admin path).
	Create(ctx context.Context, input CreateInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	// Complete marks a pending reservation paid. Completing twice is a no-op.
	Complete(ctx context.Context, id int64) (*domain.Reservation, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	UserID    int64  `json:"user_id" validate:"required,gt=0"`
	FlightID  int64  `json:"flight_id" validate:"required,gt=0"`
	FareClass string `json:"fare_class" validate:"required,oneof=economy business"`
	MealID    *int64 `json:"meal_id"`
	// Price is the total the client was shown. When set it must match.
	Price *domain.Money `json:"price"`
}

type CreateInput struct {
	UserID    int64         `json:"user_id" validate:"required,gt=0"`
	FlightID  int64         `json:"flight_id" validate:"required,gt=0"`
	FareClass string        `json:"fare_class" validate:"required,oneof=economy business"`
	MealID    *int64        `json:"meal_id"`
	Price     *domain.Money `json:"price" validate:"required,gte=0"`
}

type UpdateInput struct {
	CreateInput
	Done bool `json:"done"`
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	users              repository.UserRepository
	quotes             quote.QuoteUseCase
	producer           Producer
	reservationTopic   string
	notificationsTopic string
	enforceInventory   bool
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

// WithInventory switches the seat compare-and-decrement on booking.
func WithInventory(enforce bool) ReservationServiceOption {
	return func(s *ReservationService) {
		s.enforceInventory = enforce
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	users repository.UserRepository,
	quotes quote.QuoteUseCase,
	producer Producer,
	reservationTopic string,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:     reservations,
		users:            users,
		quotes:           quotes,
		producer:         producer,
		reservationTopic: reservationTopic,
		enforceInventory: true,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReservationService) Book(ctx context.Context, input BookInput) (*domain.Reservation, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	class := domain.FareClass(input.FareClass)
	q, err := s.quotes.Quote(ctx, input.FlightID, class, input.MealID)
	if err != nil {
		return nil, err
	}
	if input.Price != nil && *input.Price != q.Total {
		return nil, domain.Invalid(fmt.Sprintf("price %s does not match current total %s", *input.Price, q.Total))
	}

	r := &domain.Reservation{
		UserID:    input.UserID,
		FlightID:  input.FlightID,
		FareClass: class,
		MealID:    input.MealID,
		Price:     q.Total,
	}
	if err := s.reservations.Create(ctx, r, s.enforceInventory); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"reservation_id": r.ID,
		"user_id":        r.UserID,
		"flight_id":      r.FlightID,
		"fare_class":     r.FareClass,
		"price":          r.Price.String(),
	}).Info("reservation booked")
	s.publish(ctx, kafka.EventReservationCreated, r, user.Email)
	return r, nil
}

func (s *ReservationService) Create(ctx context.Context, input CreateInput) (*domain.Reservation, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	r := &domain.Reservation{
		UserID:    input.UserID,
		FlightID:  input.FlightID,
		FareClass: domain.FareClass(input.FareClass),
		MealID:    input.MealID,
		Price:     *input.Price,
	}
	if err := s.reservations.Create(ctx, r, s.enforceInventory); err != nil {
		return nil, err
	}
	s.publish(ctx, kafka.EventReservationCreated, r, s.emailOf(ctx, r.UserID))
	return r, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, filter)
}

func (s *ReservationService) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Reservation, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	r := &domain.Reservation{
		ID:        id,
		UserID:    input.UserID,
		FlightID:  input.FlightID,
		FareClass: domain.FareClass(input.FareClass),
		MealID:    input.MealID,
		Price:     *input.Price,
		Done:      input.Done,
	}
	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.reservations.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.publish(ctx, kafka.EventReservationDeleted, deleted, s.emailOf(ctx, deleted.UserID))
	return nil
}

func (s *ReservationService) Complete(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, changed, err := s.reservations.MarkDone(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed {
		logrus.WithField("reservation_id", id).Info("reservation completed")
		s.publish(ctx, kafka.EventReservationCompleted, r, s.emailOf(ctx, r.UserID))
	}
	return r, nil
}

func (s *ReservationService) emailOf(ctx context.Context, userID int64) string {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("reservation event without recipient")
		return ""
	}
	return user.Email
}

// publish is best effort: a broker failure never fails the request.
func (s *ReservationService) publish(ctx context.Context, eventType string, r *domain.Reservation, email string) {
	if s.producer == nil || s.reservationTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		Type:          eventType,
		ReservationID: r.ID,
		UserID:        r.UserID,
		Email:         email,
		FlightID:      r.FlightID,
		FareClass:     r.FareClass,
		Price:         r.Price,
		Done:          r.Done,
		OccurredAt:    time.Now().UTC(),
	}
	key := fmt.Sprintf("reservation-%d", r.ID)
	log := logrus.WithFields(logrus.Fields{"event": eventType, "reservation_id": r.ID})
	if err := s.producer.Publish(ctx, s.reservationTopic, key, event); err != nil {
		log.WithError(err).Warn("failed to publish reservation event")
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.WithError(err).Warn("failed to publish notification")
		}
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
