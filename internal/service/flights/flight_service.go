package flights

import (
	"context"
	"strings"
	"time"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/validation"
	"github.com/sirupsen/logrus"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Overview(ctx context.Context) ([]domain.FlightOverview, error)
	Search(ctx context.Context, input SearchInput) ([]domain.FareDetails, error)
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	RefreshCache(ctx context.Context) (int, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightInput struct {
	Destination string `json:"destination" validate:"required"`
	Depart      string `json:"depart" validate:"required,datetime=15:04"`
	Airline     string `json:"airline" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SearchInput mirrors the query string of GET /search. Class is required,
// the other filters are optional.
type SearchInput struct {
	Destination string `form:"destination" json:"destination"`
	Class       string `form:"class" json:"class" validate:"required,oneof=economy business"`
	Price       string `form:"price" json:"price"`
}

type FlightService struct {
	repo     repository.FlightRepository
	fares    repository.FareRepository
	cache    FlightCache
	cacheTTL time.Duration
}

func NewFlightService(repo repository.FlightRepository, fares repository.FareRepository, cache FlightCache, cacheTTL time.Duration) *FlightService {
	return &FlightService{repo: repo, fares: fares, cache: cache, cacheTTL: cacheTTL}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			logrus.WithError(err).Warn("flights cache read failed")
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			logrus.WithError(err).Warn("flights cache write failed")
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Overview(ctx context.Context) ([]domain.FlightOverview, error) {
	return s.repo.Overview(ctx)
}

func (s *FlightService) Search(ctx context.Context, input SearchInput) ([]domain.FareDetails, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	params := domain.SearchParams{
		Destination: strings.TrimSpace(input.Destination),
		Class:       domain.FareClass(input.Class),
	}
	if input.Price != "" {
		maxPrice, err := domain.ParseMoney(input.Price)
		if err != nil {
			return nil, err
		}
		params.MaxPrice = &maxPrice
	}
	return s.fares.Search(ctx, params)
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	flight := &domain.Flight{
		Destination: input.Destination,
		Depart:      input.Depart,
		Airline:     input.Airline,
		Date:        input.Date,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	logrus.WithFields(logrus.Fields{"flight_id": flight.ID, "destination": flight.Destination}).Info("flight created")
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	flight := &domain.Flight{
		ID:          id,
		Destination: input.Destination,
		Depart:      input.Depart,
		Airline:     input.Airline,
		Date:        input.Date,
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	logrus.WithField("flight_id", id).Info("flight deleted")
	return nil
}

// RefreshCache reloads the flight list into the cache and returns its size.
func (s *FlightService) RefreshCache(ctx context.Context) (int, error) {
	flights, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			return 0, err
		}
	}
	return len(flights), nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		logrus.WithError(err).Warn("flights cache invalidation failed")
	}
}

var _ FlightUseCase = (*FlightService)(nil)
