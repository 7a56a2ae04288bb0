package flights

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/validation"
)

// OfferingUseCase is the admin surface over economy and business offerings.
type OfferingUseCase interface {
	CreateEconomy(ctx context.Context, flightID int64, input EconomyInput) (*domain.EconomyOffering, error)
	GetEconomy(ctx context.Context, flightID int64) (*domain.EconomyOffering, error)
	ListEconomy(ctx context.Context) ([]domain.EconomyOffering, error)
	UpdateEconomy(ctx context.Context, flightID int64, input EconomyInput) (*domain.EconomyOffering, error)
	DeleteEconomy(ctx context.Context, flightID int64) error

	CreateBusiness(ctx context.Context, flightID int64, input BusinessInput) (*domain.BusinessOffering, error)
	GetBusiness(ctx context.Context, flightID int64) (*domain.BusinessOffering, error)
	ListBusiness(ctx context.Context) ([]domain.BusinessOffering, error)
	UpdateBusiness(ctx context.Context, flightID int64, input BusinessInput) (*domain.BusinessOffering, error)
	DeleteBusiness(ctx context.Context, flightID int64) error
}

type EconomyInput struct {
	AvailableSeats   *int          `json:"available_seats" validate:"required,gte=0"`
	Price            *domain.Money `json:"price" validate:"required,gte=0"`
	BaggageCapacity  *int          `json:"baggage_capacity" validate:"required,gte=0"`
	ExtraBaggageCost *domain.Money `json:"extra_baggage_cost" validate:"required,gte=0"`
}

type BusinessInput struct {
	AvailableSeats   *int          `json:"available_seats" validate:"required,gte=0"`
	Price            *domain.Money `json:"price" validate:"required,gte=0"`
	BaggageAllowance *int          `json:"baggage_allowance" validate:"required,gte=0"`
	LoungeAccess     bool          `json:"lounge_access"`
}

type OfferingService struct {
	repo repository.OfferingRepository
}

func NewOfferingService(repo repository.OfferingRepository) *OfferingService {
	return &OfferingService{repo: repo}
}

func validFlightID(id int64) error {
	if id <= 0 {
		return domain.Invalid("flight_id is required")
	}
	return nil
}

func (in EconomyInput) offering(flightID int64) *domain.EconomyOffering {
	return &domain.EconomyOffering{
		FlightID:         flightID,
		AvailableSeats:   *in.AvailableSeats,
		Price:            *in.Price,
		BaggageCapacity:  *in.BaggageCapacity,
		ExtraBaggageCost: *in.ExtraBaggageCost,
	}
}

func (in BusinessInput) offering(flightID int64) *domain.BusinessOffering {
	return &domain.BusinessOffering{
		FlightID:         flightID,
		AvailableSeats:   *in.AvailableSeats,
		Price:            *in.Price,
		BaggageAllowance: *in.BaggageAllowance,
		LoungeAccess:     in.LoungeAccess,
	}
}

func (s *OfferingService) CreateEconomy(ctx context.Context, flightID int64, input EconomyInput) (*domain.EconomyOffering, error) {
	if err := validFlightID(flightID); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	o := input.offering(flightID)
	if err := s.repo.CreateEconomy(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OfferingService) GetEconomy(ctx context.Context, flightID int64) (*domain.EconomyOffering, error) {
	return s.repo.GetEconomy(ctx, flightID)
}

func (s *OfferingService) ListEconomy(ctx context.Context) ([]domain.EconomyOffering, error) {
	return s.repo.ListEconomy(ctx)
}

func (s *OfferingService) UpdateEconomy(ctx context.Context, flightID int64, input EconomyInput) (*domain.EconomyOffering, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	o := input.offering(flightID)
	if err := s.repo.UpdateEconomy(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OfferingService) DeleteEconomy(ctx context.Context, flightID int64) error {
	return s.repo.DeleteEconomy(ctx, flightID)
}

func (s *OfferingService) CreateBusiness(ctx context.Context, flightID int64, input BusinessInput) (*domain.BusinessOffering, error) {
	if err := validFlightID(flightID); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	o := input.offering(flightID)
	if err := s.repo.CreateBusiness(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OfferingService) GetBusiness(ctx context.Context, flightID int64) (*domain.BusinessOffering, error) {
	return s.repo.GetBusiness(ctx, flightID)
}

func (s *OfferingService) ListBusiness(ctx context.Context) ([]domain.BusinessOffering, error) {
	return s.repo.ListBusiness(ctx)
}

func (s *OfferingService) UpdateBusiness(ctx context.Context, flightID int64, input BusinessInput) (*domain.BusinessOffering, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	o := input.offering(flightID)
	if err := s.repo.UpdateBusiness(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OfferingService) DeleteBusiness(ctx context.Context, flightID int64) error {
	return s.repo.DeleteBusiness(ctx, flightID)
}

var _ OfferingUseCase = (*OfferingService)(nil)
