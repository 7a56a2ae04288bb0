package meals

import (
	"context"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/repository"
	"github.com/Domenick1991/altera/internal/validation"
	"github.com/sirupsen/logrus"
)

type MealUseCase interface {
	List(ctx context.Context) ([]domain.MealOption, error)
	GetByID(ctx context.Context, id int64) (*domain.MealOption, error)
	Create(ctx context.Context, input MealInput) (*domain.MealOption, error)
	Update(ctx context.Context, id int64, input MealInput) (*domain.MealOption, error)
	Delete(ctx context.Context, id int64) error

	Attach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error
	Detach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error
	ListForOffering(ctx context.Context, class domain.FareClass, flightID int64) ([]domain.MealOption, error)
}

type MealInput struct {
	Snack       bool          `json:"snack"`
	MealType    string        `json:"meal_type" validate:"required"`
	Description string        `json:"description"`
	Cost        *domain.Money `json:"cost" validate:"required,gte=0"`
}

type MealService struct {
	repo repository.MealRepository
}

func NewMealService(repo repository.MealRepository) *MealService {
	return &MealService{repo: repo}
}

func (s *MealService) List(ctx context.Context) ([]domain.MealOption, error) {
	return s.repo.List(ctx)
}

func (s *MealService) GetByID(ctx context.Context, id int64) (*domain.MealOption, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MealService) Create(ctx context.Context, input MealInput) (*domain.MealOption, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	meal := &domain.MealOption{Snack: input.Snack, MealType: input.MealType, Description: input.Description, Cost: *input.Cost}
	if err := s.repo.Create(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Update(ctx context.Context, id int64, input MealInput) (*domain.MealOption, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	meal := &domain.MealOption{ID: id, Snack: input.Snack, MealType: input.MealType, Description: input.Description, Cost: *input.Cost}
	if err := s.repo.Update(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *MealService) Attach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error {
	if err := s.repo.Attach(ctx, class, flightID, mealID); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"class": class, "flight_id": flightID, "meal_id": mealID}).Info("meal attached")
	return nil
}

func (s *MealService) Detach(ctx context.Context, class domain.FareClass, flightID, mealID int64) error {
	return s.repo.Detach(ctx, class, flightID, mealID)
}

func (s *MealService) ListForOffering(ctx context.Context, class domain.FareClass, flightID int64) ([]domain.MealOption, error) {
	return s.repo.ListForOffering(ctx, class, flightID)
}

var _ MealUseCase = (*MealService)(nil)
