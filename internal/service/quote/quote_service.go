// Package quote composes fare details and prices a fare with an optional meal.
package quote

import (
	"context"
	"fmt"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/repository"
)

type QuoteUseCase interface {
	GetFareDetails(ctx context.Context, flightID int64, class domain.FareClass) (*domain.FareDetails, error)
	Quote(ctx context.Context, flightID int64, class domain.FareClass, mealID *int64) (*domain.Quote, error)
}

type QuoteService struct {
	fares repository.FareRepository
	meals repository.MealRepository
}

func NewQuoteService(fares repository.FareRepository, meals repository.MealRepository) *QuoteService {
	return &QuoteService{fares: fares, meals: meals}
}

// GetFareDetails returns NotFound when the flight does not sell class.
func (s *QuoteService) GetFareDetails(ctx context.Context, flightID int64, class domain.FareClass) (*domain.FareDetails, error) {
	if _, err := domain.ParseFareClass(string(class)); err != nil {
		return nil, err
	}
	details, err := s.fares.GetFare(ctx, flightID, class)
	if err != nil {
		return nil, err
	}
	meals, err := s.meals.ListForOffering(ctx, class, flightID)
	if err != nil {
		return nil, err
	}
	details.Meals = meals
	return details, nil
}

func (s *QuoteService) Quote(ctx context.Context, flightID int64, class domain.FareClass, mealID *int64) (*domain.Quote, error) {
	details, err := s.GetFareDetails(ctx, flightID, class)
	if err != nil {
		return nil, err
	}
	total, err := ComputeTotal(details, mealID)
	if err != nil {
		return nil, err
	}
	q := &domain.Quote{Details: *details, Total: total}
	if mealID != nil {
		meal, _ := details.Meal(*mealID)
		q.Meal = &meal
	}
	return q, nil
}

// ComputeTotal is the fare price plus the cost of the selected meal. A nil
// mealID adds nothing. A meal that is not offered on the fare is rejected
// with ErrInvalidSelection.
func ComputeTotal(details *domain.FareDetails, mealID *int64) (domain.Money, error) {
	if mealID == nil {
		return details.Price, nil
	}
	meal, ok := details.Meal(*mealID)
	if !ok {
		return 0, fmt.Errorf("meal %d on %s fare of flight %d: %w", *mealID, details.FareClass, details.FlightID, domain.ErrInvalidSelection)
	}
	return details.Price.Add(meal.Cost), nil
}

var _ QuoteUseCase = (*QuoteService)(nil)
