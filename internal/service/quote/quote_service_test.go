package quote

import (
	"context"
	"testing"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vegetarian = domain.MealOption{ID: 3, MealType: "Vegetarian", Description: "Lentil curry", Cost: 1500}

func economyFare() *domain.FareDetails {
	capacity, extra := 23, domain.Money(4000)
	return &domain.FareDetails{
		FlightID:         7,
		FareClass:        domain.FareClassEconomy,
		Destination:      "Lisbon",
		Airline:          "TAP",
		Date:             "2026-11-02",
		Depart:           "09:30",
		AvailableSeats:   12,
		Price:            25000,
		BaggageCapacity:  &capacity,
		ExtraBaggageCost: &extra,
		Meals:            []domain.MealOption{},
	}
}

func TestComputeTotal(t *testing.T) {
	fare := economyFare()
	fare.Meals = []domain.MealOption{vegetarian}
	mealID := vegetarian.ID
	unknown := int64(99)

	total, err := ComputeTotal(fare, &mealID)
	require.NoError(t, err)
	assert.Equal(t, "265.00", total.String())

	total, err = ComputeTotal(fare, nil)
	require.NoError(t, err)
	assert.Equal(t, fare.Price, total)

	_, err = ComputeTotal(fare, &unknown)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuoteService_GetFareDetails(t *testing.T) {
	fares := &mocks.FareRepository{}
	meals := &mocks.MealRepository{}
	service := NewQuoteService(fares, meals)
	ctx := context.Background()

	fares.On("GetFare", ctx, int64(7), domain.FareClassEconomy).Return(economyFare(), nil).Once()
	meals.On("ListForOffering", ctx, domain.FareClassEconomy, int64(7)).Return([]domain.MealOption{vegetarian}, nil).Once()

	details, err := service.GetFareDetails(ctx, 7, domain.FareClassEconomy)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(25000), details.Price)
	assert.Equal(t, []domain.MealOption{vegetarian}, details.Meals)
	fares.AssertExpectations(t)
	meals.AssertExpectations(t)
}

func TestQuoteService_GetFareDetails_ClassNotSold(t *testing.T) {
	fares := &mocks.FareRepository{}
	service := NewQuoteService(fares, &mocks.MealRepository{})
	ctx := context.Background()

	fares.On("GetFare", ctx, int64(7), domain.FareClassBusiness).Return(nil, domain.NotFound("business fare")).Once()

	_, err := service.GetFareDetails(ctx, 7, domain.FareClassBusiness)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteService_GetFareDetails_BadClass(t *testing.T) {
	service := NewQuoteService(&mocks.FareRepository{}, &mocks.MealRepository{})
	_, err := service.GetFareDetails(context.Background(), 7, domain.FareClass("first"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuoteService_Quote(t *testing.T) {
	fares := &mocks.FareRepository{}
	meals := &mocks.MealRepository{}
	service := NewQuoteService(fares, meals)
	ctx := context.Background()
	mealID := vegetarian.ID

	fares.On("GetFare", ctx, int64(7), domain.FareClassEconomy).Return(economyFare(), nil).Once()
	meals.On("ListForOffering", ctx, domain.FareClassEconomy, int64(7)).Return([]domain.MealOption{vegetarian}, nil).Once()

	q, err := service.Quote(ctx, 7, domain.FareClassEconomy, &mealID)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(26500), q.Total)
	require.NotNil(t, q.Meal)
	assert.Equal(t, "Vegetarian", q.Meal.MealType)
}

func TestQuoteService_Quote_MealFromOtherOffering(t *testing.T) {
	fares := &mocks.FareRepository{}
	meals := &mocks.MealRepository{}
	service := NewQuoteService(fares, meals)
	ctx := context.Background()
	mealID := vegetarian.ID

	fares.On("GetFare", ctx, int64(7), domain.FareClassEconomy).Return(economyFare(), nil).Once()
	meals.On("ListForOffering", ctx, domain.FareClassEconomy, int64(7)).Return([]domain.MealOption{}, nil).Once()

	q, err := service.Quote(ctx, 7, domain.FareClassEconomy, &mealID)

	assert.Nil(t, q)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}
