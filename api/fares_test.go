package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFareHandler_details(t *testing.T) {
	quotes := &MockQuoteUseCase{}
	handler := NewFareHandler(quotes)

	c, w := newContext(http.MethodGet, "/businessflight/7", "", gin.Param{Key: "id", Value: "7"})
	lounge := true
	quotes.On("GetFareDetails", mock.Anything, int64(7), domain.FareClassBusiness).Return(&domain.FareDetails{
		FlightID: 7, FareClass: domain.FareClassBusiness, Price: 90000, LoungeAccess: &lounge,
	}, nil)

	handler.details(domain.FareClassBusiness)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lounge_access":true`)
	assert.NotContains(t, w.Body.String(), "baggage_capacity")
}

func TestFareHandler_quote(t *testing.T) {
	quotes := &MockQuoteUseCase{}
	handler := NewFareHandler(quotes)

	c, w := newContext(http.MethodPost, "/quotes", `{"flight_id":7,"fare_class":"economy","meal_id":3}`)
	meal := int64(3)
	quotes.On("Quote", mock.Anything, int64(7), domain.FareClassEconomy, &meal).Return(&domain.Quote{
		Details: domain.FareDetails{FlightID: 7, FareClass: domain.FareClassEconomy, Price: 25000},
		Meal:    &domain.MealOption{ID: 3, MealType: "Vegetarian", Cost: 1500},
		Total:   26500,
	}, nil)

	handler.quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":"265.00"`)
	quotes.AssertExpectations(t)
}

func TestFareHandler_quote_InvalidSelection(t *testing.T) {
	quotes := &MockQuoteUseCase{}
	handler := NewFareHandler(quotes)

	c, w := newContext(http.MethodPost, "/quotes", `{"flight_id":7,"fare_class":"economy","meal_id":8}`)
	quotes.On("Quote", mock.Anything, int64(7), domain.FareClassEconomy, mock.Anything).Return(nil, domain.ErrInvalidSelection)

	handler.quote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFareHandler_quote_BadClass(t *testing.T) {
	quotes := &MockQuoteUseCase{}
	handler := NewFareHandler(quotes)

	c, w := newContext(http.MethodPost, "/quotes", `{"flight_id":7,"fare_class":"first"}`)

	handler.quote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	quotes.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
