package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockOfferingUseCase{})

	c, w := newContext(http.MethodGet, "/flights", "")

	list := []domain.Flight{
		{ID: 7, Destination: "Lisbon", Depart: "08:30", Airline: "TAP", Date: "2026-05-01"},
	}
	mockService.On("List", c.Request.Context()).Return(list, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":7,"destination":"Lisbon","depart":"08:30","airline":"TAP","date":"2026-05-01"}]`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockOfferingUseCase{})

	c, w := newContext(http.MethodGet, "/flights/7", "", gin.Param{Key: "id", Value: "7"})
	mockService.On("GetByID", c.Request.Context(), int64(7)).Return(&domain.Flight{ID: 7, Destination: "Lisbon"}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockOfferingUseCase{})

	c, w := newContext(http.MethodGet, "/flights/99", "", gin.Param{Key: "id", Value: "99"})
	mockService.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.NotFound("flight"))

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"flight not found"}`, w.Body.String())
}

func TestFlightHandler_get_InvalidID(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockOfferingUseCase{})

	c, w := newContext(http.MethodGet, "/flights/abc", "", gin.Param{Key: "id", Value: "abc"})

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockOfferingUseCase{})

	c, w := newContext(http.MethodGet, "/search?destination=Lisbon&class=economy&price=300", "")
	input := flights.SearchInput{Destination: "Lisbon", Class: "economy", Price: "300"}
	mockService.On("Search", mock.Anything, input).Return([]domain.FareDetails{{FlightID: 7, Price: 25000}}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"250.00"`)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_create(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockOfferingUseCase{})

	body := `{"destination":"Lisbon","depart":"08:30","airline":"TAP","date":"2026-05-01"}`
	c, w := newContext(http.MethodPost, "/admin/flights", body)
	input := flights.FlightInput{Destination: "Lisbon", Depart: "08:30", Airline: "TAP", Date: "2026-05-01"}
	mockService.On("Create", mock.Anything, input).Return(&domain.Flight{ID: 8, Destination: "Lisbon"}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_delete_Referenced(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockOfferingUseCase{})

	c, w := newContext(http.MethodDelete, "/admin/flights/7", "", gin.Param{Key: "id", Value: "7"})
	mockService.On("Delete", mock.Anything, int64(7)).Return(domain.Conflict("flight is still referenced by reservations"))

	handler.delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFlightHandler_createEconomy(t *testing.T) {
	offerings := &MockOfferingUseCase{}
	handler := NewFlightHandler(&MockFlightUseCase{}, offerings)

	body := `{"available_seats":1,"price":"250.00","baggage_capacity":23,"extra_baggage_cost":40}`
	c, w := newContext(http.MethodPost, "/admin/flights/economy/7", body, gin.Param{Key: "id", Value: "7"})
	offerings.On("CreateEconomy", mock.Anything, int64(7), mock.MatchedBy(func(in flights.EconomyInput) bool {
		return *in.AvailableSeats == 1 && *in.Price == domain.Money(25000) && *in.ExtraBaggageCost == domain.Money(4000)
	})).Return(&domain.EconomyOffering{FlightID: 7, AvailableSeats: 1, Price: 25000}, nil)

	handler.createEconomy(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	offerings.AssertExpectations(t)
}
