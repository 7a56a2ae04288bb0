package api

import (
	"net/http"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/quote"
	"github.com/gin-gonic/gin"
)

type FareHandler struct {
	quotes quote.QuoteUseCase
}

func NewFareHandler(quotes quote.QuoteUseCase) *FareHandler {
	return &FareHandler{quotes: quotes}
}

func (h *FareHandler) Register(public, _ *gin.RouterGroup) {
	public.GET("/economyflight/:id", h.details(domain.FareClassEconomy))
	public.GET("/businessflight/:id", h.details(domain.FareClassBusiness))
	public.POST("/quotes", h.quote)
}

func (h *FareHandler) details(class domain.FareClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		details, err := h.quotes.GetFareDetails(c.Request.Context(), id, class)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

type quoteRequest struct {
	FlightID  int64  `json:"flight_id"`
	FareClass string `json:"fare_class"`
	MealID    *int64 `json:"meal_id"`
}

func (h *FareHandler) quote(c *gin.Context) {
	var req quoteRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.FlightID <= 0 {
		writeError(c, domain.Invalid("flight_id is required"))
		return
	}
	class, err := domain.ParseFareClass(req.FareClass)
	if err != nil {
		writeError(c, err)
		return
	}
	q, err := h.quotes.Quote(c.Request.Context(), req.FlightID, class, req.MealID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}
