package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service reservation.ReservationUseCase
}

func NewReservationHandler(service reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(public, admin *gin.RouterGroup) {
	public.POST("/reservation", h.book)
	public.GET("/reservations/user/:id", h.listForUser)

	admin.GET("/reservations", h.list)
	admin.GET("/reservations/:id", h.get)
	admin.POST("/reservations", h.create)
	admin.PUT("/reservations/:id", h.update)
	admin.DELETE("/reservations/:id", h.delete)
}

func (h *ReservationHandler) book(c *gin.Context) {
	var input reservation.BookInput
	if !bindJSON(c, &input) {
		return
	}
	r, err := h.service.Book(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ReservationHandler) listForUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.service.List(c.Request.Context(), domain.ReservationFilter{UserID: &id})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// list accepts optional user_id and flight_id query filters.
func (h *ReservationHandler) list(c *gin.Context) {
	var filter domain.ReservationFilter
	for key, dst := range map[string]**int64{"user_id": &filter.UserID, "flight_id": &filter.FlightID} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, domain.Invalid("invalid "+key))
			return
		}
		*dst = &v
	}
	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReservationHandler) get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var input reservation.CreateInput
	if !bindJSON(c, &input) {
		return
	}
	r, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ReservationHandler) update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input reservation.UpdateInput
	if !bindJSON(c, &input) {
		return
	}
	r, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReservationHandler) delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
