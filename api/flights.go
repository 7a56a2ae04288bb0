package api

import (
	"net/http"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service   flights.FlightUseCase
	offerings flights.OfferingUseCase
}

func NewFlightHandler(service flights.FlightUseCase, offerings flights.OfferingUseCase) *FlightHandler {
	return &FlightHandler{service: service, offerings: offerings}
}

func (h *FlightHandler) Register(public, admin *gin.RouterGroup) {
	public.GET("/flights", h.list)
	public.GET("/flights/overview", h.overview)
	public.GET("/flights/:id", h.get)
	public.GET("/search", h.search)

	admin.POST("/flights", h.create)
	admin.PUT("/flights/:id", h.update)
	admin.DELETE("/flights/:id", h.delete)

	admin.GET("/flights/economy", h.listEconomy)
	admin.GET("/flights/economy/:id", h.getEconomy)
	admin.POST("/flights/economy/:id", h.createEconomy)
	admin.PUT("/flights/economy/:id", h.updateEconomy)
	admin.DELETE("/flights/economy/:id", h.deleteEconomy)

	admin.GET("/flights/business", h.listBusiness)
	admin.GET("/flights/business/:id", h.getBusiness)
	admin.POST("/flights/business/:id", h.createBusiness)
	admin.PUT("/flights/business/:id", h.updateBusiness)
	admin.DELETE("/flights/business/:id", h.deleteBusiness)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) overview(c *gin.Context) {
	list, err := h.service.Overview(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// search serves GET /search?destination=&class=&price=.
func (h *FlightHandler) search(c *gin.Context) {
	var input flights.SearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		writeError(c, domain.Invalid("invalid query: "+err.Error()))
		return
	}
	fares, err := h.service.Search(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fares)
}

func (h *FlightHandler) create(c *gin.Context) {
	var input flights.FlightInput
	if !bindJSON(c, &input) {
		return
	}
	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input flights.FlightInput
	if !bindJSON(c, &input) {
		return
	}
	flight, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
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

func (h *FlightHandler) listEconomy(c *gin.Context) {
	list, err := h.offerings.ListEconomy(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) getEconomy(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.offerings.GetEconomy(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *FlightHandler) createEconomy(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input flights.EconomyInput
	if !bindJSON(c, &input) {
		return
	}
	o, err := h.offerings.CreateEconomy(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *FlightHandler) updateEconomy(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input flights.EconomyInput
	if !bindJSON(c, &input) {
		return
	}
	o, err := h.offerings.UpdateEconomy(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *FlightHandler) deleteEconomy(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.offerings.DeleteEconomy(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) listBusiness(c *gin.Context) {
	list, err := h.offerings.ListBusiness(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) getBusiness(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.offerings.GetBusiness(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *FlightHandler) createBusiness(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input flights.BusinessInput
	if !bindJSON(c, &input) {
		return
	}
	o, err := h.offerings.CreateBusiness(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *FlightHandler) updateBusiness(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input flights.BusinessInput
	if !bindJSON(c, &input) {
		return
	}
	o, err := h.offerings.UpdateBusiness(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *FlightHandler) deleteBusiness(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.offerings.DeleteBusiness(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
