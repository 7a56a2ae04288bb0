package api

import (
	"net/http"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/meals"
	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	service meals.MealUseCase
}

func NewMealHandler(service meals.MealUseCase) *MealHandler {
	return &MealHandler{service: service}
}

func (h *MealHandler) Register(public, admin *gin.RouterGroup) {
	public.GET("/meals", h.list)
	public.GET("/meals/:id", h.get)

	admin.POST("/meals", h.create)
	admin.PUT("/meals/:id", h.update)
	admin.DELETE("/meals/:id", h.delete)

	for _, class := range []domain.FareClass{domain.FareClassEconomy, domain.FareClassBusiness} {
		base := "/flights/" + string(class) + "/:id/meals"
		admin.GET(base, h.listForOffering(class))
		admin.POST(base, h.attach(class))
		admin.DELETE(base+"/:meal_id", h.detach(class))
	}
}

func (h *MealHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MealHandler) get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	meal, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) create(c *gin.Context) {
	var input meals.MealInput
	if !bindJSON(c, &input) {
		return
	}
	meal, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input meals.MealInput
	if !bindJSON(c, &input) {
		return
	}
	meal, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) delete(c *gin.Context) {
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

func (h *MealHandler) listForOffering(class domain.FareClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		flightID, ok := paramID(c, "id")
		if !ok {
			return
		}
		list, err := h.service.ListForOffering(c.Request.Context(), class, flightID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type attachRequest struct {
	MealID int64 `json:"meal_id"`
}

func (h *MealHandler) attach(class domain.FareClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		flightID, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req attachRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := h.service.Attach(c.Request.Context(), class, flightID, req.MealID); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *MealHandler) detach(class domain.FareClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		flightID, ok := paramID(c, "id")
		if !ok {
			return
		}
		mealID, ok := paramID(c, "meal_id")
		if !ok {
			return
		}
		if err := h.service.Detach(c.Request.Context(), class, flightID, mealID); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
