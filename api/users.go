package api

import (
	"net/http"

	"github.com/Domenick1991/altera/internal/service/users"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service users.UserUseCase
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(public, admin *gin.RouterGroup) {
	public.POST("/auth/sync", h.sync)
	public.GET("/users/:id", h.get)
	public.GET("/users/by-email/:email", h.getByEmail)

	admin.GET("/users", h.list)
	admin.POST("/users", h.create)
	admin.PUT("/users/:id", h.update)
	admin.DELETE("/users/:id", h.delete)
}

// sync is called by the frontend after sign-in.
func (h *UserHandler) sync(c *gin.Context) {
	var input users.SyncInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := h.service.Sync(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) getByEmail(c *gin.Context) {
	user, err := h.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) create(c *gin.Context) {
	var input users.UserInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input users.UserInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) delete(c *gin.Context) {
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
