package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/altera/internal/hotels"
	"github.com/Domenick1991/altera/internal/recommend"
	"github.com/gin-gonic/gin"
)

// ExternalHandler passes the hotel and recommendation upstreams through.
type ExternalHandler struct {
	hotels      hotels.Searcher
	recommender recommend.Recommender
}

func NewExternalHandler(hotels hotels.Searcher, recommender recommend.Recommender) *ExternalHandler {
	return &ExternalHandler{hotels: hotels, recommender: recommender}
}

func (h *ExternalHandler) Register(public, _ *gin.RouterGroup) {
	public.GET("/hotels/city/:code", h.hotelsByCity)
	public.GET("/hotels/offers/:id", h.hotelOffers)
	public.GET("/recommendations/:id", h.recommendations)
}

func (h *ExternalHandler) hotelsByCity(c *gin.Context) {
	data, err := h.hotels.HotelsByCity(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// hotelOffers takes one id or a comma separated list.
func (h *ExternalHandler) hotelOffers(c *gin.Context) {
	var ids []string
	for _, id := range strings.Split(c.Param("id"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	data, err := h.hotels.HotelOffers(c.Request.Context(), ids)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *ExternalHandler) recommendations(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	data, err := h.recommender.ForUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
