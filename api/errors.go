package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrExternalTimeout):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// writeError renders err with the status its kind maps to. Messages of
// unexpected errors stay in the log.
func writeError(c *gin.Context, err error) {
	code := statusOf(err)
	msg := err.Error()
	switch {
	case code == http.StatusGatewayTimeout:
		msg = "upstream service timed out"
	case code == http.StatusInternalServerError && errors.Is(err, domain.ErrExternalService):
		logrus.WithError(err).WithField("path", c.FullPath()).Error("upstream call failed")
		msg = "upstream service failed"
	case code == http.StatusInternalServerError:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		msg = "internal error"
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, domain.Invalid("invalid request body: "+err.Error()))
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, domain.Invalid("invalid "+name))
		return 0, false
	}
	return id, true
}
