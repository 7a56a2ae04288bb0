package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/altera/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Registrar is implemented by every handler. Admin routes are mounted
// behind RequireAdmin.
type Registrar interface {
	Register(public, admin *gin.RouterGroup)
}

type HealthCheck func(ctx context.Context) error

type RouterConfig struct {
	Auth       *middleware.Authenticator
	SwaggerDir string
	Health     map[string]HealthCheck
	Logger     logrus.FieldLogger
}

func NewRouter(cfg RouterConfig, handlers ...Registrar) *gin.Engine {
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(cfg.Logger))

	r.GET("/health", health(cfg.Health))

	if cfg.SwaggerDir != "" {
		r.Static("/swagger", cfg.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	}

	public := r.Group("/")
	admin := r.Group("/admin", cfg.Auth.RequireAdmin())
	for _, h := range handlers {
		h.Register(public, admin)
	}
	return r
}

func health(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		result := gin.H{}
		for name, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				logrus.WithError(err).WithField("check", name).Warn("health check failed")
				result[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			result[name] = "up"
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": result})
	}
}
