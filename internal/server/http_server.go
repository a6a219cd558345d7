package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/config"
)

// NewRouter builds the gin engine, wires the base middleware and health
// endpoint, and lets every registrar attach its routes.
func NewRouter(cfg *config.Config, appCtx *app.AppContext, registrars ...Registrar) *gin.Engine {
	if cfg.App.ENV != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID())

	engine.GET("/health", func(c *gin.Context) {
		services := map[string]string{"db": "ok", "redis": "ok"}
		status := http.StatusOK

		if sqlDB, err := appCtx.DB.DB(); err != nil {
			services["db"] = "error: " + err.Error()
			status = http.StatusServiceUnavailable
		} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			services["db"] = "error: " + err.Error()
			status = http.StatusServiceUnavailable
		}

		if err := appCtx.RedisCache.Ping(c.Request.Context()); err != nil {
			services["redis"] = "error: " + err.Error()
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{"services": services})
	})

	auth := AuthRequired(cfg)
	for _, r := range registrars {
		r.Register(engine, auth)
	}

	return engine
}

// StartHTTPServer boots the HTTP server and blocks until it exits.
func StartHTTPServer(cfg *config.Config, appCtx *app.AppContext, registrars ...Registrar) error {
	engine := NewRouter(cfg, appCtx, registrars...)
	return engine.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port)
}
