package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/config"
)

// Registrar ties the auth endpoints into the HTTP server.
// These routes are public; the auth middleware is not applied.
type Registrar struct {
	appCtx *app.AppContext
	cfg    *config.Config
}

// NewRegistrar creates a new Registrar for the auth service.
func NewRegistrar(appCtx *app.AppContext, cfg *config.Config) *Registrar {
	return &Registrar{appCtx: appCtx, cfg: cfg}
}

// Register attaches the auth routes to the engine.
func (r *Registrar) Register(engine *gin.Engine, _ gin.HandlerFunc) {
	h := NewHandler(NewService(r.appCtx, r.cfg))

	g := engine.Group("/auth")
	g.POST("/register", h.HandleRegister)
	g.POST("/login", h.HandleLogin)
}
