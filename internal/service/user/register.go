package user

import (
	"github.com/gin-gonic/gin"

	"github.com/rishtahub/rishtahub/internal/app"
)

// Registrar ties the profile endpoints into the HTTP server.
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the profile service.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the profile routes to the engine.
func (r *Registrar) Register(engine *gin.Engine, auth gin.HandlerFunc) {
	h := NewHandler(NewService(r.appCtx))

	g := engine.Group("/users", auth)
	g.GET("/profile", h.HandleOwnProfile)
	g.PUT("/profile", h.HandleUpdateProfile)
	g.GET("/:userId", h.HandleViewProfile)
}
