package search

import (
	"github.com/gin-gonic/gin"

	"github.com/rishtahub/rishtahub/internal/app"
)

// Registrar ties the candidate-search endpoint into the HTTP server.
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the search service.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the search route to the engine.
func (r *Registrar) Register(engine *gin.Engine, auth gin.HandlerFunc) {
	h := NewHandler(NewService(r.appCtx))
	engine.GET("/users/search", auth, h.HandleSearch)
}
