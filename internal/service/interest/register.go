package interest

import (
	"github.com/gin-gonic/gin"

	"github.com/rishtahub/rishtahub/internal/app"
)

// Registrar ties the interest lifecycle endpoints into the HTTP server.
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the interest service.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the interest routes to the engine.
func (r *Registrar) Register(engine *gin.Engine, auth gin.HandlerFunc) {
	h := NewHandler(NewService(r.appCtx))

	g := engine.Group("/interests", auth)
	g.POST("", h.HandleSend)
	g.GET("/received", h.HandleListReceived)
	g.GET("/received/count", h.HandleCountReceived)
	g.GET("/sent", h.HandleListSent)
	g.PUT("/:interestId/respond", h.HandleRespond)
	g.DELETE("/:interestId/cancel", h.HandleCancel)
	g.GET("/matches", h.HandleMatches)
}
