package server

import "github.com/gin-gonic/gin"

// Registrar is a common interface for all HTTP route registrars.
// The auth middleware is handed in so each registrar decides which of
// its routes require an authenticated requester.
type Registrar interface {
	Register(engine *gin.Engine, auth gin.HandlerFunc)
}
