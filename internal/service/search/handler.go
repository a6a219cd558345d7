package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	svcErr "github.com/rishtahub/rishtahub/internal/errors"
	"github.com/rishtahub/rishtahub/internal/server"
)

// Handler adapts the candidate filter to the HTTP surface.
type Handler struct {
	svc *Service
}

// NewHandler creates handlers for the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleSearch handles GET /users/search.
func (h *Handler) HandleSearch(c *gin.Context) {
	var q Query
	if err := c.ShouldBindQuery(&q); err != nil {
		svcErr.Map(c, svcErr.FromBinding(err))
		return
	}

	result, err := h.svc.Candidates(c.Request.Context(), server.RequesterID(c), q)
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
