package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	svcErr "github.com/rishtahub/rishtahub/internal/errors"
)

// Handler adapts the auth service to the HTTP surface.
type Handler struct {
	svc *Service
}

// NewHandler creates handlers for the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleRegister handles POST /auth/register.
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		svcErr.Map(c, svcErr.FromBinding(err))
		return
	}

	session, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// HandleLogin handles POST /auth/login.
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		svcErr.Map(c, svcErr.FromBinding(err))
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
