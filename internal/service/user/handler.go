package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	svcErr "github.com/rishtahub/rishtahub/internal/errors"
	"github.com/rishtahub/rishtahub/internal/server"
)

// Handler adapts the profile service to the HTTP surface.
type Handler struct {
	svc *Service
}

// NewHandler creates handlers for the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleOwnProfile handles GET /users/profile.
func (h *Handler) HandleOwnProfile(c *gin.Context) {
	profile, err := h.svc.OwnProfile(c.Request.Context(), server.RequesterID(c))
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// HandleUpdateProfile handles PUT /users/profile.
func (h *Handler) HandleUpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		svcErr.Map(c, svcErr.FromBinding(err))
		return
	}

	profile, err := h.svc.UpdateOwnProfile(c.Request.Context(), server.RequesterID(c), req)
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// HandleViewProfile handles GET /users/:userId.
func (h *Handler) HandleViewProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		svcErr.Map(c, svcErr.NewValidationError(svcErr.FieldError{
			Field: "userId", Message: "must be a valid user id",
		}))
		return
	}

	profile, err := h.svc.ViewProfile(c.Request.Context(), userID)
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
