package interest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	svcErr "github.com/rishtahub/rishtahub/internal/errors"
	"github.com/rishtahub/rishtahub/internal/server"
)

// SendInterestRequest is the typed input for POST /interests.
type SendInterestRequest struct {
	ToUserID uint64 `json:"toUserId" binding:"required"`
	Message  string `json:"message" binding:"omitempty,max=200"`
}

// RespondRequest is the typed input for PUT /interests/:interestId/respond.
type RespondRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// Handler adapts the lifecycle engine to the HTTP surface.
type Handler struct {
	svc *Service
}

// NewHandler creates handlers for the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleSend handles POST /interests.
func (h *Handler) HandleSend(c *gin.Context) {
	var req SendInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		svcErr.Map(c, svcErr.FromBinding(err))
		return
	}

	interest, err := h.svc.SendInterest(c.Request.Context(), server.RequesterID(c), req.ToUserID, req.Message)
	if err != nil {
		svcErr.Map(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "interest sent",
		"interest": interest,
	})
}

// HandleListReceived handles GET /interests/received.
// The optional ?status= query selects pending (default), accepted,
// rejected, or all.
func (h *Handler) HandleListReceived(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", "all", "pending", "accepted", "rejected":
	default:
		svcErr.Map(c, svcErr.NewValidationError(svcErr.FieldError{
			Field: "status", Message: "must be one of: pending accepted rejected all",
		}))
		return
	}

	interests, err := h.svc.ListReceived(c.Request.Context(), server.RequesterID(c), status)
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, interests)
}

// HandleCountReceived handles GET /interests/received/count.
func (h *Handler) HandleCountReceived(c *gin.Context) {
	count, err := h.svc.CountReceivedPending(c.Request.Context(), server.RequesterID(c))
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// HandleListSent handles GET /interests/sent.
func (h *Handler) HandleListSent(c *gin.Context) {
	interests, err := h.svc.ListSent(c.Request.Context(), server.RequesterID(c))
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, interests)
}

// HandleRespond handles PUT /interests/:interestId/respond.
func (h *Handler) HandleRespond(c *gin.Context) {
	interestID, ok := interestIDParam(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		svcErr.Map(c, svcErr.FromBinding(err))
		return
	}

	interest, err := h.svc.RespondToInterest(c.Request.Context(), server.RequesterID(c), interestID, req.Status)
	if err != nil {
		svcErr.Map(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "interest " + req.Status,
		"interest": interest,
	})
}

// HandleCancel handles DELETE /interests/:interestId/cancel.
func (h *Handler) HandleCancel(c *gin.Context) {
	interestID, ok := interestIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.CancelInterest(c.Request.Context(), server.RequesterID(c), interestID); err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "interest cancelled"})
}

// HandleMatches handles GET /interests/matches.
func (h *Handler) HandleMatches(c *gin.Context) {
	matches, err := h.svc.MutualMatches(c.Request.Context(), server.RequesterID(c))
	if err != nil {
		svcErr.Map(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func interestIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("interestId"), 10, 64)
	if err != nil {
		svcErr.Map(c, svcErr.NewValidationError(svcErr.FieldError{
			Field: "interestId", Message: "must be a valid interest id",
		}))
		return 0, false
	}
	return id, true
}
