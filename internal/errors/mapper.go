// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Map converts domain/repo/infra errors into an HTTP status code and JSON
// body, and writes them to the gin context. Keeps handlers clean by
// centralizing error mapping.
func Map(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": vErr.Fields})
		return
	}

	switch {
	case errors.Is(err, ErrDuplicateInterest),
		errors.Is(err, ErrSelfInterest),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})

	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})

	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": ErrNotFound.Error()})

	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})

	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"message": "request timed out"})

	default:
		// store failures and anything unclassified surface as a generic
		// server error, never with internal detail
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
	}
}

// fieldMessage renders a human message for a single validator tag failure.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must not exceed " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// FromBinding converts a gin binding failure into a ValidationError with
// one entry per failed field. Non-validator errors (malformed JSON, wrong
// types) collapse into a single "body" entry.
func FromBinding(err error) *ValidationError {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		out := make([]FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return &ValidationError{Fields: out}
	}
	return &ValidationError{Fields: []FieldError{{Field: "body", Message: "invalid request body"}}}
}
