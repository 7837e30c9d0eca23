package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error" example:"Invalid request"`
}

type successResponse struct {
	Message string      `json:"message" example:"ok"`
	Data    interface{} `json:"data,omitempty"`
}

func newErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, errorResponse{Error: message})
}

func newSuccessResponse(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, successResponse{Message: message, Data: data})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case domain.IsKind(err, domain.KindValidation):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.KindNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrLookupNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.KindForbidden), errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case domain.IsKind(err, domain.KindConflict):
		return http.StatusConflict
	case domain.IsKind(err, domain.KindNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes the mapped status. Client errors carry the
// underlying message; server errors get the fallback text only.
func handleServiceError(c *gin.Context, err error, fallback string) {
	code := statusFor(err)
	message := fallback
	if code < http.StatusInternalServerError {
		var opErr *domain.OpError
		if errors.As(err, &opErr) && opErr.Err != nil {
			message = opErr.Err.Error()
		} else {
			message = err.Error()
		}
	}
	newErrorResponse(c, code, message)
}
