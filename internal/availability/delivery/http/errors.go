package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rental-availability/internal/availability"
	"rental-availability/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Unknown errors
// are hidden behind the generic 500 envelope.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrEmptyQuery):
		response.Error(c, err, nil)
	case errors.Is(err, availability.ErrCalendarUnavailable):
		response.InternalError(c, err)
	default:
		response.InternalError(c, err)
	}
}
