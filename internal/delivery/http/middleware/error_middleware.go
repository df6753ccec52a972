package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"go-pcbuilder-backend/internal/delivery/http/response"
	"go-pcbuilder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler owns the failure path for every handler: errors attached to
// the gin context are mapped to the caller-facing JSON shape here, and
// nothing is ever allowed to crash the process.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message out.
				fmt.Printf("[ERROR] Internal Server Error: %v\n", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "")
			}
		}
	}
}
