package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessBody is the acknowledgement shape for the email endpoints.
type SuccessBody struct {
	Success bool `json:"success"`
}

// ErrorBody is the error shape shared by all endpoints: the message, the
// downstream detail when one exists, and the request correlation ID.
type ErrorBody struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// OK sends the standard {"success":true} acknowledgement
func OK(c *gin.Context) {
	c.JSON(200, SuccessBody{Success: true})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, ErrorBody{
		Error:     message,
		Details:   details,
		RequestID: idStr,
	})
}
