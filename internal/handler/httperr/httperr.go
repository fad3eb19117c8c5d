package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire envelope every form route returns:
// {"error": true, "message": "...", "errors": [...]}.
type Response struct {
	Status  int    `json:"-"`
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, fieldErrors any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status:  status,
		Error:   true,
		Message: msg,
		Errors:  fieldErrors,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
