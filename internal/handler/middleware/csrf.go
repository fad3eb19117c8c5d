package middleware

import (
	"net/http"

	"webnebula-api/internal/handler/httperr"
	"webnebula-api/internal/pkg/cookie"
	"webnebula-api/internal/pkg/csrf"
	"webnebula-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type CSRFMiddleware struct {
	guard *csrf.Guard
}

func NewCSRFMiddleware(guard *csrf.Guard) *CSRFMiddleware {
	return &CSRFMiddleware{guard: guard}
}

// RequireToken consumes the csrf cookie before any body parsing happens.
// A missing, expired, or already-used token aborts with 401.
func (m *CSRFMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetCSRFToken(c)
		if !m.guard.Consume(token) {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrCsrfMismatch, "Tokens dont match", nil)
			return
		}
		c.Next()
	}
}
