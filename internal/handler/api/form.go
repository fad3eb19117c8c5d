package api

import (
	"errors"
	"net/http"

	"webnebula-api/internal/handler/httperr"
	"webnebula-api/internal/pkg/config"
	"webnebula-api/internal/pkg/cookie"
	"webnebula-api/internal/pkg/csrf"
	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// FormHandler serves both public forms. The GET side issues CSRF tokens,
// the POST side runs the submission pipeline for the respective flow.
type FormHandler struct {
	guard    *csrf.Guard
	security config.SecurityConfig
	contact  commands.ContactCommands
	checkout commands.CheckoutCommands
}

func NewFormHandler(
	guard *csrf.Guard,
	cfg config.Config,
	contact commands.ContactCommands,
	checkout commands.CheckoutCommands,
) *FormHandler {
	return &FormHandler{
		guard:    guard,
		security: cfg.Security,
		contact:  contact,
		checkout: checkout,
	}
}

// @Summary Issue CSRF token
// @Description Issue an anti-forgery token for a subsequent form submission
// @Tags forms
// @Produce json
// @Success 200 {string} string
// @Failure 403 {object} httperr.Response
// @Router /contact [get]
// @Router /checkout [get]
func (h *FormHandler) IssueToken(c *gin.Context) {
	if err := h.guard.CheckOrigin(c.GetHeader("Origin"), c.GetHeader("Referer")); err != nil {
		msg := "Invalid Origin"
		if errors.Is(err, errs.ErrRefererRejected) {
			msg = "Invalid referer"
		}
		httperr.AbortWithError(c, http.StatusForbidden, err, msg, nil)
		return
	}

	token, err := h.guard.Issue()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetCSRFCookie(c, h.security, token, h.security.CSRFTokenTTL)
	// the token body is a bare JSON string, matching what the frontend expects
	c.JSON(http.StatusOK, token)
}

func (h *FormHandler) abortSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCaptchaFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "reCAPTCHA verification failed", nil)
	case errors.Is(err, errs.ErrCaptchaUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Problem processing the request", nil)
	case errors.Is(err, errs.ErrUnknownPaymentMethod):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Problem processing the request", nil)
	case errors.Is(err, errs.ErrMailDeliveryFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Problem sending the email", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
