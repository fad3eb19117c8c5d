package api

import (
	"net/http"

	reqdto "webnebula-api/internal/handler/dto/request"
	resdto "webnebula-api/internal/handler/dto/response"
	"webnebula-api/internal/handler/httperr"
	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @Summary Submit contact form
// @Description Validate the contact submission, verify CAPTCHA, and send the notification mails
// @Tags forms
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact submission"
// @Success 200 {object} resdto.StatusResponse
// @Failure 401 {object} httperr.Response
// @Router /contact [post]
func (h *FormHandler) SubmitContact(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized,
			errs.Mark(err, errs.ErrValidationFailed), "data validation issue", validation.Translate(err))
		return
	}

	if err := h.contact.Submit(c.Request.Context(), req.ToDomain(), req.RecaptchaToken); err != nil {
		h.abortSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK("email has been sent"))
}
