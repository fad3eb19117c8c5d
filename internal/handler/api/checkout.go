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

// @Summary Submit checkout form
// @Description Validate the checkout submission, verify CAPTCHA, derive the package price, and dispatch payment-instruction mails
// @Tags forms
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout submission"
// @Success 200 {object} resdto.StatusResponse
// @Failure 401 {object} httperr.Response
// @Router /checkout [post]
func (h *FormHandler) SubmitCheckout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized,
			errs.Mark(err, errs.ErrValidationFailed), "data validation issue", validation.Translate(err))
		return
	}

	if err := h.checkout.Submit(c.Request.Context(), req.ToDomain(), req.RecaptchaToken); err != nil {
		h.abortSubmitError(c, err)
		return
	}

	// mail dispatch is asynchronous here: the dispatcher logs each outcome
	c.JSON(http.StatusOK, resdto.OK("payment instructions sent"))
}
