//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"webnebula-api/internal/handler/api"
	"webnebula-api/internal/handler/middleware"
	"webnebula-api/internal/pkg/clock"
	"webnebula-api/internal/pkg/config"
	"webnebula-api/internal/pkg/csrf"
	"webnebula-api/internal/pkg/validation"
	"webnebula-api/internal/usecase/commands"
	"webnebula-api/internal/usecase/notify"
	"webnebula-api/tests/common/builder"
	"webnebula-api/tests/common/httptest"
	"webnebula-api/tests/common/testutil"
	commandsmock "webnebula-api/tests/mock/commands"
	notifymock "webnebula-api/tests/mock/notify"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FormHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	captcha    *commandsmock.MockCaptchaVerifier
	rates      *commandsmock.MockRateSource
	sender     *notifymock.MockSender
	dispatcher *notify.Dispatcher
	cfg        config.Config
}

func (s *FormHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.captcha = commandsmock.NewMockCaptchaVerifier(s.mockCtrl)
	s.rates = commandsmock.NewMockRateSource(s.mockCtrl)
	s.sender = notifymock.NewMockSender(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cfg = config.NewTestConfig()
	s.dispatcher = notify.NewDispatcher(s.sender, logger)

	guard := csrf.NewGuard(s.cfg.Security.AllowedOrigins, s.cfg.Security.CSRFTokenTTL, clock.NewRealClock())
	handler := api.NewFormHandler(
		guard,
		s.cfg,
		commands.NewContactCommands(s.captcha, s.dispatcher),
		commands.NewCheckoutCommands(s.captcha, s.rates, s.dispatcher, s.cfg, logger),
	)
	csrfMiddleware := middleware.NewCSRFMiddleware(guard)

	s.router.GET("/api/contact", handler.IssueToken)
	s.router.POST("/api/contact", csrfMiddleware.RequireToken(), handler.SubmitContact)
	s.router.GET("/api/checkout", handler.IssueToken)
	s.router.POST("/api/checkout", csrfMiddleware.RequireToken(), handler.SubmitCheckout)
}

func (s *FormHandlerTestSuite) TearDownTest() {
	s.Require().NoError(s.dispatcher.Drain(context.Background()))
	s.mockCtrl.Finish()
}

func TestFormHandlerSuite(t *testing.T) {
	suite.Run(t, new(FormHandlerTestSuite))
}

func (s *FormHandlerTestSuite) originHeaders() map[string]string {
	origin := s.cfg.Security.AllowedOrigins[0]
	return map[string]string{
		"Origin":  origin,
		"Referer": origin + "/pricing",
	}
}

// fetchToken runs the GET path and returns the issued csrf cookie
func (s *FormHandlerTestSuite) fetchToken(path string) *http.Cookie {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.originHeaders())
	s.Require().Equal(http.StatusOK, rec.Code)

	c := httptest.ExtractCookie(rec, "csrf")
	s.Require().NotNil(c, "csrf cookie must be set")
	return c
}

// ================================================================================
// TestIssueToken
// ================================================================================

func (s *FormHandlerTestSuite) TestIssueToken() {
	s.Run("success: sets the csrf cookie and returns the token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/contact", nil, s.originHeaders())
		s.Equal(http.StatusOK, rec.Code)

		c := httptest.ExtractCookie(rec, "csrf")
		s.Require().NotNil(c)
		s.True(c.HttpOnly)
		s.True(c.Secure)
		s.Equal(http.SameSiteStrictMode, c.SameSite)
		s.Equal("/", c.Path)

		var body string
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(c.Value, body, "response body must carry the cookie token")
	})

	s.Run("error: 403 for an origin outside the allow-list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/checkout", nil, map[string]string{
			"Origin":  "https://evil.example",
			"Referer": s.cfg.Security.AllowedOrigins[0] + "/pricing",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Invalid Origin")
	})

	s.Run("error: 403 without a referer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/contact", nil, map[string]string{
			"Origin": s.cfg.Security.AllowedOrigins[0],
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Invalid referer")
	})
}

// ================================================================================
// TestSubmitContact
// ================================================================================

func (s *FormHandlerTestSuite) TestSubmitContact() {
	url := "/api/contact"
	reqBody := builder.NewSubmissionBuilder().BuildContactRequestDTO()

	s.Run("error: 401 without a csrf cookie, nothing downstream runs", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Tokens dont match")
	})

	s.Run("error: 401 with a cookie that was never issued", func() {
		forged := &http.Cookie{Name: "csrf", Value: "forged-token"}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, []*http.Cookie{forged}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Tokens dont match")
	})

	s.Run("success: valid token round-trip sends both mails", func() {
		s.captcha.EXPECT().Verify(gomock.Any(), reqBody.RecaptchaToken).Return(true, nil)
		s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		c := s.fetchToken(url)
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, []*http.Cookie{c}, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["error"])
		s.Equal("email has been sent", body["message"])
	})

	s.Run("error: a consumed token cannot be replayed", func() {
		s.captcha.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)
		s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		c := s.fetchToken(url)
		first := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, []*http.Cookie{c}, nil)
		s.Equal(http.StatusOK, first.Code)

		second := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, []*http.Cookie{c}, nil)
		httptest.AssertErrorResponse(s.T(), second, http.StatusUnauthorized, "Tokens dont match")
	})

	s.Run("error: 401 with field errors on invalid payload, captcha never called", func() {
		c := s.fetchToken(url)
		payload := testutil.DtoMap(s.T(), reqBody, testutil.Field("Phone", "123"))

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, payload, []*http.Cookie{c}, nil)
		envelope := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "data validation issue")
		s.Require().Len(envelope.Errors, 1)
		s.Equal("Phone", envelope.Errors[0].Field)
		s.Equal("Please enter a valid phone number.", envelope.Errors[0].Message)
	})

	s.Run("error: 401 on captcha rejection, no mail goes out", func() {
		s.captcha.EXPECT().Verify(gomock.Any(), reqBody.RecaptchaToken).Return(false, nil)

		c := s.fetchToken(url)
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, []*http.Cookie{c}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "reCAPTCHA verification failed")
	})
}

// ================================================================================
// TestSubmitCheckout
// ================================================================================

func (s *FormHandlerTestSuite) TestSubmitCheckout() {
	url := "/api/checkout"
	reqBody := builder.NewSubmissionBuilder().BuildCheckoutRequestDTO()

	s.Run("success: wire transfer dispatches two notifications", func() {
		s.captcha.EXPECT().Verify(gomock.Any(), reqBody.RecaptchaToken).Return(true, nil)
		s.rates.EXPECT().Enabled().Return(false)
		s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		c := s.fetchToken(url)
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, []*http.Cookie{c}, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["error"])
		s.Equal("payment instructions sent", body["message"])
	})

	s.Run("error: 401 for a payment method outside the known set", func() {
		s.captcha.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)

		c := s.fetchToken(url)
		payload := testutil.DtoMap(s.T(), reqBody, testutil.Field("Payment", "Paypal"))

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, payload, []*http.Cookie{c}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Problem processing the request")
	})

	s.Run("error: coupon length violations come back as field errors", func() {
		cases := []struct {
			coupon  string
			message string
		}{
			{"abc", "Coupon must be at least 5 charracters"},
			{"abcdefghijklm", "Coupon must not exceed 12 charracters"},
		}
		for _, tc := range cases {
			c := s.fetchToken(url)
			payload := testutil.DtoMap(s.T(), reqBody, testutil.Field("Coupon", tc.coupon))

			rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, payload, []*http.Cookie{c}, nil)
			envelope := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "data validation issue")
			s.Require().Len(envelope.Errors, 1)
			s.Equal("Coupon", envelope.Errors[0].Field)
			s.Equal(tc.message, envelope.Errors[0].Message)
		}
	})

	s.Run("error: missing packagetype is rejected", func() {
		c := s.fetchToken(url)
		payload := testutil.DtoMap(s.T(), reqBody, testutil.Field("Packagetype", nil))

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, payload, []*http.Cookie{c}, nil)
		envelope := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "data validation issue")
		s.Require().Len(envelope.Errors, 1)
		s.Equal("Packagetype", envelope.Errors[0].Field)
	})
}
