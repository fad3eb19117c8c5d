package errs

import "errors"

// Sentinel errors for the form-processing pipeline
var (
	// CSRF guard errors
	ErrOriginRejected  = errors.New("origin not allowed")
	ErrRefererRejected = errors.New("referer missing or not allowed")
	ErrCsrfMismatch    = errors.New("csrf token mismatch")

	// Validation errors
	ErrValidationFailed = errors.New("submission validation failed")

	// CAPTCHA errors
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrCaptchaUnavailable = errors.New("captcha provider unavailable")

	// Checkout errors
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	// External collaborator errors
	ErrExchangeUnavailable = errors.New("exchange rate provider unavailable")
	ErrMailDeliveryFailed  = errors.New("mail delivery failed")
)
