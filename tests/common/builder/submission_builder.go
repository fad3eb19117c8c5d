//go:build unit

package builder

import (
	"webnebula-api/internal/domain/form"
	reqdto "webnebula-api/internal/handler/dto/request"
)

// SubmissionBuilder produces request DTOs and domain submissions with valid
// defaults; tests mutate single fields from there.
type SubmissionBuilder struct {
	Name           string
	Email          string
	Phone          string
	Organisation   string
	Subject        string
	Message        string
	Payment        string
	Coupon         string
	Feedback       string
	Packagetype    string
	RecaptchaToken string
	Theme          string
}

func NewSubmissionBuilder() *SubmissionBuilder {
	return &SubmissionBuilder{
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		Phone:          "0612345678",
		Organisation:   "Analytical Engines Ltd",
		Subject:        "Engine inquiry",
		Message:        "I would like to know more about your services.",
		Payment:        "WireTransfer",
		Coupon:         "",
		Feedback:       "",
		Packagetype:    "standard",
		RecaptchaToken: "recaptcha-test-token",
		Theme:          "dark",
	}
}

func (b *SubmissionBuilder) With(mutate func(*SubmissionBuilder)) *SubmissionBuilder {
	mutate(b)
	return b
}

func (b *SubmissionBuilder) BuildContactRequestDTO() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Organisation:   b.Organisation,
		Subject:        b.Subject,
		Message:        b.Message,
		RecaptchaToken: b.RecaptchaToken,
		Theme:          b.Theme,
	}
}

func (b *SubmissionBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Organisation:   b.Organisation,
		Payment:        b.Payment,
		Coupon:         b.Coupon,
		Feedback:       b.Feedback,
		Packagetype:    b.Packagetype,
		RecaptchaToken: b.RecaptchaToken,
		Theme:          b.Theme,
	}
}

func (b *SubmissionBuilder) BuildContactSubmission() form.Submission {
	return b.BuildContactRequestDTO().ToDomain()
}

func (b *SubmissionBuilder) BuildCheckoutSubmission() form.Submission {
	return b.BuildCheckoutRequestDTO().ToDomain()
}
