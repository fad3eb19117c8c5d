package request

import (
	"webnebula-api/internal/domain/form"
)

// JSON keys mirror the site's form payload, capitalised field names included.
type ContactRequest struct {
	Name           string `json:"Name" binding:"required,min=3,max=70"`
	Email          string `json:"Email" binding:"required,email,max=255"`
	Phone          string `json:"Phone" binding:"required,phone"`
	Organisation   string `json:"Organisation" binding:"required,max=160"`
	Subject        string `json:"Subject" binding:"required,max=255"`
	Message        string `json:"Message" binding:"required,max=2000"`
	RecaptchaToken string `json:"recaptchaToken" binding:"required"`
	Theme          string `json:"theme" binding:"required"`
}

func (r ContactRequest) ToDomain() form.Submission {
	return form.Submission{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Organisation: r.Organisation,
		Subject:      r.Subject,
		Message:      r.Message,
		Theme:        r.Theme,
	}
}
