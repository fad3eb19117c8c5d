package request

import (
	"webnebula-api/internal/domain/form"
)

type CheckoutRequest struct {
	Name           string `json:"Name" binding:"required,min=3,max=70"`
	Email          string `json:"Email" binding:"required,email,max=255"`
	Phone          string `json:"Phone" binding:"required,phone"`
	Organisation   string `json:"Organisation" binding:"required,max=160"`
	Payment        string `json:"Payment" binding:"required"`
	Coupon         string `json:"Coupon" binding:"omitempty,min=5,max=12"`
	Feedback       string `json:"Feedback" binding:"omitempty,max=2000"`
	Packagetype    string `json:"Packagetype" binding:"required,oneof=basic standard premium"`
	RecaptchaToken string `json:"recaptchaToken" binding:"required"`
	Theme          string `json:"theme" binding:"required"`
}

func (r CheckoutRequest) ToDomain() form.Submission {
	return form.Submission{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Organisation: r.Organisation,
		Payment:      form.PaymentMethod(r.Payment),
		Coupon:       r.Coupon,
		Feedback:     r.Feedback,
		Packagetype:  form.PackageType(r.Packagetype),
		Theme:        r.Theme,
	}
}
