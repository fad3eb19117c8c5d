// Package validation adapts gin's binding errors to the structured
// field-error list the form API returns. Human messages are the ones the
// site frontend renders, so they must stay stable.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var phoneRegex = regexp.MustCompile(`^\d{10}$`)

// Register wires the custom validators and JSON field naming into gin's
// binding engine. Must run once before the router handles requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// messages maps field -> failing tag -> user-facing message.
var messages = map[string]map[string]string{
	"Name": {
		"required": "Please enter your name.",
		"min":      "Name must be at least 3 characters.",
		"max":      "Name must not exceed 70 characters.",
	},
	"Email": {
		"required": "Please enter a valid email address.",
		"email":    "Please enter a valid email address.",
		"max":      "Email must not exceed 255 characters.",
	},
	"Phone": {
		"required": "Please enter a valid phone number.",
		"phone":    "Please enter a valid phone number.",
	},
	"Organisation": {
		"required": "Please enter your organization.",
		"max":      "Company name must not exceed 160 characters.",
	},
	"Subject": {
		"required": "Please enter a subject.",
		"max":      "Subject must not exceed 255 characters.",
	},
	"Message": {
		"required": "Please enter your message.",
		"max":      "Message must not exceed 2000 characters.",
	},
	"Payment": {
		"required": "Please select a payment option.",
	},
	"Coupon": {
		// the frontend renders these strings as-is, typo included
		"min": "Coupon must be at least 5 charracters",
		"max": "Coupon must not exceed 12 charracters",
	},
	"Feedback": {
		"max": "Feedback must not exceed 2000 characters.",
	},
	"Packagetype": {
		"required": "Please select a valid packagetype (basic, standard, or premium)",
		"oneof":    "Please select a valid packagetype (basic, standard, or premium)",
	},
	"recaptchaToken": {
		"required": "Required",
	},
	"theme": {
		"required": "Required",
	},
}

// Translate converts a binding error into one FieldError per violated field.
// Non-validator errors (malformed JSON, type mismatches) collapse into a
// single body-level error.
func Translate(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{
			Field:   "body",
			Code:    "invalid",
			Message: "Request body could not be parsed.",
		}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	if byTag, ok := messages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
