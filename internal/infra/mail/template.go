package mail

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/usecase/notify"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse mail templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

type templateData struct {
	Kind       string
	Submission submissionView
	Amounts    amountsView
	Background string
	Foreground string
	Accent     string
}

type submissionView struct {
	Name         string
	Email        string
	Phone        string
	Organisation string
	Subject      string
	Message      string
	Payment      string
	Coupon       string
	Feedback     string
	Packagetype  string
}

type amountsView struct {
	USD float64
	XMR float64
}

// Render produces the HTML body for one notification. The theme identifier
// from the submission picks the palette so the mail matches what the visitor
// saw on the site.
func (r *Renderer) Render(n notify.Notification) (string, error) {
	name := "contact.html.tmpl"
	if strings.HasPrefix(string(n.Kind), "checkout") {
		name = "checkout.html.tmpl"
	}

	data := templateData{
		Kind: string(n.Kind),
		Submission: submissionView{
			Name:         n.Submission.Name,
			Email:        n.Submission.Email,
			Phone:        n.Submission.Phone,
			Organisation: n.Submission.Organisation,
			Subject:      n.Submission.Subject,
			Message:      n.Submission.Message,
			Payment:      string(n.Submission.Payment),
			Coupon:       n.Submission.Coupon,
			Feedback:     n.Submission.Feedback,
			Packagetype:  string(n.Submission.Packagetype),
		},
		Amounts: amountsView{USD: n.Amounts.USD, XMR: n.Amounts.XMR},
	}

	switch n.Submission.Theme {
	case "dark":
		data.Background = "#0b0b10"
		data.Foreground = "#e7e7ea"
		data.Accent = "#8b5cf6"
	default:
		data.Background = "#ffffff"
		data.Foreground = "#111118"
		data.Accent = "#6d28d9"
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errs.Wrap(err, "failed to render mail template")
	}
	return buf.String(), nil
}
