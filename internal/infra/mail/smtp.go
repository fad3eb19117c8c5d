// Package mail is the SMTP gateway. Two authenticated accounts are kept:
// the contact account for user-facing mail and the owner account for
// owner-facing mail.
package mail

import (
	"context"

	"webnebula-api/internal/pkg/config"
	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/usecase/notify"

	gomail "github.com/wneessen/go-mail"
)

type SMTPSender struct {
	contact  *gomail.Client
	owner    *gomail.Client
	cfg      config.MailConfig
	renderer *Renderer
}

func NewSMTPSender(cfg config.Config) (*SMTPSender, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	contact, err := newClient(cfg.Mail, cfg.Mail.ContactAddress, cfg.Mail.ContactPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build contact mail client")
	}
	owner, err := newClient(cfg.Mail, cfg.Mail.OwnerAddress, cfg.Mail.OwnerPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build owner mail client")
	}

	return &SMTPSender{
		contact:  contact,
		owner:    owner,
		cfg:      cfg.Mail,
		renderer: renderer,
	}, nil
}

func newClient(cfg config.MailConfig, user, pass string) (*gomail.Client, error) {
	return gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(user),
		gomail.WithPassword(pass),
	)
}

// Send renders and delivers one notification. One SMTP round-trip per call;
// no retry, no delivery confirmation beyond the relay accepting the message.
func (s *SMTPSender) Send(ctx context.Context, n notify.Notification) error {
	html, err := s.renderer.Render(n)
	if err != nil {
		return err
	}

	client := s.contact
	from := s.cfg.ContactAddress
	to := n.Submission.Email
	if n.Kind.OwnerFacing() {
		client = s.owner
		from = s.cfg.OwnerAddress
		to = s.cfg.OwnerAddress
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(n.Kind.Subject(n.Submission.Organisation))
	msg.SetBodyString(gomail.TypeTextHTML, html)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Mark(errs.Wrap(err, "smtp delivery failed"), errs.ErrMailDeliveryFailed)
	}
	return nil
}
