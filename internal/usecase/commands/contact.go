package commands

import (
	"context"

	"webnebula-api/internal/domain/form"
	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/usecase/notify"
)

type ContactCommands interface {
	Submit(ctx context.Context, sub form.Submission, captchaToken string) error
}

type contactCommandsImpl struct {
	formPipeline
	dispatcher *notify.Dispatcher
}

func NewContactCommands(captcha CaptchaVerifier, dispatcher *notify.Dispatcher) ContactCommands {
	return &contactCommandsImpl{
		formPipeline: formPipeline{captcha: captcha},
		dispatcher:   dispatcher,
	}
}

// Submit runs the contact flow: CAPTCHA, then a thank-you mail to the
// submitter and a copy to the owner mailbox. The contact flow confirms
// delivery before the handler responds.
func (uc *contactCommandsImpl) Submit(ctx context.Context, sub form.Submission, captchaToken string) error {
	if err := uc.verifyCaptcha(ctx, captchaToken); err != nil {
		return err
	}

	results := []<-chan notify.Result{
		uc.dispatcher.Dispatch(notify.New(notify.KindContactUser, sub, form.Amounts{})),
		uc.dispatcher.Dispatch(notify.New(notify.KindContactOwner, sub, form.Amounts{})),
	}

	for _, ch := range results {
		select {
		case res := <-ch:
			if res.Err != nil {
				return errs.Mark(res.Err, errs.ErrMailDeliveryFailed)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
