package commands

import (
	"context"

	"webnebula-api/internal/pkg/errs"
)

// formPipeline is the orchestration shared by the contact and checkout
// flows: both gate on CAPTCHA verification before any notification goes out.
type formPipeline struct {
	captcha CaptchaVerifier
}

func (p formPipeline) verifyCaptcha(ctx context.Context, token string) error {
	ok, err := p.captcha.Verify(ctx, token)
	if err != nil {
		return errs.Mark(err, errs.ErrCaptchaUnavailable)
	}
	if !ok {
		return errs.ErrCaptchaFailed
	}
	return nil
}
