//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/usecase/commands"
	"webnebula-api/internal/usecase/notify"
	"webnebula-api/tests/common/builder"
	commandsmock "webnebula-api/tests/mock/commands"
	notifymock "webnebula-api/tests/mock/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sentRecorder struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (r *sentRecorder) record(_ context.Context, n notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func (r *sentRecorder) kinds() []notify.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Kind, 0, len(r.sent))
	for _, n := range r.sent {
		out = append(out, n.Kind)
	}
	return out
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestContactSubmit(t *testing.T) {
	sub := builder.NewSubmissionBuilder().BuildContactSubmission()

	t.Run("success sends user and owner mail before returning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		captcha := commandsmock.NewMockCaptchaVerifier(ctrl)
		sender := notifymock.NewMockSender(ctrl)
		rec := &sentRecorder{}

		captcha.EXPECT().Verify(gomock.Any(), token).Return(true, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(rec.record).Times(2)

		uc := commands.NewContactCommands(captcha, notify.NewDispatcher(sender, quietLogger()))
		require.NoError(t, uc.Submit(context.Background(), sub, token))

		assert.ElementsMatch(t, []notify.Kind{notify.KindContactUser, notify.KindContactOwner}, rec.kinds())
	})

	t.Run("captcha rejection stops the flow before any mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		captcha := commandsmock.NewMockCaptchaVerifier(ctrl)
		sender := notifymock.NewMockSender(ctrl)

		captcha.EXPECT().Verify(gomock.Any(), token).Return(false, nil)

		uc := commands.NewContactCommands(captcha, notify.NewDispatcher(sender, quietLogger()))
		err := uc.Submit(context.Background(), sub, token)
		assert.ErrorIs(t, err, errs.ErrCaptchaFailed)
	})

	t.Run("captcha provider failure is a hard failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		captcha := commandsmock.NewMockCaptchaVerifier(ctrl)
		sender := notifymock.NewMockSender(ctrl)

		captcha.EXPECT().Verify(gomock.Any(), token).Return(false, errs.New("connection refused"))

		uc := commands.NewContactCommands(captcha, notify.NewDispatcher(sender, quietLogger()))
		err := uc.Submit(context.Background(), sub, token)
		assert.ErrorIs(t, err, errs.ErrCaptchaUnavailable)
	})

	t.Run("delivery failure surfaces to the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		captcha := commandsmock.NewMockCaptchaVerifier(ctrl)
		sender := notifymock.NewMockSender(ctrl)

		captcha.EXPECT().Verify(gomock.Any(), token).Return(true, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n notify.Notification) error {
				if n.Kind == notify.KindContactUser {
					return errs.New("smtp unreachable")
				}
				return nil
			}).Times(2)

		dispatcher := notify.NewDispatcher(sender, quietLogger())
		uc := commands.NewContactCommands(captcha, dispatcher)
		err := uc.Submit(context.Background(), sub, token)
		assert.ErrorIs(t, err, errs.ErrMailDeliveryFailed)

		// the owner send may still be in flight when Submit returns early
		require.NoError(t, dispatcher.Drain(context.Background()))
	})
}
