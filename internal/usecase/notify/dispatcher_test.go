//go:build unit

package notify_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"webnebula-api/internal/domain/form"
	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/usecase/notify"
	"webnebula-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type senderFunc func(ctx context.Context, n notify.Notification) error

func (f senderFunc) Send(ctx context.Context, n notify.Notification) error {
	return f(ctx, n)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatch(t *testing.T) {
	sub := builder.NewSubmissionBuilder().BuildContactSubmission()

	t.Run("success: result carries the notification", func(t *testing.T) {
		d := notify.NewDispatcher(senderFunc(func(context.Context, notify.Notification) error {
			return nil
		}), quietLogger())

		n := notify.New(notify.KindContactUser, sub, form.Amounts{})
		res := <-d.Dispatch(n)

		require.NoError(t, res.Err)
		assert.Equal(t, n.ID, res.Notification.ID)
		assert.Equal(t, notify.KindContactUser, res.Notification.Kind)
	})

	t.Run("failure: delivery error surfaces on the channel", func(t *testing.T) {
		d := notify.NewDispatcher(senderFunc(func(context.Context, notify.Notification) error {
			return errs.ErrMailDeliveryFailed
		}), quietLogger())

		res := <-d.Dispatch(notify.New(notify.KindContactOwner, sub, form.Amounts{}))
		assert.ErrorIs(t, res.Err, errs.ErrMailDeliveryFailed)
	})

	t.Run("sends run detached from the caller", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		d := notify.NewDispatcher(senderFunc(func(ctx context.Context, _ notify.Notification) error {
			close(started)
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}), quietLogger())

		out := d.Dispatch(notify.New(notify.KindCheckoutOwner, sub, form.Amounts{}))
		<-started

		// the caller walks away; the send must still complete
		close(release)
		res := <-out
		assert.NoError(t, res.Err)
	})
}

func TestDrain(t *testing.T) {
	sub := builder.NewSubmissionBuilder().BuildCheckoutSubmission()

	t.Run("waits for in-flight sends", func(t *testing.T) {
		var delivered atomic.Int32
		release := make(chan struct{})
		d := notify.NewDispatcher(senderFunc(func(context.Context, notify.Notification) error {
			<-release
			delivered.Add(1)
			return nil
		}), quietLogger())

		d.Dispatch(notify.New(notify.KindCheckoutTransfer, sub, form.Amounts{}))
		d.Dispatch(notify.New(notify.KindCheckoutOwner, sub, form.Amounts{}))
		close(release)

		require.NoError(t, d.Drain(context.Background()))
		assert.Equal(t, int32(2), delivered.Load())
	})

	t.Run("gives up when the context expires", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		d := notify.NewDispatcher(senderFunc(func(context.Context, notify.Notification) error {
			<-release
			return nil
		}), quietLogger())
		d.Dispatch(notify.New(notify.KindCheckoutOwner, sub, form.Amounts{}))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, d.Drain(ctx), context.DeadlineExceeded)
	})
}
