package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sender performs one outbound delivery. Implemented by the SMTP gateway.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// Result reports the outcome of one dispatched notification.
type Result struct {
	Notification Notification
	Err          error
}

// Dispatcher runs each send as its own task and hands the caller a channel
// carrying the outcome. Callers that must confirm delivery (contact flow)
// wait on the channel; callers that must not block the response (checkout
// flow) leave it to the dispatcher, which still logs the outcome.
type Dispatcher struct {
	sender      Sender
	logger      *slog.Logger
	sendTimeout time.Duration
	wg          sync.WaitGroup
}

const defaultSendTimeout = 30 * time.Second

func NewDispatcher(sender Sender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		logger:      logger,
		sendTimeout: defaultSendTimeout,
	}
}

// Dispatch starts the delivery and returns a single-result channel. The send
// runs on a detached context: the HTTP request that triggered it may finish
// first.
func (d *Dispatcher) Dispatch(n Notification) <-chan Result {
	out := make(chan Result, 1)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		defer cancel()

		err := d.sender.Send(ctx, n)
		if err != nil {
			d.logger.Error("notification delivery failed",
				"notification_id", n.ID, "kind", string(n.Kind), "error", err)
		} else {
			d.logger.Info("notification delivered",
				"notification_id", n.ID, "kind", string(n.Kind))
		}
		out <- Result{Notification: n, Err: err}
	}()

	return out
}

// Drain blocks until in-flight sends finish or ctx expires. Hooked to
// application shutdown.
func (d *Dispatcher) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
