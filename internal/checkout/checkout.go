// Package checkout bridges an initialized transaction to the gateway's
// embedded checkout widget, which loads asynchronously and may not be
// available yet when checkout is requested.
package checkout

import (
	"context"
	"errors"
	"time"
)

const (
	checkInterval = 100 * time.Millisecond
	readyTimeout  = 3 * time.Second
)

// ErrNotReady means the widget never became available within the readiness
// budget; the purchaser should refresh and retry.
var ErrNotReady = errors.New("payment system not ready")

// OpenParams carries everything the widget needs to start a charge. Amount is
// in minor currency units.
type OpenParams struct {
	Key       string
	Email     string
	Amount    int64
	Currency  string
	Reference string
}

// Completion is the widget's terminal callback. Completed false means the
// purchaser dismissed the widget without finishing: inconclusive, neither a
// success nor a failure.
type Completion struct {
	Reference string
	Completed bool
}

type Widget interface {
	Ready() bool
	Open(ctx context.Context, params OpenParams) (Completion, error)
}

type Driver struct {
	widget        Widget
	checkInterval time.Duration
	readyTimeout  time.Duration
}

func NewDriver(widget Widget) *Driver {
	return &Driver{
		widget:        widget,
		checkInterval: checkInterval,
		readyTimeout:  readyTimeout,
	}
}

// Checkout waits for the widget to become ready, opens it with the
// authorization parameters and relays its completion. The caller decides what
// a completed reference means by verifying it; a dismissal returns control
// without further action.
func (d *Driver) Checkout(ctx context.Context, params OpenParams) (Completion, error) {
	if err := d.waitReady(ctx); err != nil {
		return Completion{}, err
	}
	return d.widget.Open(ctx, params)
}

// waitReady polls readiness on a timer rather than spinning; it gives up
// after the readiness budget instead of hanging indefinitely.
func (d *Driver) waitReady(ctx context.Context) error {
	if d.widget.Ready() {
		return nil
	}

	deadline := time.NewTimer(d.readyTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(d.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return ErrNotReady
		case <-ticker.C:
			if d.widget.Ready() {
				return nil
			}
		}
	}
}
