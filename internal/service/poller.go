package service

import (
	"context"
	"fmt"
	"time"

	"digital-cards/internal/model"
)

const (
	pollInterval    = 3 * time.Second
	maxPollAttempts = 40 // ~2 minutes at the default interval
)

// TimeoutMessage is surfaced when polling exhausts without a terminal state:
// the charge may have gone through even though confirmation never arrived.
const TimeoutMessage = "Payment verification timeout. Please contact support if payment was deducted."

type PollStatus string

const (
	PollPending    PollStatus = "pending"
	PollProcessing PollStatus = "processing"
	PollSuccess    PollStatus = "success"
	PollFailed     PollStatus = "failed"
)

type StatusUpdate struct {
	Reference string
	Status    PollStatus
	Message   string
	Attempt   int
}

type Verifier interface {
	Verify(ctx context.Context, reference string) *model.PaymentOutcome
}

// StatusPoller re-verifies a reference on a fixed cadence until the gateway
// settles or the attempt budget runs out.
type StatusPoller struct {
	verifier Verifier
	interval time.Duration
}

func NewStatusPoller(verifier Verifier) *StatusPoller {
	return &StatusPoller{
		verifier: verifier,
		interval: pollInterval,
	}
}

// Subscription is one active poll for one reference. Updates is closed when
// the poll reaches a terminal state or is unsubscribed.
type Subscription struct {
	updates chan StatusUpdate
	cancel  context.CancelFunc
}

func (s *Subscription) Updates() <-chan StatusUpdate {
	return s.updates
}

// Unsubscribe stops the poll. Cancellation is cooperative: it takes effect at
// the next tick boundary and never interrupts an in-flight verify call.
func (s *Subscription) Unsubscribe() {
	s.cancel()
}

// Subscribe starts polling the reference. A single goroutine owns the
// subscription, so ticks are serialized and at most one verify call is in
// flight at a time; ticks that elapse during a slow call coalesce.
func (p *StatusPoller) Subscribe(ctx context.Context, reference string) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		updates: make(chan StatusUpdate, 1),
		cancel:  cancel,
	}
	go p.run(ctx, reference, sub)
	return sub
}

func (p *StatusPoller) run(ctx context.Context, reference string, sub *Subscription) {
	defer close(sub.updates)

	sub.send(ctx, StatusUpdate{
		Reference: reference,
		Status:    PollPending,
		Message:   "Payment initiated, waiting for confirmation...",
	})

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		outcome := p.verifier.Verify(ctx, reference)

		switch {
		case outcome.Status == model.StatusSuccess:
			sub.send(ctx, StatusUpdate{
				Reference: reference,
				Status:    PollSuccess,
				Message:   "Payment successful!",
				Attempt:   attempt,
			})
			return

		case outcome.Status == model.StatusFailed:
			sub.send(ctx, StatusUpdate{
				Reference: reference,
				Status:    PollFailed,
				Message:   outcome.Message,
				Attempt:   attempt,
			})
			return

		case attempt >= maxPollAttempts:
			sub.send(ctx, StatusUpdate{
				Reference: reference,
				Status:    PollFailed,
				Message:   TimeoutMessage,
				Attempt:   attempt,
			})
			return

		default:
			// Pending, processing, or an inconclusive verify error: keep polling.
			sub.send(ctx, StatusUpdate{
				Reference: reference,
				Status:    PollProcessing,
				Message:   fmt.Sprintf("Processing payment... (%d/%d)", attempt, maxPollAttempts),
				Attempt:   attempt,
			})
		}
	}
}

func (s *Subscription) send(ctx context.Context, update StatusUpdate) {
	select {
	case s.updates <- update:
	case <-ctx.Done():
	}
}
