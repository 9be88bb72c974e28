package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"digital-cards/internal/model"
)

type stubVerifier struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, reference string) *model.PaymentOutcome
}

func (v *stubVerifier) Verify(ctx context.Context, reference string) *model.PaymentOutcome {
	v.mu.Lock()
	v.calls++
	call := v.calls
	v.mu.Unlock()
	return v.fn(call, reference)
}

func (v *stubVerifier) callCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.calls
}

func newTestPoller(v Verifier) *StatusPoller {
	return &StatusPoller{verifier: v, interval: time.Millisecond}
}

// drain collects every update until the subscription closes.
func drain(t *testing.T, sub *Subscription) []StatusUpdate {
	t.Helper()

	var updates []StatusUpdate
	timeout := time.After(5 * time.Second)
	for {
		select {
		case u, ok := <-sub.Updates():
			if !ok {
				return updates
			}
			updates = append(updates, u)
		case <-timeout:
			t.Fatalf("subscription did not terminate; got %d updates", len(updates))
		}
	}
}

func TestPollerSuccess(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{fn: func(call int, reference string) *model.PaymentOutcome {
		return &model.PaymentOutcome{Reference: reference, Status: model.StatusSuccess}
	}}
	poller := newTestPoller(verifier)

	sub := poller.Subscribe(context.Background(), "SA_1_ref")
	updates := drain(t, sub)

	if len(updates) != 2 {
		t.Fatalf("updates = %d, want 2 (pending then success)", len(updates))
	}
	if updates[0].Status != PollPending {
		t.Errorf("first update = %q, want pending", updates[0].Status)
	}
	last := updates[len(updates)-1]
	if last.Status != PollSuccess {
		t.Errorf("terminal update = %q, want success", last.Status)
	}

	// Terminal states are sticky: no tick may issue another verify call.
	settled := verifier.callCount()
	time.Sleep(20 * time.Millisecond)
	if got := verifier.callCount(); got != settled {
		t.Fatalf("verify calls grew from %d to %d after success", settled, got)
	}
}

func TestPollerFailurePassesMessageThrough(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{fn: func(call int, reference string) *model.PaymentOutcome {
		return &model.PaymentOutcome{Reference: reference, Status: model.StatusFailed, Message: AbandonedMessage}
	}}
	poller := newTestPoller(verifier)

	updates := drain(t, poller.Subscribe(context.Background(), "SA_1_ref"))
	last := updates[len(updates)-1]
	if last.Status != PollFailed {
		t.Fatalf("terminal update = %q, want failed", last.Status)
	}
	if last.Message != AbandonedMessage {
		t.Errorf("message = %q, want %q", last.Message, AbandonedMessage)
	}
	if verifier.callCount() != 1 {
		t.Errorf("verify calls = %d, want 1", verifier.callCount())
	}
}

func TestPollerTimeout(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{fn: func(call int, reference string) *model.PaymentOutcome {
		return &model.PaymentOutcome{Reference: reference, Status: model.StatusError, Message: "Unable to reach payment gateway"}
	}}
	poller := newTestPoller(verifier)

	updates := drain(t, poller.Subscribe(context.Background(), "SA_1_ref"))

	last := updates[len(updates)-1]
	if last.Status != PollFailed {
		t.Fatalf("terminal update = %q, want failed", last.Status)
	}
	if last.Message != TimeoutMessage {
		t.Errorf("message = %q, want timeout copy", last.Message)
	}
	if last.Attempt != maxPollAttempts {
		t.Errorf("terminal attempt = %d, want %d", last.Attempt, maxPollAttempts)
	}
	if verifier.callCount() != maxPollAttempts {
		t.Fatalf("verify calls = %d, want exactly %d", verifier.callCount(), maxPollAttempts)
	}
}

func TestPollerUnsubscribe(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{fn: func(call int, reference string) *model.PaymentOutcome {
		return &model.PaymentOutcome{Reference: reference, Status: model.StatusError}
	}}
	poller := newTestPoller(verifier)

	sub := poller.Subscribe(context.Background(), "SA_1_ref")

	// Consume the initial pending update plus two processing ticks, then bail.
	for i := 0; i < 3; i++ {
		select {
		case <-sub.Updates():
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for update")
		}
	}
	sub.Unsubscribe()

	// The cancel takes effect at the next tick boundary.
	time.Sleep(20 * time.Millisecond)
	stopped := verifier.callCount()
	time.Sleep(20 * time.Millisecond)
	if got := verifier.callCount(); got != stopped {
		t.Fatalf("verify calls grew from %d to %d after unsubscribe", stopped, got)
	}

	// The updates channel closes, clearing status for the consumer.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("updates channel never closed after unsubscribe")
		}
	}
}
