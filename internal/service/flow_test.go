package service

import (
	"context"
	"testing"
	"time"

	"digital-cards/internal/checkout"
	"digital-cards/internal/model"
	"digital-cards/internal/receipt"
)

type completingWidget struct {
	opened []checkout.OpenParams
}

func (w *completingWidget) Ready() bool { return true }

func (w *completingWidget) Open(ctx context.Context, params checkout.OpenParams) (checkout.Completion, error) {
	w.opened = append(w.opened, params)
	return checkout.Completion{Reference: params.Reference, Completed: true}, nil
}

// Full checkout path: initialize opens a transaction, the widget completes,
// verification settles, and the receipt reflects the settled payment.
func TestCheckoutFlow(t *testing.T) {
	t.Parallel()

	paidAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	gateway := &stubGateway{
		initFn: func(call int, data *model.InitializePaymentData) (*model.InitializeResponse, error) {
			return acceptResponse(data.Reference), nil
		},
	}
	gateway.verifyFn = func(call int, ref string) (*model.VerifyResponse, error) {
		return &model.VerifyResponse{
			Status:  true,
			Message: "Verification successful",
			Data: model.VerifyData{
				Status:    "success",
				Reference: ref,
				Amount:    500,
				PaidAt:    paidAt.Format(time.RFC3339),
			},
		}, nil
	}

	svc := NewPaymentService(gateway, &seqRefs{}, testPaystackConfig())

	order := &model.Order{
		Email:         "a@b.com",
		Amount:        500,
		Plan:          "Professional",
		Quantity:      2,
		CustomerName:  "Ama Mensah",
		CustomerPhone: "+233200000000",
	}

	result, err := svc.Initialize(context.Background(), order)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	widget := &completingWidget{}
	completion, err := checkout.NewDriver(widget).Checkout(context.Background(), checkout.OpenParams{
		Key:       result.PublicKey,
		Email:     order.Email,
		Amount:    order.Amount,
		Currency:  "GHS",
		Reference: result.Reference,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !completion.Completed || completion.Reference != result.Reference {
		t.Fatalf("completion = %+v", completion)
	}

	outcome := svc.Verify(context.Background(), completion.Reference)
	if !outcome.Success() {
		t.Fatalf("outcome = %+v", outcome)
	}

	r, err := receipt.Build(outcome, order)
	if err != nil {
		t.Fatalf("build receipt: %v", err)
	}
	if r.Amount != 500 {
		t.Errorf("receipt amount = %d, want 500", r.Amount)
	}
	if r.Quantity != 2 {
		t.Errorf("receipt quantity = %d, want 2", r.Quantity)
	}
	if r.Reference != result.Reference {
		t.Errorf("receipt reference = %q, want %q", r.Reference, result.Reference)
	}
	if !r.PaidAt.Equal(paidAt) {
		t.Errorf("receipt paid at = %v, want %v", r.PaidAt, paidAt)
	}
}
