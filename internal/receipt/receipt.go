// Package receipt derives a display/export record from a settled payment.
// Receipts have no storage of their own; every view is computed from the
// verified outcome and the originating order.
package receipt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"digital-cards/internal/model"
)

// ErrNotSuccessful guards against building a receipt from anything but a
// confirmed success; hitting it is a programming error, not a user condition.
var ErrNotSuccessful = errors.New("receipt requires a successful payment outcome")

// Receipt is immutable once built. Amount is in minor currency units.
type Receipt struct {
	Reference     string
	CustomerName  string
	Email         string
	Phone         string
	Company       string
	CardType      string
	Quantity      int
	PlanName      string
	Amount        int64
	PaidAt        time.Time
	TransactionID string
}

func Build(outcome *model.PaymentOutcome, order *model.Order) (*Receipt, error) {
	if outcome == nil || !outcome.Success() {
		return nil, ErrNotSuccessful
	}
	return &Receipt{
		Reference:     outcome.Reference,
		CustomerName:  order.CustomerName,
		Email:         order.Email,
		Phone:         order.CustomerPhone,
		Company:       order.CustomerCompany,
		CardType:      order.Plan,
		Quantity:      order.Quantity,
		PlanName:      order.Plan,
		Amount:        outcome.Amount,
		PaidAt:        outcome.PaidAt,
		TransactionID: outcome.Reference,
	}, nil
}

// AmountMajor converts the minor-unit amount for display.
func (r *Receipt) AmountMajor() float64 {
	return float64(r.Amount) / 100
}

// Summary renders the receipt as plain text, suitable for forwarding through
// a messaging channel.
func (r *Receipt) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payment Receipt\n")
	fmt.Fprintf(&b, "Reference: %s\n", r.Reference)
	fmt.Fprintf(&b, "Plan: %s\n", r.PlanName)
	fmt.Fprintf(&b, "Quantity: %d\n", r.Quantity)
	fmt.Fprintf(&b, "Amount Paid: GHS %.2f\n", r.AmountMajor())
	fmt.Fprintf(&b, "Paid At: %s\n", r.PaidAt.Format("January 2, 2006 15:04"))
	fmt.Fprintf(&b, "Customer: %s (%s)\n", r.CustomerName, r.Email)
	if r.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", r.Company)
	}
	fmt.Fprintf(&b, "Transaction ID: %s\n", r.TransactionID)
	return b.String()
}
