package model

import "time"

type PaymentStatus string

const (
	// StatusPending and StatusProcessing are non-terminal: the gateway has
	// not settled the transaction yet.
	StatusPending    PaymentStatus = "pending"
	StatusProcessing PaymentStatus = "processing"
	// StatusSuccess and StatusFailed are terminal for a reference.
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"
	// StatusError means the verify call itself was inconclusive (gateway
	// unreachable); it is not a confirmed decline and may be retried.
	StatusError PaymentStatus = "error"
)

// PaymentOutcome is the normalized result of one verify call. It is never
// mutated after creation; a retried payment produces a new order, reference
// and outcome.
type PaymentOutcome struct {
	Reference       string
	Status          PaymentStatus
	GatewayStatus   string
	GatewayResponse string
	Message         string

	// Set on success only.
	Amount   int64
	PaidAt   time.Time
	Customer Customer
	Metadata PaymentMetadata
}

func (o *PaymentOutcome) Success() bool {
	return o.Status == StatusSuccess
}

func (o *PaymentOutcome) Terminal() bool {
	return o.Status == StatusSuccess || o.Status == StatusFailed
}
