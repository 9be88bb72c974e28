package service

import (
	"errors"
	"net/http"
	"strings"

	"digital-cards/internal/client"
)

var (
	// ErrValidation covers malformed or missing order input; local and not
	// retryable.
	ErrValidation = errors.New("invalid order")
	// ErrNotConfigured means the gateway credentials are missing; fatal,
	// never retried.
	ErrNotConfigured = errors.New("payment service not configured")
	// ErrDuplicateReference is a gateway-detected reference collision;
	// retried internally with a fresh reference.
	ErrDuplicateReference = errors.New("duplicate transaction reference")
	// ErrGatewayDeclined means the gateway processed the request and rejected
	// it for a substantive reason; a new reference cannot fix it.
	ErrGatewayDeclined = errors.New("payment gateway declined the request")
	// ErrReferenceExhausted means every initialization attempt collided.
	ErrReferenceExhausted = errors.New("unable to generate unique payment reference")
)

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrGatewayDeclined):
		return http.StatusBadRequest

	case errors.Is(err, ErrNotConfigured),
		errors.Is(err, ErrReferenceExhausted),
		errors.Is(err, client.ErrGatewayUnreachable):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

type gatewayErrorKind int

const (
	gatewayErrOther gatewayErrorKind = iota
	gatewayErrDuplicateReference
)

// classifyGatewayMessage decides retryability from the gateway's response
// message. Paystack exposes no structured error code on the initialize
// endpoint, so duplicate detection is a substring heuristic on its prose;
// swap this strategy out if a machine-readable code ever becomes available.
func classifyGatewayMessage(message string) gatewayErrorKind {
	m := strings.ToLower(message)
	if strings.Contains(m, "duplicate") || strings.Contains(m, "reference") {
		return gatewayErrDuplicateReference
	}
	return gatewayErrOther
}
