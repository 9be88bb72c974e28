package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"digital-cards/internal/client"
	"digital-cards/internal/config"
	"digital-cards/internal/model"
)

// maxInitAttempts bounds the generate-reference/initialize loop. Only
// duplicate-reference rejections and transport errors consume attempts.
const maxInitAttempts = 3

// AbandonedMessage is the customer-facing copy for a checkout the purchaser
// walked away from, distinguished from a confirmed decline.
const AbandonedMessage = "Payment was cancelled or abandoned"

type ReferenceGenerator interface {
	Generate() string
}

// InitializeResult is the authorization handle needed to open checkout.
type InitializeResult struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	PublicKey        string
}

type PaymentService interface {
	Initialize(ctx context.Context, order *model.Order) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) *model.PaymentOutcome
}

type paymentServiceImpl struct {
	gateway client.PaystackClient
	refs    ReferenceGenerator
	cfg     *config.Paystack
}

func NewPaymentService(gateway client.PaystackClient, refs ReferenceGenerator, paystackCfg *config.Paystack) PaymentService {
	return &paymentServiceImpl{
		gateway: gateway,
		refs:    refs,
		cfg:     paystackCfg,
	}
}

// Initialize validates the order and opens a transaction with the gateway,
// regenerating the reference on collision up to maxInitAttempts total
// attempts. Any other gateway rejection stops immediately: it indicates a
// request-shape problem a fresh reference cannot fix.
func (s *paymentServiceImpl) Initialize(ctx context.Context, order *model.Order) (*InitializeResult, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if s.cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: missing secret key", ErrNotConfigured)
	}
	if s.cfg.PublicKey == "" {
		return nil, fmt.Errorf("%w: missing public key", ErrNotConfigured)
	}

	data := &model.InitializePaymentData{
		Email:       order.Email,
		Amount:      order.Amount,
		Currency:    s.cfg.Currency,
		CallbackURL: s.cfg.CallbackURL,
		Metadata: model.PaymentMetadata{
			CardType:     order.Plan,
			Quantity:     strconv.Itoa(order.Quantity),
			CustomerName: order.CustomerName,
			Phone:        order.CustomerPhone,
			Company:      order.CustomerCompany,
		},
	}

	var lastErr error
	for attempt := 1; attempt <= maxInitAttempts; attempt++ {
		data.Reference = s.refs.Generate()

		resp, err := s.gateway.InitializeTransaction(ctx, data)
		if err != nil {
			// Transport error: retry with a fresh reference in case the
			// previous one reached the gateway.
			lastErr = err
			continue
		}

		if resp.Status {
			return &InitializeResult{
				Reference:        data.Reference,
				AuthorizationURL: resp.Data.AuthorizationURL,
				AccessCode:       resp.Data.AccessCode,
				PublicKey:        s.cfg.PublicKey,
			}, nil
		}

		if classifyGatewayMessage(resp.Message) == gatewayErrDuplicateReference {
			lastErr = fmt.Errorf("%w: %s", ErrDuplicateReference, resp.Message)
			continue
		}

		return nil, fmt.Errorf("%w: %s", ErrGatewayDeclined, resp.Message)
	}

	if errors.Is(lastErr, ErrDuplicateReference) {
		return nil, fmt.Errorf("%w after %d attempts", ErrReferenceExhausted, maxInitAttempts)
	}
	return nil, fmt.Errorf("initialize payment: %w", lastErr)
}

// Verify classifies the gateway's view of a transaction into a normalized
// outcome. Transport failures surface as StatusError outcomes rather than
// errors: an unreachable gateway is inconclusive, not a decline, and the
// poller may retry it. The mapping is idempotent once the gateway settles.
func (s *paymentServiceImpl) Verify(ctx context.Context, reference string) *model.PaymentOutcome {
	resp, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return &model.PaymentOutcome{
			Reference: reference,
			Status:    model.StatusError,
			Message:   "Unable to reach payment gateway",
		}
	}

	data := resp.Data
	if data.Reference == "" {
		data.Reference = reference
	}

	switch {
	case resp.Status && data.Status == "success":
		return &model.PaymentOutcome{
			Reference:       data.Reference,
			Status:          model.StatusSuccess,
			GatewayStatus:   data.Status,
			GatewayResponse: data.GatewayResponse,
			Message:         "Payment verified successfully",
			Amount:          data.Amount,
			PaidAt:          parsePaidAt(data.PaidAt),
			Customer:        data.Customer,
			Metadata:        data.Metadata,
		}

	case data.Status == "abandoned":
		return &model.PaymentOutcome{
			Reference:       data.Reference,
			Status:          model.StatusFailed,
			GatewayStatus:   data.Status,
			GatewayResponse: data.GatewayResponse,
			Message:         AbandonedMessage,
		}

	case pendingGatewayStatus(data.Status):
		status := model.StatusPending
		if data.Status != "pending" {
			status = model.StatusProcessing
		}
		return &model.PaymentOutcome{
			Reference:       data.Reference,
			Status:          status,
			GatewayStatus:   data.Status,
			GatewayResponse: data.GatewayResponse,
			Message:         "Payment not confirmed yet",
		}

	default:
		reason := data.GatewayResponse
		if reason == "" {
			reason = data.Status
		}
		if reason == "" {
			reason = "Unknown error"
		}
		return &model.PaymentOutcome{
			Reference:       data.Reference,
			Status:          model.StatusFailed,
			GatewayStatus:   data.Status,
			GatewayResponse: data.GatewayResponse,
			Message:         fmt.Sprintf("Payment failed: %s", reason),
		}
	}
}

// pendingGatewayStatus reports whether the gateway considers the transaction
// still in flight.
func pendingGatewayStatus(status string) bool {
	switch status {
	case "pending", "ongoing", "processing", "queued", "send_otp":
		return true
	}
	return false
}

func parsePaidAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func validateOrder(order *model.Order) error {
	if order.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(order.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if order.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if order.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if order.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}
