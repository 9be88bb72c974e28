package handler

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"digital-cards/internal/client"
	"digital-cards/internal/dto"
	"digital-cards/internal/model"
	"digital-cards/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
	}
}

func (h *PaymentHandler) Initialize(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.InitializeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
	}

	order := &model.Order{
		Email:           req.Email,
		Amount:          req.Amount,
		Plan:            req.Plan,
		Quantity:        req.Quantity,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerCompany: req.CustomerCompany,
	}

	result, err := h.payments.Initialize(ctx, order)
	if err != nil {
		return c.JSON(service.HTTPStatus(err), dto.ErrorResponse{Message: initializeErrorMessage(err)})
	}

	return c.JSON(http.StatusOK, dto.InitializeResponse{
		Success: true,
		Data: &model.InitializeData{
			AuthorizationURL: result.AuthorizationURL,
			AccessCode:       result.AccessCode,
			Reference:        result.Reference,
		},
		Reference: result.Reference,
		PublicKey: result.PublicKey,
	})
}

func initializeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrValidation):
		return err.Error()
	case errors.Is(err, service.ErrNotConfigured):
		return "Payment service not configured"
	case errors.Is(err, service.ErrGatewayDeclined):
		return err.Error()
	case errors.Is(err, service.ErrReferenceExhausted):
		return "Failed to generate unique payment reference after multiple attempts"
	case errors.Is(err, client.ErrGatewayUnreachable):
		return "Failed to initialize payment. Please check your connection and try again."
	default:
		return "Failed to initialize payment"
	}
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
	}
	if req.Reference == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Payment reference is required"})
	}

	outcome := h.payments.Verify(ctx, req.Reference)

	switch outcome.Status {
	case model.StatusSuccess:
		return c.JSON(http.StatusOK, dto.VerifySuccessResponse{
			Success: true,
			Message: "Payment verified successfully",
			Data: dto.VerifiedPayment{
				Reference: outcome.Reference,
				Amount:    float64(outcome.Amount) / 100,
				Customer:  outcome.Customer,
				Metadata:  outcome.Metadata,
				PaidAt:    outcome.PaidAt.Format(time.RFC3339),
				Status:    outcome.GatewayStatus,
			},
		})

	case model.StatusError:
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to verify payment"})

	default:
		return c.JSON(http.StatusBadRequest, dto.VerifyFailureResponse{
			Success: false,
			Message: outcome.Message,
			Data: dto.VerifyFailureData{
				Status:          outcome.GatewayStatus,
				GatewayResponse: outcome.GatewayResponse,
				Reference:       outcome.Reference,
			},
			Details: map[string]any{
				"gatewayStatus":   outcome.GatewayStatus,
				"gatewayResponse": outcome.GatewayResponse,
				"gatewayMessage":  outcome.Message,
			},
		})
	}
}

// Plans lists the published pricing plans for the storefront.
func (h *PaymentHandler) Plans(c echo.Context) error {
	plans := make([]dto.PlanSummary, 0, len(model.Plans))
	for _, plan := range model.Plans {
		plans = append(plans, dto.PlanSummary{
			ID:           plan.ID,
			Name:         plan.Name,
			Price:        plan.Price,
			DisplayPrice: plan.DisplayPrice,
			Description:  plan.Description,
			Features:     plan.Features,
		})
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Price < plans[j].Price })

	return c.JSON(http.StatusOK, map[string]any{"plans": plans})
}
