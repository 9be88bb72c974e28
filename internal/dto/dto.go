package dto

import "digital-cards/internal/model"

type InitializeRequest struct {
	Email           string `json:"email"`
	Amount          int64  `json:"amount"` // minor currency units
	Plan            string `json:"plan"`
	Quantity        int    `json:"quantity"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerCompany string `json:"customerCompany,omitempty"`
}

type InitializeResponse struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message,omitempty"`
	Data      *model.InitializeData `json:"data,omitempty"`
	Reference string                `json:"reference,omitempty"`
	PublicKey string                `json:"publicKey,omitempty"`
}

type VerifyRequest struct {
	Reference string `json:"reference"`
}

// VerifiedPayment is the success payload of the verify endpoint. Amount is in
// major currency units, converted from the gateway's minor-unit figure.
type VerifiedPayment struct {
	Reference string                `json:"reference"`
	Amount    float64               `json:"amount"`
	Customer  model.Customer        `json:"customer"`
	Metadata  model.PaymentMetadata `json:"metadata"`
	PaidAt    string                `json:"paidAt"`
	Status    string                `json:"status"`
}

type VerifySuccessResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    VerifiedPayment `json:"data"`
}

type VerifyFailureData struct {
	Status          string `json:"status"`
	GatewayResponse string `json:"gateway_response,omitempty"`
	Reference       string `json:"reference,omitempty"`
}

type VerifyFailureResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    VerifyFailureData `json:"data"`
	Details map[string]any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PlanSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int64    `json:"price"`
	DisplayPrice string   `json:"displayPrice"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
}

type CardSummary struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	Bio      string `json:"bio"`
}

type SearchResponse struct {
	Found   bool         `json:"found"`
	Profile *CardSummary `json:"profile,omitempty"`
	Message string       `json:"message"`
}
