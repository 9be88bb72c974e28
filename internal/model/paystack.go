package model

// Wire types for Paystack's transaction endpoints. Amounts on the wire are
// always integers in the minor currency unit; metadata is echoed back
// unchanged on verify.

type PaymentMetadata struct {
	CardType     string `json:"cardType"`
	Quantity     string `json:"quantity"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Company      string `json:"company,omitempty"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type InitializePaymentData struct {
	Email       string          `json:"email"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Reference   string          `json:"reference"`
	CallbackURL string          `json:"callback_url,omitempty"`
	Metadata    PaymentMetadata `json:"metadata"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type InitializeResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    InitializeData `json:"data"`
}

type VerifyData struct {
	Status          string          `json:"status"`
	Reference       string          `json:"reference"`
	Amount          int64           `json:"amount"`
	GatewayResponse string          `json:"gateway_response"`
	PaidAt          string          `json:"paid_at"`
	Customer        Customer        `json:"customer"`
	Metadata        PaymentMetadata `json:"metadata"`
}

type VerifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`
}
