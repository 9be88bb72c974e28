package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"digital-cards/internal/config"
	"digital-cards/internal/model"
)

// ErrGatewayUnreachable marks a call that never produced a gateway answer:
// transport failure or an undecodable response body. It is distinct from a
// decoded response in which the gateway reports a failure.
var ErrGatewayUnreachable = errors.New("payment gateway unreachable")

type PaystackClient interface {
	InitializeTransaction(ctx context.Context, data *model.InitializePaymentData) (*model.InitializeResponse, error)
	VerifyTransaction(ctx context.Context, reference string) (*model.VerifyResponse, error)
}

type paystackClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewPaystackClient(paystackCfg *config.Paystack) PaystackClient {
	return &paystackClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: paystackCfg.BaseApiURL,
		secretKey:  paystackCfg.SecretKey,
	}
}

func (c *paystackClientImpl) InitializeTransaction(ctx context.Context, data *model.InitializePaymentData) (*model.InitializeResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal initialize payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/transaction/initialize",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("create initialize request: %w", err)
	}

	var result model.InitializeResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *paystackClientImpl) VerifyTransaction(ctx context.Context, reference string) (*model.VerifyResponse, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseApiURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create verify request: %w", err)
	}

	var result model.VerifyResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do sends an authenticated request and decodes the gateway envelope. Paystack
// answers declined requests with a non-2xx code but a well-formed envelope, so
// any decodable body counts as a gateway answer; only transport failures and
// bodies that fail to decode map to ErrGatewayUnreachable.
func (c *paystackClientImpl) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrGatewayUnreachable, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: status=%d undecodable body", ErrGatewayUnreachable, resp.StatusCode)
	}
	return nil
}
