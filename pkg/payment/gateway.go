package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/soukly/api/config"
)

// Gateway is a thin client for the hosted-checkout payment provider.
type Gateway struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
}

func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		baseURL:  cfg.Payment.BaseURL,
		apiKey:   cfg.Payment.APIKey,
		currency: cfg.Payment.Currency,
		httpClient: &http.Client{
			Timeout: cfg.Payment.Timeout,
		},
	}
}

// CheckoutSession is the provider's hosted payment page handle.
type CheckoutSession struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Reference  string `json:"reference"`
	ClientRef  string `json:"client_reference_id"`
	AmountUnit int64  `json:"amount"`
	Currency   string `json:"currency"`
}

type checkoutRequest struct {
	Reference     string `json:"reference"`
	ClientRef     string `json:"client_reference_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

// CreateCheckoutSession opens a hosted checkout for the given cart.
// amountCents is the total in the currency's minor unit; clientRef carries
// the cart id back through the completion webhook.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, amountCents int64, clientRef, customerEmail, successURL, cancelURL string) (*CheckoutSession, error) {
	payload := checkoutRequest{
		Reference:     uuid.NewString(),
		ClientRef:     clientRef,
		Amount:        amountCents,
		Currency:      g.currency,
		CustomerEmail: customerEmail,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session: %w", err)
	}
	return &session, nil
}
