package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// EventCheckoutCompleted marks a finished hosted-checkout payment.
const EventCheckoutCompleted = "checkout.session.completed"

// WebhookEvent is the envelope the gateway posts to our webhook endpoint.
type WebhookEvent struct {
	Type    string          `json:"type"`
	Session CheckoutSession `json:"data"`
}

// Sign computes the hex HMAC-SHA256 of payload under secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the gateway's signature header against the raw body.
func VerifySignature(payload []byte, signature, secret string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(mac.Sum(nil), expected)
}

// ParseEvent verifies the signature and decodes the event body.
func ParseEvent(payload []byte, signature, secret string) (*WebhookEvent, error) {
	if !VerifySignature(payload, signature, secret) {
		return nil, fmt.Errorf("webhook signature mismatch")
	}
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook event: %w", err)
	}
	return &event, nil
}
