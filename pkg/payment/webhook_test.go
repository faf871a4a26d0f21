package payment

import (
	"encoding/json"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	payload := []byte(`{"type":"checkout.session.completed"}`)

	tests := []struct {
		name      string
		payload   []byte
		signature string
		secret    string
		want      bool
	}{
		{"valid", payload, Sign(payload, secret), secret, true},
		{"wrong secret", payload, Sign(payload, "other"), secret, false},
		{"tampered payload", []byte(`{"type":"x"}`), Sign(payload, secret), secret, false},
		{"not hex", payload, "zz-not-hex", secret, false},
		{"empty signature", payload, "", secret, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifySignature(tt.payload, tt.signature, tt.secret); got != tt.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	secret := "whsec_test"
	event := WebhookEvent{
		Type: EventCheckoutCompleted,
		Session: CheckoutSession{
			ID:         "cs_123",
			Reference:  "ref_abc",
			ClientRef:  "42",
			AmountUnit: 10999,
			Currency:   "usd",
		},
	}
	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ParseEvent(payload, Sign(payload, secret), secret)
	if err != nil {
		t.Fatalf("ParseEvent() error = %v", err)
	}
	if got.Type != EventCheckoutCompleted {
		t.Errorf("Type = %q, want %q", got.Type, EventCheckoutCompleted)
	}
	if got.Session.ClientRef != "42" {
		t.Errorf("ClientRef = %q, want %q", got.Session.ClientRef, "42")
	}

	if _, err := ParseEvent(payload, Sign(payload, "bad"), secret); err == nil {
		t.Error("expected error for bad signature, got nil")
	}
}
