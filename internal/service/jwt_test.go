package service

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/soukly/api/internal/errors"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	userID, issuedAt, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
	if issuedAt.IsZero() {
		t.Error("issued-at is zero")
	}
}

func TestJWTServiceRejectsBadTokens(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)

	valid, err := svc.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	expiredSvc := NewJWTService("test-secret", -time.Minute)
	expired, err := expiredSvc.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong secret", mustToken(t, other, 7)},
		{"expired", expired},
		{"tampered", valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.ValidateToken(tt.token); !errors.Is(err, apperrors.ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func mustToken(t *testing.T, svc *JWTService, userID uint) string {
	t.Helper()
	token, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}
