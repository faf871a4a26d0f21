package service

import (
	"strconv"
	"testing"
)

func TestGenerateResetCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := generateResetCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside the 6-digit range", n)
		}
		seen[code] = true
	}
	// 50 draws from 900000 values collapsing to one would mean a broken source
	if len(seen) < 2 {
		t.Errorf("expected varying codes, got %d distinct", len(seen))
	}
}

func TestHashResetCode(t *testing.T) {
	first := hashResetCode("123456")
	second := hashResetCode("123456")
	other := hashResetCode("654321")

	if first != second {
		t.Errorf("hash must be deterministic: %q vs %q", first, second)
	}
	if first == other {
		t.Errorf("different codes must not collide")
	}
	if len(first) != 64 {
		t.Errorf("expected hex sha256 digest of 64 chars, got %d", len(first))
	}
	if first == "123456" {
		t.Errorf("stored code must never be the plain code")
	}
}
