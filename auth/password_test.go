package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}

	first, err := h.Hash("pass1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("pass1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if string(first) == string(second) {
		t.Fatal("hashes of the same password should differ by salt")
	}

	if err := h.Compare(first, "pass1"); err != nil {
		t.Fatalf("Compare correct password: %v", err)
	}
	if err := h.Compare(first, "pass2"); !errors.Is(err, ErrMismatch) {
		t.Fatalf("want ErrMismatch, got %v", err)
	}
	if err := h.Compare([]byte("not-a-hash"), "pass1"); err == nil || errors.Is(err, ErrMismatch) {
		t.Fatalf("malformed hash should be a distinct error, got %v", err)
	}
}

func TestNewHasherCostRange(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		if _, err := NewHasher(cost); err == nil {
			t.Fatalf("cost %d should be rejected", cost)
		}
	}
}
