package security

import (
	"strings"
	"testing"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	if hash == "" || hash == "secret1" {
		t.Fatalf("hash must be non-empty and never the plaintext, got %q", hash)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt format, got %q", hash)
	}

	if err := h.Compare(hash, "secret1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hash, "secret2"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestBcryptHasher_Compare_GarbageHash_ReturnsError(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)
	if err := h.Compare("not-a-bcrypt-hash", "whatever"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}

func TestBcryptHasher_DistinctHashesForSamePassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)
	h1, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	h2, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	// each hash embeds a fresh salt
	if h1 == h2 {
		t.Fatalf("expected distinct hashes, got equal")
	}
}

func TestNewBcryptHasher_NonPositiveCost_FallsBack(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	if h.cost != DefaultCost {
		t.Fatalf("expected default cost %d, got %d", DefaultCost, h.cost)
	}
}
