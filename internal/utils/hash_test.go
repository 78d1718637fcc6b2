package utils

import (
	"strings"
	"testing"
)

func TestHashSecret_NotPlaintext(t *testing.T) {
	hash, err := HashSecret("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "secret1" {
		t.Error("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt encoding, got %q", hash)
	}
}

func TestHashSecret_Salted(t *testing.T) {
	first, err := HashSecret("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashSecret("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// bcrypt embeds a fresh salt, so two hashes of one input differ
	if first == second {
		t.Error("two hashes of the same input must not be equal")
	}
}

func TestCompareWithHash_Match(t *testing.T) {
	hash, err := HashSecret("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !CompareWithHash("secret1", hash) {
		t.Error("expected candidate to match its own hash")
	}
}

func TestCompareWithHash_Mismatch(t *testing.T) {
	hash, err := HashSecret("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if CompareWithHash("secret2", hash) {
		t.Error("expected mismatch for a different candidate")
	}
}

func TestCompareWithHash_MalformedHash(t *testing.T) {
	if CompareWithHash("secret1", "not-a-bcrypt-hash") {
		t.Error("expected false for malformed hash")
	}
}

func TestCompareWithHash_LongInput(t *testing.T) {
	// raw JWTs exceed bcrypt's 72-byte input limit; the pre-digest must
	// keep the full token significant
	longToken := strings.Repeat("a", 100)
	almostSame := longToken[:99] + "b"

	hash, err := HashSecret(longToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !CompareWithHash(longToken, hash) {
		t.Error("expected long candidate to match its own hash")
	}
	if CompareWithHash(almostSame, hash) {
		t.Error("expected mismatch for input differing beyond 72 bytes")
	}
}
