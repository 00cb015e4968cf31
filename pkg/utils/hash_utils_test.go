package utils

import (
	"regexp"
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPasswordHash("secret123", hash) {
		t.Error("correct password must verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestHashKey(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)

	a := HashKey("203.0.113.7")
	if !hexPattern.MatchString(a) {
		t.Fatalf("HashKey output %q is not 64 hex chars", a)
	}

	if a != HashKey("203.0.113.7") {
		t.Error("HashKey must be deterministic")
	}
	if a == HashKey("203.0.113.8") {
		t.Error("different inputs must not collide trivially")
	}
}

func TestRandomIntRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := RandomIntRange(10000, 99999)
		if n < 10000 || n > 99999 {
			t.Fatalf("RandomIntRange out of bounds: %d", n)
		}
	}

	if got := RandomIntRange(5, 5); got != 5 {
		t.Errorf("degenerate range: got %d, want 5", got)
	}
}
