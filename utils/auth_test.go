package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "s3cret-pass" || len(hash) > 128 {
		t.Fatalf("unexpected hash %q", hash)
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Fatalf("expected password check to pass")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected password check to fail")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	// pass_hash is unique, so equal passwords must still hash differently.
	if a == b {
		t.Fatalf("expected distinct hashes for the same password")
	}
}

func TestHashPasswordRejectsLongInput(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}
