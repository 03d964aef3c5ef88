package services

import (
	"testing"
	"time"

	"services-marketplace-server/config"
)

func TestGenerateAndParseToken(t *testing.T) {
	js := NewJWTService(config.JWTConfig{Secret: "test-secret", ExpiryHours: 2})

	tok, err := js.GenerateToken(7, 11)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tok.TokenType != "Bearer" || tok.ExpiresIn != 7200 {
		t.Fatalf("unexpected token metadata: %+v", tok)
	}

	claims, err := js.ParseToken(tok.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.LoginID != 11 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "7" || claims.Issuer != tokenIssuer {
		t.Fatalf("unexpected registered claims: %+v", claims.RegisteredClaims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "one", ExpiryHours: 1})
	verifier := NewJWTService(config.JWTConfig{Secret: "two", ExpiryHours: 1})

	tok, err := issuer.GenerateToken(1, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ParseToken(tok.AccessToken); err == nil {
		t.Fatalf("expected signature check to fail")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	js := NewJWTService(config.JWTConfig{Secret: "s", ExpiryHours: 1})
	js.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	tok, err := js.GenerateToken(1, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	js.now = time.Now
	if _, err := js.ParseToken(tok.AccessToken); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	js := NewJWTService(config.JWTConfig{Secret: "s", ExpiryHours: 1})
	if _, err := js.ParseToken("not-a-token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
