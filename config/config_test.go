package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"JWT_EXPIRY_HOURS", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.JWT.ExpiryHours != 24 {
		t.Fatalf("expected default expiry 24h, got %d", cfg.JWT.ExpiryHours)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Fatalf("expected default rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default origins: %v", cfg.Server.AllowedOrigins)
	}
	want := "host=localhost port=5432 user=postgres password=password dbname=services_marketplace_db sslmode=disable TimeZone=UTC"
	if got := cfg.Database.DSN(); got != want {
		t.Fatalf("unexpected DSN:\n got %q\nwant %q", got, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgresql://u:p@db:5432/market?sslmode=require")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	cfg := Load()
	if cfg.Database.DSN() != "postgresql://u:p@db:5432/market?sslmode=require" {
		t.Fatalf("DB_URL should win, got %q", cfg.Database.DSN())
	}
	if cfg.JWT.ExpiryHours != 2 {
		t.Fatalf("expected expiry 2, got %d", cfg.JWT.ExpiryHours)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")
	if got := Load().JWT.ExpiryHours; got != 24 {
		t.Fatalf("expected fallback to 24, got %d", got)
	}
}
