package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "ATTACHMENT_DRIVER", "VALUATIONS_TABLE", "REPOSITORY_TIMEOUT", "PUBLIC_BASE_URL", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.ValuationsTable != "valuations" || cfg.OptionsTable != "valuation_options" {
		t.Fatalf("unexpected tables: %+v", cfg)
	}
	if cfg.AttachmentDriver != AttachmentDriverLocal {
		t.Fatalf("expected local driver, got %q", cfg.AttachmentDriver)
	}
	if cfg.RepositoryTimeout != 8*time.Second {
		t.Fatalf("expected 8s timeout, got %s", cfg.RepositoryTimeout)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("ATTACHMENT_DRIVER", "S3")
	t.Setenv("VALUATIONS_TABLE", "valuations-test")
	t.Setenv("REPOSITORY_TIMEOUT", "2s")
	t.Setenv("PUBLIC_BASE_URL", "https://files.example.com/")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Fatalf("expected 9090, got %d", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
	if cfg.AttachmentDriver != AttachmentDriverS3 {
		t.Fatalf("expected s3 driver, got %q", cfg.AttachmentDriver)
	}
	if cfg.ValuationsTable != "valuations-test" {
		t.Fatalf("unexpected table %q", cfg.ValuationsTable)
	}
	if cfg.RepositoryTimeout != 2*time.Second {
		t.Fatalf("expected 2s, got %s", cfg.RepositoryTimeout)
	}
	if cfg.PublicBaseURL != "https://files.example.com" {
		t.Fatalf("expected trimmed base url, got %q", cfg.PublicBaseURL)
	}
}

func TestLoad_JWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	t.Setenv("APP_ENV", "production")
	cfg := Load()
	if cfg.JWTSecret != "" {
		t.Fatalf("expected no default secret in production, got %q", cfg.JWTSecret)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}

	t.Setenv("APP_ENV", "development")
	cfg = Load()
	if cfg.JWTSecret == "" {
		t.Fatalf("expected development default secret")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cr3t")
	cfg = Load()
	if cfg.JWTSecret != "s3cr3t" {
		t.Fatalf("expected env secret, got %q", cfg.JWTSecret)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
