package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %s", cfg.Env)
	}
	if cfg.Mongo.Database != "blood_donation" {
		t.Fatalf("expected default database, got %s", cfg.Mongo.Database)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSOrigins)
	}
	if cfg.Admin.Username != "admin" {
		t.Fatalf("expected default bootstrap username, got %s", cfg.Admin.Username)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "sekret")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "sekret" {
		t.Fatalf("expected jwt secret, got %s", cfg.JWTSecret)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" {
		t.Fatalf("expected mongo uri override, got %s", cfg.Mongo.URI)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("expected two origins, got %v", cfg.CORSOrigins)
	}
}
