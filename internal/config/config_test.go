package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.Issuer != "task-management-api" {
		t.Errorf("issuer = %q", cfg.JWT.Issuer)
	}
	if cfg.JWT.AccessExpiry != 1800 {
		t.Errorf("access expiry = %d, want 1800", cfg.JWT.AccessExpiry)
	}
	if cfg.Argon2.Memory != 64*1024 || cfg.Argon2.Iterations != 3 || cfg.Argon2.Parallelism != 2 {
		t.Errorf("argon2 defaults wrong: %+v", cfg.Argon2)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY", "600")
	t.Setenv("ARGON2_ITERATIONS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.JWT.AccessExpiry != 600 {
		t.Errorf("access expiry = %d, want 600", cfg.JWT.AccessExpiry)
	}
	if cfg.Argon2.Iterations != 4 {
		t.Errorf("argon2 iterations = %d, want 4", cfg.Argon2.Iterations)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("missing JWT_SECRET_KEY must fail")
	}
}
