// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
	"time"
)

// clearEnv blanks every variable ParseFlags reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "SECRET_KEY", "SETUP_TOKEN", "SESSION_TTL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Command != CommandServe {
		t.Errorf("expected command %q, got %q", CommandServe, cfg.Command)
	}
	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "blog.db" {
		t.Errorf("expected database blog.db, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if !cfg.UsingDefaultSecret() {
		t.Errorf("expected default secret, got %q", cfg.SecretKey)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("expected 12h session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.SetupToken != "" {
		t.Errorf("expected no setup token, got %q", cfg.SetupToken)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("SETUP_TOKEN", "setup")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.SecretKey != "s3cret" || cfg.UsingDefaultSecret() {
		t.Errorf("expected env secret, got %q", cfg.SecretKey)
	}
	if cfg.SetupToken != "setup" {
		t.Errorf("expected setup token from env, got %q", cfg.SetupToken)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %s", cfg.SessionTTL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json, got %q", cfg.LogFormat)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SECRET_KEY", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-secret", "from-cli"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SecretKey != "from-cli" {
		t.Errorf("CLI should override env: expected from-cli, got %q", cfg.SecretKey)
	}
}

func TestParseFlags_Commands(t *testing.T) {
	clearEnv(t)

	for _, cmd := range []string{CommandServe, CommandInitDB, CommandResetAdmin} {
		cfg, err := ParseFlags([]string{"-d", "x.db", cmd})
		if err != nil {
			t.Fatalf("%s: %v", cmd, err)
		}
		if cfg.Command != cmd {
			t.Errorf("expected command %q, got %q", cmd, cfg.Command)
		}
	}

	if _, err := ParseFlags([]string{"drop-tables"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestParseFlags_FlagsAfterCommand(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantCmd string
		wantDB  string
		wantTTL time.Duration
	}{
		{"init-db then flag", []string{"init-db", "-d", "x.db"}, CommandInitDB, "x.db", 12 * time.Hour},
		{"reset-admin then flag", []string{"reset-admin", "-d", "other.db"}, CommandResetAdmin, "other.db", 12 * time.Hour},
		{"flags on both sides", []string{"-d", "a.db", "serve", "-session-ttl", "1h"}, CommandServe, "a.db", time.Hour},
		{"later flag wins", []string{"-d", "a.db", "init-db", "-d", "b.db"}, CommandInitDB, "b.db", 12 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Command != tt.wantCmd {
				t.Errorf("expected command %q, got %q", tt.wantCmd, cfg.Command)
			}
			if cfg.DatabaseURL != tt.wantDB {
				t.Errorf("expected database %q, got %q", tt.wantDB, cfg.DatabaseURL)
			}
			if cfg.SessionTTL != tt.wantTTL {
				t.Errorf("expected TTL %v, got %v", tt.wantTTL, cfg.SessionTTL)
			}
		})
	}

	if _, err := ParseFlags([]string{"init-db", "reset-admin"}); err == nil {
		t.Error("expected error for a second command")
	}
	if _, err := ParseFlags([]string{"init-db", "-d", "x.db", "extra"}); err == nil {
		t.Error("expected error for trailing arguments")
	}
	if _, err := ParseFlags([]string{"init-db", "-nope"}); err == nil {
		t.Error("expected error for unknown flag after the command")
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"bad ttl", map[string]string{"SESSION_TTL": "forever"}, nil},
		{"negative ttl", nil, []string{"-session-ttl", "-1h"}},
		{"zero ttl from env", map[string]string{"SESSION_TTL": "0s"}, nil},
		{"negative ttl from env", map[string]string{"SESSION_TTL": "-5m"}, nil},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, nil},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
