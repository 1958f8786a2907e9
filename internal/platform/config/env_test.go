package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"AGENDA_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("AGENDA_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvPrefixed(t *testing.T) {
	t.Setenv("AGENDA_TEST_LEVEL", "debug")
	t.Setenv("LEVEL", "error")

	var cfg prefixedTestConfig
	if err := ParseEnvPrefixed(&cfg, "AGENDA_TEST_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Level != "debug" {
		t.Fatalf("expected prefixed level debug, got %q", cfg.Level)
	}

	var defaults prefixedTestConfig
	if err := ParseEnvPrefixed(&defaults, "AGENDA_UNSET_"); err != nil {
		t.Fatalf("parse env defaults: %v", err)
	}
	if defaults.Level != "info" {
		t.Fatalf("expected default level info, got %q", defaults.Level)
	}
}
