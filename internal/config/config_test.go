package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
webhook_url: https://example.com/api/webhooks/1/token
username: release-bot
avatar_url: https://example.com/avatar.png
log_level: debug
pretty_log: false
strict_limits: true
timeout: 3s
listen_addr: ":9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if cfg.WebhookURL != "https://example.com/api/webhooks/1/token" {
		t.Errorf("WebhookURL = %q", cfg.WebhookURL)
	}
	if cfg.Username != "release-bot" {
		t.Errorf("Username = %q", cfg.Username)
	}
	if cfg.LogLevel != "debug" || cfg.PrettyLog {
		t.Errorf("logging config = %q / %v", cfg.LogLevel, cfg.PrettyLog)
	}
	if !cfg.StrictLimits {
		t.Error("StrictLimits should be true")
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.LogLevel != "info" || !cfg.PrettyLog {
		t.Errorf("logging defaults = %q / %v", cfg.LogLevel, cfg.PrettyLog)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout default = %v", cfg.Timeout)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr default = %q", cfg.ListenAddr)
	}
	if err := cfg.RequireWebhookURL(); err == nil {
		t.Error("RequireWebhookURL() should fail with no URL configured")
	}
}

func TestEnvOverridesProfile(t *testing.T) {
	path := writeProfile(t, "webhook_url: https://file.example.com/hook\ntimeout: 3s\n")

	t.Setenv("HOOK_URL", "https://env.example.com/hook")
	t.Setenv("HOOK_TIMEOUT", "7s")
	t.Setenv("HOOK_STRICT_LIMITS", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.WebhookURL != "https://env.example.com/hook" {
		t.Errorf("WebhookURL = %q, env should win", cfg.WebhookURL)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("Timeout = %v, env should win", cfg.Timeout)
	}
	if !cfg.StrictLimits {
		t.Error("StrictLimits should come from env")
	}
}

func TestLoadBadValues(t *testing.T) {
	if _, err := Load(writeProfile(t, "webhook_url: [not, a, string\n")); err == nil {
		t.Error("Load() should fail on malformed yaml")
	}

	t.Setenv("HOOK_TIMEOUT", "soon")
	if _, err := Load(""); err == nil {
		t.Error("Load() should fail on an unparseable HOOK_TIMEOUT")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail when the profile file does not exist")
	}
}
