// Package config loads the profile the webhook binaries run with: a YAML
// file with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is a webhook profile.
type Config struct {
	WebhookURL string `yaml:"webhook_url"` // required for sending
	Username   string `yaml:"username"`    // optional display name override
	AvatarURL  string `yaml:"avatar_url"`  // optional avatar override

	LogLevel  string `yaml:"log_level"`  // "debug" | "info" | "warn" | "error"
	PrettyLog bool   `yaml:"pretty_log"` // true => zap dev (color), false => zap prod (JSON)

	StrictLimits bool          `yaml:"strict_limits"` // validate embeds against platform limits
	Timeout      time.Duration `yaml:"timeout"`       // HTTP timeout for probe and send

	ListenAddr string `yaml:"listen_addr"` // hooksink only, ex: ":8080"
}

// Load reads the profile at path (optional, "" skips the file) and then
// applies HOOK_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel:   "info",
		PrettyLog:  true,
		Timeout:    10 * time.Second,
		ListenAddr: ":8080",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading profile: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing profile yaml: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireWebhookURL validates the part of the profile only the sender needs.
func (c *Config) RequireWebhookURL() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("webhook_url is not set (profile file or HOOK_URL)")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.WebhookURL = getenv("HOOK_URL", cfg.WebhookURL)
	cfg.Username = getenv("HOOK_USERNAME", cfg.Username)
	cfg.AvatarURL = getenv("HOOK_AVATAR_URL", cfg.AvatarURL)
	cfg.LogLevel = getenv("HOOK_LOG_LEVEL", cfg.LogLevel)
	cfg.ListenAddr = getenv("HOOK_LISTEN_ADDR", cfg.ListenAddr)

	var err error
	if cfg.PrettyLog, err = getenvBool("HOOK_PRETTY_LOG", cfg.PrettyLog); err != nil {
		return err
	}
	if cfg.StrictLimits, err = getenvBool("HOOK_STRICT_LIMITS", cfg.StrictLimits); err != nil {
		return err
	}
	if cfg.Timeout, err = getenvDuration("HOOK_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}
	return nil
}

// helpers

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("parsing %s=%q: %w", key, v, err)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("parsing %s=%q: %w", key, v, err)
	}
	return d, nil
}
