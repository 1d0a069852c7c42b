// Package config loads webdrive settings from a YAML file. The file is
// optional: every field has a default, and an absent file yields the
// default configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Load and Default.
const (
	DefaultWaitTimeout  = 10 * time.Second
	DefaultPollInterval = 500 * time.Millisecond
	DefaultBrowserName  = "chromium"
)

// Config holds the library's settings.
type Config struct {
	// WaitTimeout is the default budget for wait operations.
	WaitTimeout time.Duration `yaml:"wait_timeout"`

	// PollInterval is the pause between wait attempts.
	PollInterval time.Duration `yaml:"poll_interval"`

	// Browser selects the browser binary for the playwright driver:
	// "chromium", "firefox" or "webkit".
	Browser string `yaml:"browser"`

	// Headless controls whether the browser runs without a window.
	Headless bool `yaml:"headless"`

	// BaseURL, when set, is the page the driver opens on startup.
	BaseURL string `yaml:"base_url"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		WaitTimeout:  DefaultWaitTimeout,
		PollInterval: DefaultPollInterval,
		Browser:      DefaultBrowserName,
		Headless:     true,
	}
}

// UnmarshalYAML decodes durations from strings like "30s" or "250ms",
// which yaml.v3 does not do for time.Duration on its own.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type raw struct {
		WaitTimeout  string `yaml:"wait_timeout"`
		PollInterval string `yaml:"poll_interval"`
		Browser      string `yaml:"browser"`
		Headless     *bool  `yaml:"headless"`
		BaseURL      string `yaml:"base_url"`
	}
	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}

	if r.WaitTimeout != "" {
		d, err := time.ParseDuration(r.WaitTimeout)
		if err != nil {
			return fmt.Errorf("wait_timeout: %w", err)
		}
		c.WaitTimeout = d
	}
	if r.PollInterval != "" {
		d, err := time.ParseDuration(r.PollInterval)
		if err != nil {
			return fmt.Errorf("poll_interval: %w", err)
		}
		c.PollInterval = d
	}
	if r.Browser != "" {
		c.Browser = r.Browser
	}
	if r.Headless != nil {
		c.Headless = *r.Headless
	}
	if r.BaseURL != "" {
		c.BaseURL = r.BaseURL
	}
	return nil
}

// Load reads configuration from a YAML file, filling unset fields with
// defaults. A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values and re-applies defaults to zero fields.
func (c *Config) Validate() error {
	if c.WaitTimeout < 0 || c.PollInterval < 0 {
		return fmt.Errorf("timeouts cannot be negative")
	}
	if c.WaitTimeout == 0 {
		c.WaitTimeout = DefaultWaitTimeout
	}
	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}
	switch c.Browser {
	case "":
		c.Browser = DefaultBrowserName
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("unknown browser %q", c.Browser)
	}
	return nil
}
