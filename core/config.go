package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL              = "http://localhost:3000"
	DefaultAPIPrefix            = "/api"
	DefaultTimeout              = 10 * time.Second
	DefaultUserAgent            = "stayhooks-go/0.1"
	DefaultBullet               = "•"
	DefaultMaxResponseBodyBytes = int64(10 << 20)
)

// Config is immutable once a Client is built. A nil APIPrefix falls back to
// DefaultAPIPrefix during resolution; "" and "/" address the API root.
type Config struct {
	BaseURL              string        `koanf:"base_url" mapstructure:"base_url"`
	Token                string        `koanf:"token" mapstructure:"token"`
	APIPrefix            *string       `koanf:"api_prefix" mapstructure:"api_prefix"`
	Timeout              time.Duration `koanf:"timeout" mapstructure:"timeout"`
	UserAgent            string        `koanf:"user_agent" mapstructure:"user_agent"`
	DefaultAlias         string        `koanf:"default_alias" mapstructure:"default_alias"`
	Bullet               string        `koanf:"bullet" mapstructure:"bullet"`
	MaxResponseBodyBytes int64         `koanf:"max_response_body_bytes" mapstructure:"max_response_body_bytes"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:              DefaultBaseURL,
		APIPrefix:            APIPrefix(DefaultAPIPrefix),
		Timeout:              DefaultTimeout,
		UserAgent:            DefaultUserAgent,
		Bullet:               DefaultBullet,
		MaxResponseBodyBytes: DefaultMaxResponseBodyBytes,
	}
}

// APIPrefix returns prefix as a Config.APIPrefix value.
func APIPrefix(prefix string) *string {
	return &prefix
}

// ResolvedAPIPrefix is the raw prefix in effect, DefaultAPIPrefix when unset.
func (c Config) ResolvedAPIPrefix() string {
	if c.APIPrefix == nil {
		return DefaultAPIPrefix
	}
	return *c.APIPrefix
}

func (c Config) Validate() error {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		return fmt.Errorf("core: base_url is required")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("core: base_url is invalid: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("core: base_url must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("core: base_url host is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("core: timeout must be positive")
	}
	if c.MaxResponseBodyBytes < 0 {
		return fmt.Errorf("core: max_response_body_bytes must be >= 0")
	}
	return nil
}
