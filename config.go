package jwtdecode

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cybergodev/jwtdecode/internal/core"
)

// Config represents decoder configuration
type Config struct {
	// Clock supplies the current time for expiry calculations.
	// Defaults to time.Now. Inject a fixed clock in tests.
	Clock func() time.Time `yaml:"-" json:"-"`

	// Leeway is the clock-skew tolerance applied to exp/nbf comparisons
	Leeway time.Duration `yaml:"leeway" json:"leeway"`

	// MaxTokenLength caps the accepted compact token size
	MaxTokenLength int `yaml:"max_token_length" json:"max_token_length"`

	// MaxSegmentLength caps a single base64url segment
	MaxSegmentLength int `yaml:"max_segment_length" json:"max_segment_length"`

	// Logger receives decode-failure diagnostics when Debug is set.
	// Nil falls back to slog.Default.
	Logger *slog.Logger `yaml:"-" json:"-"`

	// Debug enables diagnostic logging of swallowed decode failures.
	// It never changes what the API returns.
	Debug bool `yaml:"debug" json:"debug"`
}

// DefaultConfig returns the default decoder configuration
func DefaultConfig() Config {
	return Config{
		Clock:            time.Now,
		Leeway:           0,
		MaxTokenLength:   core.DefaultMaxTokenLength,
		MaxSegmentLength: core.DefaultMaxSegmentLength,
		Debug:            false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}

	if c.Leeway < 0 {
		return fmt.Errorf("%w: leeway must not be negative", ErrInvalidConfig)
	}

	if c.MaxTokenLength < 0 || c.MaxSegmentLength < 0 {
		return fmt.Errorf("%w: size limits must not be negative", ErrInvalidConfig)
	}

	if c.MaxTokenLength > 0 && c.MaxSegmentLength > 0 && c.MaxSegmentLength > c.MaxTokenLength {
		return fmt.Errorf("%w: segment limit exceeds token limit", ErrInvalidConfig)
	}

	return nil
}
