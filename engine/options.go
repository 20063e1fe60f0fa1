package engine

import (
	"time"

	"golang.org/x/text/language"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute() and the report sections
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Now      func() time.Time // clock used to time each report section
	Language language.Tag     // casing rules for station names
}

// WithClock replaces the clock used for section timings.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.Now = now
	}
}

// WithLanguage sets the language whose title-casing rules apply to station names.
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.Language = tag
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Now:      time.Now,
		Language: language.English,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
