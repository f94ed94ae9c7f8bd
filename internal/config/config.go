// Package config reads the optional user defaults file. Everything in
// it is a preference, never a requirement: a missing or empty file
// yields a fully usable default configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scarff-dev/scarff/internal/target"
)

// ErrUnknownKey indicates a config key outside the known set.
var ErrUnknownKey = errors.New("unknown config key")

// Default values applied when the config file is absent or silent.
const (
	DefaultColor = "auto"
)

// Config holds user-level defaults for scaffold invocations.
type Config struct {
	// DefaultLanguage is used when a new-project invocation names no
	// language. Empty means no default: an omitted language becomes a
	// prompt (interactive) or an error (non-interactive).
	DefaultLanguage string `yaml:"default_language"`

	// Author is offered to templates that stamp an author name.
	Author string `yaml:"author"`

	// Color controls styled output: auto, always, or never.
	Color string `yaml:"color"`
}

// NewDefaultConfig returns a Config with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Color: DefaultColor,
	}
}

// Keys lists every config key, in file order.
func Keys() []string {
	return []string{"default_language", "author", "color"}
}

// Value returns the value of a single config key by its YAML name.
func (c *Config) Value(key string) (string, error) {
	switch key {
	case "default_language":
		return c.DefaultLanguage, nil
	case "author":
		return c.Author, nil
	case "color":
		return c.Color, nil
	}
	return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
}

// Validate checks field values. Called after loading; a config that
// fails validation is reported and replaced with defaults.
func (c *Config) Validate() error {
	if c.DefaultLanguage != "" {
		if _, err := target.ParseLanguage(c.DefaultLanguage); err != nil {
			return fmt.Errorf("default_language: %w", err)
		}
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color: %q is not one of auto, always, never", c.Color)
	}
	return nil
}
