// Package config provides optional file-based overrides for the suggestion
// rules and catalog fallbacks.
package config

import (
	"fmt"
	"regexp"

	"github.com/aprofam/servqual-go/pkg/servqual/suggest"
)

// Config represents the complete tool configuration.
type Config struct {
	Suggestions SuggestionConfig `yaml:"suggestions"`
	Catalogs    CatalogConfig    `yaml:"catalogs"`
}

// SuggestionConfig configures the corrective-action suggestion engine.
type SuggestionConfig struct {
	// Rules are appended after the built-in rule list, so built-ins keep
	// their precedence. Each pattern is matched case-insensitively.
	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig is one (pattern, action) suggestion rule.
type RuleConfig struct {
	// Pattern is a regular expression over complaint text.
	Pattern string `yaml:"pattern"`
	// Action is the corrective action recommended when the pattern matches.
	Action string `yaml:"action"`
}

// CatalogConfig supplies catalog fallbacks used when a workbook carries no
// catalog sheet.
type CatalogConfig struct {
	// Responsibles lists fallback responsible parties.
	Responsibles []string `yaml:"responsables"`
	// Statuses lists fallback statuses (empty = the four canonical ones).
	Statuses []string `yaml:"estados"`
	// Branches lists fallback branches.
	Branches []string `yaml:"sucursales"`
}

// DefaultConfig returns a Config with no overrides: built-in rules only and
// no catalog fallbacks.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for i, r := range c.Suggestions.Rules {
		if r.Pattern == "" {
			return fmt.Errorf("suggestions.rules[%d]: pattern is required", i)
		}
		if _, err := regexp.Compile("(?i)" + r.Pattern); err != nil {
			return fmt.Errorf("suggestions.rules[%d]: invalid pattern: %w", i, err)
		}
		if r.Action == "" {
			return fmt.Errorf("suggestions.rules[%d]: action is required", i)
		}
	}
	return nil
}

// CompileRules returns the effective rule list: the built-in rules followed by
// the configured ones, in file order.
func (c *Config) CompileRules() ([]suggest.Rule, error) {
	rules := suggest.DefaultRules()
	for i, r := range c.Suggestions.Rules {
		pattern, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("suggestions.rules[%d]: invalid pattern: %w", i, err)
		}
		rules = append(rules, suggest.Rule{Pattern: pattern, Action: r.Action})
	}
	return rules, nil
}
