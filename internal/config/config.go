// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config carries the run configuration for report generation:
// output location, color palette, chart scenario sets, and the policy
// thresholds annotated on charts. Every key has a default; a config
// file only overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"matchperf/benchchart"
)

// Config is the full run configuration.
type Config struct {
	// OutDir receives the rendered artifacts.
	OutDir string `mapstructure:"outDir"`

	// DPI is the PNG render resolution.
	DPI int `mapstructure:"dpi"`

	// Colors maps algorithm names to "#rrggbb" display colors.
	Colors map[string]string `mapstructure:"colors"`

	// PrefilterPatterns is the ordered preference list for the
	// representative pattern of the prefilter-impact chart; the first
	// pattern with prefiltered measurements wins. Which pattern to
	// chart is presentation policy, so it lives here, not in the
	// analyzer.
	PrefilterPatterns []string `mapstructure:"prefilterPatterns"`

	// LiteralPatterns are the patterns compared in the short-vs-long
	// literal bar panel.
	LiteralPatterns []string `mapstructure:"literalPatterns"`

	// StructureScenarios are the scenarios of the structure-size
	// chart.
	StructureScenarios []string `mapstructure:"structureScenarios"`

	// ComplexityScenarios are the scenarios of the pattern-complexity
	// bar panel.
	ComplexityScenarios []string `mapstructure:"complexityScenarios"`

	// PatternLenThreshold is the literal-selection policy threshold in
	// pattern characters.
	PatternLenThreshold float64 `mapstructure:"patternLenThreshold"`

	// TextSizeKBThreshold is the prefiltering policy threshold in KB.
	TextSizeKBThreshold float64 `mapstructure:"textSizeKBThreshold"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("outDir", "imgs")
	v.SetDefault("dpi", 300)
	v.SetDefault("prefilterPatterns", []string{"a.c"})
	v.SetDefault("literalPatterns", []string{"abc", "constitution"})
	v.SetDefault("structureScenarios", []string{
		"Short Literal - Small Text",
		"Long Literal - Small Text",
		"Simple Regex - Dot",
		"Complex Regex - Alternation",
	})
	v.SetDefault("complexityScenarios", []string{
		"Short Literal - Small Text",
		"Simple Regex - Dot",
		"Complex Regex - Alternation",
	})
	v.SetDefault("patternLenThreshold", 10.0)
	v.SetDefault("textSizeKBThreshold", 10.0)
}

// Load reads the configuration, optionally merging the named config
// file (JSON or YAML, by extension) over the defaults. An empty path
// yields pure defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Style converts the configuration into the renderer's style value.
// Configured colors override the stock palette per algorithm.
func (c *Config) Style() (benchchart.Style, error) {
	s := benchchart.DefaultStyle()
	if c.DPI > 0 {
		s.DPI = c.DPI
	}
	if c.PatternLenThreshold > 0 {
		s.PatternLenThreshold = c.PatternLenThreshold
	}
	if c.TextSizeKBThreshold > 0 {
		s.TextSizeKBThreshold = c.TextSizeKBThreshold
	}
	for name, hex := range c.Colors {
		clr, err := benchchart.ParseHexColor(hex)
		if err != nil {
			return s, fmt.Errorf("color for %s: %w", name, err)
		}
		s.Colors[name] = clr
	}
	return s, nil
}
