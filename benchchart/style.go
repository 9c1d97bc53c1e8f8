// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Style is the static presentation configuration for a report run:
// the algorithm color palette, render resolution, and the policy
// thresholds annotated on charts. It is passed explicitly into every
// renderer; the analytical packages have no dependency on it.
type Style struct {
	// Colors maps algorithm names to display colors. Prefiltered
	// variants fall back to their base algorithm's color; unknown
	// algorithms render gray.
	Colors map[string]color.Color

	// DPI is the PNG render resolution.
	DPI int

	// PatternLenThreshold is the pattern length (chars) marked on the
	// literal-comparison chart ("KMP below, Boyer-Moore above").
	PatternLenThreshold float64

	// TextSizeKBThreshold is the text size (KB) marked on the
	// prefilter-impact chart ("no prefiltering below").
	TextSizeKBThreshold float64
}

// DefaultStyle returns the stock palette and thresholds.
func DefaultStyle() Style {
	colors := make(map[string]color.Color, len(defaultPalette))
	for name, hex := range defaultPalette {
		c, _ := ParseHexColor(hex)
		colors[name] = c
	}
	return Style{
		Colors:              colors,
		DPI:                 300,
		PatternLenThreshold: 10,
		TextSizeKBThreshold: 10,
	}
}

var defaultPalette = map[string]string{
	"KMP":           "#1f77b4",
	"Boyer-Moore":   "#ff7f0e",
	"Aho-Corasick":  "#2ca02c",
	"NFA":           "#d62728",
	"NFA+DFA-cache": "#9467bd",
	"DFA":           "#8c564b",
	"min-DFA":       "#e377c2",
}

// ColorFor returns the display color for an algorithm.
func (s Style) ColorFor(algorithm string) color.Color {
	if c, ok := s.Colors[algorithm]; ok {
		return c
	}
	// A prefiltered variant inherits its base algorithm's color.
	if i := strings.Index(algorithm, " ("); i > 0 {
		if c, ok := s.Colors[algorithm[:i]]; ok {
			return c
		}
	}
	return color.Gray{Y: 0x80}
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func alpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
