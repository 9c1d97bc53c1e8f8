// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import "strings"

// A ScenarioClass is a set of scenario category markers parsed once
// from the free-text scenario label. Downstream selection matches on
// these typed markers so that analyses cannot drift apart from the
// labeling convention.
type ScenarioClass uint8

const (
	// ClassLiteral marks scenarios exercising literal patterns.
	ClassLiteral ScenarioClass = 1 << iota
	// ClassRegex marks scenarios exercising regular expressions.
	ClassRegex
	// ClassAlternation marks scenarios exercising alternations.
	ClassAlternation
	// ClassPrefilter marks scenarios dedicated to prefilter runs.
	ClassPrefilter
)

// Has reports whether c contains every marker in mask.
func (c ScenarioClass) Has(mask ScenarioClass) bool {
	return c&mask == mask
}

// String returns a "|"-joined list of markers, or "other" for the zero
// class.
func (c ScenarioClass) String() string {
	var parts []string
	if c.Has(ClassLiteral) {
		parts = append(parts, "literal")
	}
	if c.Has(ClassRegex) {
		parts = append(parts, "regex")
	}
	if c.Has(ClassAlternation) {
		parts = append(parts, "alternation")
	}
	if c.Has(ClassPrefilter) {
		parts = append(parts, "prefilter")
	}
	if len(parts) == 0 {
		return "other"
	}
	return strings.Join(parts, "|")
}

// ParseScenarioClass derives the category markers from a scenario
// label. This is the only place the labeling convention is interpreted;
// everything after load works with the typed class.
func ParseScenarioClass(scenario string) ScenarioClass {
	var c ScenarioClass
	if strings.Contains(scenario, "Literal") {
		c |= ClassLiteral
	}
	if strings.Contains(scenario, "Regex") {
		c |= ClassRegex
	}
	if strings.Contains(scenario, "Alternation") {
		c |= ClassAlternation
	}
	if strings.Contains(strings.ToLower(scenario), "prefilter") {
		c |= ClassPrefilter
	}
	return c
}
