// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDecisionsCSV(t *testing.T) {
	decisions := []Decision{
		{Scenario: "Short Literal - Small Text", Winner: "KMP"},
		{Scenario: "Simple Regex - Dot", NoData: true},
	}
	var buf strings.Builder
	require.NoError(t, WriteDecisionsCSV(&buf, decisions))
	assert.Equal(t,
		"Scenario,Best Algorithm\n"+
			"Short Literal - Small Text,KMP\n"+
			"Simple Regex - Dot,N/A\n",
		buf.String())
}

func TestWriteDecisionsText(t *testing.T) {
	decisions := []Decision{
		{Scenario: "Simple Regex - Dot", Winner: "DFA"},
		{Scenario: "Warmup", NoData: true},
	}
	var buf strings.Builder
	require.NoError(t, WriteDecisionsText(&buf, decisions))
	out := buf.String()
	assert.Contains(t, out, "DFA")
	assert.Contains(t, out, NoDataLabel)
	assert.Equal(t, 3, strings.Count(out, "\n"))
}
