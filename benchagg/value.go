// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

// A Value is a reduced metric tagged with the number of samples behind
// it. The tag distinguishes a measured zero (N > 0, Mean == 0) from
// "no data" (N == 0), which an untagged zero cannot.
type Value struct {
	// Mean is the arithmetic mean of the samples. It is 0 when N == 0.
	Mean float64
	// N is the number of records reduced into Mean.
	N int
}

// Defined reports whether any samples back this value.
func (v Value) Defined() bool {
	return v.N > 0
}

// Float flattens the value to a plain number: the mean when defined,
// 0 otherwise. This is the external contract for sparse groups; callers
// needing to tell the two zeros apart must check Defined first.
func (v Value) Float() float64 {
	if !v.Defined() {
		return 0
	}
	return v.Mean
}
