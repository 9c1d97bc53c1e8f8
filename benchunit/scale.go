// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats the two unit families this tool charts:
// byte sizes and millisecond durations.
package benchunit

import (
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and the unit
// suffix of its scaled representation.
type Scaler struct {
	Prec   int     // digits after the decimal point
	Factor float64 // unscaled value of one suffix unit
	Suffix string  // unit suffix ("KB", "MB", "ms", ...)
}

// Format formats val scaled down by s.Factor with s.Suffix appended.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, ' ')
	buf = append(buf, s.Suffix...)
	return string(buf)
}

var byteFactors = []Scaler{
	{1, 1 << 30, "GB"},
	{1, 1 << 20, "MB"},
	{1, 1 << 10, "KB"},
	{0, 1, "B"},
}

// Bytes formats a byte count with a binary suffix, e.g. "512 B",
// "5.0 KB", "1.0 MB". Whole multiples drop the fraction.
func Bytes(n float64) string {
	n = math.Abs(n)
	for _, s := range byteFactors {
		if n >= s.Factor {
			if rem := math.Mod(n, s.Factor); rem == 0 {
				s.Prec = 0
			}
			return s.Format(n)
		}
	}
	return "0 B"
}

// KB formats a kilobyte count the same way Bytes does.
func KB(kb float64) string {
	return Bytes(kb * 1024)
}

// Millis formats a millisecond duration with enough precision to keep
// three significant digits for small values.
func Millis(ms float64) string {
	s := Scaler{1, 1, "ms"}
	switch abs := math.Abs(ms); {
	case abs == 0:
		s.Prec = 0
	case abs < 0.01:
		s.Prec = 4
	case abs < 0.1:
		s.Prec = 3
	case abs < 10:
		s.Prec = 2
	}
	return s.Format(ms)
}
