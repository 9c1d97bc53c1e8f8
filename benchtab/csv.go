// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Input column names. Column order in the file is not significant;
// names are.
const (
	ColAlgorithm      = "Algorithm"
	ColScenario       = "Scenario"
	ColPattern        = "Pattern"
	ColBuildTime      = "Build Time (ms)"
	ColMatchTime      = "Match Time (ms)"
	ColTotalTime      = "Total Time (ms)"
	ColMemoryUsed     = "Memory Used (KB)"
	ColStructureSize  = "Structure Size (KB)"
	ColStructureNodes = "Structure Nodes"
	ColTextLength     = "Text Length"
)

var requiredColumns = []string{
	ColAlgorithm, ColScenario, ColPattern,
	ColBuildTime, ColMatchTime, ColTotalTime,
	ColMemoryUsed, ColStructureSize, ColStructureNodes,
	ColTextLength,
}

// A LoadError is a structural problem with the input table: an
// unreadable source, a missing required column, or a malformed cell.
// Load errors are fatal to a run; data sparsity is not (missing cells
// are data, coerced to zero).
type LoadError struct {
	FileName string
	Line     int // 1-based; 0 if the error is not tied to a row
	Msg      string
}

func (e *LoadError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Load reads the measurement table from the named CSV file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{FileName: path, Msg: err.Error()}
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a measurement table in CSV form. fileName is used in
// error messages; it is purely diagnostic.
//
// The header row is required and must contain every required column.
// Empty numeric cells coerce to zero; non-empty cells that do not parse
// are a *LoadError carrying the row position.
func Read(r io.Reader, fileName string) (*Table, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows are missing cells, not errors
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{FileName: fileName, Msg: "empty input, header row required"}
	}
	if err != nil {
		return nil, &LoadError{FileName: fileName, Msg: err.Error()}
	}

	colPos := make(map[string]int, len(header))
	for i, name := range header {
		colPos[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colPos[name]; !ok {
			return nil, &LoadError{FileName: fileName, Msg: fmt.Sprintf("missing required column %q", name)}
		}
	}

	var recs []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{FileName: fileName, Line: line, Msg: err.Error()}
		}

		cell := func(name string) string {
			i := colPos[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		var rec Record
		var cellErr *LoadError
		num := func(name string) float64 {
			s := cell(name)
			if s == "" {
				return 0 // absence of a measurement is data, not an error
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil && cellErr == nil {
				cellErr = &LoadError{FileName: fileName, Line: line, Msg: fmt.Sprintf("malformed value %q in column %q", s, name)}
			}
			return v
		}

		rec.Algorithm = cell(ColAlgorithm)
		rec.Scenario = cell(ColScenario)
		rec.Class = ParseScenarioClass(rec.Scenario)
		rec.Pattern = cell(ColPattern)
		rec.BuildTimeMS = num(ColBuildTime)
		rec.MatchTimeMS = num(ColMatchTime)
		rec.TotalTimeMS = num(ColTotalTime)
		rec.MemoryUsedKB = num(ColMemoryUsed)
		rec.StructureSizeKB = num(ColStructureSize)
		rec.StructureNodes = int(num(ColStructureNodes))
		rec.TextLength = int(num(ColTextLength))
		if cellErr != nil {
			return nil, cellErr
		}
		recs = append(recs, rec)
	}

	return NewTable(recs), nil
}
