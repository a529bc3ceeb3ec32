// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"fmt"
	"strings"
)

// Outcome classifies a finished validation.
type Outcome uint8

const (
	// Clean means every stage passed.
	Clean Outcome = iota
	// Warned means only warning stages had findings.
	Warned
	// Failed means the file is invalid.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Clean:
		return "PASSED"
	case Warned:
		return "PASSED_WITH_WARNINGS"
	case Failed:
		return "FAILED"
	}
	return "UNKNOWN"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "PASSED":
		*o = Clean
	case "PASSED_WITH_WARNINGS":
		*o = Warned
	case "FAILED":
		*o = Failed
	default:
		return fmt.Errorf("unknown outcome %q", b)
	}
	return nil
}

// Valid tells whether a file with outcome o is valid. Warnings do not make
// a file invalid.
func (o Outcome) Valid() bool {
	return o != Failed
}

// marker returns the summary line of o.
func (o Outcome) marker() string {
	switch o {
	case Failed:
		return "❌ File is invalid"
	case Warned:
		return "⚠️  File is valid but has warnings"
	}
	return "✅ File is valid"
}

// --

// Report is the append-only text log of a validation session.
type Report struct {
	b strings.Builder
}

func (r *Report) header(schemaVersion string) {
	r.section("CityJSON syntax")
	fmt.Fprintf(&r.b, "CityJSON schemas used: v%s (builtin)\n\n", schemaVersion)
}

func (r *Report) section(title string) {
	fmt.Fprintf(&r.b, "=== %s ===\n", title)
}

// appendFindings writes findings as a numbered list, in the given order, or
// "ok" when there are none.
func (r *Report) appendFindings(findings []string) {
	if len(findings) == 0 {
		r.b.WriteString("ok\n")
		return
	}
	for i, f := range findings {
		fmt.Fprintf(&r.b, "  %d. %s\n", i+1, f)
	}
}

// extensionStatus writes the load status of the Extension at index.
func (r *Report) extensionStatus(index int, err error) {
	if err == nil {
		fmt.Fprintf(&r.b, "%d. ok\n", index)
		return
	}
	fmt.Fprintf(&r.b, "%d. ERROR\n(%s)\n", index, err)
}

func (r *Report) notice(msg string) {
	r.b.WriteString(msg)
	r.b.WriteByte('\n')
}

// appendSummary writes the closing block. Each call writes a new block.
func (r *Report) appendSummary(o Outcome) {
	r.b.WriteString("\n\n============ SUMMARY ============\n")
	r.b.WriteString(o.marker())
	r.b.WriteByte('\n')
	r.b.WriteString("=================================")
}

// String returns everything written so far.
func (r *Report) String() string {
	return r.b.String()
}
