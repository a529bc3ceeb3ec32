// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"fmt"
)

// Class tells what a failing stage does to the outcome of a validation.
type Class uint8

const (
	// Fatal stages make the file invalid.
	Fatal Class = iota
	// Warning stages only downgrade a valid file to valid-with-warnings.
	Warning
)

func (c Class) String() string {
	switch c {
	case Fatal:
		return "fatal"
	case Warning:
		return "warning"
	}
	return "unknown"
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(b []byte) error {
	switch string(b) {
	case "fatal":
		*c = Fatal
	case "warning":
		*c = Warning
	default:
		return fmt.Errorf("unknown stage class %q", b)
	}
	return nil
}

// Stage is one rule of the validation pipeline.
//
// Evaluate returns one human readable finding per defect, in a deterministic
// order. An empty, non-nil slice means the stage passed.
type Stage interface {
	Name() string
	Class() Class
	Evaluate(doc *Document, exts ExtensionSet) []string
}

// header returns the report section title of s.
func header(s Stage) string {
	if s.Class() == Warning {
		return s.Name() + " (warnings)"
	}
	return s.Name()
}

var (
	// fatalStages run in this order, all of them, once the schema and the
	// Extensions are known to be valid.
	fatalStages = []Stage{
		parentChildrenStage{},
		vertexIndexStage{},
		semanticsStage{},
	}

	// warningStages run in this order, all of them, only when every fatal
	// stage passed.
	warningStages = []Stage{
		duplicateVerticesStage{},
		extraRootPropertiesStage{},
		unusedVerticesStage{},
	}
)

// StageResult records the findings of one stage run.
type StageResult struct {
	Stage    string   `json:"stage" yaml:"stage" msgpack:"stage"`
	Class    Class    `json:"class" yaml:"class" msgpack:"class"`
	Findings []string `json:"findings" yaml:"findings" msgpack:"findings"`
}

// findings accumulates the defects found by a stage.
type findings []string

func newFindings() findings {
	return findings{}
}

func (f *findings) add(k fmt.Stringer) {
	*f = append(*f, k.String())
}
