// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"errors"
)

const legacyNotice = "(validation of Extensions is not supported in v1.0, upgrade to v1.1)"

// Validator validates one CityJSON document, and the Extensions it uses.
//
// A Validator is not safe for concurrent use.
type Validator struct {
	opts          options
	doc           *Document
	c             *compiler // nil when the version is not supported
	exts          ExtensionSet
	schemaVersion string

	report  Report
	results []StageResult
	built   int // number of results recorded by New

	loaded  bool // schema and Extensions are valid
	valid   bool
	outcome Outcome
}

// New parses inputs[0] as the CityJSON document, and inputs[1:] as the
// Extensions it uses, then checks the document against the schemas and
// loads the Extensions. The stages that check the content of the document
// run in Validate.
//
// Only a document that is not a JSON object is an error, of type
// *InvalidInputError. Every other defect is recorded in the Report.
func New(inputs []string, opts ...Option) (*Validator, error) {
	if len(inputs) == 0 {
		return nil, &InvalidInputError{Err: errors.New("no document")}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	root, err := unmarshalString(inputs[0])
	if err != nil {
		return nil, &InvalidInputError{Err: err}
	}
	doc, err := newDocument(root)
	if err != nil {
		return nil, &InvalidInputError{Err: err}
	}

	v := &Validator{opts: o, doc: doc, schemaVersion: versionLatest.schema}
	if ver := doc.Version(); ver != nil {
		if v.c, err = newCompiler(ver, &o); err != nil {
			return nil, err
		}
		v.schemaVersion = ver.schema
	}

	v.report.header(v.schemaVersion)
	v.loaded = len(v.run(schemaStage{c: v.c, printer: o.printer})) == 0
	if v.loaded {
		v.report.section("Extensions schemas")
		for i, text := range inputs[1:] {
			index := i + 1
			ext, err := v.c.loadExtension(index, text, o.printer)
			v.report.extensionStatus(index, err)
			if err != nil {
				v.loaded = false
				continue
			}
			v.exts = append(v.exts, ext)
		}
	}
	v.built = len(v.results)
	v.valid = v.loaded
	if !v.loaded {
		v.outcome = Failed
	}
	return v, nil
}

// run evaluates s, and records its findings.
func (v *Validator) run(s Stage) []string {
	f := s.Evaluate(v.doc, v.exts)
	if f == nil {
		f = []string{}
	}
	v.results = append(v.results, StageResult{Stage: s.Name(), Class: s.Class(), Findings: f})
	v.report.appendFindings(f)
	return f
}

// Validate runs the remaining stages and closes the report with a summary.
// It returns whether the document is valid; warnings do not make it invalid.
//
// Each call runs the stages again and appends them to the report.
func (v *Validator) Validate() bool {
	v.results = v.results[:v.built]
	v.outcome = v.pipeline()
	v.valid = v.outcome.Valid()
	v.report.appendSummary(v.outcome)
	return v.valid
}

func (v *Validator) pipeline() Outcome {
	if !v.loaded {
		return Failed
	}
	if v.doc.Version().legacy() {
		v.report.notice(legacyNotice)
		return Failed
	}
	if len(v.run(extensionStage{printer: v.opts.printer})) > 0 {
		return Failed
	}

	failed := false
	for _, s := range fatalStages {
		v.report.section(header(s))
		if len(v.run(s)) > 0 {
			failed = true
		}
	}
	if failed {
		return Failed
	}

	warned := false
	for _, s := range warningStages {
		v.report.section(header(s))
		if len(v.run(s)) > 0 {
			warned = true
		}
	}
	if warned {
		return Warned
	}
	return Clean
}

// Report returns the report written so far.
func (v *Validator) Report() string {
	return v.report.String()
}

// Valid reports whether the document is valid, as far as the stages run so
// far tell.
func (v *Validator) Valid() bool {
	return v.valid
}

// Outcome returns the outcome of the last Validate call. Before Validate is
// called it is Failed if New already found the document invalid, and Clean
// otherwise.
func (v *Validator) Outcome() Outcome {
	return v.outcome
}

// SchemaVersion returns the version of the builtin schemas used, e.g.
// "2.0.1". When the document version is not supported, it is the latest
// builtin version.
func (v *Validator) SchemaVersion() string {
	return v.schemaVersion
}

// InputVersion returns the version of the document as major*10+minor, or 0
// when it is missing or not supported.
func (v *Validator) InputVersion() int {
	if ver := v.doc.Version(); ver != nil {
		return ver.Code()
	}
	return 0
}

// Extensions returns the Extensions that loaded successfully.
func (v *Validator) Extensions() ExtensionSet {
	return append(ExtensionSet(nil), v.exts...)
}

// Results returns the findings of every stage run so far, in run order.
func (v *Validator) Results() []StageResult {
	return append([]StageResult(nil), v.results...)
}
