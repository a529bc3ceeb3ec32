// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"errors"
	"sort"

	"github.com/cityjson/cjval/kind"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/message"
)

// schemaStage checks the document against the builtin CityJSON schemas of
// its version. It runs while the Validator is constructed.
type schemaStage struct {
	c       *compiler // nil when the version is not supported
	printer *message.Printer
}

func (schemaStage) Name() string { return "CityJSON syntax" }
func (schemaStage) Class() Class { return Fatal }

func (s schemaStage) Evaluate(doc *Document, _ ExtensionSet) []string {
	f := newFindings()
	root := doc.Root()
	if t, ok := root["type"].(string); !ok || t != "CityJSON" {
		f.add(&kind.NotCityJSON{Got: root["type"]})
	}
	if doc.Version() == nil {
		f.add(&kind.UnsupportedVersion{Got: root["version"], Supported: versionNames()})
	}
	if len(f) > 0 || s.c == nil {
		return f
	}
	for _, l := range violations(s.c.cityjson, root, s.printer) {
		f.add(l)
	}
	return f
}

// violations validates v against sch and returns the sorted, distinct leaf
// errors. Errors other than validation errors are returned as a single
// violation at the root of v.
func violations(sch *jsonschema.Schema, v any, p *message.Printer) []*kind.SchemaViolation {
	err := sch.Validate(v)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []*kind.SchemaViolation{{Location: "/", Message: err.Error()}}
	}
	var leaves []*kind.SchemaViolation
	collectLeaves(ve, p, &leaves)
	sort.SliceStable(leaves, func(i, j int) bool {
		if leaves[i].Location != leaves[j].Location {
			return leaves[i].Location < leaves[j].Location
		}
		return leaves[i].Message < leaves[j].Message
	})
	var out []*kind.SchemaViolation
	for i, l := range leaves {
		if i > 0 && *l == *leaves[i-1] {
			continue
		}
		out = append(out, l)
	}
	return out
}

func collectLeaves(ve *jsonschema.ValidationError, p *message.Printer, leaves *[]*kind.SchemaViolation) {
	if len(ve.Causes) == 0 {
		*leaves = append(*leaves, &kind.SchemaViolation{
			Location: instancePointer(ve.InstanceLocation).String(),
			Message:  ve.ErrorKind.LocalizedString(p),
		})
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, p, leaves)
	}
}
