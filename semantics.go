// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"github.com/cityjson/cjval/kind"
)

// semanticsStage checks that semantics "values" follow the structure of the
// boundaries of their geometry, and that values and surface links reference
// existing surfaces.
type semanticsStage struct{}

func (semanticsStage) Name() string { return "semantics_arrays" }
func (semanticsStage) Class() Class { return Fatal }

func (semanticsStage) Evaluate(doc *Document, _ ExtensionSet) []string {
	f := newFindings()
	for _, id := range doc.cityObjectIDs() {
		co, _ := doc.cityObject(id)
		for gi, g := range geometries(co) {
			sem, ok := g["semantics"].(map[string]any)
			if !ok {
				continue
			}
			depth, ok := semanticsDepth[asString(g["type"])]
			if !ok {
				continue
			}
			sc := semanticsCheck{
				f:        &f,
				where:    geometryAt(id, gi),
				depth:    depth,
				surfaces: len(asArray(sem["surfaces"])),
			}
			sc.values(sem["values"], g["boundaries"], 0, "")
			sc.links(asArray(sem["surfaces"]))
		}
	}
	return f
}

type semanticsCheck struct {
	f        *findings
	where    string
	depth    int
	surfaces int
}

// values walks values and boundaries together down to depth. null is
// accepted at every level.
func (sc *semanticsCheck) values(values, boundaries any, level int, ptr jsonPointer) {
	if values == nil {
		return
	}
	path := "values" + string(ptr)
	if level == sc.depth {
		if i, ok := asIndex(values); !ok || i < 0 || i >= sc.surfaces {
			sc.f.add(&kind.SemanticsValue{Where: sc.where, Path: path, Value: values, Surfaces: sc.surfaces})
		}
		return
	}
	vs, ok := values.([]any)
	if !ok {
		sc.f.add(&kind.SemanticsNotArray{Where: sc.where, Path: path})
		return
	}
	bs := asArray(boundaries)
	if len(vs) != len(bs) {
		sc.f.add(&kind.SemanticsShape{Where: sc.where, Path: path, Got: len(vs), Want: len(bs)})
		return
	}
	for i := range vs {
		sc.values(vs[i], bs[i], level+1, ptr.appendIndex(i))
	}
}

// links checks the "parent" and "children" of every surface.
func (sc *semanticsCheck) links(surfaces []any) {
	for si, s := range surfaces {
		s := asObject(s)
		if p, ok := s["parent"]; ok {
			sc.link(si, "parent", p)
		}
		for _, c := range asArray(s["children"]) {
			sc.link(si, "children", c)
		}
	}
}

func (sc *semanticsCheck) link(surface int, field string, v any) {
	if i, ok := asIndex(v); ok && i >= 0 && i < sc.surfaces && i != surface {
		return
	}
	sc.f.add(&kind.SurfaceLink{Where: sc.where, Surface: surface, Field: field, Value: v, Surfaces: sc.surfaces})
}
