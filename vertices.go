// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"fmt"
	"strings"

	"github.com/cityjson/cjval/kind"
)

// vertexIndexStage checks that every boundary references an existing vertex,
// and every GeometryInstance an existing template.
type vertexIndexStage struct{}

func (vertexIndexStage) Name() string { return "wrong_vertex_index" }
func (vertexIndexStage) Class() Class { return Fatal }

func (vertexIndexStage) Evaluate(doc *Document, _ ExtensionSet) []string {
	f := newFindings()
	nv := len(doc.vertices())
	templates, templateVertices := doc.templates()

	checkBoundaries := func(where string, boundaries any, count int) {
		if boundaries == nil {
			return
		}
		walkIndices(boundaries, "", func(ptr jsonPointer, v any) {
			if i, ok := asIndex(v); !ok || i < 0 || i >= count {
				f.add(&kind.VertexIndex{Where: where + " boundaries" + ptr.String(), Value: v, Count: count})
			}
		})
	}

	for _, id := range doc.cityObjectIDs() {
		co, _ := doc.cityObject(id)
		for gi, g := range geometries(co) {
			if g == nil {
				continue
			}
			where := geometryAt(id, gi)
			if asString(g["type"]) == "GeometryInstance" {
				if t, ok := asIndex(g["template"]); !ok || t < 0 || t >= len(templates) {
					f.add(&kind.TemplateIndex{Where: where, Value: g["template"], Count: len(templates)})
				}
			}
			checkBoundaries(where, g["boundaries"], nv)
		}
	}

	for ti, t := range templates {
		checkBoundaries(fmt.Sprintf("geometry-template #%d", ti), asObject(t)["boundaries"], len(templateVertices))
	}
	return f
}

// --

// duplicateVerticesStage reports every vertex whose coordinates equal those
// of an earlier vertex.
type duplicateVerticesStage struct{}

func (duplicateVerticesStage) Name() string { return "duplicate_vertices" }
func (duplicateVerticesStage) Class() Class { return Warning }

func (duplicateVerticesStage) Evaluate(doc *Document, _ ExtensionSet) []string {
	f := newFindings()
	first := map[string]int{}
	for i, v := range doc.vertices() {
		var coords []string
		for _, c := range asArray(v) {
			coords = append(coords, coordinate(c))
		}
		key := strings.Join(coords, " ")
		if j, ok := first[key]; ok {
			f.add(&kind.DuplicateVertex{First: j, Duplicate: i, Coords: coords})
			continue
		}
		first[key] = i
	}
	return f
}

// --

// unusedVerticesStage reports every vertex no CityObject geometry references.
type unusedVerticesStage struct{}

func (unusedVerticesStage) Name() string { return "unused_vertices" }
func (unusedVerticesStage) Class() Class { return Warning }

func (unusedVerticesStage) Evaluate(doc *Document, _ ExtensionSet) []string {
	f := newFindings()
	used := make([]bool, len(doc.vertices()))
	for _, id := range doc.cityObjectIDs() {
		co, _ := doc.cityObject(id)
		for _, g := range geometries(co) {
			walkIndices(g["boundaries"], "", func(_ jsonPointer, v any) {
				if i, ok := asIndex(v); ok && i >= 0 && i < len(used) {
					used[i] = true
				}
			})
		}
	}
	for i, u := range used {
		if !u {
			f.add(&kind.UnusedVertex{Index: i})
		}
	}
	return f
}
