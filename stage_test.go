// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"reflect"
	"strings"
	"testing"
)

func parseDoc(t *testing.T, s string) *Document {
	t.Helper()
	v, err := unmarshalString(s)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := newDocument(v)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

type stageTest struct {
	name string
	doc  string
	want []string // substrings, one per finding, in order
}

func runStageTests(t *testing.T, s Stage, tests []stageTest) {
	t.Helper()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := s.Evaluate(parseDoc(t, test.doc), nil)
			if got == nil {
				t.Fatal("findings must not be nil")
			}
			if len(got) != len(test.want) {
				t.Fatalf("got %d findings, want %d:\n%s", len(got), len(test.want), strings.Join(got, "\n"))
			}
			for i, w := range test.want {
				if !strings.Contains(got[i], w) {
					t.Errorf("finding #%d: got %q, want it to contain %q", i, got[i], w)
				}
			}
		})
	}
}

func TestPipelineOrder(t *testing.T) {
	var names []string
	for _, s := range fatalStages {
		if s.Class() != Fatal {
			t.Errorf("%s must be fatal", s.Name())
		}
		names = append(names, header(s))
	}
	for _, s := range warningStages {
		if s.Class() != Warning {
			t.Errorf("%s must be a warning", s.Name())
		}
		names = append(names, header(s))
	}
	want := []string{
		"parent_children_consistency",
		"wrong_vertex_index",
		"semantics_arrays",
		"duplicate_vertices (warnings)",
		"extra_root_properties (warnings)",
		"unused_vertices (warnings)",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %q, want %q", names, want)
	}
}

func TestParentChildren(t *testing.T) {
	runStageTests(t, parentChildrenStage{}, []stageTest{
		{
			name: "consistent",
			doc:  `{"CityObjects": {"a": {"children": ["b"]}, "b": {"parents": ["a"]}}}`,
		},
		{
			name: "missingChild",
			doc:  `{"CityObjects": {"a": {"children": ["b", "x"]}, "b": {"parents": ["a"]}}}`,
			want: []string{"CityObject 'a' has child 'x' which does not exist"},
		},
		{
			name: "oneSided",
			doc:  `{"CityObjects": {"a": {"children": ["b"]}, "b": {}, "c": {"parents": ["a"]}}}`,
			want: []string{
				`CityObject 'b' does not list 'a' in its "parents"`,
				`CityObject 'a' does not list 'c' in its "children"`,
			},
		},
		{
			name: "missingParent",
			doc:  `{"CityObjects": {"b": {"parents": ["zz"]}}}`,
			want: []string{"CityObject 'b' has parent 'zz' which does not exist"},
		},
	})
}

func TestVertexIndex(t *testing.T) {
	runStageTests(t, vertexIndexStage{}, []stageTest{
		{
			name: "inRange",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiSurface", "boundaries": [[[0, 1, 2]]]}]}},
				"vertices": [[0,0,0],[1,0,0],[0,1,0]]}`,
		},
		{
			name: "outOfRange",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiSurface", "boundaries": [[[0, 1, 3]], [[-1, 1.5, 2]]]}]}},
				"vertices": [[0,0,0],[1,0,0],[0,1,0]]}`,
			want: []string{
				`CityObject 'a' geometry #0 boundaries/0/0/2: vertex index 3 out of range [0, 3)`,
				`boundaries/1/0/0: vertex index -1 out of range`,
				`boundaries/1/0/1: vertex index 1.5 out of range`,
			},
		},
		{
			name: "integralFloat",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiPoint", "boundaries": [1.0, 0e0]}]}},
				"vertices": [[0,0,0],[1,1,1]]}`,
		},
		{
			name: "hugeIndex",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiPoint", "boundaries": [99999999999999999999999]}]}},
				"vertices": [[0,0,0]]}`,
			want: []string{"vertex index 99999999999999999999999 out of range [0, 1)"},
		},
		{
			name: "geometryInstance",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "GeometryInstance", "template": 1, "boundaries": [5]}]}},
				"geometry-templates": {"templates": [{"type": "MultiPoint", "boundaries": [0, 2]}], "vertices-templates": [[0,0,0]]},
				"vertices": [[0,0,0]]}`,
			want: []string{
				`CityObject 'a' geometry #0: template index 1 out of range [0, 1)`,
				`CityObject 'a' geometry #0 boundaries/0: vertex index 5 out of range [0, 1)`,
				`geometry-template #0 boundaries/1: vertex index 2 out of range [0, 1)`,
			},
		},
	})
}

func TestSemanticsArrays(t *testing.T) {
	runStageTests(t, semanticsStage{}, []stageTest{
		{
			name: "solid",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "Solid",
				"boundaries": [[[[0,1,2]], [[1,2,3]]]],
				"semantics": {"surfaces": [{"type": "WallSurface"}, {"type": "RoofSurface", "parent": 0}], "values": [[0, null]]}}]}}}`,
		},
		{
			name: "nullValues",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiSurface", "boundaries": [[[0,1,2]]],
				"semantics": {"surfaces": [], "values": null}}]}}}`,
		},
		{
			name: "shape",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiSurface", "boundaries": [[[0,1,2]], [[1,2,3]]],
				"semantics": {"surfaces": [{"type": "WallSurface"}], "values": [0]}}]}}}`,
			want: []string{`CityObject 'a' geometry #0: semantics values at values has 1 entries, boundaries have 2`},
		},
		{
			name: "notArray",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiSolid", "boundaries": [[[[[0,1,2]]]]],
				"semantics": {"surfaces": [{"type": "WallSurface"}], "values": [0]}}]}}}`,
			want: []string{"semantics values at values/0 must be an array or null"},
		},
		{
			name: "badValue",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "CompositeSurface", "boundaries": [[[0,1,2]], [[1,2,3]]],
				"semantics": {"surfaces": [{"type": "WallSurface"}], "values": [0, 1]}}]}}}`,
			want: []string{"semantics value 1 at values/1 does not reference one of the 1 surfaces"},
		},
		{
			name: "links",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiSurface", "boundaries": [[[0,1,2]]],
				"semantics": {"surfaces": [{"type": "WallSurface", "children": [0, 4]}, {"type": "Door", "parent": 3}], "values": [1]}}]}}}`,
			want: []string{
				`surface #0 'children' 0 does not reference`,
				`surface #0 'children' 4 does not reference`,
				`surface #1 'parent' 3 does not reference one of the 2 surfaces`,
			},
		},
	})
}

func TestDuplicateVertices(t *testing.T) {
	runStageTests(t, duplicateVerticesStage{}, []stageTest{
		{
			name: "distinct",
			doc:  `{"vertices": [[0,0,0],[0,0,1],[0,1,0]]}`,
		},
		{
			name: "equalNumbers",
			doc:  `{"vertices": [[1,2,3],[4,5,6],[1.0,2,3e0],[1,2,3]]}`,
			want: []string{
				"vertices #0 and #2 are duplicates (1, 2, 3)",
				"vertices #0 and #3 are duplicates (1, 2, 3)",
			},
		},
	})
}

func TestUnusedVertices(t *testing.T) {
	runStageTests(t, unusedVerticesStage{}, []stageTest{
		{
			name: "allUsed",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiPoint", "boundaries": [0, 1]}]}},
				"vertices": [[0,0,0],[1,1,1]]}`,
		},
		{
			name: "unused",
			doc: `{"CityObjects": {"a": {"geometry": [{"type": "MultiLineString", "boundaries": [[1, 3]]}]}},
				"vertices": [[0,0,0],[1,1,1],[2,2,2],[3,3,3]]}`,
			want: []string{"vertex #0 is not used", "vertex #2 is not used"},
		},
	})
}

func TestExtraRootProperties(t *testing.T) {
	runStageTests(t, extraRootPropertiesStage{}, []stageTest{
		{
			name: "known",
			doc:  `{"type": "CityJSON", "version": "2.0", "transform": {}, "metadata": {}, "CityObjects": {}, "vertices": []}`,
		},
		{
			name: "extra",
			doc:  `{"type": "CityJSON", "zz": 1, "+ext": {}, "aa": null}`,
			want: []string{
				"root property '+ext' is not defined by any Extension",
				"root property 'aa' is not in the CityJSON schema",
				"root property 'zz' is not in the CityJSON schema",
			},
		},
	})
}
