// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kind

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		k    fmt.Stringer
		want string
	}{
		{&NotCityJSON{}, `property "type" is missing, not a CityJSON file`},
		{&NotCityJSON{Got: 1.5}, `property "type" must be "CityJSON", got 1.5`},
		{&UnsupportedVersion{Got: "0.9", Supported: []string{"1.1", "2.0"}}, `CityJSON version "0.9" not supported [supported: "1.1", "2.0"]`},
		{&VertexIndex{Where: "w", Value: json.Number("12"), Count: 3}, `w: vertex index 12 out of range [0, 3)`},
		{&VertexIndex{Where: "w", Value: []any{}, Count: 3}, `w: vertex index array out of range [0, 3)`},
		{&SemanticsValue{Where: "w", Path: "values/0", Value: nil, Surfaces: 2}, `w: semantics value null at values/0 does not reference one of the 2 surfaces`},
		{&MissingChild{Parent: "it's", Child: "b"}, `CityObject 'it\'s' has child 'b' which does not exist`},
		{&DuplicateVertex{First: 1, Duplicate: 4, Coords: []string{"1", "2", "3"}}, `vertices #1 and #4 are duplicates (1, 2, 3)`},
		{&UndefinedSemanticSurface{Where: "w", Type: "+Absorbing"}, `w: semantic surface '+Absorbing' is not defined by any Extension`},
	}
	for _, test := range tests {
		if got := test.k.String(); got != test.want {
			t.Errorf("%T: got %s, want %s", test.k, got, test.want)
		}
	}
}
