// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestAsIndex(t *testing.T) {
	tests := []struct {
		v    any
		want int
		ok   bool
	}{
		{json.Number("0"), 0, true},
		{json.Number("42"), 42, true},
		{json.Number("-3"), -3, true},
		{json.Number("1.5"), 0, false},
		{json.Number("1.0"), 1, true},
		{json.Number("1e2"), 100, true},
		{json.Number("-2.0"), -2, true},
		{json.Number("99999999999999999999"), 0, false},
		{json.Number("1e300"), 0, false},
		{1e300, 0, false},
		{float64(7), 7, true},
		{7.25, 0, false},
		{3, 3, true},
		{"1", 0, false},
		{nil, 0, false},
	}
	for _, test := range tests {
		got, ok := asIndex(test.v)
		if got != test.want || ok != test.ok {
			t.Errorf("asIndex(%#v): got (%d, %v), want (%d, %v)", test.v, got, ok, test.want, test.ok)
		}
	}
}

func TestCoordinate(t *testing.T) {
	for _, s := range []string{"1", "1.0", "1e0", "10e-1"} {
		if got := coordinate(json.Number(s)); got != "1" {
			t.Errorf("coordinate(%s): got %q, want \"1\"", s, got)
		}
	}
	if coordinate(json.Number("0.1")) == coordinate(json.Number("0.10000001")) {
		t.Error("distinct numbers must not be equal")
	}
}

func TestUnmarshalJSON(t *testing.T) {
	v, err := UnmarshalJSON(strings.NewReader(`{"a": [1, 2.5, 123456789012345678901234567890]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": []any{json.Number("1"), json.Number("2.5"), json.Number("123456789012345678901234567890")}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v", v)
	}
	for _, s := range []string{``, `{`, `{}{}`, `[1] 2`} {
		if _, err := UnmarshalJSON(strings.NewReader(s)); err == nil {
			t.Errorf("%q: error expected", s)
		}
	}
}

func TestCityObjectIDsSorted(t *testing.T) {
	doc := parseDoc(t, `{"CityObjects": {"c": {}, "a": {}, "b": {}}}`)
	if got := doc.cityObjectIDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("got %q", got)
	}
}

func TestVersions(t *testing.T) {
	tests := []struct {
		v      any
		code   int
		schema string
	}{
		{"1.0", 10, "1.0.3"},
		{"1.1", 11, "1.1.3"},
		{"2.0", 20, "2.0.1"},
	}
	for _, test := range tests {
		ver := lookupVersion(test.v)
		if ver == nil {
			t.Fatalf("%v: not supported", test.v)
		}
		if ver.Code() != test.code || ver.SchemaVersion() != test.schema {
			t.Errorf("%v: got (%d, %s)", test.v, ver.Code(), ver.SchemaVersion())
		}
	}
	for _, v := range []any{"2.1", "1", json.Number("2.0"), nil} {
		if lookupVersion(v) != nil {
			t.Errorf("%#v must not be supported", v)
		}
	}
	if !Version10.legacy() || Version11.legacy() || Version20.legacy() {
		t.Error("only v1.0 is legacy")
	}
}

func TestBuiltinSchemasCompile(t *testing.T) {
	o := defaultOptions()
	for _, v := range versions {
		if _, err := newCompiler(v, &o); err != nil {
			t.Errorf("v%s: %v", v, err)
		}
	}
}

func TestPointer(t *testing.T) {
	ptr := pointer("extraCityObjects", "+Noise/Barrier~x")
	if got, want := string(ptr), "/extraCityObjects/+Noise~1Barrier~0x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := pointer("a b").fragment(), "#/a%20b"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := jsonPointer("").String(); got != "/" {
		t.Errorf("got %q", got)
	}
}
