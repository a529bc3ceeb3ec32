// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/cityjson/cjval/kind"
	"github.com/goccy/go-json"
)

// Document is a parsed CityJSON file. It is never modified once parsed.
type Document struct {
	root    map[string]any
	version *Version // nil when the declared version is not supported
}

func newDocument(v any) (*Document, error) {
	root, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("top-level value is not an object")
	}
	return &Document{root: root, version: lookupVersion(root["version"])}, nil
}

// Version returns the declared CityJSON version, or nil when it is missing
// or not supported.
func (d *Document) Version() *Version {
	return d.version
}

// Root returns the top-level object of the document.
func (d *Document) Root() map[string]any {
	return d.root
}

func (d *Document) cityObjects() map[string]any {
	return asObject(d.root["CityObjects"])
}

// cityObjectIDs returns the ids of all CityObjects, sorted.
func (d *Document) cityObjectIDs() []string {
	return sortedKeys(d.cityObjects())
}

func (d *Document) cityObject(id string) (map[string]any, bool) {
	co, ok := d.cityObjects()[id].(map[string]any)
	return co, ok
}

func (d *Document) vertices() []any {
	return asArray(d.root["vertices"])
}

func (d *Document) templates() (templates []any, vertices []any) {
	gt := asObject(d.root["geometry-templates"])
	return asArray(gt["templates"]), asArray(gt["vertices-templates"])
}

// geometries returns the geometry objects of the CityObject co. Items that
// are not objects are nil, the schema stage reports them.
func geometries(co map[string]any) []map[string]any {
	items := asArray(co["geometry"])
	geoms := make([]map[string]any, len(items))
	for i, g := range items {
		geoms[i] = asObject(g)
	}
	return geoms
}

// geometryAt names geometry #i of CityObject id in findings.
func geometryAt(id string, i int) string {
	return fmt.Sprintf("CityObject %s geometry #%d", kind.Quote(id), i)
}

// --

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asArray(v any) []any {
	a, _ := v.([]any)
	return a
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStrings(v any) []string {
	var ss []string
	for _, item := range asArray(v) {
		if s, ok := item.(string); ok {
			ss = append(ss, s)
		}
	}
	return ss
}

// asIndex converts an integral JSON number into an int. "1.0" and "1e2" are
// integral. Values that are not integers, or do not fit an int, are reported
// as not ok.
func asIndex(v any) (int, bool) {
	switch v := v.(type) {
	case json.Number:
		i64, err := v.Int64()
		if err != nil {
			f, err := v.Float64()
			if err != nil {
				return 0, false
			}
			return floatIndex(f)
		}
		i, err := safecast.Conv[int](i64)
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		return floatIndex(v)
	case int:
		return v, true
	}
	return 0, false
}

func floatIndex(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	i, err := safecast.Conv[int](int64(f))
	if err != nil {
		return 0, false
	}
	return i, true
}

// coordinate renders a vertex coordinate canonically so that equal numbers
// written differently ("1" and "1.0") compare equal.
func coordinate(v any) string {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		if f, err := v.Float64(); err == nil {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isExtensionName(s string) bool {
	return strings.HasPrefix(s, "+")
}
