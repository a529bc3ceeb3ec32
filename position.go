// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"net/url"
	"strconv"
	"strings"
)

// jsonPointer is an RFC 6901 pointer, "" being the whole document.
type jsonPointer string

func pointer(tokens ...string) jsonPointer {
	var ptr jsonPointer
	for _, tok := range tokens {
		ptr = ptr.append(tok)
	}
	return ptr
}

func (ptr jsonPointer) append(tok string) jsonPointer {
	return jsonPointer(string(ptr) + "/" + escape(tok))
}

func (ptr jsonPointer) appendIndex(i int) jsonPointer {
	return jsonPointer(string(ptr) + "/" + strconv.Itoa(i))
}

// String returns "/" for the document itself so that it never renders empty.
func (ptr jsonPointer) String() string {
	if ptr == "" {
		return "/"
	}
	return string(ptr)
}

// fragment renders ptr as the fragment of a schema location.
func (ptr jsonPointer) fragment() string {
	segs := strings.Split(string(ptr), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return "#" + strings.Join(segs, "/")
}

func escape(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

func instancePointer(loc []string) jsonPointer {
	return pointer(loc...)
}

// --

// semanticsDepth is the number of array levels of semantics "values", per
// geometry type. Values are given per surface (per point or linestring for
// the lower dimensions), so the rings of a surface are not mirrored.
var semanticsDepth = map[string]int{
	"MultiPoint":       1,
	"MultiLineString":  1,
	"MultiSurface":     1,
	"CompositeSurface": 1,
	"Solid":            2,
	"MultiSolid":       3,
	"CompositeSolid":   3,
}

// walkIndices calls fn for every non-array leaf of boundaries, in document
// order, with the pointer to that leaf.
func walkIndices(boundaries any, ptr jsonPointer, fn func(ptr jsonPointer, v any)) {
	arr, ok := boundaries.([]any)
	if !ok {
		fn(ptr, boundaries)
		return
	}
	for i, item := range arr {
		walkIndices(item, ptr.appendIndex(i), fn)
	}
}
