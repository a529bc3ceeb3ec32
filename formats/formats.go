// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formats implements the string formats used by the builtin CityJSON
// schemas that are not part of JSON Schema itself.
package formats

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type Format func(string) bool

var (
	mu      sync.RWMutex
	formats = map[string]Format{
		"cityjson-crs":       IsCRS,
		"cityjson-lod":       IsLoD,
		"cityjson-extension": IsExtensionName,
	}
)

// Register adds or replaces the format with given name.
func Register(name string, f Format) {
	mu.Lock()
	defer mu.Unlock()
	formats[name] = f
}

func Get(name string) (Format, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := formats[name]
	return f, ok
}

// Names returns the registered format names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	crsURL = regexp.MustCompile(`^https?://www\.opengis\.net/def/crs/([A-Za-z]+)/([0-9.]+)/([0-9]+)$`)
	crsURN = regexp.MustCompile(`^urn:ogc:def:crs:([A-Za-z]+):([0-9.]*):([0-9]+)$`)
)

// IsCRS tells whether s identifies a coordinate reference system, either as
// an OGC URL (https://www.opengis.net/def/crs/EPSG/0/7415) or, for v1.0
// files, as an OGC URN (urn:ogc:def:crs:EPSG::7415).
func IsCRS(s string) bool {
	return crsURL.MatchString(s) || crsURN.MatchString(s)
}

// IsLoD tells whether s is a level of detail such as "2" or "2.2".
func IsLoD(s string) bool {
	major, minor, found := strings.Cut(s, ".")
	if len(major) != 1 || major[0] < '0' || major[0] > '9' {
		return false
	}
	if !found {
		return true
	}
	if len(minor) != 1 {
		return false
	}
	_, err := strconv.Atoi(minor)
	return err == nil
}

// IsExtensionName tells whether s is the name of an Extension-defined
// CityObject type, semantic surface, attribute or root property.
func IsExtensionName(s string) bool {
	if len(s) < 2 || s[0] != '+' {
		return false
	}
	c := s[1]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
