// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

// Version is a CityJSON version this package has builtin schemas for.
type Version struct {
	code   int    // major*10 + minor
	name   string // value of the "version" property
	schema string // version of the builtin schemas
}

var (
	// Version10 is the legacy CityJSON v1.0. Extensions are not validated
	// for files of this version.
	Version10 = &Version{code: 10, name: "1.0", schema: "1.0.3"}
	Version11 = &Version{code: 11, name: "1.1", schema: "1.1.3"}
	Version20 = &Version{code: 20, name: "2.0", schema: "2.0.1"}

	versionLatest = Version20
	versions      = []*Version{Version10, Version11, Version20}
)

// Versions returns the supported versions, oldest first.
func Versions() []*Version {
	return append([]*Version(nil), versions...)
}

func lookupVersion(v any) *Version {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	for _, ver := range versions {
		if ver.name == s {
			return ver
		}
	}
	return nil
}

func versionNames() []string {
	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.name
	}
	return names
}

// String returns the version as written in CityJSON files, e.g. "2.0".
func (v *Version) String() string { return v.name }

// Code returns the version as major*10+minor, e.g. 20 for "2.0".
func (v *Version) Code() int { return v.code }

// SchemaVersion returns the version of the builtin schemas used for files
// of this version, e.g. "2.0.1".
func (v *Version) SchemaVersion() string { return v.schema }

func (v *Version) legacy() bool { return v == Version10 }

// url returns the location the builtin schema resource name is registered at.
func (v *Version) url(name string) string {
	return "https://cityjson.org/schemas/" + v.schema + "/" + name
}

// root properties defined by the CityJSON schemas, all versions.
var rootProperties = map[string]struct{}{
	"type":               {},
	"version":            {},
	"transform":          {},
	"metadata":           {},
	"extensions":         {},
	"CityObjects":        {},
	"vertices":           {},
	"appearance":         {},
	"geometry-templates": {},
}
