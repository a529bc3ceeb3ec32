// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kind defines the defects reported by the validation stages.
//
// Every kind renders, through String, the finding text that ends up in the
// report. Stages build kinds rather than formatting strings themselves so the
// wording of a defect lives in exactly one place.
package kind

import (
	"fmt"
	"strconv"
	"strings"
)

// --

type NotCityJSON struct {
	Got any
}

func (k *NotCityJSON) String() string {
	if k.Got == nil {
		return `property "type" is missing, not a CityJSON file`
	}
	return fmt.Sprintf(`property "type" must be "CityJSON", got %s`, display(k.Got))
}

// --

type UnsupportedVersion struct {
	Got       any
	Supported []string
}

func (k *UnsupportedVersion) String() string {
	if k.Got == nil {
		return fmt.Sprintf(`property "version" is missing [supported: %s]`, joinQuoted(k.Supported))
	}
	return fmt.Sprintf("CityJSON version %s not supported [supported: %s]", display(k.Got), joinQuoted(k.Supported))
}

// --

type SchemaViolation struct {
	Location string
	Message  string
}

func (k *SchemaViolation) String() string {
	return fmt.Sprintf("[%s] %s", k.Location, k.Message)
}

// --

type MissingChild struct {
	Parent string
	Child  string
}

func (k *MissingChild) String() string {
	return fmt.Sprintf("CityObject %s has child %s which does not exist", Quote(k.Parent), Quote(k.Child))
}

// --

type MissingParentLink struct {
	Parent string
	Child  string
}

func (k *MissingParentLink) String() string {
	return fmt.Sprintf("CityObject %s does not list %s in its \"parents\"", Quote(k.Child), Quote(k.Parent))
}

// --

type MissingParent struct {
	Child  string
	Parent string
}

func (k *MissingParent) String() string {
	return fmt.Sprintf("CityObject %s has parent %s which does not exist", Quote(k.Child), Quote(k.Parent))
}

// --

type MissingChildLink struct {
	Child  string
	Parent string
}

func (k *MissingChildLink) String() string {
	return fmt.Sprintf("CityObject %s does not list %s in its \"children\"", Quote(k.Parent), Quote(k.Child))
}

// --

type VertexIndex struct {
	Where string
	Value any
	Count int
}

func (k *VertexIndex) String() string {
	return fmt.Sprintf("%s: vertex index %s out of range [0, %d)", k.Where, display(k.Value), k.Count)
}

// --

type TemplateIndex struct {
	Where string
	Value any
	Count int
}

func (k *TemplateIndex) String() string {
	return fmt.Sprintf("%s: template index %s out of range [0, %d)", k.Where, display(k.Value), k.Count)
}

// --

type SemanticsShape struct {
	Where string
	Path  string
	Got   int
	Want  int
}

func (k *SemanticsShape) String() string {
	return fmt.Sprintf("%s: semantics values at %s has %d entries, boundaries have %d", k.Where, k.Path, k.Got, k.Want)
}

// --

type SemanticsNotArray struct {
	Where string
	Path  string
}

func (k *SemanticsNotArray) String() string {
	return fmt.Sprintf("%s: semantics values at %s must be an array or null", k.Where, k.Path)
}

// --

type SemanticsValue struct {
	Where    string
	Path     string
	Value    any
	Surfaces int
}

func (k *SemanticsValue) String() string {
	return fmt.Sprintf("%s: semantics value %s at %s does not reference one of the %d surfaces", k.Where, display(k.Value), k.Path, k.Surfaces)
}

// --

type SurfaceLink struct {
	Where    string
	Surface  int
	Field    string
	Value    any
	Surfaces int
}

func (k *SurfaceLink) String() string {
	return fmt.Sprintf("%s: surface #%d %s %s does not reference one of the %d surfaces", k.Where, k.Surface, Quote(k.Field), display(k.Value), k.Surfaces)
}

// --

type DuplicateVertex struct {
	First     int
	Duplicate int
	Coords    []string
}

func (k *DuplicateVertex) String() string {
	return fmt.Sprintf("vertices #%d and #%d are duplicates (%s)", k.First, k.Duplicate, strings.Join(k.Coords, ", "))
}

// --

type UnusedVertex struct {
	Index int
}

func (k *UnusedVertex) String() string {
	return fmt.Sprintf("vertex #%d is not used", k.Index)
}

// --

type ExtraRootProperty struct {
	Name string
}

func (k *ExtraRootProperty) String() string {
	return fmt.Sprintf("root property %s is not in the CityJSON schema, but it is allowed", Quote(k.Name))
}

// --

type UndefinedRootProperty struct {
	Name string
}

func (k *UndefinedRootProperty) String() string {
	return fmt.Sprintf("root property %s is not defined by any Extension", Quote(k.Name))
}

// --

type UndefinedCityObjectType struct {
	ID   string
	Type string
}

func (k *UndefinedCityObjectType) String() string {
	return fmt.Sprintf("CityObject %s: type %s is not defined by any Extension", Quote(k.ID), Quote(k.Type))
}

// --

type UndefinedAttribute struct {
	ID        string
	Type      string
	Attribute string
}

func (k *UndefinedAttribute) String() string {
	return fmt.Sprintf("CityObject %s: attribute %s is not defined for %s by any Extension", Quote(k.ID), Quote(k.Attribute), Quote(k.Type))
}

// --

type UndefinedSemanticSurface struct {
	Where string
	Type  string
}

func (k *UndefinedSemanticSurface) String() string {
	return fmt.Sprintf("%s: semantic surface %s is not defined by any Extension", k.Where, Quote(k.Type))
}

// --

type ExtensionViolation struct {
	Where    string
	Location string
	Message  string
}

func (k *ExtensionViolation) String() string {
	return fmt.Sprintf("%s: [%s] %s", k.Where, k.Location, k.Message)
}

// --

// Quote renders s in single quotes, the way findings name ids and types.
func Quote(s string) string {
	s = fmt.Sprintf("%q", s)
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s[1:len(s)-1] + "'"
}

func joinQuoted(arr []string) string {
	var sb strings.Builder
	for i, s := range arr {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(s))
	}
	return sb.String()
}

func display(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprint(v)
	}
}
