// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"fmt"
	"strconv"

	"github.com/cityjson/cjval/kind"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/message"
)

// Extension is a CityJSON Extension attached to a Validator.
type Extension struct {
	Index   int    // position among the inputs, 1-based
	Name    string // e.g. "Noise"
	URL     string
	Version string

	rootProperties map[string]*jsonschema.Schema
	cityObjects    map[string]*jsonschema.Schema
	attributes     map[string]map[string]*jsonschema.Schema // CityObject type, attribute
	surfaces       map[string]*jsonschema.Schema
}

// ExtensionSet is the Extensions attached to a Validator, in input order.
type ExtensionSet []*Extension

// rootProperty returns the schema of root property name. When several
// Extensions define name, the first one wins.
func (s ExtensionSet) rootProperty(name string) *jsonschema.Schema {
	for _, e := range s {
		if sch, ok := e.rootProperties[name]; ok {
			return sch
		}
	}
	return nil
}

func (s ExtensionSet) cityObject(typ string) *jsonschema.Schema {
	for _, e := range s {
		if sch, ok := e.cityObjects[typ]; ok {
			return sch
		}
	}
	return nil
}

func (s ExtensionSet) attribute(typ, name string) *jsonschema.Schema {
	for _, e := range s {
		if sch, ok := e.attributes[typ][name]; ok {
			return sch
		}
	}
	return nil
}

func (s ExtensionSet) surface(typ string) *jsonschema.Schema {
	for _, e := range s {
		if sch, ok := e.surfaces[typ]; ok {
			return sch
		}
	}
	return nil
}

// Names returns the name of every Extension in s, in input order.
func (s ExtensionSet) Names() []string {
	names := make([]string, len(s))
	for i, e := range s {
		names[i] = e.Name
	}
	return names
}

// --

// loadExtension checks the Extension document text against the
// CityJSONExtension schema and compiles every schema it defines.
func (c *compiler) loadExtension(index int, text string, p *message.Printer) (*Extension, error) {
	doc, err := unmarshalString(text)
	if err != nil {
		return nil, &ExtensionError{Index: index, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if vv := violations(c.extension, doc, p); len(vv) > 0 {
		ie := &InvalidExtensionError{}
		for _, v := range vv {
			ie.Findings = append(ie.Findings, v.String())
		}
		return nil, &ExtensionError{Index: index, Err: ie}
	}

	root := doc.(map[string]any)
	url := c.version.url("extension-" + strconv.Itoa(index) + ".json")
	if err := c.c.AddResource(url, schemaResource(root)); err != nil {
		return nil, &ExtensionError{Index: index, Err: &CompileError{Location: url, Err: err}}
	}
	ext := &Extension{
		Index:          index,
		Name:           asString(root["name"]),
		URL:            asString(root["url"]),
		Version:        asString(root["version"]),
		rootProperties: map[string]*jsonschema.Schema{},
		cityObjects:    map[string]*jsonschema.Schema{},
		attributes:     map[string]map[string]*jsonschema.Schema{},
		surfaces:       map[string]*jsonschema.Schema{},
	}

	compile := func(ptr jsonPointer) (*jsonschema.Schema, error) {
		loc := url + ptr.fragment()
		sch, err := c.c.Compile(loc)
		if err != nil {
			return nil, &ExtensionError{Index: index, Err: &CompileError{Location: loc, Err: err}}
		}
		return sch, nil
	}
	into := func(section string, m map[string]*jsonschema.Schema) error {
		for _, name := range sortedKeys(asObject(root[section])) {
			sch, err := compile(pointer(section, name))
			if err != nil {
				return err
			}
			m[name] = sch
		}
		return nil
	}
	if err := into("extraRootProperties", ext.rootProperties); err != nil {
		return nil, err
	}
	if err := into("extraCityObjects", ext.cityObjects); err != nil {
		return nil, err
	}
	if err := into("extraSemanticSurfaces", ext.surfaces); err != nil {
		return nil, err
	}
	attrs := asObject(root["extraAttributes"])
	for _, typ := range sortedKeys(attrs) {
		ext.attributes[typ] = map[string]*jsonschema.Schema{}
		for _, name := range sortedKeys(asObject(attrs[typ])) {
			sch, err := compile(pointer("extraAttributes", typ, name))
			if err != nil {
				return nil, err
			}
			ext.attributes[typ][name] = sch
		}
	}
	return ext, nil
}

// sections of an Extension that hold schemas.
var schemaSections = []string{
	"definitions",
	"extraRootProperties",
	"extraAttributes",
	"extraCityObjects",
	"extraSemanticSurfaces",
}

// schemaResource returns the parts of an Extension document that are
// registered with the compiler. The Extension's own "type" is not a
// JSON Schema type, so the document itself is not a valid schema.
func schemaResource(root map[string]any) map[string]any {
	res := make(map[string]any, len(schemaSections))
	for _, name := range schemaSections {
		if v, ok := root[name]; ok {
			res[name] = v
		}
	}
	return res
}

// --

// extensionStage checks the parts of the document that Extensions define:
// CityObjects, attributes and semantic surfaces whose names start with "+",
// and root properties defined by an Extension.
type extensionStage struct {
	printer *message.Printer
}

func (extensionStage) Name() string { return "extensions" }
func (extensionStage) Class() Class { return Fatal }

func (s extensionStage) Evaluate(doc *Document, exts ExtensionSet) []string {
	f := newFindings()
	for _, id := range doc.cityObjectIDs() {
		co, ok := doc.cityObject(id)
		if !ok {
			continue
		}
		where := "CityObject " + kind.Quote(id)
		typ := asString(co["type"])
		if isExtensionName(typ) {
			if sch := exts.cityObject(typ); sch == nil {
				f.add(&kind.UndefinedCityObjectType{ID: id, Type: typ})
			} else {
				s.check(&f, where, sch, co)
			}
		}

		attrs := asObject(co["attributes"])
		for _, name := range sortedKeys(attrs) {
			if !isExtensionName(name) {
				continue
			}
			if sch := exts.attribute(typ, name); sch == nil {
				f.add(&kind.UndefinedAttribute{ID: id, Type: typ, Attribute: name})
			} else {
				s.check(&f, where+" attribute "+kind.Quote(name), sch, attrs[name])
			}
		}

		for gi, g := range geometries(co) {
			for si, surface := range asArray(asObject(g["semantics"])["surfaces"]) {
				st := asString(asObject(surface)["type"])
				if !isExtensionName(st) {
					continue
				}
				at := fmt.Sprintf("%s surface #%d", geometryAt(id, gi), si)
				if sch := exts.surface(st); sch == nil {
					f.add(&kind.UndefinedSemanticSurface{Where: at, Type: st})
				} else {
					s.check(&f, at, sch, surface)
				}
			}
		}
	}

	root := doc.Root()
	for _, name := range sortedKeys(root) {
		if !isExtensionName(name) {
			continue
		}
		if sch := exts.rootProperty(name); sch != nil {
			s.check(&f, "root property "+kind.Quote(name), sch, root[name])
		}
	}
	return f
}

func (s extensionStage) check(f *findings, where string, sch *jsonschema.Schema, v any) {
	for _, l := range violations(sch, v, s.printer) {
		f.add(&kind.ExtensionViolation{Where: where, Location: l.Location, Message: l.Message})
	}
}
