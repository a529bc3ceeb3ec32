// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// builtin schema resources of every version, in registration order.
var builtinResources = []string{
	"geomprimitives.schema.json",
	"cityobjects.schema.json",
	"cityjson.schema.json",
}

const extensionSchema = "extension.schema.json"

// Option configures a Validator.
type Option func(*options)

type options struct {
	lang         language.Tag
	printer      *message.Printer
	assertFormat bool
}

func defaultOptions() options {
	return options{
		lang:         language.English,
		printer:      message.NewPrinter(language.English),
		assertFormat: true,
	}
}

// Settings renders the effect of opts as a canonical string, such as
// "lang=en formats=true". Options giving the same report render the same.
func Settings(opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return fmt.Sprintf("lang=%s formats=%t", o.lang, o.assertFormat)
}

// WithLanguage localizes the messages of schema findings.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
		o.printer = message.NewPrinter(tag)
	}
}

// WithFormatAssertions enables (the default) or disables the checks of the
// CityJSON formats of package formats. Standard formats such as "date" are
// always checked.
func WithFormatAssertions(on bool) Option {
	return func(o *options) {
		o.assertFormat = on
	}
}

// compiler holds the builtin schemas of one version, and every Extension
// schema compiled against them.
type compiler struct {
	c         *jsonschema.Compiler
	version   *Version
	cityjson  *jsonschema.Schema
	extension *jsonschema.Schema
}

func newCompiler(v *Version, opts *options) (*compiler, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	c.UseRegexpEngine(ecmaCompile)
	c.AssertFormat()
	registerFormats(c, opts.assertFormat)

	for _, name := range builtinResources {
		if err := addBuiltin(c, v.url(name), v.schema+"/"+name); err != nil {
			return nil, err
		}
	}
	if err := addBuiltin(c, v.url(extensionSchema), extensionSchema); err != nil {
		return nil, err
	}

	cityjson, err := c.Compile(v.url("cityjson.schema.json"))
	if err != nil {
		return nil, &BuiltinSchemaError{Name: v.schema + "/cityjson.schema.json", Err: err}
	}
	extension, err := c.Compile(v.url(extensionSchema))
	if err != nil {
		return nil, &BuiltinSchemaError{Name: extensionSchema, Err: err}
	}
	return &compiler{c: c, version: v, cityjson: cityjson, extension: extension}, nil
}

func addBuiltin(c *jsonschema.Compiler, url, name string) error {
	doc, err := loadBuiltin(name)
	if err != nil {
		return err
	}
	if err := c.AddResource(url, doc); err != nil {
		return &BuiltinSchemaError{Name: name, Err: err}
	}
	return nil
}
