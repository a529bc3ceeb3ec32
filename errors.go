// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"fmt"
)

// InvalidInputError is returned by New when the primary document cannot be
// parsed. No Validator, and hence no report, exists for such input.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid JSON file: %v", e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// BuiltinSchemaError tells that one of the embedded schemas could not be
// loaded or compiled. It indicates a broken build rather than bad input.
type BuiltinSchemaError struct {
	Name string
	Err  error
}

func (e *BuiltinSchemaError) Error() string {
	return fmt.Sprintf("builtin schema %q: %v", e.Name, e.Err)
}

func (e *BuiltinSchemaError) Unwrap() error {
	return e.Err
}

// ExtensionError describes why the Extension at Index could not be loaded.
type ExtensionError struct {
	Index int
	Err   error
}

func (e *ExtensionError) Error() string {
	return e.Err.Error()
}

func (e *ExtensionError) Unwrap() error {
	return e.Err
}

// InvalidExtensionError is the cause of an ExtensionError when the Extension
// document does not conform to the CityJSONExtension schema.
type InvalidExtensionError struct {
	Findings []string
}

func (e *InvalidExtensionError) Error() string {
	msg := "not a valid CityJSON Extension"
	for _, f := range e.Findings {
		msg += "\n  " + f
	}
	return msg
}

// CompileError is the cause of an ExtensionError when one of the schemas an
// Extension defines does not compile.
type CompileError struct {
	Location string
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("schema at %q does not compile: %v", e.Location, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
