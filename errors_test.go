// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestInvalidInputErrorAs(t *testing.T) {
	_, err := New([]string{`{"type": invalid}`})
	var ie *InvalidInputError
	if !errors.As(err, &ie) {
		t.Fatalf("%v should be able to use errors.As for %T", err, ie)
	}
	if ie.Err == nil || errors.Unwrap(err) != ie.Err {
		t.Errorf("%v should wrap the parse error", err)
	}
}

func TestExtensionErrorAs(t *testing.T) {
	var err error = &ExtensionError{Index: 2, Err: &CompileError{Location: "x#/a", Err: fs.ErrNotExist}}

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Errorf("%v should be able to use errors.As for %T", err, ce)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%v should report true for %v", err, fs.ErrNotExist)
	}
	if got := err.Error(); !strings.HasPrefix(got, `schema at "x#/a" does not compile`) {
		t.Errorf("got %q", got)
	}
}

func TestInvalidExtensionError(t *testing.T) {
	err := &InvalidExtensionError{Findings: []string{"[/] a", "[/b] c"}}
	want := "not a valid CityJSON Extension\n  [/] a\n  [/b] c"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuiltinSchemaError(t *testing.T) {
	_, err := loadBuiltin("9.9.9/cityjson.schema.json")
	var be *BuiltinSchemaError
	if !errors.As(err, &be) {
		t.Fatalf("%v should be able to use errors.As for %T", err, be)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%v should report true for %v", err, fs.ErrNotExist)
	}
}
