// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"fmt"

	"github.com/cityjson/cjval/formats"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// registerFormats makes every format of package formats available to the
// schemas compiled by c. Unless assert is set, every value conforms.
func registerFormats(c *jsonschema.Compiler, assert bool) {
	for _, name := range formats.Names() {
		f, ok := formats.Get(name)
		if !ok {
			continue
		}
		if !assert {
			f = func(string) bool { return true }
		}
		c.RegisterFormat(&jsonschema.Format{
			Name:     name,
			Validate: stringFormat(name, f),
		})
	}
}

// stringFormat adapts f to the format contract: values other than strings
// are ignored.
func stringFormat(name string, f formats.Format) func(v any) error {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		if !f(s) {
			return fmt.Errorf("%q is not a valid %s", s, name)
		}
		return nil
	}
}
