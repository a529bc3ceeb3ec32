// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	for _, v := range versions {
		for _, name := range builtinResources {
			doc, err := loadBuiltin(v.schema + "/" + name)
			if err != nil {
				t.Fatalf("%s/%s: %v", v.schema, name, err)
			}
			if _, ok := doc.(map[string]any); !ok {
				t.Errorf("%s/%s: got %T, want object", v.schema, name, doc)
			}
		}
	}
	if _, err := loadBuiltin(extensionSchema); err != nil {
		t.Fatal(err)
	}
}

func TestSchemaURL(t *testing.T) {
	if got, want := Version11.url("cityobjects.schema.json"), "https://cityjson.org/schemas/1.1.3/cityobjects.schema.json"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
