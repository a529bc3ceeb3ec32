// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cityjson/cjval/loader"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.city.json")
	if err := os.WriteFile(path, []byte(`{"type": "CityJSON"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, url := range []string{path, "file://" + filepath.ToSlash(path)} {
		got, err := loader.LoadJSON(url)
		if err != nil {
			t.Fatalf("%s: %v", url, err)
		}
		if string(got) != `{"type": "CityJSON"}` {
			t.Errorf("%s: got %s", url, got)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noise.ext.yaml")
	yml := "type: CityJSONExtension\nname: Noise\nextraRootProperties: {}\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := loader.LoadJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{`"type":"CityJSONExtension"`, `"name":"Noise"`, `"extraRootProperties":{}`} {
		if !strings.Contains(string(got), s) {
			t.Errorf("%s does not contain %s", got, s)
		}
	}
	if _, err := loader.YAMLToJSON([]byte("a: [")); err == nil {
		t.Error("error expected")
	}
}

func TestSchemeNotRegistered(t *testing.T) {
	_, err := loader.Load("ftp://example.org/doc.json")
	var se loader.SchemeNotRegisteredError
	if !errors.As(err, &se) || string(se) != "ftp" {
		t.Errorf("got %v", err)
	}
}

type constLoader string

func (l constLoader) Load(string) ([]byte, error) { return []byte(l), nil }

func TestRegister(t *testing.T) {
	loader.Register("mem", constLoader(`{}`))
	defer loader.UnRegister("mem")
	got, err := loader.Load("mem://anything")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{}` {
		t.Errorf("got %s", got)
	}
}
