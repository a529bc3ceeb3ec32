// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[validate]
format = "json"
jobs = 3

[cache]
enabled = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Validate.Format != "json" || cfg.Validate.Jobs != 3 {
		t.Errorf("validate: got %+v", cfg.Validate)
	}
	if cfg.Cache.Enabled {
		t.Error("cache must be disabled")
	}
	def := Default()
	if cfg.Server != def.Server || cfg.Validate.Language != def.Validate.Language {
		t.Error("missing settings must keep their default")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[validate\n", "failed to parse TOML"},
		{"unknown", "[validate]\ncolour = true\n", "unknown keys: validate.colour"},
		{"jobs", "[validate]\njobs = 0\n", "[validate].jobs must be positive"},
		{"format", "[validate]\nformat = \"xml\"\n", "[validate].format"},
		{"addr", "[server]\naddr = \" \"\n", "[server].addr is empty"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), test.content))
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got %v, want %q", err, test.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := Find(sub)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != want {
		t.Errorf("got (%q, %v), want %q", got, ok, want)
	}
}

func TestResolveExplicit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[server]\naddr = \":9000\"\n")
	cfg, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("got %q", cfg.Server.Addr)
	}
}
