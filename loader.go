// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/goccy/go-json"
)

//go:embed schemas
var schemaFS embed.FS

// loadBuiltin decodes the embedded schema at name, relative to the schemas
// directory.
func loadBuiltin(name string) (any, error) {
	f, err := schemaFS.Open(path.Join("schemas", name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &BuiltinSchemaError{Name: name, Err: fs.ErrNotExist}
		}
		return nil, err
	}
	defer f.Close()
	doc, err := UnmarshalJSON(f)
	if err != nil {
		return nil, &BuiltinSchemaError{Name: name, Err: err}
	}
	return doc, nil
}

// --

// UnmarshalJSON unmarshals into [any] without losing
// number precision using [json.Number].
func UnmarshalJSON(r io.Reader) (any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err == nil || err != io.EOF {
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	return doc, nil
}

func unmarshalString(s string) (any, error) {
	return UnmarshalJSON(bytes.NewReader([]byte(s)))
}

// DeclaredExtensions returns the url of every Extension listed in the
// "extensions" property of the CityJSON document data, keyed by Extension
// name. A document without Extensions yields an empty map.
func DeclaredExtensions(data []byte) (map[string]string, error) {
	doc, err := UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidInputError{Err: err}
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, &InvalidInputError{Err: errors.New("top-level value is not an object")}
	}
	urls := map[string]string{}
	for name, v := range asObject(root["extensions"]) {
		if u, ok := asObject(v)["url"].(string); ok {
			urls[name] = u
		}
	}
	return urls, nil
}
