// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader reads CityJSON documents and Extensions from urls.
//
// Loaders are registered per url scheme. File paths and file urls are
// supported out of the box; package httploader adds http and https.
package loader

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Loader returns the content at url.
type Loader interface {
	Load(url string) ([]byte, error)
}

type filePathLoader struct{}

func (filePathLoader) Load(path string) ([]byte, error) {
	return os.ReadFile(path)
}

type fileURLLoader struct{}

func (fileURLLoader) Load(url string) ([]byte, error) {
	f := strings.TrimPrefix(url, "file://")
	if runtime.GOOS == "windows" {
		f = strings.TrimPrefix(f, "/")
		f = filepath.FromSlash(f)
	}
	return os.ReadFile(f)
}

var (
	registry = make(map[string]Loader)
	mutex    = sync.RWMutex{}
)

type SchemeNotRegisteredError string

func (s SchemeNotRegisteredError) Error() string {
	return fmt.Sprintf("no Loader registered for scheme %q", string(s))
}

func Register(scheme string, loader Loader) {
	mutex.Lock()
	defer mutex.Unlock()
	registry[scheme] = loader
}

func UnRegister(scheme string) {
	mutex.Lock()
	defer mutex.Unlock()
	delete(registry, scheme)
}

func get(s string) (Loader, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	scheme := u.Scheme
	if runtime.GOOS == "windows" && len(scheme) == 1 {
		// drive letter
		scheme = ""
	}
	if loader, ok := registry[scheme]; ok {
		return loader, nil
	}
	return nil, SchemeNotRegisteredError(scheme)
}

// Load returns the raw content at url.
func Load(url string) ([]byte, error) {
	loader, err := get(url)
	if err != nil {
		return nil, err
	}
	return loader.Load(url)
}

// LoadJSON returns the content at url as JSON text. Content at a url ending
// with ".yaml" or ".yml" is converted from YAML.
func LoadJSON(url string) ([]byte, error) {
	data, err := Load(url)
	if err != nil {
		return nil, err
	}
	if !isYAML(url) {
		return data, nil
	}
	return YAMLToJSON(data)
}

// YAMLToJSON converts a YAML document into JSON text.
func YAMLToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return json.Marshal(doc)
}

func isYAML(url string) bool {
	if i := strings.IndexAny(url, "?#"); i != -1 {
		url = url[:i]
	}
	ext := strings.ToLower(filepath.Ext(url))
	return ext == ".yaml" || ext == ".yml"
}

func init() {
	Register("", filePathLoader{})
	Register("file", fileURLLoader{})
}
