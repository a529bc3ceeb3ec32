// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the cjval.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file looked up by Find.
const FileName = "cjval.toml"

type Config struct {
	Validate ValidateConfig `toml:"validate"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
}

type ValidateConfig struct {
	Format          string `toml:"format"` // text, json or yaml
	Jobs            int    `toml:"jobs"`
	FetchExtensions bool   `toml:"fetch_extensions"`
	Language        string `toml:"language"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty means the user cache directory
}

type ServerConfig struct {
	Addr    string `toml:"addr"`
	MaxBody int64  `toml:"max_body"` // bytes
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Validate: ValidateConfig{
			Format:   "text",
			Jobs:     runtime.GOMAXPROCS(0),
			Language: "en",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Server: ServerConfig{
			Addr:    ":8080",
			MaxBody: 64 << 20,
		},
	}
}

// Load reads the configuration file at path. Settings missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("validate", "jobs") && cfg.Validate.Jobs < 1 {
		return Config{}, fmt.Errorf("%s: [validate].jobs must be positive", path)
	}
	switch cfg.Validate.Format {
	case "text", "json", "yaml":
	default:
		return Config{}, fmt.Errorf("%s: [validate].format must be text, json or yaml", path)
	}
	if meta.IsDefined("server", "addr") && strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("%s: [server].addr is empty", path)
	}
	return cfg, nil
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads the file at path, or the one Find locates from the working
// directory when path is empty. Without any file, Default is returned.
func Resolve(path string) (Config, error) {
	if path == "" {
		found, ok, err := Find(".")
		if err != nil {
			return Config{}, err
		}
		if !ok {
			return Default(), nil
		}
		path = found
	}
	return Load(path)
}
