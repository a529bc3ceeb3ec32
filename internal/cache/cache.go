// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache stores validation results on disk, keyed by the content of
// the validated inputs.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/cityjson/cjval"
	"github.com/vmihailenco/msgpack/v5"
)

// increment when Entry changes
const schemaVersion uint16 = 1

// Key identifies a set of inputs.
type Key [sha256.Size]byte

// KeyOf hashes the tool version, the validator settings and every input.
// Each input is length prefixed so that moving bytes from one input to the
// next changes the key.
func KeyOf(version, settings string, inputs []string) Key {
	h := sha256.New()
	var n [8]byte
	write := func(s string) {
		binary.BigEndian.PutUint64(n[:], uint64(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}
	write(version)
	write(settings)
	for _, in := range inputs {
		write(in)
	}
	var k Key
	h.Sum(k[:0])
	return k
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Entry is the cached result of a validation.
type Entry struct {
	Schema  uint16              `msgpack:"schema"`
	Valid   bool                `msgpack:"valid"`
	Outcome cjval.Outcome       `msgpack:"outcome"`
	Report  string              `msgpack:"report"`
	Stages  []cjval.StageResult `msgpack:"stages"`
}

// Cache is a directory of msgpack encoded entries. A nil *Cache caches
// nothing. It is safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open uses dir, creating it if needed. An empty dir means "cjval" in the
// user cache directory.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "cjval")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(k Key) string {
	s := k.String()
	return filepath.Join(c.dir, s[:2], s+".mp")
}

// Put stores e under k, replacing any previous entry atomically.
func (c *Cache) Put(k Key, e *Entry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(k)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	e.Schema = schemaVersion
	if err = msgpack.NewEncoder(f).Encode(e); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads the entry stored under k into e. Entries written by another
// version of this package are reported as missing.
func (c *Cache) Get(k Key, e *Entry) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(k))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(e); err != nil {
		return false, err
	}
	return e.Schema == schemaVersion, nil
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
