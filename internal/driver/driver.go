// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver validates many CityJSON files at once.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/cityjson/cjval"
	"github.com/cityjson/cjval/internal/cache"
	"github.com/cityjson/cjval/loader"
	"golang.org/x/sync/errgroup"
)

// Options configures a batch.
type Options struct {
	// Extensions are urls of Extensions given to every document, before the
	// ones the document declares.
	Extensions []string

	// FetchExtensions loads the Extensions a document declares from their url.
	FetchExtensions bool

	// Jobs bounds the number of documents validated at once. Zero or less
	// means GOMAXPROCS.
	Jobs int

	Cache   *cache.Cache // nil disables caching
	Version string       // tool version, part of the cache key

	ValidatorOptions []cjval.Option

	// Logf, when set, receives progress messages.
	Logf func(format string, args ...any)
}

func (o *Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// Result is the validation of one document.
type Result struct {
	Path    string              `json:"path" yaml:"path"`
	Valid   bool                `json:"valid" yaml:"valid"`
	Outcome cjval.Outcome       `json:"outcome" yaml:"outcome"`
	Report  string              `json:"report,omitempty" yaml:"report,omitempty"`
	Stages  []cjval.StageResult `json:"stages,omitempty" yaml:"stages,omitempty"`
	Cached  bool                `json:"cached" yaml:"cached"`

	// Err tells why no report exists: the document could not be read, or is
	// not JSON.
	Err   error  `json:"-" yaml:"-"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func failed(path string, err error) Result {
	return Result{Path: path, Outcome: cjval.Failed, Err: err, Error: err.Error()}
}

// Run validates inputs[0] with the Extensions inputs[1:], going through c
// when it is not nil. The error is non-nil only when no report could be
// produced.
func Run(inputs []string, c *cache.Cache, version string, opts ...cjval.Option) (Result, error) {
	key := cache.KeyOf(version, cjval.Settings(opts...), inputs)
	var e cache.Entry
	if ok, err := c.Get(key, &e); err == nil && ok {
		return Result{Valid: e.Valid, Outcome: e.Outcome, Report: e.Report, Stages: e.Stages, Cached: true}, nil
	}

	v, err := cjval.New(inputs, opts...)
	if err != nil {
		return Result{}, err
	}
	r := Result{Valid: v.Validate(), Outcome: v.Outcome(), Report: v.Report(), Stages: v.Results()}
	e = cache.Entry{Valid: r.Valid, Outcome: r.Outcome, Report: r.Report, Stages: r.Stages}
	if err := c.Put(key, &e); err != nil {
		return r, fmt.Errorf("caching result: %w", err)
	}
	return r, nil
}

// ValidateFiles validates every file at paths, concurrently. Results are in
// the order of paths. Failing to read one file does not stop the others.
func ValidateFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	common := make([]string, len(opts.Extensions))
	for i, u := range opts.Extensions {
		data, err := loader.LoadJSON(u)
		if err != nil {
			return nil, fmt.Errorf("loading Extension %s: %w", u, err)
		}
		common[i] = string(data)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = validateFile(path, common, &opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateFile(path string, common []string, opts *Options) Result {
	opts.logf("validating %s", path)
	data, err := loader.LoadJSON(path)
	if err != nil {
		return failed(path, err)
	}
	inputs := append([]string{string(data)}, common...)
	if opts.FetchExtensions {
		fetched, err := fetchDeclared(data, opts)
		if err != nil {
			return failed(path, err)
		}
		inputs = append(inputs, fetched...)
	}

	r, err := Run(inputs, opts.Cache, opts.Version, opts.ValidatorOptions...)
	if r.Report == "" && err != nil {
		return failed(path, err)
	}
	if err != nil {
		opts.logf("%s: %v", path, err)
	}
	r.Path = path
	opts.logf("%s: %s", path, r.Outcome)
	return r
}

// fetchDeclared loads the Extensions the document data declares, sorted by
// name.
func fetchDeclared(data []byte, opts *Options) ([]string, error) {
	urls, err := cjval.DeclaredExtensions(data)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(urls))
	for name := range urls {
		names = append(names, name)
	}
	sort.Strings(names)
	var texts []string
	for _, name := range names {
		opts.logf("fetching Extension %s from %s", name, urls[name])
		ext, err := loader.LoadJSON(urls[name])
		if err != nil {
			return nil, fmt.Errorf("fetching Extension %s: %w", name, err)
		}
		texts = append(texts, string(ext))
	}
	return texts, nil
}
