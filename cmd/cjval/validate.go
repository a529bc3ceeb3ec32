// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cityjson/cjval"
	_ "github.com/cityjson/cjval/httploader"
	"github.com/cityjson/cjval/internal/cache"
	"github.com/cityjson/cjval/internal/config"
	"github.com/cityjson/cjval/internal/driver"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate CityJSON files",
	Long: `Validate CityJSON files against the schemas of their version, the given
Extensions, and the structural rules of CityJSON.

The exit status is 1 when any file is invalid. Files with warnings only are valid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringArrayP("extension", "e", nil, "Extension schema file or url, may be repeated")
	f.Bool("fetch-extensions", false, "download the Extensions declared by each file")
	f.String("format", "text", "output format (text|json|yaml)")
	f.IntP("jobs", "j", 0, "files validated at once (default: number of CPUs)")
	f.Bool("no-cache", false, "do not read or write the result cache")
	f.String("lang", "en", "language of schema messages")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyValidateFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	logf, err := logger(cmd)
	if err != nil {
		return err
	}

	tag, err := language.Parse(cfg.Validate.Language)
	if err != nil {
		return fmt.Errorf("--lang: %w", err)
	}
	exts, err := cmd.Flags().GetStringArray("extension")
	if err != nil {
		return fmt.Errorf("failed to get extension flag: %w", err)
	}
	opts := driver.Options{
		Extensions:       exts,
		FetchExtensions:  cfg.Validate.FetchExtensions,
		Jobs:             cfg.Validate.Jobs,
		Version:          version,
		ValidatorOptions: []cjval.Option{cjval.WithLanguage(tag)},
		Logf:             logf,
	}
	if cfg.Cache.Enabled {
		c, err := cache.Open(cfg.Cache.Dir)
		if err != nil {
			logf("cache disabled: %v", err)
		} else {
			opts.Cache = c
		}
	}

	results, err := driver.ValidateFiles(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Validate.Format {
	case "json":
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		colored, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		printText(out, results, colored)
	}

	for _, r := range results {
		if !r.Valid {
			return invalidError{}
		}
	}
	return nil
}

// applyValidateFlags overrides cfg with the flags given on the command line.
func applyValidateFlags(f *pflag.FlagSet, cfg *config.Config) error {
	var err error
	if f.Changed("format") {
		if cfg.Validate.Format, err = f.GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if f.Changed("jobs") {
		if cfg.Validate.Jobs, err = f.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if f.Changed("fetch-extensions") {
		if cfg.Validate.FetchExtensions, err = f.GetBool("fetch-extensions"); err != nil {
			return fmt.Errorf("failed to get fetch-extensions flag: %w", err)
		}
	}
	if f.Changed("lang") {
		if cfg.Validate.Language, err = f.GetString("lang"); err != nil {
			return fmt.Errorf("failed to get lang flag: %w", err)
		}
	}
	noCache, err := f.GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	switch cfg.Validate.Format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("--format must be text, json or yaml, got %q", cfg.Validate.Format)
}

const summaryStart = "\n\n============ SUMMARY"

func printText(w io.Writer, results []driver.Result, colored bool) {
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "### %s\n", r.Path)
		}
		if r.Err != nil {
			fmt.Fprintf(w, "%s: %v\n", r.Path, r.Err)
			continue
		}
		report, summary := r.Report, ""
		if i := strings.LastIndex(report, summaryStart); i != -1 {
			report, summary = report[:i], report[i:]
		}
		fmt.Fprint(w, report)
		if colored {
			summary = outcomeColor(r.Outcome).Sprint(summary)
		}
		fmt.Fprintln(w, summary)
	}
}

func outcomeColor(o cjval.Outcome) *color.Color {
	switch o {
	case cjval.Clean:
		return color.New(color.FgGreen, color.Bold)
	case cjval.Warned:
		return color.New(color.FgYellow, color.Bold)
	}
	return color.New(color.FgRed, color.Bold)
}
