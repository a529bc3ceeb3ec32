// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cjval validates CityJSON files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cityjson/cjval/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is set at build time with -ldflags.
var version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:           "cjval",
	Short:         "Validate CityJSON files and their Extensions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().String("config", "", "configuration file (default: cjval.toml in the working directory or a parent)")

	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(invalidError); !ok {
			fmt.Fprintln(os.Stderr, "cjval:", err)
		}
		os.Exit(1)
	}
}

// invalidError tells main that some file is invalid. The report already
// said so.
type invalidError struct{}

func (invalidError) Error() string { return "invalid" }

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor tells whether output written to w is colorized. With --color=auto
// only a terminal gets colors.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch flag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	}
	return false, fmt.Errorf("--color must be auto, on or off, got %q", flag)
}

func verbose(cmd *cobra.Command) (bool, error) {
	v, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return false, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	return v, nil
}

// logger returns a printf to stderr when --verbose is set, a no-op otherwise.
func logger(cmd *cobra.Command) (func(format string, args ...any), error) {
	v, err := verbose(cmd)
	if err != nil {
		return nil, err
	}
	if !v {
		return func(string, ...any) {}, nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(cmd.ErrOrStderr(), "cjval: "+format+"\n", args...)
	}, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	return config.Resolve(path)
}
