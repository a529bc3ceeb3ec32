// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cityjson/cjval"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the supported CityJSON versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cjval %s\n", version)
		for _, v := range cjval.Versions() {
			fmt.Fprintf(out, "  CityJSON v%s (schemas v%s)\n", v, v.SchemaVersion())
		}
	},
}
