// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cjval validates CityJSON files, and the CityJSON Extensions they use.

Validation runs in stages. New checks the document against the builtin
CityJSON schemas of its version, then loads every Extension:

	v, err := cjval.New([]string{doc, ext1, ext2})
	if err != nil {
		return err // doc is not JSON
	}
	valid := v.Validate()
	fmt.Println(v.Report())

Validate then checks the objects the Extensions define, and runs the
structural stages: parent_children_consistency, wrong_vertex_index and
semantics_arrays. A file failing any of them is invalid. Only when all of them
pass do the warning stages run: duplicate_vertices, extra_root_properties and
unused_vertices. Warnings never make a file invalid.

The report is plain text with one section per stage, and ends with a summary
block. Results gives the same findings in structured form.

Supported CityJSON versions are v1.0, v1.1 and v2.0. Extensions are not
validated in v1.0 files, and such files always fail.

Schema messages are localized with golang.org/x/text, see WithLanguage.
CityJSON-specific string formats are defined in package formats.
*/
package cjval
