// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"github.com/cityjson/cjval/kind"
)

// extraRootPropertiesStage reports root properties that CityJSON does not
// define. Properties starting with "+" are fine as long as an attached
// Extension defines them.
type extraRootPropertiesStage struct{}

func (extraRootPropertiesStage) Name() string { return "extra_root_properties" }
func (extraRootPropertiesStage) Class() Class { return Warning }

func (extraRootPropertiesStage) Evaluate(doc *Document, exts ExtensionSet) []string {
	f := newFindings()
	for _, name := range sortedKeys(doc.Root()) {
		if _, ok := rootProperties[name]; ok {
			continue
		}
		if !isExtensionName(name) {
			f.add(&kind.ExtraRootProperty{Name: name})
		} else if exts.rootProperty(name) == nil {
			f.add(&kind.UndefinedRootProperty{Name: name})
		}
	}
	return f
}
