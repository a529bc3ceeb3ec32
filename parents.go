// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cjval

import (
	"slices"

	"github.com/cityjson/cjval/kind"
)

// parentChildrenStage checks that the "children" and "parents" of
// CityObjects reference existing CityObjects, and that every link is
// declared on both ends.
type parentChildrenStage struct{}

func (parentChildrenStage) Name() string { return "parent_children_consistency" }
func (parentChildrenStage) Class() Class { return Fatal }

func (parentChildrenStage) Evaluate(doc *Document, _ ExtensionSet) []string {
	f := newFindings()
	for _, id := range doc.cityObjectIDs() {
		co, ok := doc.cityObject(id)
		if !ok {
			continue
		}
		for _, child := range asStrings(co["children"]) {
			c, ok := doc.cityObject(child)
			if !ok {
				f.add(&kind.MissingChild{Parent: id, Child: child})
				continue
			}
			if !slices.Contains(asStrings(c["parents"]), id) {
				f.add(&kind.MissingParentLink{Parent: id, Child: child})
			}
		}
		for _, parent := range asStrings(co["parents"]) {
			p, ok := doc.cityObject(parent)
			if !ok {
				f.add(&kind.MissingParent{Child: id, Parent: parent})
				continue
			}
			if !slices.Contains(asStrings(p["children"]), id) {
				f.add(&kind.MissingChildLink{Child: id, Parent: parent})
			}
		}
	}
	return f
}
