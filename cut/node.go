// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cut implements the geometric cut engine: shared nodes and
// segments, the planar sub-triangulation kept inside each triangle as
// intersections accumulate, the active-subtri masks implementing the
// Boolean subtraction, and the loops bounding each cut region
package cut

// node provenance kinds, recorded when the node is created and consumed
// by the sensitivity readouts
const (
	NodePrimal       = iota // a primal volume node; Tag = node id
	NodeSurface             // a cutting-surface node; Tag = surface node id
	NodeEdgeCenter          // a primal edge midpoint; Tag = edge id
	NodeTriCenter           // a primal triangle-face centroid; Tag = tri id
	NodeCellCenter          // a primal cell centroid; Tag = cell id
	NodeIntersection        // a segment-triangle pierce point
)

// Node is a 3-D point shared by every segment, triangle, mask and poly
// that references it. Coordinates never change after creation.
type Node struct {
	Id   int       // stable id within one domain (region assembly key)
	Kind int       // provenance kind
	Tag  int       // provenance id (meaning depends on Kind)
	Xyz  []float64 // coordinates (len 3)
}

// NewNode creates a node with its own coordinate storage
func NewNode(id, kind, tag int, x, y, z float64) *Node {
	return &Node{id, kind, tag, []float64{x, y, z}}
}
