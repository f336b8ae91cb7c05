// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import "math"

// Segment is an undirected edge between two nodes. The endpoint nodes
// never change after creation; the triangle and intersection lists grow
// as the segment is shared and pierced.
type Segment struct {
	Node0, Node1  *Node           // endpoints
	Triangles     []*Triangle     // triangles sharing this segment
	Intersections []*Intersection // pierce points on this segment, in insertion order
}

// NewSegment creates a segment joining node0 and node1
func NewSegment(node0, node1 *Node) *Segment {
	return &Segment{Node0: node0, Node1: node1}
}

// PartOf registers a triangle sharing this segment
func (o *Segment) PartOf(t *Triangle) {
	o.Triangles = append(o.Triangles, t)
}

// CommonNode returns the node shared with another segment, or nil
func (o *Segment) CommonNode(other *Segment) *Node {
	if o.Node0 == other.Node0 || o.Node0 == other.Node1 {
		return o.Node0
	}
	if o.Node1 == other.Node0 || o.Node1 == other.Node1 {
		return o.Node1
	}
	return nil
}

// Has tells whether node is one of the endpoints
func (o *Segment) Has(node *Node) bool {
	return o.Node0 == node || o.Node1 == node
}

// Extent returns the midpoint and the radius enclosing both endpoints
func (o *Segment) Extent() (center []float64, diameter float64) {
	center = make([]float64, 3)
	for i := 0; i < 3; i++ {
		center[i] = 0.5 * (o.Node0.Xyz[i] + o.Node1.Xyz[i])
	}
	diameter = math.Max(dist(o.Node0.Xyz, center), dist(o.Node1.Xyz, center))
	return
}

// IntersectionWith returns the recorded intersection of this segment
// with triangle t, or nil
func (o *Segment) IntersectionWith(t *Triangle) *Intersection {
	for _, ins := range o.Intersections {
		if ins.Tri == t {
			return ins
		}
	}
	return nil
}
