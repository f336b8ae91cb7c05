// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"math"

	"github.com/cpmech/knife/stat"
)

// triangle kinds: what surface the triangle tiles
const (
	TriDual     = iota // an interior median-dual face piece; Tag = primal edge id
	TriSurface         // a cutting-surface triangle; Tag = its patch id
	TriBoundary        // a primal boundary-face piece; Tag = boundary patch id
)

// Triangle is three segments sharing three pairwise-common nodes,
// carrying the planar refinement (subnodes and subtris), the pierce
// points on its interior, and the chords cut by crossing triangles
type Triangle struct {
	Id   int // stable id within one domain
	Kind int // TriDual, TriSurface or TriBoundary
	Tag  int // edge id, surface patch id, or boundary patch id

	Seg                 [3]*Segment // segment i is opposite corner i
	Node0, Node1, Node2 *Node       // corners, derived from the segments

	Subnodes []*Subnode      // grow-only; 0/1/2 are the corners
	Subtris  []*Subtri       // grow-only planar triangulation
	Ints     []*Intersection // pierce points interior to this triangle
	Cuts     []*Cut          // chords crossing this triangle
}

// NewTriangle creates a triangle over three segments; the corners are
// the pairwise-common nodes and seed the refinement with one subtri
func NewTriangle(id, kind, tag int, seg0, seg1, seg2 *Segment) (o *Triangle, err error) {
	o = &Triangle{Id: id, Kind: kind, Tag: tag, Seg: [3]*Segment{seg0, seg1, seg2}}
	seg0.PartOf(o)
	seg1.PartOf(o)
	seg2.PartOf(o)
	o.Node0 = seg1.CommonNode(seg2)
	o.Node1 = seg0.CommonNode(seg2)
	o.Node2 = seg0.CommonNode(seg1)
	if o.Node0 == nil || o.Node1 == nil || o.Node2 == nil {
		return nil, stat.Err(stat.Null, "triangle %d: segments do not share three nodes", id)
	}
	sn0 := NewSubnode(1, 0, 0, o.Node0, nil)
	sn1 := NewSubnode(0, 1, 0, o.Node1, nil)
	sn2 := NewSubnode(0, 0, 1, o.Node2, nil)
	o.Subnodes = []*Subnode{sn0, sn1, sn2}
	o.Subtris = []*Subtri{NewSubtri(o, sn0, sn1, sn2, seg0, seg1, seg2)}
	return
}

// HasSegment tells whether seg is one of the triangle's three segments
func (o *Triangle) HasSegment(seg *Segment) bool {
	return o.Seg[0] == seg || o.Seg[1] == seg || o.Seg[2] == seg
}

// SegmentIndex returns the local position of seg, or -1
func (o *Triangle) SegmentIndex(seg *Segment) int {
	for i := 0; i < 3; i++ {
		if o.Seg[i] == seg {
			return i
		}
	}
	return -1
}

// Corner returns corner i
func (o *Triangle) Corner(i int) *Node {
	switch i {
	case 0:
		return o.Node0
	case 1:
		return o.Node1
	}
	return o.Node2
}

// Extent returns the centroid and the radius enclosing the corners
func (o *Triangle) Extent() (center []float64, diameter float64) {
	center = make([]float64, 3)
	for i := 0; i < 3; i++ {
		center[i] = (o.Node0.Xyz[i] + o.Node1.Xyz[i] + o.Node2.Xyz[i]) / 3.0
	}
	diameter = math.Max(dist(o.Node0.Xyz, center),
		math.Max(dist(o.Node1.Xyz, center), dist(o.Node2.Xyz, center)))
	return
}

// Normal returns the (non-unit) right-hand normal over the corners
func (o *Triangle) Normal() []float64 {
	return TriNormal(o.Node0.Xyz, o.Node1.Xyz, o.Node2.Xyz)
}

// SubnodeOf returns the subnode backed by node, or nil
func (o *Triangle) SubnodeOf(node *Node) *Subnode {
	for _, sn := range o.Subnodes {
		if sn.N == node {
			return sn
		}
	}
	return nil
}

// NeighborAcross returns the other subtri sharing the edge (a,b) of st,
// or nil on the refinement boundary
func (o *Triangle) NeighborAcross(st *Subtri, a, b *Subnode) *Subtri {
	for _, other := range o.Subtris {
		if other == st {
			continue
		}
		if _, ok := other.HasSide(a, b); ok {
			return other
		}
	}
	return nil
}

// CutWith returns the recorded cut against other, or nil
func (o *Triangle) CutWith(other *Triangle) *Cut {
	for _, c := range o.Cuts {
		if c.Other(o) == other {
			return c
		}
	}
	return nil
}

// onAnyChord tells whether (a,b) spans the chord of any cut of the triangle
func (o *Triangle) onAnyChord(a, b *Subnode) bool {
	for _, c := range o.Cuts {
		if ChordEdge(c, a, b) {
			return true
		}
	}
	return false
}

// VerifyTiling checks that the subtris tile the triangle: every signed
// barycentric area positive and areas summing to one within a tolerance
// scaled by the refinement size
func (o *Triangle) VerifyTiling() (err error) {
	sum := 0.0
	for _, st := range o.Subtris {
		a2 := st.UArea()
		if a2 <= 0 {
			return stat.Err(stat.Failure, "triangle %d: inverted or degenerate subtri", o.Id)
		}
		sum += a2
	}
	if math.Abs(sum-1.0) > 1e-12*float64(1+len(o.Subtris)) {
		return stat.Err(stat.Failure, "triangle %d: subtri areas sum to %g", o.Id, sum)
	}
	return
}
