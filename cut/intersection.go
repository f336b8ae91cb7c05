// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"github.com/cpmech/knife/stat"
)

// Intersection is a point where a segment pierces the interior of a
// triangle's plane region. It is recorded on both the segment and the
// triangle.
type Intersection struct {
	Seg  *Segment  // piercing segment
	Tri  *Triangle // pierced triangle
	T    float64   // parameter along the segment, in (0,1)
	U    []float64 // barycentric coordinates in the triangle (len 3)
	Node *Node     // pierce point
}

// Cut is a chord: another triangle crossing this one, with the two
// points where their boundaries cross. Each endpoint is either a
// boundary pierce (with its intersection record) or a corner of one
// triangle lying exactly on the other. Each cut is held by both
// triangles of the pair.
type Cut struct {
	Tri0, Tri1   *Triangle     // the crossing pair
	Ins0, Ins1   *Intersection // pierce records; nil for a corner endpoint
	Node0, Node1 *Node         // chord endpoint nodes
}

// Other returns the crossing partner of t
func (o *Cut) Other(t *Triangle) *Triangle {
	if o.Tri0 == t {
		return o.Tri1
	}
	return o.Tri0
}

// Pierce computes the strict crossing of segment (s0,s1) with triangle
// (t0,t1,t2): the endpoints must sit on opposite sides of the plane and
// the pierce point strictly inside the triangle. Touching
// configurations report no pierce.
func Pierce(s0, s1, t0, t1, t2 []float64) (t float64, u []float64, hits bool) {
	da := Orient3d(t0, t1, t2, s0)
	db := Orient3d(t0, t1, t2, s1)
	if da == 0 || db == 0 || (da > 0) == (db > 0) {
		return 0, nil, false
	}
	w0 := Orient3d(s0, s1, t1, t2)
	w1 := Orient3d(s0, s1, t2, t0)
	w2 := Orient3d(s0, s1, t0, t1)
	if w0 == 0 || w1 == 0 || w2 == 0 {
		return 0, nil, false
	}
	if (w0 > 0) != (w1 > 0) || (w0 > 0) != (w2 > 0) {
		return 0, nil, false
	}
	sum := w0 + w1 + w2
	return da / (da - db), []float64{w0 / sum, w1 / sum, w2 / sum}, true
}

// PierceSegTri applies Pierce to a segment and a triangle
func PierceSegTri(seg *Segment, tri *Triangle) (t float64, u []float64, hits bool) {
	return Pierce(seg.Node0.Xyz, seg.Node1.Xyz, tri.Node0.Xyz, tri.Node1.Xyz, tri.Node2.Xyz)
}

// InsertIntersection records a pierce of seg through tri: a node is
// created at the pierce point and the intersection is appended to the
// segment's list and the triangle's list. No pierce leaves both
// untouched and returns nil.
func InsertIntersection(seg *Segment, tri *Triangle, nodeId int) (ins *Intersection, err error) {
	t, u, hits := PierceSegTri(seg, tri)
	if !hits {
		return nil, nil
	}
	xyz := make([]float64, 3)
	for i := 0; i < 3; i++ {
		xyz[i] = (1.0-t)*seg.Node0.Xyz[i] + t*seg.Node1.Xyz[i]
	}
	node := NewNode(nodeId, NodeIntersection, -1, xyz[0], xyz[1], xyz[2])
	ins = &Intersection{seg, tri, t, u, node}
	seg.Intersections = append(seg.Intersections, ins)
	tri.Ints = append(tri.Ints, ins)
	return
}

// CutBetween pairs the crossing points of two triangles into a chord
// and records it on both. Two boundary pierces form the generic chord;
// one pierce plus one corner of either triangle lying exactly on the
// other is the degenerate-but-legal tangent case. Any other nonzero
// count is a geometric inconsistency.
func CutBetween(tri0, tri1 *Triangle) (cut *Cut, err error) {
	var found []*Intersection
	for _, ins := range tri0.Ints {
		if tri1.HasSegment(ins.Seg) {
			found = append(found, ins)
		}
	}
	for _, ins := range tri1.Ints {
		if tri0.HasSegment(ins.Seg) {
			found = append(found, ins)
		}
	}
	switch len(found) {
	case 2:
		cut = &Cut{tri0, tri1, found[0], found[1], found[0].Node, found[1].Node}
	case 1:
		corners := cornerTouches(tri0, tri1)
		if len(corners) != 1 {
			return nil, stat.Err(stat.Inconsistent, "cut_between: triangles %d and %d cross at one point with %d tangent corners", tri0.Id, tri1.Id, len(corners))
		}
		cut = &Cut{tri0, tri1, found[0], nil, found[0].Node, corners[0]}
	case 0:
		// a triangle may graze the other exactly along one of its own
		// edges: both edge ends sit on the other's plane
		corners := cornerTouches(tri0, tri1)
		switch len(corners) {
		case 0, 1: // point contact or none, nothing to cut
			return nil, nil
		case 2:
			cut = &Cut{tri0, tri1, nil, nil, corners[0], corners[1]}
		default:
			return nil, stat.Err(stat.Inconsistent, "cut_between: triangles %d and %d overlap at %d tangent corners", tri0.Id, tri1.Id, len(corners))
		}
	default:
		return nil, stat.Err(stat.Inconsistent, "cut_between: triangles %d and %d cross at %d points", tri0.Id, tri1.Id, len(found))
	}
	tri0.Cuts = append(tri0.Cuts, cut)
	tri1.Cuts = append(tri1.Cuts, cut)
	return
}

// cornerTouches collects the corners of either triangle sitting exactly
// on the other's plane and inside its closed region
func cornerTouches(tri0, tri1 *Triangle) (corners []*Node) {
	collect := func(tri, other *Triangle) {
		a, b, c := other.Node0.Xyz, other.Node1.Xyz, other.Node2.Xyz
		for i := 0; i < 3; i++ {
			n := tri.Corner(i)
			if Orient3d(a, b, c, n.Xyz) != 0 {
				continue
			}
			u := BarycentricOf(a, b, c, n.Xyz)
			zeros := 0
			inside := true
			for d := 0; d < 3; d++ {
				if u[d] < 0 {
					inside = false
				}
				if u[d] == 0 {
					zeros++
				}
			}
			if inside && zeros <= 1 {
				corners = append(corners, n)
			}
		}
	}
	collect(tri0, tri1)
	collect(tri1, tri0)
	return
}
