// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/cpmech/knife/cut"
)

// constraint kinds in sensitivity records
const (
	SensNode     = iota // a mesh node (primal or surface)
	SensEdgeCut         // a cell-face segment pierced through a surface triangle
	SensSurfCut         // a surface segment pierced through a cell-face triangle
	SensDualKnot        // a dual construction point (edge/tri/cell centre)
)

// SubtriSens carries the provenance of one subtri's three vertices: a
// 4-integer constraint record and three parent xyz triples per vertex.
// Integer ids are zero-based here; the api boundary shifts them.
type SubtriSens struct {
	ConstraintType [3][4]int     // per vertex: kind and parent ids
	ParentXyz      [3][9]float64 // per vertex: three defining points
}

// vertexSens resolves the constraint of one subnode
func vertexSens(sn *cut.Subnode) (ct [4]int, px [9]float64) {
	if sn.Ins != nil {
		ins := sn.Ins
		kind := SensSurfCut
		if ins.Tri.Kind == cut.TriSurface {
			kind = SensEdgeCut
		}
		ct = [4]int{kind, ins.Seg.Node0.Id, ins.Seg.Node1.Id, ins.Tri.Id}
		copy(px[0:3], ins.Seg.Node0.Xyz)
		copy(px[3:6], ins.Seg.Node1.Xyz)
		center, _ := ins.Tri.Extent()
		copy(px[6:9], center)
		return
	}
	n := sn.N
	switch n.Kind {
	case cut.NodeEdgeCenter:
		ct = [4]int{SensDualKnot, n.Tag, 0, 0}
	case cut.NodeTriCenter:
		ct = [4]int{SensDualKnot, n.Tag, 1, 0}
	case cut.NodeCellCenter:
		ct = [4]int{SensDualKnot, n.Tag, 2, 0}
	default:
		ct = [4]int{SensNode, n.Tag, 0, 0}
	}
	copy(px[0:3], n.Xyz)
	return
}

// subtriSens resolves all three vertices of one subtri, in the mask's
// outward orientation
func subtriSens(m *cut.Mask, st *cut.Subtri) (s SubtriSens) {
	order := [3]int{0, 1, 2}
	if m.Inward {
		order = [3]int{0, 2, 1}
	}
	for i, pos := range order {
		s.ConstraintType[i], s.ParentXyz[i] = vertexSens(st.Sn[pos])
	}
	return
}

// BetweenSens returns the vertex provenance of the subtris joining this
// poly to other, in the same order as SubtriBetween
func (o *Poly) BetweenSens(region int, other *Poly, otherRegion int, node *cut.Node) (sens []SubtriSens, err error) {
	err = o.eachBetween(region, other, otherRegion, node, func(m *cut.Mask, st *cut.Subtri) {
		sens = append(sens, subtriSens(m, st))
	})
	return
}

// SurfaceSens returns the vertex provenance of the subtris on the
// cutting surface, in the same order as SurfaceSubtri
func (o *Poly) SurfaceSens(region int) (sens []SubtriSens, err error) {
	err = o.eachKind(cut.TriSurface, -1, region, func(m *cut.Mask, st *cut.Subtri) {
		sens = append(sens, subtriSens(m, st))
	})
	return
}

// BoundarySens returns the vertex provenance of the subtris on one
// boundary patch, in the same order as BoundarySubtri
func (o *Poly) BoundarySens(faceId, region int) (sens []SubtriSens, err error) {
	err = o.eachKind(cut.TriBoundary, faceId, region, func(m *cut.Mask, st *cut.Subtri) {
		sens = append(sens, subtriSens(m, st))
	})
	return
}
