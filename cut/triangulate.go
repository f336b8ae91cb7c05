// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"github.com/cpmech/knife/stat"
)

// uTol is the relative tolerance deciding whether a point sits on a
// subtri edge during location
const uTol = 1e-10

// maxSwaps bounds the edge-swap walk recovering one chord
const maxSwaps = 1000

// TriangulateCuts refines the subtri list so that every recorded chord
// lies along subtri edges: each chord endpoint becomes a subnode (reused
// when its node already appears) and edge swaps make the chord an edge
// of the refinement
func (o *Triangle) TriangulateCuts() (err error) {
	for _, c := range o.Cuts {
		sn0, err := o.chordSubnode(c.Node0, c.Ins0)
		if err != nil {
			return err
		}
		sn1, err := o.chordSubnode(c.Node1, c.Ins1)
		if err != nil {
			return err
		}
		if sn0 == sn1 {
			return stat.Err(stat.Inconsistent, "triangle %d: chord of cut with %d collapsed to a point", o.Id, c.Other(o).Id)
		}
		if err = o.recoverEdge(sn0, sn1); err != nil {
			return err
		}
	}
	return o.VerifyTiling()
}

// chordSubnode returns the subnode realising one chord endpoint,
// inserting it into the refinement on first use. Corner endpoints of
// this triangle resolve to the existing corner subnode.
func (o *Triangle) chordSubnode(node *Node, ins *Intersection) (sn *Subnode, err error) {
	if sn = o.SubnodeOf(node); sn != nil {
		return
	}
	var u0, u1, u2 float64
	switch {
	case ins == nil:
		// a corner of the crossing triangle lying on this one
		u := BarycentricOf(o.Node0.Xyz, o.Node1.Xyz, o.Node2.Xyz, node.Xyz)
		u0, u1, u2 = u[0], u[1], u[2]
	case ins.Tri == o:
		u0, u1, u2 = ins.U[0], ins.U[1], ins.U[2]
	default:
		// the pierce lives on one of this triangle's own segments
		side := o.SegmentIndex(ins.Seg)
		if side < 0 {
			return nil, stat.Err(stat.NotFound, "triangle %d: intersection neither interior nor on a segment", o.Id)
		}
		u := []float64{0, 0, 0}
		j, k := (side+1)%3, (side+2)%3
		if o.Corner(j) == ins.Seg.Node0 {
			u[j], u[k] = 1.0-ins.T, ins.T
		} else {
			u[j], u[k] = ins.T, 1.0-ins.T
		}
		u0, u1, u2 = u[0], u[1], u[2]
	}
	sn = NewSubnode(u0, u1, u2, node, ins)
	if err = o.insertSubnode(sn); err != nil {
		return nil, err
	}
	return
}

// locateSubnode finds the subtri containing p, returning its local
// barycentric coordinates there. The best candidate is the one whose
// smallest local coordinate is greatest.
func (o *Triangle) locateSubnode(p *Subnode) (best *Subtri, bary []float64, err error) {
	bestMin := -1e30
	for _, st := range o.Subtris {
		a2 := st.UArea()
		if a2 <= 0 {
			return nil, nil, stat.Err(stat.DivZero, "triangle %d: degenerate subtri during location", o.Id)
		}
		b := []float64{
			uArea2(p, st.Sn[1], st.Sn[2]) / a2,
			uArea2(st.Sn[0], p, st.Sn[2]) / a2,
			uArea2(st.Sn[0], st.Sn[1], p) / a2,
		}
		min := b[0]
		if b[1] < min {
			min = b[1]
		}
		if b[2] < min {
			min = b[2]
		}
		if min > bestMin {
			bestMin = min
			best = st
			bary = b
		}
	}
	if best == nil || bestMin < -uTol {
		return nil, nil, stat.Err(stat.NotFound, "triangle %d: point (%g,%g,%g) outside refinement", o.Id, p.U0, p.U1, p.U2)
	}
	return
}

// insertSubnode places p into the refinement, splitting the containing
// subtri (interior), the one or two subtris along an edge, and rejecting
// corner coincidence as a degeneracy (exact corner hits reuse the
// existing subnode upstream)
func (o *Triangle) insertSubnode(p *Subnode) (err error) {
	st, b, err := o.locateSubnode(p)
	if err != nil {
		return
	}
	onEdge := -1
	nzero := 0
	for i := 0; i < 3; i++ {
		if b[i] <= uTol {
			onEdge = i
			nzero++
		}
	}
	o.Subnodes = append(o.Subnodes, p)
	switch nzero {
	case 0:
		o.splitInterior(st, p)
		return
	case 1:
		return o.splitEdge(st, onEdge, p)
	}
	return stat.Err(stat.Inconsistent, "triangle %d: chord endpoint coincides with a subnode", o.Id)
}

// splitInterior replaces st by three subtris fanned about p
func (o *Triangle) splitInterior(st *Subtri, p *Subnode) {
	s0, s1, s2 := st.Sn[0], st.Sn[1], st.Sn[2]
	o.removeSubtri(st)
	o.Subtris = append(o.Subtris,
		NewSubtri(o, s0, s1, p, nil, nil, st.Seg[2]),
		NewSubtri(o, s1, s2, p, nil, nil, st.Seg[0]),
		NewSubtri(o, s2, s0, p, nil, nil, st.Seg[1]))
}

// splitEdge splits st along the edge opposite corner side, and the
// neighbor across that edge when the edge is interior
func (o *Triangle) splitEdge(st *Subtri, side int, p *Subnode) (err error) {
	x, y := st.Sn[(side+1)%3], st.Sn[(side+2)%3]
	nb := o.NeighborAcross(st, x, y)
	o.splitOne(st, side, p)
	if nb != nil {
		opp, ok := nb.HasSide(x, y)
		if !ok {
			return stat.Err(stat.Failure, "triangle %d: neighbor lost its shared edge", o.Id)
		}
		o.splitOne(nb, opp, p)
	} else if st.Seg[side] == nil {
		return stat.Err(stat.Failure, "triangle %d: interior edge with a single subtri", o.Id)
	}
	return
}

// splitOne replaces st by two subtris sharing the spoke from corner side
// to p; the split edge keeps its original-segment reference
func (o *Triangle) splitOne(st *Subtri, side int, p *Subnode) {
	c := st.Sn[side]
	x, y := st.Sn[(side+1)%3], st.Sn[(side+2)%3]
	segEdge := st.Seg[side]
	segOppY := st.Seg[(side+2)%3] // along (c,x)
	segOppX := st.Seg[(side+1)%3] // along (y,c)
	o.removeSubtri(st)
	o.Subtris = append(o.Subtris,
		NewSubtri(o, c, x, p, segEdge, nil, segOppY),
		NewSubtri(o, c, p, y, segEdge, segOppX, nil))
}

// recoverEdge swaps crossing edges until (a,b) is an edge of the
// refinement
func (o *Triangle) recoverEdge(a, b *Subnode) (err error) {
	for iter := 0; iter < maxSwaps; iter++ {
		for _, st := range o.Subtris {
			if _, ok := st.HasSide(a, b); ok {
				return nil
			}
		}
		if !o.swapOneCrossing(a, b) {
			return stat.Err(stat.Failure, "triangle %d: cannot recover chord by edge swaps", o.Id)
		}
	}
	return stat.Err(stat.Failure, "triangle %d: chord recovery did not converge", o.Id)
}

// swapOneCrossing finds an edge strictly crossing segment (a,b) whose
// swap keeps all subtris positively oriented, and swaps it
func (o *Triangle) swapOneCrossing(a, b *Subnode) bool {
	for _, st := range o.Subtris {
		for i := 0; i < 3; i++ {
			x, y := st.Sn[(i+1)%3], st.Sn[(i+2)%3]
			if x == a || x == b || y == a || y == b {
				continue
			}
			// strict crossing of (a,b) with open edge (x,y)
			sx := uArea2(a, b, x)
			sy := uArea2(a, b, y)
			if sx == 0 || sy == 0 || (sx > 0) == (sy > 0) {
				continue
			}
			sa := uArea2(x, y, a)
			sb := uArea2(x, y, b)
			if (sa > 0) == (sb > 0) {
				continue
			}
			// constrained edges must not be crossed
			if st.Seg[i] != nil || o.onAnyChord(x, y) {
				continue
			}
			nb := o.NeighborAcross(st, x, y)
			if nb == nil {
				continue
			}
			if o.swapEdge(st, nb, x, y) {
				return true
			}
		}
	}
	return false
}

// swapEdge replaces the diagonal (x,y) of the quad formed by st and nb
// with the opposite diagonal, refusing the swap when the quad is not
// convex
func (o *Triangle) swapEdge(st, nb *Subtri, x, y *Subnode) bool {
	iSt, _ := st.HasSide(x, y)
	iNb, ok := nb.HasSide(x, y)
	if !ok {
		return false
	}
	p := st.Sn[iSt] // corner of st off the shared edge
	q := nb.Sn[iNb] // corner of nb off the shared edge

	// orient the shared edge as seen from st
	sx, sy := st.Sn[(iSt+1)%3], st.Sn[(iSt+2)%3]

	// candidate subtris (p,sx,q) and (p,q,sy)
	if uArea2(p, sx, q) <= 0 || uArea2(p, q, sy) <= 0 {
		return false
	}

	segSx := st.segAlong(p, sx)
	segSy := st.segAlong(sy, p)
	segNx := nb.segAlong(sx, q)
	segNy := nb.segAlong(q, sy)

	o.removeSubtri(st)
	o.removeSubtri(nb)
	o.Subtris = append(o.Subtris,
		NewSubtri(o, p, sx, q, segNx, nil, segSx),
		NewSubtri(o, p, q, sy, segNy, segSy, nil))
	return true
}

// segAlong returns the original-segment reference of the edge (a,b)
func (o *Subtri) segAlong(a, b *Subnode) *Segment {
	if i, ok := o.HasSide(a, b); ok {
		return o.Seg[i]
	}
	return nil
}

func (o *Triangle) removeSubtri(st *Subtri) {
	for i, s := range o.Subtris {
		if s == st {
			o.Subtris = append(o.Subtris[:i], o.Subtris[i+1:]...)
			return
		}
	}
}
