// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"github.com/cpmech/knife/stat"
)

// Mask wraps one triangle with an orientation flag and an active bitmap
// over its current subtris. A nil bitmap means all active. The same
// triangle may be wrapped by several masks (one per dual cell seeing
// it), each with its own bitmap.
type Mask struct {
	Tri    *Triangle // wrapped triangle
	Inward bool      // the triangle's right-hand normal points into the dual cell
	Active []bool    // active subtris; nil = all active
	Region []int     // region id per subtri after assembly; -1 = inactive

	Painted []*Cut // the cuts whose chords bound activity on this mask
}

// NewMask wraps a triangle
func NewMask(tri *Triangle, inward bool) *Mask {
	return &Mask{Tri: tri, Inward: inward}
}

// Nsubtri returns the number of subtris currently held by the triangle
func (o *Mask) Nsubtri() int {
	return len(o.Tri.Subtris)
}

// SubtriActive tells whether subtri index is active
func (o *Mask) SubtriActive(index int) bool {
	if o.Active == nil {
		return true
	}
	return o.Active[index]
}

// ActiveCount returns the number of active subtris
func (o *Mask) ActiveCount() (n int) {
	if o.Active == nil {
		return o.Nsubtri()
	}
	for _, a := range o.Active {
		if a {
			n++
		}
	}
	return
}

// DeactivateAll allocates the bitmap with every subtri inactive
func (o *Mask) DeactivateAll() {
	o.Active = make([]bool, o.Nsubtri())
}

// ActivateSubtriIndex marks one subtri active
func (o *Mask) ActivateSubtriIndex(index int) (err error) {
	if o.Active == nil {
		return
	}
	if index < 0 || index >= len(o.Active) {
		return stat.Err(stat.ArrayBound, "mask: subtri %d of %d", index, len(o.Active))
	}
	o.Active[index] = true
	return
}

// OnPaintedChord tells whether the subnode pair (a,b) spans the chord of
// a cut bounding this mask's activity
func (o *Mask) OnPaintedChord(a, b *Subnode) bool {
	for _, c := range o.Painted {
		if ChordEdge(c, a, b) {
			return true
		}
	}
	return false
}

// VerifyPaint checks that no active subtri shares a painted-chord edge
// with an active subtri on the other side
func (o *Mask) VerifyPaint() (err error) {
	t := o.Tri
	for i, st := range t.Subtris {
		if !o.SubtriActive(i) {
			continue
		}
		for e := 0; e < 3; e++ {
			a, b := st.Sn[(e+1)%3], st.Sn[(e+2)%3]
			if !o.OnPaintedChord(a, b) {
				continue
			}
			nb := t.NeighborAcross(st, a, b)
			if nb == nil {
				continue
			}
			if o.SubtriActive(SubtriIndex(t, nb)) {
				return stat.Err(stat.Failure, "verify_paint: triangle %d has active subtris on both sides of a chord", t.Id)
			}
		}
	}
	return
}

// CentroidVolumeContribution accumulates, over active subtris, the
// signed volume of the tetrahedra formed with origin and their
// volume-weighted centroids; the caller divides at the end
func (o *Mask) CentroidVolumeContribution(origin, centroid []float64, volume *float64) {
	for i, st := range o.Tri.Subtris {
		if !o.SubtriActive(i) {
			continue
		}
		a, b, c := st.Xyz()
		if o.Inward {
			b, c = c, b
		}
		vol := TetVolume(origin, a, b, c)
		*volume += vol
		for d := 0; d < 3; d++ {
			centroid[d] += vol * 0.25 * (origin[d] + a[d] + b[d] + c[d])
		}
	}
}

// DirectedAreaContribution accumulates the vector area of active
// subtris, oriented out of the dual cell
func (o *Mask) DirectedAreaContribution(area []float64) {
	for i, st := range o.Tri.Subtris {
		if !o.SubtriActive(i) {
			continue
		}
		a, b, c := st.Xyz()
		if o.Inward {
			b, c = c, b
		}
		n := TriNormal(a, b, c)
		for d := 0; d < 3; d++ {
			area[d] += 0.5 * n[d]
		}
	}
}

// ChordEdge tells whether the subnode pair (a,b) spans the chord of cut c
func ChordEdge(c *Cut, a, b *Subnode) bool {
	if a.N == nil || b.N == nil {
		return false
	}
	n0, n1 := c.Node0, c.Node1
	return (a.N == n0 && b.N == n1) || (a.N == n1 && b.N == n0)
}

// SubtriOnChord tells whether one of st's edges spans the chord of c
func SubtriOnChord(st *Subtri, c *Cut) bool {
	for e := 0; e < 3; e++ {
		if ChordEdge(c, st.Sn[(e+1)%3], st.Sn[(e+2)%3]) {
			return true
		}
	}
	return false
}

// SubtriIndex returns the position of st in t's list, or -1
func SubtriIndex(t *Triangle, st *Subtri) int {
	for i, s := range t.Subtris {
		if s == st {
			return i
		}
	}
	return -1
}
