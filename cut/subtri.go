// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

// Subtri is one triangle of the planar refinement: three subnodes of the
// same parent triangle plus the original segment along each edge. Edge i
// is opposite subnode i; edges interior to the parent reference nil.
type Subtri struct {
	T   *Triangle   // parent triangle
	Sn  [3]*Subnode // corners
	Seg [3]*Segment // original segment along the edge opposite each corner
}

// NewSubtri creates a subtri of parent t
func NewSubtri(t *Triangle, sn0, sn1, sn2 *Subnode, seg0, seg1, seg2 *Segment) *Subtri {
	return &Subtri{t, [3]*Subnode{sn0, sn1, sn2}, [3]*Segment{seg0, seg1, seg2}}
}

// Xyz returns the positions of the three corners
func (o *Subtri) Xyz() (a, b, c []float64) {
	return o.Sn[0].XyzIn(o.T), o.Sn[1].XyzIn(o.T), o.Sn[2].XyzIn(o.T)
}

// Center returns the centroid position
func (o *Subtri) Center() []float64 {
	a, b, c := o.Xyz()
	for i := 0; i < 3; i++ {
		a[i] = (a[i] + b[i] + c[i]) / 3.0
	}
	return a
}

// UArea returns twice the signed area in barycentric (u1,u2) space; the
// whole parent triangle has UArea 1
func (o *Subtri) UArea() float64 {
	return uArea2(o.Sn[0], o.Sn[1], o.Sn[2])
}

// HasSide tells whether the directed or reversed pair (a,b) is an edge,
// returning the opposite-corner position
func (o *Subtri) HasSide(a, b *Subnode) (opposite int, ok bool) {
	for i := 0; i < 3; i++ {
		x, y := o.Sn[(i+1)%3], o.Sn[(i+2)%3]
		if (x == a && y == b) || (x == b && y == a) {
			return i, true
		}
	}
	return -1, false
}

// Replace swaps corner from for corner to, keeping edge segments
// attached to the unchanged corners
func (o *Subtri) Replace(from, to *Subnode) {
	for i := 0; i < 3; i++ {
		if o.Sn[i] == from {
			o.Sn[i] = to
		}
	}
}

// uArea2 returns twice the signed area of (a,b,c) in (u1,u2) space
func uArea2(a, b, c *Subnode) float64 {
	return (b.U1-a.U1)*(c.U2-a.U2) - (b.U2-a.U2)*(c.U1-a.U1)
}
