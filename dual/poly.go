// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dual assembles cut median-dual polyhedra: the Poly around
// each retained primal node and the Domain orchestrating the cut
// pipeline from a primal mesh and a cutting surface
package dual

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/knife/cut"
	"github.com/cpmech/knife/stat"
)

// Poly is the median-dual polyhedron of one primal node: the masks
// bounding the cell and, once assembled, the connected regions of their
// active subtris
type Poly struct {
	NodeIndex int       // primal node index the cell is centred on
	Node      *cut.Node // the node itself
	Masks     []*cut.Mask
	Nregion   int  // number of assembled regions
	CutBySurf bool // a cutting-surface mask entered the cell
}

// NewPoly creates an empty poly centred on node
func NewPoly(nodeIndex int, node *cut.Node) *Poly {
	return &Poly{NodeIndex: nodeIndex, Node: node}
}

// AddMask appends a mask
func (o *Poly) AddMask(m *cut.Mask) {
	o.Masks = append(o.Masks, m)
	if m.Tri.Kind == cut.TriSurface {
		o.CutBySurf = true
	}
}

// MaskOf returns the mask wrapping tri, or nil
func (o *Poly) MaskOf(tri *cut.Triangle) *cut.Mask {
	for _, m := range o.Masks {
		if m.Tri == tri {
			return m
		}
	}
	return nil
}

// AssembleRegions groups active subtris into maximal sets connected
// through shared subsegments, across all masks of the cell. Regions are
// numbered in order of first appearance.
func (o *Poly) AssembleRegions() (err error) {

	// collect active subtris
	type item struct {
		m     *cut.Mask
		index int
	}
	var items []item
	for _, m := range o.Masks {
		m.Region = make([]int, m.Nsubtri())
		for i := range m.Region {
			m.Region[i] = -1
		}
		for i := 0; i < m.Nsubtri(); i++ {
			if m.SubtriActive(i) {
				items = append(items, item{m, i})
			}
		}
	}
	if len(items) == 0 {
		o.Nregion = 0
		return
	}

	// union-find over subsegment keys: subnodes realising the same node
	// pair join their subtris, within and across masks
	parent := make([]int, len(items))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		parent[find(a)] = find(b)
	}

	first := make(map[[2]int]int) // node-id pair => first item seen
	for pos, it := range items {
		st := it.m.Tri.Subtris[it.index]
		for e := 0; e < 3; e++ {
			a, b := st.Sn[(e+1)%3], st.Sn[(e+2)%3]
			if a.N == nil || b.N == nil {
				continue
			}
			key := [2]int{a.N.Id, b.N.Id}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if prev, ok := first[key]; ok {
				union(pos, prev)
			} else {
				first[key] = pos
			}
		}
	}

	// number regions in order of first appearance
	regionOf := make(map[int]int)
	o.Nregion = 0
	for pos, it := range items {
		root := find(pos)
		region, ok := regionOf[root]
		if !ok {
			region = o.Nregion
			regionOf[root] = region
			o.Nregion++
		}
		it.m.Region[it.index] = region
	}
	return
}

// Regions returns the number of assembled regions
func (o *Poly) Regions() int {
	return o.Nregion
}

// CentroidVolume computes the exact volume and centroid of one region
// (zero-based) by summing tetrahedral contributions from apex to every
// active subtri of the region
func (o *Poly) CentroidVolume(region int, apex, centroid []float64, volume *float64) (err error) {
	if region < 0 || region >= o.Nregion {
		return stat.Err(stat.ArrayBound, "centroid_volume: region %d of %d", region, o.Nregion)
	}
	*volume = 0
	for d := 0; d < 3; d++ {
		centroid[d] = 0
	}
	for _, m := range o.Masks {
		for i, st := range m.Tri.Subtris {
			if m.Region[i] != region {
				continue
			}
			a, b, c := st.Xyz()
			if m.Inward {
				b, c = c, b
			}
			vol := cut.TetVolume(apex, a, b, c)
			*volume += vol
			for d := 0; d < 3; d++ {
				centroid[d] += vol * 0.25 * (apex[d] + a[d] + b[d] + c[d])
			}
		}
	}
	if *volume == 0 {
		return stat.Err(stat.DivZero, "centroid_volume: region %d of poly %d has zero volume", region, o.NodeIndex)
	}
	for d := 0; d < 3; d++ {
		centroid[d] /= *volume
	}
	return
}

// DirectedArea sums the outward vector area over all masks; a closed
// cell sums to zero
func (o *Poly) DirectedArea(area []float64) {
	for d := 0; d < 3; d++ {
		area[d] = 0
	}
	for _, m := range o.Masks {
		m.DirectedAreaContribution(area)
	}
}

// SubtriGeom is one oriented sub-triangle handed to the solver
type SubtriGeom struct {
	Xyz0, Xyz1, Xyz2 []float64 // corners, oriented outward
	Normal           []float64 // unit normal
	Area             float64
	Tag              int // patch id for surface and boundary subtris
}

// subtriGeom assembles the oriented readout record of one subtri
func subtriGeom(st *cut.Subtri, flip bool, tag int) SubtriGeom {
	a, b, c := st.Xyz()
	if flip {
		b, c = c, b
	}
	n := cut.TriNormal(a, b, c)
	area := 0.5 * la.VecNorm(n)
	if area > 0 {
		for d := 0; d < 3; d++ {
			n[d] /= 2.0 * area
		}
	}
	return SubtriGeom{a, b, c, n, area, tag}
}

// NsubtriBetween counts the active subtris of region joining this poly
// to other's otherRegion, on the dual faces through node (the shared
// primal edge's midpoint)
func (o *Poly) NsubtriBetween(region int, other *Poly, otherRegion int, node *cut.Node) (n int, err error) {
	err = o.eachBetween(region, other, otherRegion, node, func(m *cut.Mask, st *cut.Subtri) {
		n++
	})
	return
}

// SubtriBetween returns the active subtris joining this poly to other,
// oriented from this cell toward the other
func (o *Poly) SubtriBetween(region int, other *Poly, otherRegion int, node *cut.Node) (subtris []SubtriGeom, err error) {
	err = o.eachBetween(region, other, otherRegion, node, func(m *cut.Mask, st *cut.Subtri) {
		subtris = append(subtris, subtriGeom(st, m.Inward, m.Tri.Tag))
	})
	return
}

func (o *Poly) eachBetween(region int, other *Poly, otherRegion int, node *cut.Node, emit func(m *cut.Mask, st *cut.Subtri)) (err error) {
	if other == nil {
		return stat.Err(stat.Null, "between: other poly absent")
	}
	if node == nil {
		return stat.Err(stat.Null, "between: edge-centre node absent")
	}
	for _, m := range o.Masks {
		if m.Tri.Kind != cut.TriDual {
			continue
		}
		if m.Tri.Node0 != node && m.Tri.Node1 != node && m.Tri.Node2 != node {
			continue
		}
		om := other.MaskOf(m.Tri)
		if om == nil {
			continue
		}
		for i, st := range m.Tri.Subtris {
			if m.Region[i] != region || om.Region[i] != otherRegion {
				continue
			}
			emit(m, st)
		}
	}
	return
}

// SurfaceNsubtri counts the active subtris of region lying on the
// cutting surface
func (o *Poly) SurfaceNsubtri(region int) (n int, err error) {
	err = o.eachKind(cut.TriSurface, -1, region, func(m *cut.Mask, st *cut.Subtri) {
		n++
	})
	return
}

// SurfaceSubtri returns the active subtris of region on the cutting
// surface, tagged with the surface patch id and oriented out of the cell
func (o *Poly) SurfaceSubtri(region int) (subtris []SubtriGeom, err error) {
	err = o.eachKind(cut.TriSurface, -1, region, func(m *cut.Mask, st *cut.Subtri) {
		subtris = append(subtris, subtriGeom(st, m.Inward, m.Tri.Tag))
	})
	return
}

// BoundaryNsubtri counts the active subtris of region on boundary patch
// faceId
func (o *Poly) BoundaryNsubtri(faceId, region int) (n int, err error) {
	err = o.eachKind(cut.TriBoundary, faceId, region, func(m *cut.Mask, st *cut.Subtri) {
		n++
	})
	return
}

// BoundarySubtri returns the active subtris of region on boundary patch
// faceId, oriented out of the cell
func (o *Poly) BoundarySubtri(faceId, region int) (subtris []SubtriGeom, err error) {
	err = o.eachKind(cut.TriBoundary, faceId, region, func(m *cut.Mask, st *cut.Subtri) {
		subtris = append(subtris, subtriGeom(st, m.Inward, m.Tri.Tag))
	})
	return
}

func (o *Poly) eachKind(kind, tag, region int, emit func(m *cut.Mask, st *cut.Subtri)) (err error) {
	if region < 0 || region >= o.Nregion {
		return stat.Err(stat.ArrayBound, "readout: region %d of %d", region, o.Nregion)
	}
	for _, m := range o.Masks {
		if m.Tri.Kind != kind {
			continue
		}
		if tag >= 0 && m.Tri.Tag != tag {
			continue
		}
		for i, st := range m.Tri.Subtris {
			if m.Region[i] != region {
				continue
			}
			emit(m, st)
		}
	}
	return
}
