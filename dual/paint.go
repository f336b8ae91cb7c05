// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/cpmech/knife/cut"
	"github.com/cpmech/knife/stat"
)

// Paint implements Boolean subtraction over the whole cell: subtris
// adjacent to a chord are seeded by the side of the cutter plane their
// centroid falls on, and activity floods across every shared subsegment
// of the cell (within and across masks) that is not a chord. Cross-mask
// propagation deactivates faces the surface never crossed but that lie
// wholly in the removed region. surfaceInward is the cutting surface's
// orientation flag: with an outward flag the kept side of a surface
// cutter is against its right-hand normal.
func (o *Poly) Paint(surfaceInward bool) (err error) {

	type item struct {
		m     *cut.Mask
		index int
	}
	var items []item
	itemOf := make(map[*cut.Mask][]int) // mask => first item per subtri index
	for _, m := range o.Masks {
		m.Painted = nil
		positions := make([]int, m.Nsubtri())
		for i := 0; i < m.Nsubtri(); i++ {
			positions[i] = len(items)
			items = append(items, item{m, i})
		}
		itemOf[m] = positions
	}

	// resolve the cuts bounding each mask and seed the chord-adjacent
	// subtris: +1 keep, -1 remove
	seed := make([]int, len(items))
	blocked := make(map[[2]int]bool)
	for _, m := range o.Masks {
		for _, c := range m.Tri.Cuts {
			normal, relevant, e := o.keepNormal(m, c, surfaceInward)
			if e != nil {
				return e
			}
			if !relevant {
				continue
			}
			m.Painted = append(m.Painted, c)
			blocked[nodePairKey(c.Node0, c.Node1)] = true
			origin := c.Node0.Xyz
			for i, st := range m.Tri.Subtris {
				if !cut.SubtriOnChord(st, c) {
					continue
				}
				center := st.Center()
				dot := 0.0
				for d := 0; d < 3; d++ {
					dot += normal[d] * (center[d] - origin[d])
				}
				side := -1
				if dot > 0 {
					side = 1
				}
				pos := itemOf[m][i]
				if seed[pos] != 0 && seed[pos] != side {
					return stat.Err(stat.Failure, "paint: poly %d triangle %d subtri %d seeded both sides", o.NodeIndex, m.Tri.Id, i)
				}
				seed[pos] = side
			}
		}
	}
	if len(blocked) == 0 {
		for _, m := range o.Masks {
			m.Active = nil // uncut cell, all active
		}
		return
	}

	// flood components across unblocked subsegments
	buckets := make(map[[2]int][]int)
	for pos, it := range items {
		st := it.m.Tri.Subtris[it.index]
		for e := 0; e < 3; e++ {
			a, b := st.Sn[(e+1)%3], st.Sn[(e+2)%3]
			if a.N == nil || b.N == nil {
				continue
			}
			key := nodePairKey(a.N, b.N)
			if blocked[key] {
				continue
			}
			buckets[key] = append(buckets[key], pos)
		}
	}
	comp := make([]int, len(items))
	for i := range comp {
		comp[i] = -1
	}
	keyDone := make(map[[2]int]bool)
	ncomp := 0
	for start := range items {
		if comp[start] >= 0 {
			continue
		}
		stack := []int{start}
		comp[start] = ncomp
		for len(stack) > 0 {
			pos := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			it := items[pos]
			st := it.m.Tri.Subtris[it.index]
			for e := 0; e < 3; e++ {
				a, b := st.Sn[(e+1)%3], st.Sn[(e+2)%3]
				if a.N == nil || b.N == nil {
					continue
				}
				key := nodePairKey(a.N, b.N)
				if blocked[key] || keyDone[key] {
					continue
				}
				keyDone[key] = true
				for _, other := range buckets[key] {
					if comp[other] < 0 {
						comp[other] = ncomp
						stack = append(stack, other)
					}
				}
			}
		}
		ncomp++
	}

	// component status from seeds; conflicting seeds are a paint failure
	status := make([]int, ncomp)
	for pos := range items {
		if seed[pos] == 0 {
			continue
		}
		if status[comp[pos]] != 0 && status[comp[pos]] != seed[pos] {
			return stat.Err(stat.Failure, "paint: poly %d component seeded both sides", o.NodeIndex)
		}
		status[comp[pos]] = seed[pos]
	}

	// unseeded components stay active
	for _, m := range o.Masks {
		m.DeactivateAll()
	}
	for pos, it := range items {
		if status[comp[pos]] >= 0 {
			it.m.Active[it.index] = true
		}
	}

	// per-mask consistency: paint and loop closure
	for _, m := range o.Masks {
		if err = m.VerifyPaint(); err != nil {
			return
		}
		if _, err = m.ExtractLoops(); err != nil {
			return
		}
	}
	return
}

// keepNormal maps a cut seen by mask m to the cutter's normal oriented
// toward the kept side, or reports it irrelevant (a chord made by
// another cell's face, which does not bound activity here)
func (o *Poly) keepNormal(m *cut.Mask, c *cut.Cut, surfaceInward bool) (normal []float64, relevant bool, err error) {
	cutter := c.Other(m.Tri)
	if cutter.Kind == cut.TriSurface {
		normal = cutter.Normal()
		if !surfaceInward {
			negate(normal)
		}
		return normal, true, nil
	}
	cm := o.MaskOf(cutter)
	if cm == nil {
		return nil, false, nil
	}
	normal = cutter.Normal()
	if !cm.Inward {
		negate(normal)
	}
	return normal, true, nil
}

func nodePairKey(a, b *cut.Node) [2]int {
	if a.Id < b.Id {
		return [2]int{a.Id, b.Id}
	}
	return [2]int{b.Id, a.Id}
}

func negate(v []float64) {
	v[0], v[1], v[2] = -v[0], -v[1], -v[2]
}
