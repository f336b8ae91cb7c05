// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"github.com/cpmech/knife/stat"
)

// Subseg is a directed pair of subnodes: one edge of the boundary of an
// active region
type Subseg struct {
	N0, N1 *Subnode // tail and head
}

// Loop is a closed oriented chain of subsegs bounding one active region
// of one mask. Several loops arise when cuts split a triangle into
// several active regions.
type Loop struct {
	Mask    *Mask    // the painted mask the loop borders
	Subsegs []Subseg // ordered, head of each meeting tail of the next
}

// ExtractLoops collects the directed boundary edges of the mask's
// active subtris (edges whose other side is inactive or missing) and
// stitches them into closed loops. An open chain is a fatal geometric
// inconsistency.
func (o *Mask) ExtractLoops() (loops []*Loop, err error) {
	t := o.Tri

	// directed boundary edges, in subtri orientation
	var open []Subseg
	for i, st := range t.Subtris {
		if !o.SubtriActive(i) {
			continue
		}
		for e := 0; e < 3; e++ {
			a, b := st.Sn[(e+1)%3], st.Sn[(e+2)%3]
			nb := t.NeighborAcross(st, a, b)
			if nb != nil && o.SubtriActive(SubtriIndex(t, nb)) {
				continue
			}
			open = append(open, Subseg{a, b})
		}
	}

	// stitch: each loop starts anywhere and follows head-to-tail
	for len(open) > 0 {
		loop := &Loop{Mask: o}
		loop.Subsegs = append(loop.Subsegs, open[0])
		open = open[1:]
		head := loop.Subsegs[0].N1
		for head != loop.Subsegs[0].N0 {
			found := -1
			for i, ss := range open {
				if ss.N0 == head {
					found = i
					break
				}
			}
			if found < 0 {
				return nil, stat.Err(stat.Failure, "loop: open chain on triangle %d", t.Id)
			}
			loop.Subsegs = append(loop.Subsegs, open[found])
			head = open[found].N1
			open = append(open[:found], open[found+1:]...)
		}
		loops = append(loops, loop)
	}
	return
}
