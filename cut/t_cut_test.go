// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// buildTriangle makes a triangle over fresh segments, assigning node
// ids from seq
func buildTriangle(seq *int, kind, tag int, a, b, c []float64) *Triangle {
	na := NewNode(*seq+0, NodePrimal, *seq+0, a[0], a[1], a[2])
	nb := NewNode(*seq+1, NodePrimal, *seq+1, b[0], b[1], b[2])
	nc := NewNode(*seq+2, NodePrimal, *seq+2, c[0], c[1], c[2])
	*seq += 3
	t, _ := NewTriangle(*seq, kind, tag, NewSegment(nb, nc), NewSegment(nc, na), NewSegment(na, nb))
	*seq++
	return t
}

func Test_cut01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("cut01. segment-triangle pierce")

	seq := 0
	t := buildTriangle(&seq, TriDual, 0, []float64{0, 0, 0}, []float64{1, 0, 0}, []float64{0, 1, 0})

	s0 := NewNode(seq, NodePrimal, seq, 0.25, 0.25, -1)
	s1 := NewNode(seq+1, NodePrimal, seq+1, 0.25, 0.25, 1)
	seq += 2
	seg := NewSegment(s0, s1)
	tpar, u, hits := PierceSegTri(seg, t)
	if !hits {
		tst.Errorf("pierce missed\n")
		return
	}
	chk.Scalar(tst, "t", 1e-15, tpar, 0.5)
	chk.Vector(tst, "u", 1e-15, u, []float64{0.5, 0.25, 0.25})

	// touching an edge is not a pierce
	s2 := NewNode(seq, NodePrimal, seq, 0.5, 0.5, -1)
	s3 := NewNode(seq+1, NodePrimal, seq+1, 0.5, 0.5, 1)
	seq += 2
	if _, _, hits = PierceSegTri(NewSegment(s2, s3), t); hits {
		tst.Errorf("edge touch reported as pierce\n")
		return
	}

	// a segment in the plane is not a pierce
	s4 := NewNode(seq, NodePrimal, seq, 0.1, 0.1, 0)
	s5 := NewNode(seq+1, NodePrimal, seq+1, 0.2, 0.2, 0)
	seq += 2
	if _, _, hits = PierceSegTri(NewSegment(s4, s5), t); hits {
		tst.Errorf("coplanar segment reported as pierce\n")
		return
	}
}

// crossPair builds a cell triangle in the z=0 plane and a cutter
// crossing it vertically, records the crossings, and refines both
func crossPair(tst *testing.T) (seq int, t, s *Triangle) {
	seq = 0
	t = buildTriangle(&seq, TriDual, 0, []float64{0, 0, 0}, []float64{1, 0, 0}, []float64{0, 1, 0})
	s = buildTriangle(&seq, TriSurface, 1, []float64{0.3, -1, -1}, []float64{0.3, 2, -1}, []float64{0.3, 0.5, 2})

	for i := 0; i < 3; i++ {
		if ins, err := InsertIntersection(t.Seg[i], s, seq); err != nil {
			tst.Errorf("insert failed: %v\n", err)
		} else if ins != nil {
			seq++
		}
		if ins, err := InsertIntersection(s.Seg[i], t, seq); err != nil {
			tst.Errorf("insert failed: %v\n", err)
		} else if ins != nil {
			seq++
		}
	}
	c, err := CutBetween(t, s)
	if err != nil || c == nil {
		tst.Errorf("cut_between failed: %v\n", err)
		return
	}
	if err = t.TriangulateCuts(); err != nil {
		tst.Errorf("triangulate t failed: %v\n", err)
		return
	}
	if err = s.TriangulateCuts(); err != nil {
		tst.Errorf("triangulate s failed: %v\n", err)
		return
	}
	return
}

func Test_cut02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("cut02. chord recovery and tiling")

	_, t, s := crossPair(tst)
	if t == nil || s == nil {
		return
	}

	// the plane x=0.3 crosses two segments of the cell triangle: two
	// boundary pierces, one chord
	chk.IntAssert(len(t.Ints), 0)
	chk.IntAssert(len(s.Ints), 2)
	chk.IntAssert(len(t.Cuts), 1)
	chk.IntAssert(len(s.Cuts), 1)

	// partition of unity on both refinements
	for _, tri := range []*Triangle{t, s} {
		if err := tri.VerifyTiling(); err != nil {
			tst.Errorf("tiling broken: %v\n", err)
			return
		}
		sum := 0.0
		for _, st := range tri.Subtris {
			sum += st.UArea()
		}
		chk.Scalar(tst, io.Sf("tri %d subtri area sum", tri.Id), 1e-14, sum, 1.0)
	}

	// the chord is an edge of the cell triangle's refinement
	c := t.Cuts[0]
	found := false
	for _, st := range t.Subtris {
		if SubtriOnChord(st, c) {
			found = true
		}
	}
	if !found {
		tst.Errorf("chord is not an edge of the refinement\n")
		return
	}

	// boundary edges keep their segment references
	for _, st := range t.Subtris {
		for e := 0; e < 3; e++ {
			a, b := st.Sn[(e+1)%3], st.Sn[(e+2)%3]
			onBoundary := a.U0 == 0 && b.U0 == 0 || a.U1 == 0 && b.U1 == 0 || a.U2 == 0 && b.U2 == 0
			if st.Seg[e] != nil && !onBoundary {
				tst.Errorf("interior edge references a segment\n")
				return
			}
		}
	}
}

func Test_cut03(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("cut03. mask activity and loops")

	_, t, s := crossPair(tst)
	if t == nil || s == nil {
		return
	}

	// keep the x<0.3 side of the cell triangle
	m := NewMask(t, false)
	m.Painted = t.Cuts
	keep := []float64{-1, 0, 0}
	origin := t.Cuts[0].Node0.Xyz
	m.DeactivateAll()
	for i, st := range t.Subtris {
		center := st.Center()
		if keep[0]*(center[0]-origin[0]) > 0 {
			m.ActivateSubtriIndex(i)
		}
	}
	if err := m.VerifyPaint(); err != nil {
		tst.Errorf("verify_paint failed: %v\n", err)
		return
	}

	// activating the whole triangle violates the chord
	bad := NewMask(t, false)
	bad.Painted = t.Cuts
	if err := bad.VerifyPaint(); err == nil {
		tst.Errorf("verify_paint accepted active subtris on both sides\n")
		return
	}

	// the active region closes into a single loop
	loops, err := m.ExtractLoops()
	if err != nil {
		tst.Errorf("loops failed: %v\n", err)
		return
	}
	chk.IntAssert(len(loops), 1)
	first := loops[0].Subsegs[0]
	last := loops[0].Subsegs[len(loops[0].Subsegs)-1]
	if first.N0 != last.N1 {
		tst.Errorf("loop does not close\n")
		return
	}

	// area of the kept side: the cell triangle has area 1/2 and the
	// kept strip is the x<0.3 trapezoid
	area := 0.0
	for i, st := range t.Subtris {
		if !m.SubtriActive(i) {
			continue
		}
		a, b, c := st.Xyz()
		area += TriArea(a, b, c)
	}
	kept := 0.5 - 0.5*0.7*0.7
	chk.Scalar(tst, "kept area", 1e-14, area, kept)

	// directed area of the full triangle
	full := NewMask(t, false)
	da := make([]float64, 3)
	full.DirectedAreaContribution(da)
	chk.Vector(tst, "directed area", 1e-14, da, []float64{0, 0, 0.5})

	// signed volume of the tetrahedron from an apex against the
	// outward-oriented triangle
	apex := []float64{0, 0, -1}
	centroid := make([]float64, 3)
	volume := 0.0
	full.CentroidVolumeContribution(apex, centroid, &volume)
	chk.Scalar(tst, "tet volume", 1e-14, volume, 1.0/6.0)
	chk.Vector(tst, "tet centroid", 1e-14, centroid, []float64{volume * 0.25, volume * 0.25, volume * (-0.25)})
}
