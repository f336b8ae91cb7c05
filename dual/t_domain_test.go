// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/knife/cut"
	"github.com/cpmech/knife/msh"
)

// cubeKnife runs the full pipeline on the unit cube cut by the plane
// x=0.5 and returns the domain with every poly present
func cubeKnife(tst *testing.T, inward bool) (dom *Domain) {
	p, err := msh.CubePrimal()
	if err != nil {
		tst.Errorf("cube failed: %v\n", err)
		return
	}
	surf := msh.PlaneSurface([]float64{0.5, -1, -1}, []float64{0.5, 2, -1}, []float64{0.5, 0.5, 2}, 1, inward)
	dom, err = NewDomain(p, surf, 0)
	if err != nil {
		tst.Errorf("domain failed: %v\n", err)
		return nil
	}
	required := make([]int, p.Nnode())
	if err = dom.RequiredLocalDual(required); err != nil {
		tst.Errorf("required failed: %v\n", err)
		return nil
	}

	// the cell of node 7 only touches the plane at one point
	chk.Ints(tst, "required", required, []int{1, 1, 1, 1, 1, 1, 1, 0})

	if err = dom.CreateDual(required); err != nil {
		tst.Errorf("create_dual failed: %v\n", err)
		return nil
	}
	if err = dom.BooleanSubtract(); err != nil {
		tst.Errorf("boolean_subtract failed: %v\n", err)
		return nil
	}
	if err = dom.AddInteriorPoly(7); err != nil {
		tst.Errorf("add_interior_poly failed: %v\n", err)
		return nil
	}
	return
}

// cellVolume returns the uncut median-dual volume at a node: a quarter
// of each incident tetrahedron
func cellVolume(p *msh.Primal, node int) (vol float64) {
	x := [][]float64{nil, nil, nil, nil}
	for _, cell := range p.CellAdj.Of(node) {
		for i := 0; i < 4; i++ {
			x[i] = p.Coords[3*p.C2n[i+4*cell] : 3*p.C2n[i+4*cell]+3]
		}
		vol += cut.TetVolume(x[0], x[1], x[2], x[3]) / 4.0
	}
	return
}

func Test_domain01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("domain01. cube cut at x=0.5, outward")

	dom := cubeKnife(tst, false)
	if dom == nil {
		return
	}

	// the cell of node 1 only touches the plane at the midpoint of edge
	// (0,1) and sits wholly on the removed side; every other poly keeps
	// one region, and the kept volumes sum to the x<0.5 half of the cube
	nregions := []int{1, 0, 1, 1, 1, 1, 1, 1}
	sum := 0.0
	centroid := make([]float64, 3)
	var volume float64
	for node := 0; node < 8; node++ {
		poly := dom.Poly(node)
		if poly == nil {
			tst.Errorf("poly %d absent\n", node)
			return
		}
		chk.IntAssert(poly.Regions(), nregions[node])
		for region := 0; region < poly.Regions(); region++ {
			if err := poly.CentroidVolume(region, poly.Node.Xyz, centroid, &volume); err != nil {
				tst.Errorf("centroid_volume failed: %v\n", err)
				return
			}
			io.Pforan("poly %d: volume=%g centroid=%v\n", node, volume, centroid)
			if volume <= 0 {
				tst.Errorf("poly %d volume %g not positive\n", node, volume)
				return
			}
			sum += volume

			// kept centroids stay on the kept side
			if centroid[0] >= 0.5 {
				tst.Errorf("poly %d centroid beyond the cut plane\n", node)
				return
			}
		}
	}
	chk.Scalar(tst, "kept volume", 1e-12, sum, 0.5)

	// topology codes
	topo := make([]int, 8)
	for node := 0; node < 8; node++ {
		topo[node] = dom.Topo(node)
	}
	chk.Ints(tst, "topo", topo, []int{TopoCut, TopoEmpty, TopoCut, TopoCut, TopoCut, TopoCut, TopoCut, TopoUncut})

	// dual closure: the outward areas of every poly sum to zero
	area := make([]float64, 3)
	for node := 0; node < 8; node++ {
		poly := dom.Poly(node)
		poly.DirectedArea(area)
		total := 0.0
		for _, m := range poly.Masks {
			for i, st := range m.Tri.Subtris {
				if m.SubtriActive(i) {
					a, b, c := st.Xyz()
					total += cut.TriArea(a, b, c)
				}
			}
		}
		if la.VecNorm(area) > 1e-10*total {
			tst.Errorf("poly %d not closed: %v (total %g)\n", node, area, total)
			return
		}
	}
}

func Test_domain02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("domain02. inward keeps the complement")

	out := cubeKnife(tst, false)
	inw := cubeKnife(tst, true)
	if out == nil || inw == nil {
		return
	}

	// all regions of a poly summed; zero when the cell was cut away
	keptVolume := func(p *Poly) (v float64) {
		centroid := make([]float64, 3)
		var vr float64
		for region := 0; region < p.Regions(); region++ {
			if err := p.CentroidVolume(region, p.Node.Xyz, centroid, &vr); err != nil {
				tst.Errorf("volume failed: %v\n", err)
				return math.NaN()
			}
			v += vr
		}
		return
	}

	for node := 0; node < 7; node++ {
		vOut := keptVolume(out.Poly(node))
		vIn := keptVolume(inw.Poly(node))
		full := cellVolume(out.Primal, node)
		io.Pfyel("poly %d: out=%g in=%g full=%g\n", node, vOut, vIn, full)
		chk.Scalar(tst, io.Sf("complement at node %d", node), 1e-12, vOut+vIn, full)
	}
}

func Test_domain03(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("domain03. mass conservation between polys")

	dom := cubeKnife(tst, false)
	if dom == nil {
		return
	}

	edge, err := dom.Primal.FindEdge(0, 6)
	if err != nil {
		tst.Errorf("no edge (0,6)\n")
		return
	}
	node := dom.NodeAtEdgeCenter(edge)
	p0, p6 := dom.Poly(0), dom.Poly(6)

	n06, err := p0.NsubtriBetween(0, p6, 0, node)
	if err != nil {
		tst.Errorf("nsubtri_between failed: %v\n", err)
		return
	}
	n60, err := p6.NsubtriBetween(0, p0, 0, node)
	if err != nil {
		tst.Errorf("nsubtri_between failed: %v\n", err)
		return
	}
	chk.IntAssert(n06, n60)
	if n06 == 0 {
		tst.Errorf("no active subtris between polys 0 and 6\n")
		return
	}

	sub06, err := p0.SubtriBetween(0, p6, 0, node)
	if err != nil {
		tst.Errorf("subtri_between failed: %v\n", err)
		return
	}
	sub60, err := p6.SubtriBetween(0, p0, 0, node)
	if err != nil {
		tst.Errorf("subtri_between failed: %v\n", err)
		return
	}
	a06 := make([]float64, 3)
	a60 := make([]float64, 3)
	for i := range sub06 {
		for d := 0; d < 3; d++ {
			a06[d] += sub06[i].Area * sub06[i].Normal[d]
			a60[d] += sub60[i].Area * sub60[i].Normal[d]
		}
	}
	for d := 0; d < 3; d++ {
		a60[d] = -a60[d]
	}
	chk.Vector(tst, "directed areas equal and opposite", 1e-12, a06, a60)
}

func Test_domain04(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("domain04. region volume independent of apex")

	dom := cubeKnife(tst, false)
	if dom == nil {
		return
	}
	poly := dom.Poly(0)
	centroid := make([]float64, 3)

	volAt := func(x float64, args ...interface{}) float64 {
		var v float64
		apex := []float64{x, -0.3, 0.7}
		if err := poly.CentroidVolume(0, apex, centroid, &v); err != nil {
			return math.NaN()
		}
		return v
	}

	// a closed region's volume does not depend on the apex position
	dVdx, _ := num.DerivCentral(volAt, 0.2, 1e-3)
	chk.Scalar(tst, "dV/dapex", 1e-9, dVdx, 0)
}

func Test_domain05(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("domain05. single tet cut at z=0.25")

	run := func(inward bool) (dom *Domain) {
		p, err := msh.SingleTetPrimal()
		if err != nil {
			tst.Errorf("tet failed: %v\n", err)
			return
		}
		surf := msh.PlaneSurface([]float64{-3, -3, 0.25}, []float64{3, -3, 0.25}, []float64{0, 3, 0.25}, 1, inward)
		dom, err = NewDomain(p, surf, 0)
		if err != nil {
			tst.Errorf("domain failed: %v\n", err)
			return nil
		}
		required := make([]int, 4)
		if err = dom.RequiredLocalDual(required); err != nil {
			tst.Errorf("required failed: %v\n", err)
			return nil
		}
		chk.Ints(tst, "required", required, []int{1, 1, 1, 1})
		if err = dom.CreateDual(required); err != nil {
			tst.Errorf("create_dual failed: %v\n", err)
			return nil
		}
		if err = dom.BooleanSubtract(); err != nil {
			tst.Errorf("boolean_subtract failed: %v\n", err)
			return nil
		}
		return
	}

	sumOf := func(dom *Domain, nregions []int) (sum float64) {
		centroid := make([]float64, 3)
		var volume float64
		for node := 0; node < 4; node++ {
			poly := dom.Poly(node)
			chk.IntAssert(poly.Regions(), nregions[node])
			for region := 0; region < poly.Regions(); region++ {
				if err := poly.CentroidVolume(region, poly.Node.Xyz, centroid, &volume); err != nil {
					tst.Errorf("volume failed: %v\n", err)
					return math.NaN()
				}
				sum += volume
			}
		}
		return
	}

	// the plane passes exactly through the cell centroid, so the apex
	// cell is tangent: cut away outward, kept whole inward. The base
	// cells split into the part below (outward) or above (inward).
	out := run(false)
	if out == nil {
		return
	}
	chk.Scalar(tst, "kept volume outward", 1e-12, sumOf(out, []int{1, 1, 1, 0}), 37.0/384.0)

	inw := run(true)
	if inw == nil {
		return
	}
	chk.Scalar(tst, "kept volume inward", 1e-12, sumOf(inw, []int{1, 1, 1, 1}), 27.0/384.0)
}
