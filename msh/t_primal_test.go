// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_primal01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("primal01. cube connectivity")

	p, err := CubePrimal()
	if err != nil {
		tst.Errorf("cube failed: %v\n", err)
		return
	}
	chk.IntAssert(p.Nnode(), 8)
	chk.IntAssert(p.Nface(), 12)
	chk.IntAssert(p.Ncell(), 6)

	// 12 cube edges + 6 face diagonals + 1 body diagonal
	chk.IntAssert(p.Nedge(), 19)

	// 12 boundary faces + 6 internal faces
	chk.IntAssert(p.Ntri(), 18)

	// every cell edge is found and stored as (min,max)
	for cell := 0; cell < p.Ncell(); cell++ {
		c, _ := p.Cell(cell)
		for e := 0; e < 6; e++ {
			n0 := c[CellEdgeNode[e][0]]
			n1 := c[CellEdgeNode[e][1]]
			edge, err := p.FindEdge(n0, n1)
			if err != nil {
				tst.Errorf("find_edge(%d,%d) failed\n", n0, n1)
				return
			}
			en, _ := p.Edge(edge)
			chk.IntAssert(en[0], imin(n0, n1))
			chk.IntAssert(en[1], imax(n0, n1))
		}
		for side := 0; side < 4; side++ {
			n0 := c[CellSideNode[side][0]]
			n1 := c[CellSideNode[side][1]]
			n2 := c[CellSideNode[side][2]]
			tri, err := p.FindTri(n0, n1, n2)
			if err != nil {
				tst.Errorf("find_tri(%d,%d,%d) failed\n", n0, n1, n2)
				return
			}
			tn, _ := p.Tri(tri)
			io.Pfyel("cell %d side %d => tri %d %v\n", cell, side, tri, tn)
			chk.IntAssert(tn[0]+tn[1]+tn[2], n0+n1+n2)
			chk.IntAssert(p.C2t[side+4*cell], tri)
		}
	}

	// internal faces are shared by exactly two cells
	shared := make(map[int]int)
	for i := 0; i < 4*p.Ncell(); i++ {
		shared[p.C2t[i]]++
	}
	nint := 0
	for _, n := range shared {
		if n == 2 {
			nint++
		}
	}
	chk.IntAssert(nint, 6)

	// centers
	xyz := make([]float64, 3)
	p.CellCenter(0, xyz)
	chk.Vector(tst, "cell 0 center", 1e-15, xyz, []float64{0.75, 0.5, 0.25})
	edge, _ := p.FindEdge(0, 6)
	p.EdgeCenter(edge, xyz)
	chk.Vector(tst, "edge (0,6) center", 1e-15, xyz, []float64{0.5, 0.5, 0.5})

	// surface-node remap covers all 8 nodes of the cube
	chk.IntAssert(len(p.SurfVolNode), 8)
	for i, node := range p.SurfVolNode {
		chk.IntAssert(p.SurfNode[node], i)
	}
}

func Test_primal02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("primal02. transforms")

	p, err := SingleTetPrimal()
	if err != nil {
		tst.Errorf("tet failed: %v\n", err)
		return
	}

	p.Translate(1, 2, 3)
	xyz, _ := p.Xyz(0)
	chk.Vector(tst, "translate", 1e-15, xyz, []float64{1, 2, 3})
	p.Translate(-1, -2, -3)

	// quarter turn about z moves +x to +y
	p.Rotate(0, 0, 1, math.Pi/2.0)
	xyz, _ = p.Xyz(1)
	chk.Vector(tst, "rotate", 1e-15, xyz, []float64{0, 1, 0})
	p.Rotate(0, 0, 1, -math.Pi/2.0)

	p.ScaleAbout(0, 0, 0, 2)
	xyz, _ = p.Xyz(3)
	chk.Vector(tst, "scale", 1e-15, xyz, []float64{0, 0, 2})
	p.ScaleAbout(0, 0, 0, 0.5)

	p.FlipYz()
	xyz, _ = p.Xyz(3)
	chk.Vector(tst, "flip_yz", 1e-15, xyz, []float64{0, -1, 0})
	p.FlipZy()
	xyz, _ = p.Xyz(3)
	chk.Vector(tst, "flip_zy undoes flip_yz", 1e-15, xyz, []float64{0, 0, 1})

	p.ReflectY()
	xyz, _ = p.Xyz(2)
	chk.Vector(tst, "reflect_y", 1e-15, xyz, []float64{0, -1, 0})
	p.ReflectY()

	f2n0 := p.F2n[0]
	f2n1 := p.F2n[1]
	p.FlipFaceNormals()
	chk.IntAssert(p.F2n[0], f2n1)
	chk.IntAssert(p.F2n[1], f2n0)
}

func Test_primal03(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("primal03. subset renumbering")

	// cube faces retagged so two patches carry ids 3 and 7
	p, err := CubePrimal()
	if err != nil {
		tst.Errorf("cube failed: %v\n", err)
		return
	}
	for face := 0; face < p.Nface(); face++ {
		switch p.F2n[3+4*face] {
		case 1:
			p.F2n[3+4*face] = 3 // z=0 side
		case 2:
			p.F2n[3+4*face] = 7 // z=1 side
		default:
			p.F2n[3+4*face] = 9
		}
	}

	sub, err := p.Subset(map[int]bool{3: true, 7: true})
	if err != nil {
		tst.Errorf("subset failed: %v\n", err)
		return
	}
	chk.IntAssert(sub.Nface(), 4)
	chk.IntAssert(sub.MaxFaceId(), 2) // 3 => 1 and 7 => 2
	for face := 0; face < sub.Nface(); face++ {
		f, _ := sub.Face(face)
		if face < 2 {
			chk.IntAssert(f[3], 1)
		} else {
			chk.IntAssert(f[3], 2)
		}
	}

	// distinct nodes across the two z sides
	chk.IntAssert(sub.Nnode(), 8)

	// patch ids are renumbered in order of first appearance: the patch 7
	// faces (sub2 faces 0,1) come before the patch 9 faces (sub2 faces 2..9)
	sub2, err := p.Subset(map[int]bool{9: true, 7: true})
	if err != nil {
		tst.Errorf("subset failed: %v\n", err)
		return
	}
	chk.IntAssert(sub2.MaxFaceId(), 2)
	f, _ := sub2.Face(2)
	chk.IntAssert(f[3], 2) // patch 9 renumbers after patch 7
}
