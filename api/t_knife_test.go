// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"bytes"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/inp"
)

func init() {
	os.MkdirAll("/tmp/knife/api", 0777)
	inp.InitLogFile("/tmp/knife/api", "test")
}

// writePlaneTri writes a one-triangle ascii .tri surface
func writePlaneTri(fn string, a, b, c []float64) {
	var buf bytes.Buffer
	io.Ff(&buf, "3 1\n")
	for _, p := range [][]float64{a, b, c} {
		io.Ff(&buf, "%25.17e %25.17e %25.17e\n", p[0], p[1], p[2])
	}
	io.Ff(&buf, "1 2 3\n")
	io.Ff(&buf, "1\n")
	io.WriteFile(fn, &buf)
}

// loadCube loads the unit cube (six tetrahedra, one patch per side)
// through the foreign boundary
func loadCube(tst *testing.T, k *Knife) bool {
	x := []float64{0, 1, 1, 0, 0, 1, 1, 0}
	y := []float64{0, 0, 1, 1, 0, 0, 1, 1}
	z := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	c2n := []int{
		1, 2, 3, 7,
		1, 3, 4, 7,
		1, 4, 8, 7,
		1, 8, 5, 7,
		1, 5, 6, 7,
		1, 6, 2, 7,
	}
	if status := k.Volume(0, 8, 8, x, y, z, 12, 6, c2n); status != 0 {
		tst.Errorf("volume failed: %d\n", status)
		return false
	}
	inode := []int{1, 2, 3, 4, 5, 6, 7, 8}
	patches := [][][]int{
		{{1, 2, 3}, {1, 3, 4}},
		{{5, 6, 7}, {5, 7, 8}},
		{{1, 6, 2}, {1, 5, 6}},
		{{2, 3, 7}, {6, 2, 7}},
		{{3, 4, 7}, {4, 8, 7}},
		{{1, 4, 8}, {1, 8, 5}},
	}
	for id, faces := range patches {
		f2n := make([]int, 0, 6)
		for i := 0; i < 3; i++ {
			for _, f := range faces {
				f2n = append(f2n, f[i])
			}
		}
		if status := k.Boundary(id+1, 8, inode, 2, 2, f2n); status != 0 {
			tst.Errorf("boundary %d failed: %d\n", id+1, status)
			return false
		}
	}
	return true
}

func Test_api01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("api01. surface outside the partition is a no-op")

	writePlaneTri("/tmp/knife/api/far.tri",
		[]float64{50.5, -1, -1}, []float64{50.5, 2, -1}, []float64{50.5, 0.5, 2})
	script := "/tmp/knife/api/far.knife"
	var buf bytes.Buffer
	io.Ff(&buf, "/tmp/knife/api/far.tri\noutward\n")
	io.WriteFile(script, &buf)

	k := New()
	if !loadCube(tst, k) {
		return
	}
	required := make([]int, 8)
	if status := k.RequiredLocalDual(script, 8, required); status != 0 {
		tst.Errorf("required_local_dual failed: %d\n", status)
		return
	}
	chk.Ints(tst, "required", required, []int{0, 0, 0, 0, 0, 0, 0, 0})

	if status := k.Cut(8, required); status != 0 {
		tst.Errorf("cut failed: %d\n", status)
		return
	}
	topo := make([]int, 8)
	if status := k.DualTopo(8, topo); status != 0 {
		tst.Errorf("dual_topo failed: %d\n", status)
		return
	}
	chk.Ints(tst, "topo", topo, []int{0, 0, 0, 0, 0, 0, 0, 0})
	chk.IntAssert(k.Free(), 0)
}

func Test_api02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("api02. cube cut end to end")

	writePlaneTri("/tmp/knife/api/plane.tri",
		[]float64{0.5, -1, -1}, []float64{0.5, 2, -1}, []float64{0.5, 0.5, 2})
	script := "/tmp/knife/api/plane.knife"
	var buf bytes.Buffer
	io.Ff(&buf, "/tmp/knife/api/plane.tri\noutward\nfaces 1\n")
	io.WriteFile(script, &buf)

	// the legacy slot drives the whole pipeline
	if !loadCube(tst, Current()) {
		return
	}
	required := make([]int, 8)
	if status := RequiredLocalDual(script, 8, required); status != 0 {
		tst.Errorf("required_local_dual failed: %d\n", status)
		return
	}
	chk.Ints(tst, "required", required, []int{1, 1, 1, 1, 1, 1, 1, 0})
	if status := Cut(8, required); status != 0 {
		tst.Errorf("cut failed: %d\n", status)
		return
	}
	chk.IntAssert(MakeDualRequired(8), 0)

	// kept volumes sum to half the cube; the cell of node 2 is tangent
	// to the plane from the removed side and is cut away entirely
	sum := 0.0
	for node := 1; node <= 8; node++ {
		nregions, status := DualRegions(node)
		if status != 0 {
			tst.Errorf("dual_regions failed: %d\n", status)
			return
		}
		if node == 2 {
			chk.IntAssert(nregions, 0)
			continue
		}
		chk.IntAssert(nregions, 1)
		_, _, _, volume, status := PolyCentroidVolume(node, 1)
		if status != 0 {
			tst.Errorf("poly_centroid_volume failed: %d\n", status)
			return
		}
		sum += volume
	}
	chk.Scalar(tst, "kept volume", 1e-12, sum, 0.5)

	// interface between the cells of the cube diagonal
	n, status := NtrianglesBetweenPoly(1, 1, 7, 1)
	if status != 0 {
		tst.Errorf("ntriangles_between failed: %d\n", status)
		return
	}
	if n == 0 {
		tst.Errorf("no subtris between polys 1 and 7\n")
		return
	}
	tri0 := make([]float64, 3*n)
	tri1 := make([]float64, 3*n)
	tri2 := make([]float64, 3*n)
	normal := make([]float64, 3*n)
	area := make([]float64, n)
	if status = TrianglesBetweenPoly(1, 1, 7, 1, n, tri0, tri1, tri2, normal, area); status != 0 {
		tst.Errorf("triangles_between failed: %d\n", status)
		return
	}
	for i := 0; i < n; i++ {
		if area[i] <= 0 {
			tst.Errorf("subtri %d area %g not positive\n", i, area[i])
			return
		}
	}
	parentInt := make([]int, 12*n)
	parentXyz := make([]float64, 27*n)
	if status = BetweenPolySens(1, 1, 7, 1, n, parentInt, parentXyz); status != 0 {
		tst.Errorf("between_poly_sens failed: %d\n", status)
		return
	}
	for v := 0; v < 3*n; v++ {
		if parentInt[4*v] < 1 || parentInt[4*v] > 4 {
			tst.Errorf("vertex %d constraint kind %d out of range\n", v, parentInt[4*v])
			return
		}
	}

	// cut-surface pieces carry the patch tag from the knife input
	ns, status := NumberOfSurfaceTriangles(1, 1)
	if status != 0 {
		tst.Errorf("number_of_surface_triangles failed: %d\n", status)
		return
	}
	if ns == 0 {
		tst.Errorf("poly 1 holds no cut-surface subtris\n")
		return
	}
	tag := make([]int, ns)
	st0 := make([]float64, 3*ns)
	st1 := make([]float64, 3*ns)
	st2 := make([]float64, 3*ns)
	snormal := make([]float64, 3*ns)
	sarea := make([]float64, ns)
	if status = SurfaceTriangles(1, 1, ns, st0, st1, st2, snormal, sarea, tag); status != 0 {
		tst.Errorf("surface_triangles failed: %d\n", status)
		return
	}
	for i := 0; i < ns; i++ {
		chk.IntAssert(tag[i], 1)
	}

	// boundary pieces on the z=0 patch of the corner cell
	nb, status := NumberOfBoundaryTriangles(1, 1, 1)
	if status != 0 {
		tst.Errorf("number_of_boundary_triangles failed: %d\n", status)
		return
	}
	if nb == 0 {
		tst.Errorf("poly 1 holds no boundary subtris on patch 1\n")
		return
	}

	// the exported cut surface matches the knife input
	nnode, ntriangle, status := CutSurfaceDim()
	if status != 0 {
		tst.Errorf("cut_surface_dim failed: %d\n", status)
		return
	}
	chk.IntAssert(nnode, 3)
	chk.IntAssert(ntriangle, 1)
	xyz := make([]float64, 3*nnode)
	global := make([]int, nnode)
	t2n := make([]int, 4*ntriangle)
	if status = CutSurface(nnode, xyz, global, ntriangle, t2n); status != 0 {
		tst.Errorf("cut_surface failed: %d\n", status)
		return
	}
	chk.Ints(tst, "t2n", t2n, []int{1, 2, 3, 1})
	chk.Ints(tst, "global", global, []int{1, 2, 3})

	chk.IntAssert(Free(), 0)
}
