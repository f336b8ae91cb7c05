// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// CubePrimal builds the unit cube meshed as six tetrahedra sharing the
// 0-6 diagonal, with one boundary patch per cube side (ids 1..6).
// Useful in tests across packages.
func CubePrimal() (o *Primal, err error) {
	x := []float64{0, 1, 1, 0, 0, 1, 1, 0}
	y := []float64{0, 0, 1, 1, 0, 0, 1, 1}
	z := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	c2n := []int{ // one-based
		1, 2, 3, 7,
		1, 3, 4, 7,
		1, 4, 8, 7,
		1, 8, 5, 7,
		1, 5, 6, 7,
		1, 6, 2, 7,
	}
	faces := [][4]int{ // one-based nodes and patch id
		{1, 2, 3, 1}, {1, 3, 4, 1}, // z=0
		{5, 6, 7, 2}, {5, 7, 8, 2}, // z=1
		{1, 6, 2, 3}, {1, 5, 6, 3}, // y=0
		{2, 3, 7, 4}, {6, 2, 7, 4}, // x=1
		{3, 4, 7, 5}, {4, 8, 7, 5}, // y=1
		{1, 4, 8, 6}, {1, 8, 5, 6}, // x=0
	}
	o = NewPrimal(8, len(faces), 6)
	if err = o.CopyVolume(x, y, z, c2n); err != nil {
		return
	}
	inode := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for _, f := range faces {
		if err = o.CopyBoundary(f[3], 8, inode, 1, 1, []int{f[0], f[1], f[2]}); err != nil {
			return
		}
	}
	err = o.EstablishAll()
	return
}

// SingleTetPrimal builds one positively-oriented tetrahedron with its
// four sides as boundary patches 1..4
func SingleTetPrimal() (o *Primal, err error) {
	x := []float64{0, 1, 0, 0}
	y := []float64{0, 0, 1, 0}
	z := []float64{0, 0, 0, 1}
	c2n := []int{1, 2, 3, 4}
	faces := [][4]int{
		{1, 3, 2, 1}, // z=0
		{1, 2, 4, 2}, // y=0
		{1, 4, 3, 3}, // x=0
		{2, 3, 4, 4}, // slant
	}
	o = NewPrimal(4, len(faces), 1)
	if err = o.CopyVolume(x, y, z, c2n); err != nil {
		return
	}
	inode := []int{1, 2, 3, 4}
	for _, f := range faces {
		if err = o.CopyBoundary(f[3], 4, inode, 1, 1, []int{f[0], f[1], f[2]}); err != nil {
			return
		}
	}
	err = o.EstablishAll()
	return
}

// PlaneSurface builds a one-triangle cutting surface from explicit
// coordinates, for tests
func PlaneSurface(a, b, c []float64, patch int, inward bool) *Surface {
	o := new(Surface)
	o.Inward = inward
	o.Xyz = append(o.Xyz, a...)
	o.Xyz = append(o.Xyz, b...)
	o.Xyz = append(o.Xyz, c...)
	o.Global = []int{0, 1, 2}
	o.T2n = []int{0, 1, 2, patch}
	return o
}
