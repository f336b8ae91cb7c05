// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/stat"
)

// Surface is a triangulated cutting surface: a subset of a primal's
// boundary faces with compact node numbering and an orientation flag
type Surface struct {
	Inward bool      // normals point into the kept volume (false: into the removed volume)
	Source *Primal   // the primal the faces were taken from
	Xyz    []float64 // [3*nnode] node coordinates
	Global []int     // [nnode] surface node => node of the source primal
	T2n    []int     // [4*ntriangle] triangle nodes and patch id in slot 3
}

// NewSurface builds a Surface from the boundary faces of primal whose
// patch id lies in patchSet; a nil patchSet retains all faces
func NewSurface(primal *Primal, patchSet map[int]bool, inward bool) (o *Surface, err error) {
	if primal == nil {
		return nil, stat.Err(stat.Null, "surface: primal absent")
	}
	o = new(Surface)
	o.Inward = inward
	o.Source = primal
	nodeO2n := make([]int, primal.Nnode())
	for i := range nodeO2n {
		nodeO2n[i] = -1
	}
	for face := 0; face < primal.Nface(); face++ {
		if patchSet != nil && !patchSet[primal.F2n[3+4*face]] {
			continue
		}
		for i := 0; i < 3; i++ {
			node := primal.F2n[i+4*face]
			if nodeO2n[node] < 0 {
				nodeO2n[node] = len(o.Global)
				o.Global = append(o.Global, node)
				o.Xyz = append(o.Xyz, primal.Coords[3*node:3*node+3]...)
			}
			o.T2n = append(o.T2n, nodeO2n[node])
		}
		o.T2n = append(o.T2n, primal.F2n[3+4*face])
	}
	return
}

func (o *Surface) Nnode() int     { return len(o.Global) }
func (o *Surface) Ntriangle() int { return len(o.T2n) / 4 }

// Triangle returns the three nodes and patch id of one surface triangle
func (o *Surface) Triangle(tri int) ([]int, error) {
	if tri < 0 || tri >= o.Ntriangle() {
		return nil, stat.Err(stat.ArrayBound, "surface: triangle %d of %d", tri, o.Ntriangle())
	}
	return o.T2n[4*tri : 4*tri+4], nil
}

// NodeXyz returns the coordinates of one surface node
func (o *Surface) NodeXyz(node int) ([]float64, error) {
	if node < 0 || node >= o.Nnode() {
		return nil, stat.Err(stat.ArrayBound, "surface: node %d of %d", node, o.Nnode())
	}
	return o.Xyz[3*node : 3*node+3], nil
}

// ExportArray fills the caller's bulk arrays: xyz[3*nnode],
// global[nnode], and t2n[4*ntriangle] with patch tags in slot 3
func (o *Surface) ExportArray(xyz []float64, global []int, t2n []int) (err error) {
	if len(xyz) < 3*o.Nnode() || len(global) < o.Nnode() || len(t2n) < 4*o.Ntriangle() {
		return stat.Err(stat.ArrayBound, "surface: export arrays too short")
	}
	copy(xyz, o.Xyz)
	copy(global, o.Global)
	copy(t2n, o.T2n)
	return
}

// ExportTec writes the surface as a single Tecplot zone
func (o *Surface) ExportTec(filename string) (err error) {
	if filename == "" {
		filename = "surface.t"
	}
	var buf bytes.Buffer
	io.Ff(&buf, "title=\"tecplot knife surface geometry file\"\n")
	io.Ff(&buf, "variables=\"x\",\"y\",\"z\"\n")
	io.Ff(&buf, "zone t=surf, i=%d, j=%d, f=fepoint, et=triangle\n", o.Nnode(), o.Ntriangle())
	for node := 0; node < o.Nnode(); node++ {
		io.Ff(&buf, "%25.17e %25.17e %25.17e\n", o.Xyz[0+3*node], o.Xyz[1+3*node], o.Xyz[2+3*node])
	}
	for tri := 0; tri < o.Ntriangle(); tri++ {
		io.Ff(&buf, "%d %d %d\n", o.T2n[0+4*tri]+1, o.T2n[1+4*tri]+1, o.T2n[2+4*tri]+1)
	}
	return writeFile(filename, &buf)
}
