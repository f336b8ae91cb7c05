// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

// The host solver's legacy call pattern holds one invocation at a time
// in a process-wide slot. These wrappers preserve that convenience over
// the handle API.

var current = New()

// Current returns the process-wide handle
func Current() *Knife {
	return current
}

func Volume(partId, nnode0, nnode int, x, y, z []float64, nface, ncell int, c2n []int) int {
	return current.Volume(partId, nnode0, nnode, x, y, z, nface, ncell, c2n)
}

func Boundary(faceId, nodedim int, inode []int, leadingDim, nface int, f2n []int) int {
	return current.Boundary(faceId, nodedim, inode, leadingDim, nface, f2n)
}

func RequiredLocalDual(inputPath string, nodedim int, required []int) int {
	return current.RequiredLocalDual(inputPath, nodedim, required)
}

func Cut(nodedim int, required []int) int {
	return current.Cut(nodedim, required)
}

func DualTopo(nodedim int, topo []int) int {
	return current.DualTopo(nodedim, topo)
}

func MakeDualRequired(node int) int {
	return current.MakeDualRequired(node)
}

func DualRegions(node int) (nregions, status int) {
	return current.DualRegions(node)
}

func PolyCentroidVolume(node, region int) (x, y, z, volume float64, status int) {
	return current.PolyCentroidVolume(node, region)
}

func NtrianglesBetweenPoly(node1, region1, node2, region2 int) (nsubtri, status int) {
	return current.NtrianglesBetweenPoly(node1, region1, node2, region2)
}

func TrianglesBetweenPoly(node1, region1, node2, region2, nsubtri int, tri0, tri1, tri2, normal, area []float64) int {
	return current.TrianglesBetweenPoly(node1, region1, node2, region2, nsubtri, tri0, tri1, tri2, normal, area)
}

func BetweenPolySens(node1, region1, node2, region2, nsubtri int, parentInt []int, parentXyz []float64) int {
	return current.BetweenPolySens(node1, region1, node2, region2, nsubtri, parentInt, parentXyz)
}

func NumberOfSurfaceTriangles(node, region int) (nsubtri, status int) {
	return current.NumberOfSurfaceTriangles(node, region)
}

func SurfaceTriangles(node, region, nsubtri int, tri0, tri1, tri2, normal, area []float64, tag []int) int {
	return current.SurfaceTriangles(node, region, nsubtri, tri0, tri1, tri2, normal, area, tag)
}

func SurfaceSens(node, region, nsubtri int, constraintType []int, constraintXyz []float64) int {
	return current.SurfaceSens(node, region, nsubtri, constraintType, constraintXyz)
}

func NumberOfBoundaryTriangles(node, face, region int) (nsubtri, status int) {
	return current.NumberOfBoundaryTriangles(node, face, region)
}

func BoundaryTriangles(node, face, region, nsubtri int, tri0, tri1, tri2, normal, area []float64) int {
	return current.BoundaryTriangles(node, face, region, nsubtri, tri0, tri1, tri2, normal, area)
}

func BoundarySens(node, face, region, nsubtri int, parentInt []int, parentXyz []float64) int {
	return current.BoundarySens(node, face, region, nsubtri, parentInt, parentXyz)
}

func CutSurfaceDim() (nnode, ntriangle, status int) {
	return current.CutSurfaceDim()
}

func CutSurface(nnode int, xyz []float64, global []int, ntriangle int, t2n []int) int {
	return current.CutSurface(nnode, xyz, global, ntriangle, t2n)
}

func Free() int {
	status := current.Free()
	current = New()
	return status
}
