// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package api is the foreign-callable boundary to the host solver. All
// indices at this boundary are one-based and converted exactly once;
// statuses are integers with 0 meaning success. On any failure the
// current surface is dumped as surfaceNNNN.t for offline inspection.
package api

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/dual"
	"github.com/cpmech/knife/inp"
	"github.com/cpmech/knife/msh"
	"github.com/cpmech/knife/stat"
)

// Knife is an opaque handle holding the state of one partition-local
// invocation
type Knife struct {
	Partition     int
	VolumePrimal  *msh.Primal
	SurfacePrimal *msh.Primal
	Surface       *msh.Surface
	Domain        *dual.Domain
}

// New creates an empty handle; the partition id defaults to the mpi
// rank until the host sets it through Volume
func New() *Knife {
	return &Knife{Partition: inp.Rank()}
}

// status converts an error to a boundary status, logging it and dumping
// the surface for inspection on failure
func (o *Knife) status(err error) int {
	if err == nil {
		return int(stat.Success)
	}
	io.Pf("knife: partition %d: %v\n", o.Partition, err)
	inp.LogErr(err, "partition %d", o.Partition)
	if o.Surface != nil {
		o.Surface.ExportTec(io.Sf("surface%04d.t", o.Partition))
	}
	return int(stat.CodeOf(err))
}

// Volume loads the local tetrahedral partition. Node and cell indices
// in c2n are one-based.
func (o *Knife) Volume(partId, nnode0, nnode int, x, y, z []float64, nface, ncell int, c2n []int) int {
	o.Partition = partId
	o.VolumePrimal = msh.NewPrimal(nnode, nface, ncell)
	o.VolumePrimal.Nnode0 = nnode0
	return o.status(o.VolumePrimal.CopyVolume(x, y, z, c2n))
}

// Boundary loads one boundary patch, remapping the first nodedim
// face-node indices through inode
func (o *Knife) Boundary(faceId, nodedim int, inode []int, leadingDim, nface int, f2n []int) int {
	if o.VolumePrimal == nil {
		return o.status(stat.Err(stat.Null, "boundary: volume not loaded"))
	}
	if nface <= 0 {
		return int(stat.Success)
	}
	return o.status(o.VolumePrimal.CopyBoundary(faceId, nodedim, inode, leadingDim, nface, f2n))
}

// RequiredLocalDual parses the knife input script, constructs the
// cutting surface, and fills required[0..nodedim-1] with 0/1
func (o *Knife) RequiredLocalDual(inputPath string, nodedim int, required []int) int {
	if o.VolumePrimal == nil {
		return o.status(stat.Err(stat.Null, "required_local_dual: volume not loaded"))
	}
	if nodedim != o.VolumePrimal.Nnode() {
		return o.status(stat.Err(stat.ArrayBound, "required_local_dual: nodedim %d != %d nodes", nodedim, o.VolumePrimal.Nnode()))
	}
	primal, surface, err := inp.ReadKnife(inputPath, o.Partition == 0)
	if err != nil {
		return o.status(err)
	}
	o.SurfacePrimal = primal
	o.Surface = surface
	if surface.Ntriangle() == 0 {
		return o.status(stat.Err(stat.NotFound, "required_local_dual: surface has no faces"))
	}
	if err = o.VolumePrimal.EstablishAll(); err != nil {
		return o.status(err)
	}
	if o.Domain, err = dual.NewDomain(o.VolumePrimal, o.Surface, o.Partition); err != nil {
		return o.status(err)
	}
	return o.status(o.Domain.RequiredLocalDual(required))
}

// Cut runs create_dual and boolean_subtract
func (o *Knife) Cut(nodedim int, required []int) int {
	if o.Domain == nil {
		return o.status(stat.Err(stat.Null, "cut: domain not created"))
	}
	if nodedim != o.Domain.Npoly() {
		return o.status(stat.Err(stat.ArrayBound, "cut: nodedim %d != %d nodes", nodedim, o.Domain.Npoly()))
	}
	if err := o.Domain.CreateDual(required); err != nil {
		return o.status(err)
	}
	return o.status(o.Domain.BooleanSubtract())
}

// DualTopo writes per-node topology codes
func (o *Knife) DualTopo(nodedim int, topo []int) int {
	if o.Domain == nil {
		return o.status(stat.Err(stat.Null, "dual_topo: domain not created"))
	}
	if nodedim != o.Domain.Npoly() {
		return o.status(stat.Err(stat.ArrayBound, "dual_topo: nodedim %d != %d nodes", nodedim, o.Domain.Npoly()))
	}
	for node := 0; node < o.Domain.Npoly(); node++ {
		topo[node] = o.Domain.Topo(node)
	}
	return int(stat.Success)
}

// MakeDualRequired creates an uncut interior poly at a one-based node
// if it does not exist yet
func (o *Knife) MakeDualRequired(node int) int {
	if o.Domain == nil {
		return o.status(stat.Err(stat.Null, "make_dual_required: domain not created"))
	}
	if o.Domain.Poly(node-1) != nil {
		return int(stat.Success)
	}
	return o.status(o.Domain.AddInteriorPoly(node - 1))
}

// DualRegions returns the region count of the poly at a one-based node
func (o *Knife) DualRegions(node int) (nregions, status int) {
	poly := o.poly(node)
	if poly == nil {
		return 0, o.status(stat.Err(stat.Null, "dual_regions: no poly at node %d", node))
	}
	return poly.Regions(), int(stat.Success)
}

// PolyCentroidVolume returns the centroid and volume of one region
// (one-based) of the poly at a one-based node
func (o *Knife) PolyCentroidVolume(node, region int) (x, y, z, volume float64, status int) {
	poly := o.poly(node)
	if poly == nil {
		return 0, 0, 0, 0, o.status(stat.Err(stat.Null, "poly_centroid_volume: no poly at node %d", node))
	}
	apex, err := o.VolumePrimal.Xyz(node - 1)
	if err != nil {
		return 0, 0, 0, 0, o.status(err)
	}
	centroid := make([]float64, 3)
	if err = poly.CentroidVolume(region-1, apex, centroid, &volume); err != nil {
		return 0, 0, 0, 0, o.status(err)
	}
	return centroid[0], centroid[1], centroid[2], volume, int(stat.Success)
}

// NtrianglesBetweenPoly counts the sub-triangles joining two poly
// regions across their shared primal edge, creating missing interior
// polys on demand
func (o *Knife) NtrianglesBetweenPoly(node1, region1, node2, region2 int) (nsubtri, status int) {
	edge, err := o.VolumePrimal.FindEdge(node1-1, node2-1)
	if err != nil {
		return 0, o.status(err)
	}
	for _, node := range []int{node1, node2} {
		if o.Domain.Poly(node-1) == nil {
			io.Pf("knife: ntriangles_between_poly: adding interior poly at node %d\n", node)
			if err = o.Domain.AddInteriorPoly(node - 1); err != nil {
				return 0, o.status(err)
			}
		}
	}
	n, err := o.Domain.Poly(node1-1).NsubtriBetween(region1-1, o.Domain.Poly(node2-1), region2-1, o.Domain.NodeAtEdgeCenter(edge))
	if err != nil {
		return 0, o.status(err)
	}
	return n, int(stat.Success)
}

// TrianglesBetweenPoly fills the caller's arrays with the oriented
// sub-triangles joining two poly regions: per subtri the three corner
// xyz triples, the unit normal, and the area
func (o *Knife) TrianglesBetweenPoly(node1, region1, node2, region2, nsubtri int, tri0, tri1, tri2, normal, area []float64) int {
	poly1, poly2 := o.poly(node1), o.poly(node2)
	if poly1 == nil || poly2 == nil {
		return o.status(stat.Err(stat.Null, "triangles_between_poly: poly absent"))
	}
	edge, err := o.VolumePrimal.FindEdge(node1-1, node2-1)
	if err != nil {
		return o.status(err)
	}
	subtris, err := poly1.SubtriBetween(region1-1, poly2, region2-1, o.Domain.NodeAtEdgeCenter(edge))
	if err != nil {
		return o.status(err)
	}
	return o.status(fillSubtris(subtris, nsubtri, tri0, tri1, tri2, normal, area, nil))
}

// BetweenPolySens fills per-vertex constraint records for the
// sub-triangles joining two poly regions; integer codes are one-based
func (o *Knife) BetweenPolySens(node1, region1, node2, region2, nsubtri int, parentInt []int, parentXyz []float64) int {
	poly1, poly2 := o.poly(node1), o.poly(node2)
	if poly1 == nil || poly2 == nil {
		return o.status(stat.Err(stat.Null, "between_poly_sens: poly absent"))
	}
	edge, err := o.VolumePrimal.FindEdge(node1-1, node2-1)
	if err != nil {
		return o.status(err)
	}
	sens, err := poly1.BetweenSens(region1-1, poly2, region2-1, o.Domain.NodeAtEdgeCenter(edge))
	if err != nil {
		return o.status(err)
	}
	return o.status(fillSens(sens, nsubtri, parentInt, parentXyz))
}

// NumberOfSurfaceTriangles counts the sub-triangles of one region lying
// on the cutting surface
func (o *Knife) NumberOfSurfaceTriangles(node, region int) (nsubtri, status int) {
	poly := o.poly(node)
	if poly == nil {
		return 0, o.status(stat.Err(stat.Null, "number_of_surface_triangles: no poly at node %d", node))
	}
	n, err := poly.SurfaceNsubtri(region - 1)
	if err != nil {
		return 0, o.status(err)
	}
	return n, int(stat.Success)
}

// SurfaceTriangles fills the caller's arrays with the region's
// sub-triangles on the cutting surface, tagged with their patch ids
func (o *Knife) SurfaceTriangles(node, region, nsubtri int, tri0, tri1, tri2, normal, area []float64, tag []int) int {
	poly := o.poly(node)
	if poly == nil {
		return o.status(stat.Err(stat.Null, "surface_triangles: no poly at node %d", node))
	}
	subtris, err := poly.SurfaceSubtri(region - 1)
	if err != nil {
		return o.status(err)
	}
	return o.status(fillSubtris(subtris, nsubtri, tri0, tri1, tri2, normal, area, tag))
}

// SurfaceSens fills per-vertex constraint records for the region's
// sub-triangles on the cutting surface; integer codes are one-based
func (o *Knife) SurfaceSens(node, region, nsubtri int, constraintType []int, constraintXyz []float64) int {
	poly := o.poly(node)
	if poly == nil {
		return o.status(stat.Err(stat.Null, "surface_sens: no poly at node %d", node))
	}
	sens, err := poly.SurfaceSens(region - 1)
	if err != nil {
		return o.status(err)
	}
	return o.status(fillSens(sens, nsubtri, constraintType, constraintXyz))
}

// NumberOfBoundaryTriangles counts the sub-triangles of one region on a
// one-based boundary patch
func (o *Knife) NumberOfBoundaryTriangles(node, face, region int) (nsubtri, status int) {
	poly := o.poly(node)
	if poly == nil {
		return 0, o.status(stat.Err(stat.Null, "number_of_boundary_triangles: no poly at node %d", node))
	}
	n, err := poly.BoundaryNsubtri(face, region-1)
	if err != nil {
		return 0, o.status(err)
	}
	return n, int(stat.Success)
}

// BoundaryTriangles fills the caller's arrays with the region's
// sub-triangles on one boundary patch
func (o *Knife) BoundaryTriangles(node, face, region, nsubtri int, tri0, tri1, tri2, normal, area []float64) int {
	poly := o.poly(node)
	if poly == nil {
		return o.status(stat.Err(stat.Null, "boundary_triangles: no poly at node %d", node))
	}
	subtris, err := poly.BoundarySubtri(face, region-1)
	if err != nil {
		return o.status(err)
	}
	return o.status(fillSubtris(subtris, nsubtri, tri0, tri1, tri2, normal, area, nil))
}

// BoundarySens fills per-vertex constraint records for the region's
// sub-triangles on one boundary patch; integer codes are one-based
func (o *Knife) BoundarySens(node, face, region, nsubtri int, parentInt []int, parentXyz []float64) int {
	poly := o.poly(node)
	if poly == nil {
		return o.status(stat.Err(stat.Null, "boundary_sens: no poly at node %d", node))
	}
	sens, err := poly.BoundarySens(face, region-1)
	if err != nil {
		return o.status(err)
	}
	return o.status(fillSens(sens, nsubtri, parentInt, parentXyz))
}

// CutSurfaceDim returns the cutting surface sizes
func (o *Knife) CutSurfaceDim() (nnode, ntriangle, status int) {
	if o.Surface == nil {
		return 0, 0, int(stat.Null)
	}
	return o.Surface.Nnode(), o.Surface.Ntriangle(), int(stat.Success)
}

// CutSurface exports the cutting surface arrays with one-based node ids
func (o *Knife) CutSurface(nnode int, xyz []float64, global []int, ntriangle int, t2n []int) int {
	if o.Surface == nil {
		return int(stat.Null)
	}
	if nnode != o.Surface.Nnode() || ntriangle != o.Surface.Ntriangle() {
		return o.status(stat.Err(stat.Inconsistent, "cut_surface: dims %d %d != %d %d", nnode, ntriangle, o.Surface.Nnode(), o.Surface.Ntriangle()))
	}
	if err := o.Surface.ExportArray(xyz, global, t2n); err != nil {
		return o.status(err)
	}
	for node := 0; node < nnode; node++ {
		global[node]++
	}
	for tri := 0; tri < ntriangle; tri++ {
		t2n[0+4*tri]++
		t2n[1+4*tri]++
		t2n[2+4*tri]++
	}
	return int(stat.Success)
}

// Free releases everything held by the handle
func (o *Knife) Free() int {
	o.VolumePrimal = nil
	o.SurfacePrimal = nil
	o.Surface = nil
	o.Domain = nil
	o.Partition = inp.Rank()
	return int(stat.Success)
}

// poly fetches the poly at a one-based node
func (o *Knife) poly(node int) *dual.Poly {
	if o.Domain == nil {
		return nil
	}
	return o.Domain.Poly(node - 1)
}

// fillSubtris copies readout records into the caller's flat arrays
func fillSubtris(subtris []dual.SubtriGeom, nsubtri int, tri0, tri1, tri2, normal, area []float64, tag []int) (err error) {
	if len(subtris) != nsubtri {
		return stat.Err(stat.Inconsistent, "readout: %d subtris held, %d requested", len(subtris), nsubtri)
	}
	for i, st := range subtris {
		copy(tri0[3*i:3*i+3], st.Xyz0)
		copy(tri1[3*i:3*i+3], st.Xyz1)
		copy(tri2[3*i:3*i+3], st.Xyz2)
		copy(normal[3*i:3*i+3], st.Normal)
		area[i] = st.Area
		if tag != nil {
			tag[i] = st.Tag
		}
	}
	return
}

// fillSens copies constraint records into the caller's flat arrays,
// shifting the integer codes to one-based
func fillSens(sens []dual.SubtriSens, nsubtri int, parentInt []int, parentXyz []float64) (err error) {
	if len(sens) != nsubtri {
		return stat.Err(stat.Inconsistent, "sens: %d subtris held, %d requested", len(sens), nsubtri)
	}
	for i, s := range sens {
		for v := 0; v < 3; v++ {
			for k := 0; k < 4; k++ {
				parentInt[k+4*v+12*i] = s.ConstraintType[v][k] + 1
			}
			copy(parentXyz[9*v+27*i:9*v+27*i+9], s.ParentXyz[v][:])
		}
	}
	return
}
