// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/knife/stat"
)

// canonical positions of the six edges and four sides of a tetrahedron
var (
	CellEdgeNode = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	CellSideNode = [4][3]int{{1, 3, 2}, {0, 2, 3}, {0, 3, 1}, {0, 1, 2}}
	FaceSideNode = [3][2]int{{0, 1}, {1, 2}, {2, 0}}
)

// Primal holds a primal tetrahedral grid: nodes, boundary faces with a
// trailing patch-id slot, tetrahedra, and the connectivity derived from
// them by EstablishAll
type Primal struct {

	// given
	Nnode0 int       // number of locally-owned nodes (host partitioning)
	Coords []float64 // [3*nnode] node coordinates
	F2n    []int     // [4*nface] face nodes 0..2 and patch id in slot 3
	C2n    []int     // [4*ncell] cell nodes

	// adjacency
	FaceAdj *Adj // node => incident boundary faces
	CellAdj *Adj // node => incident cells

	// derived: edges
	C2e []int // [6*ncell] cell => edge ids
	E2n []int // [2*nedge] edge => (min,max) node pair

	// derived: triangle faces
	C2t []int // [4*ncell] cell => triangle ids
	T2n []int // [3*ntri] triangle => (min,mid,max) nodes

	// derived: surface-node remap
	SurfNode    []int // [nnode] node => compact surface index, -1 off surface
	SurfVolNode []int // [surface nnode] compact surface index => node

	// filled boundary faces so far (CopyBoundary accumulates)
	nfaceAdded int
}

// NewPrimal allocates a primal grid with all faces and cells empty
func NewPrimal(nnode, nface, ncell int) (o *Primal) {
	o = new(Primal)
	o.Nnode0 = nnode
	o.Coords = make([]float64, 3*nnode)
	o.F2n = make([]int, 4*nface)
	o.C2n = make([]int, 4*ncell)
	for i := range o.F2n {
		o.F2n[i] = -1
	}
	for i := range o.C2n {
		o.C2n[i] = -1
	}
	o.FaceAdj = NewAdj(nnode)
	o.CellAdj = NewAdj(nnode)
	return
}

// sizes

func (o *Primal) Nnode() int { return len(o.Coords) / 3 }
func (o *Primal) Nface() int { return len(o.F2n) / 4 }
func (o *Primal) Ncell() int { return len(o.C2n) / 4 }
func (o *Primal) Nedge() int { return len(o.E2n) / 2 }
func (o *Primal) Ntri() int  { return len(o.T2n) / 3 }

// CopyVolume fills node coordinates and cells from the host solver's
// one-based arrays and registers cell adjacency
func (o *Primal) CopyVolume(x, y, z []float64, c2n []int) (err error) {
	nnode := o.Nnode()
	if len(x) < nnode || len(y) < nnode || len(z) < nnode {
		return stat.Err(stat.ArrayBound, "copy_volume: coordinate arrays shorter than %d nodes", nnode)
	}
	if len(c2n) < 4*o.Ncell() {
		return stat.Err(stat.ArrayBound, "copy_volume: c2n shorter than %d cells", o.Ncell())
	}
	for node := 0; node < nnode; node++ {
		o.Coords[0+3*node] = x[node]
		o.Coords[1+3*node] = y[node]
		o.Coords[2+3*node] = z[node]
	}
	for cell := 0; cell < o.Ncell(); cell++ {
		for i := 0; i < 4; i++ {
			o.C2n[i+4*cell] = c2n[i+4*cell] - 1
			o.CellAdj.Add(o.C2n[i+4*cell], cell)
		}
	}
	return
}

// CopyBoundary appends one boundary patch. The first nboundnode node
// indices of f2n are remapped through inode; f2n has nface rows spaced
// by leadingDim, one-based
func (o *Primal) CopyBoundary(faceId, nboundnode int, inode []int, leadingDim, nface int, f2n []int) (err error) {
	for face := 0; face < nface; face++ {
		if o.nfaceAdded >= o.Nface() {
			return stat.Err(stat.ArrayBound, "copy_boundary: more faces than the %d allocated", o.Nface())
		}
		node0 := f2n[face+0*leadingDim] - 1
		node1 := f2n[face+1*leadingDim] - 1
		node2 := f2n[face+2*leadingDim] - 1
		// host load balancing may skip the inode map for ghost rows
		if node0 < nboundnode {
			node0 = inode[node0] - 1
		}
		if node1 < nboundnode {
			node1 = inode[node1] - 1
		}
		if node2 < nboundnode {
			node2 = inode[node2] - 1
		}
		o.F2n[0+4*o.nfaceAdded] = node0
		o.F2n[1+4*o.nfaceAdded] = node1
		o.F2n[2+4*o.nfaceAdded] = node2
		o.F2n[3+4*o.nfaceAdded] = faceId
		for i := 0; i < 3; i++ {
			node := o.F2n[i+4*o.nfaceAdded]
			if node < 0 || node >= o.Nnode() {
				return stat.Err(stat.ArrayBound, "copy_boundary: face %d node %d out of %d", face, node, o.Nnode())
			}
			o.FaceAdj.Add(node, o.nfaceAdded)
		}
		o.nfaceAdded++
	}
	return
}

// EstablishAll derives, in order, cell-edge incidence, cell-triangle
// incidence, and the surface-node remap
func (o *Primal) EstablishAll() (err error) {
	if err = o.establishC2e(); err != nil {
		return
	}
	if err = o.establishC2t(); err != nil {
		return
	}
	return o.establishSurfNode()
}

// setCellEdge broadcasts edge index to every cell sharing the
// undirected pair (node0,node1), via the node-to-cell adjacency
func (o *Primal) setCellEdge(node0, node1, index int) {
	for _, cell := range o.CellAdj.Of(node0) {
		for edge := 0; edge < 6; edge++ {
			n0 := o.C2n[CellEdgeNode[edge][0]+4*cell]
			n1 := o.C2n[CellEdgeNode[edge][1]+4*cell]
			if (node0 == n0 && node1 == n1) || (node1 == n0 && node0 == n1) {
				o.C2e[edge+6*cell] = index
			}
		}
	}
}

func (o *Primal) establishC2e() (err error) {
	o.C2e = make([]int, 6*o.Ncell())
	for i := range o.C2e {
		o.C2e[i] = -1
	}
	nedge := 0
	for cell := 0; cell < o.Ncell(); cell++ {
		for edge := 0; edge < 6; edge++ {
			if o.C2e[edge+6*cell] < 0 {
				o.setCellEdge(o.C2n[CellEdgeNode[edge][0]+4*cell], o.C2n[CellEdgeNode[edge][1]+4*cell], nedge)
				nedge++
			}
		}
	}
	o.E2n = make([]int, 2*nedge)
	for cell := 0; cell < o.Ncell(); cell++ {
		for edge := 0; edge < 6; edge++ {
			index := o.C2e[edge+6*cell]
			n0 := o.C2n[CellEdgeNode[edge][0]+4*cell]
			n1 := o.C2n[CellEdgeNode[edge][1]+4*cell]
			o.E2n[0+2*index] = imin(n0, n1)
			o.E2n[1+2*index] = imax(n0, n1)
		}
	}
	return
}

func (o *Primal) establishC2t() (err error) {
	o.C2t = make([]int, 4*o.Ncell())
	for i := range o.C2t {
		o.C2t[i] = -1
	}
	ntri := 0
	for cell := 0; cell < o.Ncell(); cell++ {
		for side := 0; side < 4; side++ {
			if o.C2t[side+4*cell] < 0 {
				o.C2t[side+4*cell] = ntri
				n0 := o.C2n[CellSideNode[side][0]+4*cell]
				n1 := o.C2n[CellSideNode[side][1]+4*cell]
				n2 := o.C2n[CellSideNode[side][2]+4*cell]
				// the mirror side of an internal face sees the nodes reversed
				if other, oside, e := o.FindCellSide(n1, n0, n2); e == nil {
					o.C2t[oside+4*other] = ntri
				}
				ntri++
			}
		}
	}
	o.T2n = make([]int, 3*ntri)
	for cell := 0; cell < o.Ncell(); cell++ {
		for side := 0; side < 4; side++ {
			index := o.C2t[side+4*cell]
			n0 := o.C2n[CellSideNode[side][0]+4*cell]
			n1 := o.C2n[CellSideNode[side][1]+4*cell]
			n2 := o.C2n[CellSideNode[side][2]+4*cell]
			utl.IntSort3(&n0, &n1, &n2)
			o.T2n[0+3*index] = n0
			o.T2n[1+3*index] = n1
			o.T2n[2+3*index] = n2
		}
	}
	return
}

func (o *Primal) establishSurfNode() (err error) {
	o.SurfNode = make([]int, o.Nnode())
	for i := range o.SurfNode {
		o.SurfNode[i] = -1
	}
	nsurf := 0
	for face := 0; face < o.Nface(); face++ {
		for i := 0; i < 3; i++ {
			node := o.F2n[i+4*face]
			if node < 0 || node >= o.Nnode() {
				return stat.Err(stat.ArrayBound, "surface_node: face %d of %d holds node %d of %d", face, o.Nface(), node, o.Nnode())
			}
			if o.SurfNode[node] < 0 {
				o.SurfNode[node] = nsurf
				nsurf++
			}
		}
	}
	o.SurfVolNode = make([]int, nsurf)
	for node := 0; node < o.Nnode(); node++ {
		if o.SurfNode[node] >= 0 {
			o.SurfVolNode[o.SurfNode[node]] = node
		}
	}
	return
}

// accessors. the returned slices view the backing arrays

// Xyz returns the coordinates of one node
func (o *Primal) Xyz(node int) ([]float64, error) {
	if node < 0 || node >= o.Nnode() {
		return nil, stat.Err(stat.ArrayBound, "xyz: node %d of %d", node, o.Nnode())
	}
	return o.Coords[3*node : 3*node+3], nil
}

// Face returns the three nodes and the patch id of one boundary face
func (o *Primal) Face(face int) ([]int, error) {
	if face < 0 || face >= o.Nface() {
		return nil, stat.Err(stat.ArrayBound, "face: face %d of %d", face, o.Nface())
	}
	return o.F2n[4*face : 4*face+4], nil
}

// Cell returns the four nodes of one cell
func (o *Primal) Cell(cell int) ([]int, error) {
	if cell < 0 || cell >= o.Ncell() {
		return nil, stat.Err(stat.ArrayBound, "cell: cell %d of %d", cell, o.Ncell())
	}
	return o.C2n[4*cell : 4*cell+4], nil
}

// Edge returns the (min,max) node pair of one edge
func (o *Primal) Edge(edge int) ([]int, error) {
	if edge < 0 || edge >= o.Nedge() {
		return nil, stat.Err(stat.ArrayBound, "edge: edge %d of %d", edge, o.Nedge())
	}
	return o.E2n[2*edge : 2*edge+2], nil
}

// Tri returns the (min,mid,max) nodes of one triangle face
func (o *Primal) Tri(tri int) ([]int, error) {
	if tri < 0 || tri >= o.Ntri() {
		return nil, stat.Err(stat.ArrayBound, "tri: tri %d of %d", tri, o.Ntri())
	}
	return o.T2n[3*tri : 3*tri+3], nil
}

// CellCenter writes the average of the four cell nodes into xyz
func (o *Primal) CellCenter(cell int, xyz []float64) (err error) {
	c, err := o.Cell(cell)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		xyz[i] = 0.25 * (o.Coords[i+3*c[0]] + o.Coords[i+3*c[1]] + o.Coords[i+3*c[2]] + o.Coords[i+3*c[3]])
	}
	return
}

// EdgeCenter writes the edge midpoint into xyz
func (o *Primal) EdgeCenter(edge int, xyz []float64) (err error) {
	e, err := o.Edge(edge)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		xyz[i] = 0.5 * (o.Coords[i+3*e[0]] + o.Coords[i+3*e[1]])
	}
	return
}

// TriCenter writes the triangle-face centroid into xyz
func (o *Primal) TriCenter(tri int, xyz []float64) (err error) {
	t, err := o.Tri(tri)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		xyz[i] = (o.Coords[i+3*t[0]] + o.Coords[i+3*t[1]] + o.Coords[i+3*t[2]]) / 3.0
	}
	return
}

// MaxFaceId returns the greatest boundary patch id
func (o *Primal) MaxFaceId() (max int) {
	for face := 0; face < o.Nface(); face++ {
		if o.F2n[3+4*face] > max {
			max = o.F2n[3+4*face]
		}
	}
	return
}

// connectivity queries

// FindFaceSide locates the boundary face holding the directed side
// (node0,node1)
func (o *Primal) FindFaceSide(node0, node1 int) (face, side int, err error) {
	for _, f := range o.FaceAdj.Of(node0) {
		for side = 0; side < 3; side++ {
			if node0 == o.F2n[FaceSideNode[side][0]+4*f] && node1 == o.F2n[FaceSideNode[side][1]+4*f] {
				return f, side, nil
			}
		}
	}
	return -1, -1, stat.Err(stat.NotFound, "find_face_side: no face with side (%d,%d)", node0, node1)
}

// FindCellSide locates the cell holding the side (node0,node1,node2) in
// any rotation of that orientation
func (o *Primal) FindCellSide(node0, node1, node2 int) (cell, side int, err error) {
	for _, c := range o.CellAdj.Of(node0) {
		for side = 0; side < 4; side++ {
			n0 := o.C2n[CellSideNode[side][0]+4*c]
			n1 := o.C2n[CellSideNode[side][1]+4*c]
			n2 := o.C2n[CellSideNode[side][2]+4*c]
			if (n0 == node0 && n1 == node1 && n2 == node2) ||
				(n1 == node0 && n2 == node1 && n0 == node2) ||
				(n2 == node0 && n0 == node1 && n1 == node2) {
				return c, side, nil
			}
		}
	}
	return -1, -1, stat.Err(stat.NotFound, "find_cell_side: no cell with side (%d,%d,%d)", node0, node1, node2)
}

// FindCellEdge returns the local position of edge within cell
func (o *Primal) FindCellEdge(cell, edge int) (cellEdge int, err error) {
	for cellEdge = 0; cellEdge < 6; cellEdge++ {
		if o.C2e[cellEdge+6*cell] == edge {
			return
		}
	}
	return -1, stat.Err(stat.NotFound, "find_cell_edge: edge %d not on cell %d", edge, cell)
}

// FindEdge returns the edge id joining the undirected pair (node0,node1)
func (o *Primal) FindEdge(node0, node1 int) (edge int, err error) {
	for _, c := range o.CellAdj.Of(node0) {
		for e := 0; e < 6; e++ {
			n0 := o.C2n[CellEdgeNode[e][0]+4*c]
			n1 := o.C2n[CellEdgeNode[e][1]+4*c]
			if (n0 == node0 && n1 == node1) || (n1 == node0 && n0 == node1) {
				return o.C2e[e+6*c], nil
			}
		}
	}
	return -1, stat.Err(stat.NotFound, "find_edge: no edge (%d,%d)", node0, node1)
}

// FindTri returns the triangle-face id holding the three nodes in
// either orientation
func (o *Primal) FindTri(node0, node1, node2 int) (tri int, err error) {
	if cell, side, e := o.FindCellSide(node0, node1, node2); e == nil {
		return o.C2t[side+4*cell], nil
	}
	if cell, side, e := o.FindCellSide(node1, node0, node2); e == nil {
		return o.C2t[side+4*cell], nil
	}
	return -1, stat.Err(stat.NotFound, "find_tri: no tri (%d,%d,%d)", node0, node1, node2)
}

// FindTriSide returns the local side of tri holding the undirected pair
// (node0,node1)
func (o *Primal) FindTriSide(tri, node0, node1 int) (side int, err error) {
	if tri < 0 || tri >= o.Ntri() {
		return -1, stat.Err(stat.ArrayBound, "find_tri_side: tri %d of %d", tri, o.Ntri())
	}
	for side = 0; side < 3; side++ {
		n0 := o.T2n[FaceSideNode[side][0]+3*tri]
		n1 := o.T2n[FaceSideNode[side][1]+3*tri]
		if (n0 == node0 && n1 == node1) || (n1 == node0 && n0 == node1) {
			return
		}
	}
	return -1, stat.Err(stat.NotFound, "find_tri_side: side (%d,%d) not on tri %d", node0, node1, tri)
}

// auxiliary

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
