// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

import (
	"bytes"
	"math"
	"sort"

	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/knife/cut"
	"github.com/cpmech/knife/msh"
	"github.com/cpmech/knife/stat"
)

// binsNdiv is the number of divisions per direction of the spatial bins
// accelerating candidate searches
const binsNdiv = 20

// topology codes reported to the solver
const (
	TopoNone  = iota // no poly at this node
	TopoUncut        // interior poly untouched by the surface
	TopoCut          // poly cut by the surface, regions remain
	TopoEmpty        // poly cut away entirely
)

// Domain orchestrates the cut pipeline: from a primal partition and a
// cutting surface it constructs the required dual cells, intersects
// them with the surface, and assembles the cut polyhedra
type Domain struct {
	Primal    *msh.Primal  // local tetrahedral partition
	Surf      *msh.Surface // cutting surface
	Partition int          // host partition id, used in diagnostic names

	Polys map[int]*Poly // primal node index => poly (sparse)

	// shared cut entities, created once and referenced everywhere
	nodeSeq     int
	triSeq      int
	primalNodes map[int]*cut.Node
	edgeNodes   map[int]*cut.Node
	triNodes    map[int]*cut.Node
	cellNodes   map[int]*cut.Node
	surfNodes   []*cut.Node
	segs        map[[2]int]*cut.Segment

	surfTris []*cut.Triangle
	dualFans map[int][]*cut.Triangle    // primal edge => fan of dual triangles
	bndTris  map[[2]int][]*cut.Triangle // (face, corner position) => two triangles

	frame int // diagnostic filename counter
}

// NewDomain creates a domain over a primal partition and a surface
func NewDomain(primal *msh.Primal, surf *msh.Surface, partition int) (o *Domain, err error) {
	if primal == nil {
		return nil, stat.Err(stat.Null, "domain: primal absent")
	}
	if surf == nil {
		return nil, stat.Err(stat.Null, "domain: surface absent")
	}
	o = new(Domain)
	o.Primal = primal
	o.Surf = surf
	o.Partition = partition
	o.Polys = make(map[int]*Poly)
	o.primalNodes = make(map[int]*cut.Node)
	o.edgeNodes = make(map[int]*cut.Node)
	o.triNodes = make(map[int]*cut.Node)
	o.cellNodes = make(map[int]*cut.Node)
	o.segs = make(map[[2]int]*cut.Segment)
	o.dualFans = make(map[int][]*cut.Triangle)
	o.bndTris = make(map[[2]int][]*cut.Triangle)
	o.frame = 10000 * partition
	return
}

// Npoly returns the size of the per-node arrays at the api boundary
func (o *Domain) Npoly() int {
	return o.Primal.Nnode()
}

// Poly returns the poly at a primal node, or nil
func (o *Domain) Poly(node int) *Poly {
	return o.Polys[node]
}

// node and segment caches

func (o *Domain) newNode(kind, tag int, xyz []float64) *cut.Node {
	n := cut.NewNode(o.nodeSeq, kind, tag, xyz[0], xyz[1], xyz[2])
	o.nodeSeq++
	return n
}

func (o *Domain) primalNode(index int) *cut.Node {
	if n, ok := o.primalNodes[index]; ok {
		return n
	}
	xyz, _ := o.Primal.Xyz(index)
	n := o.newNode(cut.NodePrimal, index, xyz)
	o.primalNodes[index] = n
	return n
}

// NodeAtEdgeCenter returns the shared node at a primal edge midpoint
func (o *Domain) NodeAtEdgeCenter(edge int) *cut.Node {
	if n, ok := o.edgeNodes[edge]; ok {
		return n
	}
	xyz := make([]float64, 3)
	if o.Primal.EdgeCenter(edge, xyz) != nil {
		return nil
	}
	n := o.newNode(cut.NodeEdgeCenter, edge, xyz)
	o.edgeNodes[edge] = n
	return n
}

func (o *Domain) triCenterNode(tri int) *cut.Node {
	if n, ok := o.triNodes[tri]; ok {
		return n
	}
	xyz := make([]float64, 3)
	o.Primal.TriCenter(tri, xyz)
	n := o.newNode(cut.NodeTriCenter, tri, xyz)
	o.triNodes[tri] = n
	return n
}

func (o *Domain) cellCenterNode(cell int) *cut.Node {
	if n, ok := o.cellNodes[cell]; ok {
		return n
	}
	xyz := make([]float64, 3)
	o.Primal.CellCenter(cell, xyz)
	n := o.newNode(cut.NodeCellCenter, cell, xyz)
	o.cellNodes[cell] = n
	return n
}

func (o *Domain) segBetween(a, b *cut.Node) *cut.Segment {
	key := nodePairKey(a, b)
	if s, ok := o.segs[key]; ok {
		return s
	}
	s := cut.NewSegment(a, b)
	o.segs[key] = s
	return s
}

func (o *Domain) newTri(kind, tag int, a, b, c *cut.Node) (t *cut.Triangle, err error) {
	t, err = cut.NewTriangle(o.triSeq, kind, tag, o.segBetween(b, c), o.segBetween(c, a), o.segBetween(a, b))
	if err != nil {
		return
	}
	o.triSeq++
	return
}

// surfBins builds spatial bins over the surface triangle centres and
// returns the greatest triangle radius, for candidate searches
func (o *Domain) surfBins() (bins *gm.Bins, maxR float64, err error) {
	p, s := o.Primal, o.Surf
	if s.Ntriangle() == 0 {
		return nil, 0, nil
	}
	xi := []float64{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	xf := []float64{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}
	grow := func(xyz []float64) {
		for d := 0; d < 3; d++ {
			xi[d] = math.Min(xi[d], xyz[d])
			xf[d] = math.Max(xf[d], xyz[d])
		}
	}
	for node := 0; node < p.Nnode(); node++ {
		grow(p.Coords[3*node : 3*node+3])
	}
	for node := 0; node < s.Nnode(); node++ {
		grow(s.Xyz[3*node : 3*node+3])
	}
	for d := 0; d < 3; d++ {
		gap := 1e-8 + 1e-8*(xf[d]-xi[d])
		xi[d] -= gap
		xf[d] += gap
	}
	bins = new(gm.Bins)
	bins.Init(xi, xf, binsNdiv)
	for tri := 0; tri < s.Ntriangle(); tri++ {
		center := make([]float64, 3)
		var r float64
		for i := 0; i < 3; i++ {
			node := s.T2n[i+4*tri]
			for d := 0; d < 3; d++ {
				center[d] += s.Xyz[d+3*node] / 3.0
			}
		}
		for i := 0; i < 3; i++ {
			node := s.T2n[i+4*tri]
			r = math.Max(r, dist3(s.Xyz[3*node:3*node+3], center))
		}
		maxR = math.Max(maxR, r)
		if e := bins.Append(center, tri); e != nil {
			return nil, 0, stat.Err(stat.Failure, "bins: %v", e)
		}
	}
	return
}

// RequiredLocalDual sets to 1 the flag of every primal node whose dual
// cell touches the cutting surface: the nodes of primal edges pierced
// by a surface triangle, plus the nodes of boundary faces sharing a
// patch id with the surface
func (o *Domain) RequiredLocalDual(required []int) (err error) {
	p, s := o.Primal, o.Surf
	if len(required) < p.Nnode() {
		return stat.Err(stat.ArrayBound, "required_local_dual: array shorter than %d nodes", p.Nnode())
	}
	for node := 0; node < p.Nnode(); node++ {
		required[node] = 0
	}
	bins, maxR, err := o.surfBins()
	if err != nil || bins == nil {
		return
	}

	for edge := 0; edge < p.Nedge(); edge++ {
		n0, n1 := p.E2n[0+2*edge], p.E2n[1+2*edge]
		x0 := p.Coords[3*n0 : 3*n0+3]
		x1 := p.Coords[3*n1 : 3*n1+3]
		for _, tri := range bins.FindAlongLine(x0, x1, maxR) {
			a := s.Xyz[3*s.T2n[0+4*tri] : 3*s.T2n[0+4*tri]+3]
			b := s.Xyz[3*s.T2n[1+4*tri] : 3*s.T2n[1+4*tri]+3]
			c := s.Xyz[3*s.T2n[2+4*tri] : 3*s.T2n[2+4*tri]+3]
			if _, _, hits := cut.Pierce(x0, x1, a, b, c); hits {
				required[n0] = 1
				required[n1] = 1
				break
			}
		}
	}

	// patch sharing only binds when the surface was taken from this
	// primal's own boundary
	if s.Source == p {
		patches := make(map[int]bool)
		for tri := 0; tri < s.Ntriangle(); tri++ {
			patches[s.T2n[3+4*tri]] = true
		}
		for face := 0; face < p.Nface(); face++ {
			if patches[p.F2n[3+4*face]] {
				required[p.F2n[0+4*face]] = 1
				required[p.F2n[1+4*face]] = 1
				required[p.F2n[2+4*face]] = 1
			}
		}
	}
	return
}

// CreateDual constructs a poly for every flagged node, with masks for
// the dual faces toward each neighbour and for the boundary patches at
// the node. Surface masks are attached during BooleanSubtract, once the
// crossings are known.
func (o *Domain) CreateDual(required []int) (err error) {
	p := o.Primal
	if len(required) < p.Nnode() {
		return stat.Err(stat.ArrayBound, "create_dual: array shorter than %d nodes", p.Nnode())
	}
	for node := 0; node < p.Nnode(); node++ {
		if required[node] != 0 {
			o.Polys[node] = NewPoly(node, o.primalNode(node))
		}
	}
	if err = o.buildSurfaceComplex(); err != nil {
		return
	}
	for edge := 0; edge < p.Nedge(); edge++ {
		if err = o.attachDualFan(edge); err != nil {
			return
		}
	}
	for face := 0; face < p.Nface(); face++ {
		for corner := 0; corner < 3; corner++ {
			if err = o.attachBoundary(face, corner); err != nil {
				return
			}
		}
	}
	return
}

// buildSurfaceComplex creates the shared nodes, segments and triangles
// of the cutting surface
func (o *Domain) buildSurfaceComplex() (err error) {
	if o.surfNodes != nil {
		return
	}
	s := o.Surf
	o.surfNodes = make([]*cut.Node, s.Nnode())
	for node := 0; node < s.Nnode(); node++ {
		o.surfNodes[node] = o.newNode(cut.NodeSurface, node, s.Xyz[3*node:3*node+3])
	}
	o.surfTris = make([]*cut.Triangle, s.Ntriangle())
	for tri := 0; tri < s.Ntriangle(); tri++ {
		a := o.surfNodes[s.T2n[0+4*tri]]
		b := o.surfNodes[s.T2n[1+4*tri]]
		c := o.surfNodes[s.T2n[2+4*tri]]
		if o.surfTris[tri], err = o.newTri(cut.TriSurface, s.T2n[3+4*tri], a, b, c); err != nil {
			return
		}
	}
	return
}

// dualFan returns the fan of dual triangles tiling the median-dual face
// of one primal edge: per incident cell, one triangle through each of
// the cell's two sides holding the edge
func (o *Domain) dualFan(edge int) (fan []*cut.Triangle, err error) {
	if fan, ok := o.dualFans[edge]; ok {
		return fan, nil
	}
	p := o.Primal
	n0, n1 := p.E2n[0+2*edge], p.E2n[1+2*edge]
	mid := o.NodeAtEdgeCenter(edge)
	for _, cell := range p.CellAdj.Of(n0) {
		has := false
		for i := 0; i < 4; i++ {
			if p.C2n[i+4*cell] == n1 {
				has = true
			}
		}
		if !has {
			continue
		}
		for side := 0; side < 4; side++ {
			onSide := 0
			for i := 0; i < 3; i++ {
				sn := p.C2n[msh.CellSideNode[side][i]+4*cell]
				if sn == n0 || sn == n1 {
					onSide++
				}
			}
			if onSide != 2 {
				continue
			}
			var t *cut.Triangle
			t, err = o.newTri(cut.TriDual, edge, mid, o.triCenterNode(p.C2t[side+4*cell]), o.cellCenterNode(cell))
			if err != nil {
				return
			}
			fan = append(fan, t)
		}
	}
	o.dualFans[edge] = fan
	return
}

// attachDualFan adds the fan masks of one edge to the polys at its ends
func (o *Domain) attachDualFan(edge int) (err error) {
	p := o.Primal
	n0, n1 := p.E2n[0+2*edge], p.E2n[1+2*edge]
	p0, p1 := o.Polys[n0], o.Polys[n1]
	if p0 == nil && p1 == nil {
		return
	}
	fan, err := o.dualFan(edge)
	if err != nil {
		return
	}
	mid := o.NodeAtEdgeCenter(edge)
	for _, poly := range []*Poly{p0, p1} {
		if poly == nil {
			continue
		}
		for _, t := range fan {
			inward, e := pointsToward(t, mid.Xyz, poly.Node.Xyz)
			if e != nil {
				return e
			}
			poly.AddMask(cut.NewMask(t, inward))
		}
	}
	return
}

// attachBoundary adds the two boundary triangles closing the cell of
// one face corner
func (o *Domain) attachBoundary(face, corner int) (err error) {
	p := o.Primal
	n := p.F2n[corner+4*face]
	poly := o.Polys[n]
	if poly == nil {
		return
	}
	key := [2]int{face, corner}
	tris, ok := o.bndTris[key]
	if !ok {
		m1 := p.F2n[(corner+1)%3+4*face]
		m2 := p.F2n[(corner+2)%3+4*face]
		e1, e := p.FindEdge(n, m1)
		if e != nil {
			return e
		}
		e2, e := p.FindEdge(n, m2)
		if e != nil {
			return e
		}
		tri, e := p.FindTri(n, m1, m2)
		if e != nil {
			return e
		}
		patch := p.F2n[3+4*face]
		fc := o.triCenterNode(tri)
		t1, e := o.newTri(cut.TriBoundary, patch, o.primalNode(n), o.NodeAtEdgeCenter(e1), fc)
		if e != nil {
			return e
		}
		t2, e := o.newTri(cut.TriBoundary, patch, o.primalNode(n), fc, o.NodeAtEdgeCenter(e2))
		if e != nil {
			return e
		}
		tris = []*cut.Triangle{t1, t2}
		o.bndTris[key] = tris
	}

	// the cell interior fixes the inward side of the boundary plane
	cell, _, err := o.cellOfFace(face)
	if err != nil {
		return
	}
	cc := make([]float64, 3)
	o.Primal.CellCenter(cell, cc)
	for _, t := range tris {
		inward, e := pointsToward(t, t.Node0.Xyz, cc)
		if e != nil {
			return e
		}
		poly.AddMask(cut.NewMask(t, inward))
	}
	return
}

func (o *Domain) cellOfFace(face int) (cell, side int, err error) {
	p := o.Primal
	n0, n1, n2 := p.F2n[0+4*face], p.F2n[1+4*face], p.F2n[2+4*face]
	if cell, side, err = p.FindCellSide(n0, n1, n2); err == nil {
		return
	}
	return p.FindCellSide(n1, n0, n2)
}

// pointsToward tells whether the triangle's right-hand normal points
// from base toward target
func pointsToward(t *cut.Triangle, base, target []float64) (bool, error) {
	n := t.Normal()
	dot := 0.0
	for d := 0; d < 3; d++ {
		dot += n[d] * (target[d] - base[d])
	}
	if dot == 0 {
		return false, stat.Err(stat.DivZero, "triangle %d: degenerate orientation test", t.Id)
	}
	return dot > 0, nil
}

// cellTris returns every dual and boundary triangle, each once
func (o *Domain) cellTris() (tris []*cut.Triangle) {
	edges := make([]int, 0, len(o.dualFans))
	for e := range o.dualFans {
		edges = append(edges, e)
	}
	sort.Ints(edges)
	for _, e := range edges {
		tris = append(tris, o.dualFans[e]...)
	}
	keys := make([][2]int, 0, len(o.bndTris))
	for k := range o.bndTris {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, k := range keys {
		tris = append(tris, o.bndTris[k]...)
	}
	return
}

// BooleanSubtract executes the full pipeline: intersect the surface
// with the cell faces, triangulate the cuts, paint every mask, and
// assemble the poly regions. Any geometric inconsistency is fatal.
func (o *Domain) BooleanSubtract() (err error) {
	cellTris := o.cellTris()
	bins, maxR, err := o.surfBins()
	if err != nil {
		return
	}

	// crossings
	if bins != nil {
		seen := make(map[[2]int]bool)
		for _, t := range cellTris {
			_, r := t.Extent()
			for _, idx := range o.candidatesNear(bins, t, r+maxR) {
				pair := [2]int{t.Id, idx}
				if seen[pair] {
					continue
				}
				seen[pair] = true
				s := o.surfTris[idx]
				if err = o.crossTriangles(t, s); err != nil {
					return
				}
			}
		}
	}

	// refine every crossed triangle so chords become subtri edges
	for _, t := range cellTris {
		if len(t.Cuts) > 0 {
			if err = t.TriangulateCuts(); err != nil {
				o.dumpTriangle(t)
				return
			}
		}
	}
	for _, t := range o.surfTris {
		if len(t.Cuts) > 0 {
			if err = t.TriangulateCuts(); err != nil {
				o.dumpTriangle(t)
				return
			}
		}
	}

	if err = o.gatherSurfaceMasks(); err != nil {
		return
	}

	// paint and assemble, in node order. A cell never crossed by the
	// surface is kept or discarded wholesale by the side its node is on:
	// a tangent contact leaves no chord to paint from.
	nodes := make([]int, 0, len(o.Polys))
	for n := range o.Polys {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	for _, n := range nodes {
		poly := o.Polys[n]
		if err = poly.Paint(o.Surf.Inward); err != nil {
			return
		}
		if polyUncut(poly) && o.nodeRemoved(poly.Node.Xyz) {
			for _, m := range poly.Masks {
				m.DeactivateAll()
			}
		}
		if err = poly.AssembleRegions(); err != nil {
			return
		}
	}

	// region volumes must be positive
	centroid := make([]float64, 3)
	var volume float64
	for _, n := range nodes {
		poly := o.Polys[n]
		for region := 0; region < poly.Regions(); region++ {
			if err = poly.CentroidVolume(region, poly.Node.Xyz, centroid, &volume); err != nil {
				return
			}
			if volume <= 0 {
				return stat.Err(stat.Failure, "boolean_subtract: poly %d region %d has volume %g", n, region, volume)
			}
		}
	}
	return
}

// candidatesNear returns the surface triangles whose centres lie within
// tol of one of t's edges
func (o *Domain) candidatesNear(bins *gm.Bins, t *cut.Triangle, tol float64) []int {
	var ids []int
	corners := [][]float64{t.Node0.Xyz, t.Node1.Xyz, t.Node2.Xyz}
	for i := 0; i < 3; i++ {
		ids = append(ids, bins.FindAlongLine(corners[i], corners[(i+1)%3], tol)...)
	}
	if ids == nil {
		return nil
	}
	return utl.IntUnique(ids)
}

// crossTriangles records the crossings of a cell triangle with a
// surface triangle: boundary pierces in both directions, then the chord
func (o *Domain) crossTriangles(t, s *cut.Triangle) (err error) {
	for i := 0; i < 3; i++ {
		if t.Seg[i].IntersectionWith(s) == nil {
			if ins, e := cut.InsertIntersection(t.Seg[i], s, o.nodeSeq); e != nil {
				return e
			} else if ins != nil {
				o.nodeSeq++
			}
		}
		if s.Seg[i].IntersectionWith(t) == nil {
			if ins, e := cut.InsertIntersection(s.Seg[i], t, o.nodeSeq); e != nil {
				return e
			} else if ins != nil {
				o.nodeSeq++
			}
		}
	}
	if t.CutWith(s) == nil {
		if _, err = cut.CutBetween(t, s); err != nil {
			return
		}
	}
	return
}

// gatherSurfaceMasks attaches a surface mask to every poly whose faces
// the surface triangle crosses, plus the containing poly of triangles
// lying wholly inside one cell
func (o *Domain) gatherSurfaceMasks() (err error) {
	for _, s := range o.surfTris {
		if len(s.Cuts) == 0 {
			if err = o.containSurfaceTriangle(s); err != nil {
				return
			}
			continue
		}
		for _, c := range s.Cuts {
			cutter := c.Other(s)
			for _, poly := range o.ownersOf(cutter) {
				if poly != nil && poly.MaskOf(s) == nil {
					poly.AddMask(cut.NewMask(s, o.Surf.Inward))
				}
			}
		}
	}
	return
}

// ownersOf returns the polys holding a dual or boundary triangle
func (o *Domain) ownersOf(t *cut.Triangle) []*Poly {
	switch t.Kind {
	case cut.TriDual:
		edge := t.Tag
		return []*Poly{o.Polys[o.Primal.E2n[0+2*edge]], o.Polys[o.Primal.E2n[1+2*edge]]}
	case cut.TriBoundary:
		return []*Poly{o.Polys[t.Node0.Tag]}
	}
	return nil
}

// containSurfaceTriangle locates an uncrossed surface triangle inside
// the mesh: the owning node is the one whose barycentric coordinate is
// greatest in the containing cell
func (o *Domain) containSurfaceTriangle(s *cut.Triangle) (err error) {
	p := o.Primal
	center, _ := s.Extent()
	x := [][]float64{nil, nil, nil, nil}
	for cell := 0; cell < p.Ncell(); cell++ {
		for i := 0; i < 4; i++ {
			node := p.C2n[i+4*cell]
			x[i] = p.Coords[3*node : 3*node+3]
		}
		vol := cut.TetVolume(x[0], x[1], x[2], x[3])
		if vol == 0 {
			continue
		}
		b := []float64{
			cut.TetVolume(center, x[1], x[2], x[3]) / vol,
			cut.TetVolume(x[0], center, x[2], x[3]) / vol,
			cut.TetVolume(x[0], x[1], center, x[3]) / vol,
			cut.TetVolume(x[0], x[1], x[2], center) / vol,
		}
		inside := true
		best := 0
		for i := 0; i < 4; i++ {
			if b[i] < 0 {
				inside = false
				break
			}
			if b[i] > b[best] {
				best = i
			}
		}
		if !inside {
			continue
		}
		if poly := o.Polys[p.C2n[best+4*cell]]; poly != nil && poly.MaskOf(s) == nil {
			poly.AddMask(cut.NewMask(s, o.Surf.Inward))
		}
		return
	}
	return
}

// AddInteriorPoly creates an uncut interior poly at a node that was not
// flagged required but turned out to be needed
func (o *Domain) AddInteriorPoly(node int) (err error) {
	if o.Polys[node] != nil {
		return
	}
	p := o.Primal
	if node < 0 || node >= p.Nnode() {
		return stat.Err(stat.ArrayBound, "add_interior_poly: node %d of %d", node, p.Nnode())
	}
	poly := NewPoly(node, o.primalNode(node))
	o.Polys[node] = poly

	// edges at the node, via its cells
	edges := make(map[int]bool)
	for _, cell := range p.CellAdj.Of(node) {
		for e := 0; e < 6; e++ {
			n0 := p.C2n[msh.CellEdgeNode[e][0]+4*cell]
			n1 := p.C2n[msh.CellEdgeNode[e][1]+4*cell]
			if n0 == node || n1 == node {
				edges[p.C2e[e+6*cell]] = true
			}
		}
	}
	sorted := make([]int, 0, len(edges))
	for e := range edges {
		sorted = append(sorted, e)
	}
	sort.Ints(sorted)
	for _, edge := range sorted {
		fan, e := o.dualFan(edge)
		if e != nil {
			return e
		}
		mid := o.NodeAtEdgeCenter(edge)
		for _, t := range fan {
			inward, e := pointsToward(t, mid.Xyz, poly.Node.Xyz)
			if e != nil {
				return e
			}
			poly.AddMask(cut.NewMask(t, inward))
		}
	}
	for _, face := range p.FaceAdj.Of(node) {
		for corner := 0; corner < 3; corner++ {
			if p.F2n[corner+4*face] == node {
				if err = o.attachBoundary(face, corner); err != nil {
					return
				}
			}
		}
	}
	return poly.AssembleRegions()
}

// polyUncut tells whether no chord bounded any of the poly's masks
func polyUncut(p *Poly) bool {
	for _, m := range p.Masks {
		if len(m.Painted) > 0 {
			return false
		}
	}
	return true
}

// nodeRemoved tells whether xyz lies on the removed side of the
// surface, by the kept-side normal of the closest surface triangle
func (o *Domain) nodeRemoved(xyz []float64) bool {
	bestD2 := math.MaxFloat64
	bestSide := 0.0
	for _, s := range o.surfTris {
		q := cut.ClosestPointOnTri(xyz, s.Node0.Xyz, s.Node1.Xyz, s.Node2.Xyz)
		d2 := 0.0
		for d := 0; d < 3; d++ {
			d2 += (xyz[d] - q[d]) * (xyz[d] - q[d])
		}
		n := s.Normal()
		if !o.Surf.Inward {
			negate(n)
		}
		nn := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		side := 0.0
		for d := 0; d < 3; d++ {
			side += n[d] * (xyz[d] - q[d]) / nn
		}
		// at equidistant edges the steeper side decides
		if d2 < bestD2*(1-1e-12) || (d2 <= bestD2*(1+1e-12) && math.Abs(side) > math.Abs(bestSide)) {
			bestD2 = d2
			bestSide = side
		}
	}
	return bestSide < 0
}

// Topo returns the topology code of the dual cell at a node
func (o *Domain) Topo(node int) int {
	poly := o.Polys[node]
	if poly == nil {
		return TopoNone
	}
	if poly.Nregion == 0 {
		return TopoEmpty
	}
	if !poly.CutBySurf {
		return TopoUncut
	}
	return TopoCut
}

// ExportTec dumps every active subtri of every poly for inspection
func (o *Domain) ExportTec(filename string) (err error) {
	nodes := make([]int, 0, len(o.Polys))
	for n := range o.Polys {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	ntri := 0
	for _, n := range nodes {
		for _, m := range o.Polys[n].Masks {
			ntri += m.ActiveCount()
		}
	}
	var buf bytes.Buffer
	io.Ff(&buf, "title=\"tecplot knife cut file\"\n")
	io.Ff(&buf, "variables=\"x\",\"y\",\"z\"\n")
	io.Ff(&buf, "zone t=cut, i=%d, j=%d, f=fepoint, et=triangle\n", 3*ntri, ntri)
	var conn bytes.Buffer
	v := 0
	for _, n := range nodes {
		for _, m := range o.Polys[n].Masks {
			for i, st := range m.Tri.Subtris {
				if !m.SubtriActive(i) {
					continue
				}
				a, b, c := st.Xyz()
				io.Ff(&buf, "%25.17e %25.17e %25.17e\n", a[0], a[1], a[2])
				io.Ff(&buf, "%25.17e %25.17e %25.17e\n", b[0], b[1], b[2])
				io.Ff(&buf, "%25.17e %25.17e %25.17e\n", c[0], c[1], c[2])
				io.Ff(&conn, "%d %d %d\n", v+1, v+2, v+3)
				v += 3
			}
		}
	}
	buf.Write(conn.Bytes())
	return writeBufD(filename, &buf)
}

func writeBufD(filename string, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stat.Err(stat.FileError, "cannot write %s: %v", filename, r)
		}
	}()
	io.WriteFile(filename, buf)
	return
}

// dumpTriangle writes the offending triangle with a unique frame number
func (o *Domain) dumpTriangle(t *cut.Triangle) {
	t.ExportTec(io.Sf("triangle%08d.t", o.frame))
	o.frame++
}

func dist3(a, b []float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
