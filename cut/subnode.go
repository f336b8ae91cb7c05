// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

// Subnode is a point of one triangle's planar refinement, in barycentric
// coordinates with u0+u1+u2=1. The three corners are subnodes 0/1/2.
type Subnode struct {
	U0, U1, U2 float64       // barycentric coordinates
	N          *Node         // parent node (corners and intersection points)
	Ins        *Intersection // originating intersection, nil for corners
}

// NewSubnode creates a subnode
func NewSubnode(u0, u1, u2 float64, node *Node, ins *Intersection) *Subnode {
	return &Subnode{u0, u1, u2, node, ins}
}

// XyzIn returns the position of the subnode inside triangle t
func (o *Subnode) XyzIn(t *Triangle) []float64 {
	xyz := make([]float64, 3)
	for i := 0; i < 3; i++ {
		xyz[i] = o.U0*t.Node0.Xyz[i] + o.U1*t.Node1.Xyz[i] + o.U2*t.Node2.Xyz[i]
	}
	return xyz
}

// U returns the barycentric coordinates as a slice
func (o *Subnode) U() []float64 {
	return []float64{o.U0, o.U1, o.U2}
}
