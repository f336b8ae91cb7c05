// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the primal tetrahedral mesh and the cutting
// surface: storage, derived connectivity, queries, transforms, subsets,
// and the file formats used to exchange them
package msh

// Adj maps a node to the items (cells or faces) referencing it
type Adj struct {
	Items [][]int // [nnode] incident item ids, in insertion order
}

// NewAdj allocates an adjacency index for nnode nodes
func NewAdj(nnode int) (o *Adj) {
	o = new(Adj)
	o.Items = make([][]int, nnode)
	return
}

// Add registers item as incident to node
func (o *Adj) Add(node, item int) {
	o.Items[node] = append(o.Items[node], item)
}

// Of returns the items incident to node, in insertion order
func (o *Adj) Of(node int) []int {
	if node < 0 || node >= len(o.Items) {
		return nil
	}
	return o.Items[node]
}
