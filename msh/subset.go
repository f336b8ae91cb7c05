// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/knife/stat"
)

// Subset returns a new primal holding only the faces whose patch id is
// in patchSet, with nodes renumbered compactly and patch ids renumbered
// one-based in order of first appearance
func (o *Primal) Subset(patchSet map[int]bool) (sub *Primal, err error) {

	maxFaceId := o.MaxFaceId()

	nodeO2n := make([]int, o.Nnode())
	for i := range nodeO2n {
		nodeO2n[i] = -1
	}
	faceO2n := make([]int, o.Nface())
	for i := range faceO2n {
		faceO2n[i] = -1
	}
	bcsO2n := make([]int, maxFaceId)
	for i := range bcsO2n {
		bcsO2n[i] = -1
	}

	// mark kept faces, nodes and patch ids
	nface, nnode, nbcs := 0, 0, 0
	for face := 0; face < o.Nface(); face++ {
		id := o.F2n[3+4*face]
		if !patchSet[id] {
			continue
		}
		if id < 1 {
			return nil, stat.Err(stat.Failure, "subset: low patch id %d", id)
		}
		faceO2n[face] = nface
		nface++
		for i := 0; i < 3; i++ {
			node := o.F2n[i+4*face]
			if nodeO2n[node] < 0 {
				nodeO2n[node] = nnode
				nnode++
			}
		}
		// kept patch ids are renumbered one-based as they first appear
		if bcsO2n[id-1] < 0 {
			nbcs++
			bcsO2n[id-1] = nbcs
		}
	}

	sub = NewPrimal(nnode, nface, 0)
	for node := 0; node < o.Nnode(); node++ {
		if nodeO2n[node] >= 0 {
			copy(sub.Coords[3*nodeO2n[node]:3*nodeO2n[node]+3], o.Coords[3*node:3*node+3])
		}
	}
	for face := 0; face < o.Nface(); face++ {
		if faceO2n[face] < 0 {
			continue
		}
		for i := 0; i < 3; i++ {
			node := nodeO2n[o.F2n[i+4*face]]
			sub.F2n[i+4*faceO2n[face]] = node
			sub.FaceAdj.Add(node, faceO2n[face])
		}
		sub.F2n[3+4*faceO2n[face]] = bcsO2n[o.F2n[3+4*face]-1]
	}

	err = sub.EstablishAll()
	return
}
