// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/knife/stat"
)

// VTK cell code for linear triangles, as in the VTK file-formats spec
const VTK_TRIANGLE = 5

// ExportTri writes the ASCII .tri layout: sizes, xyz rows, one-based
// face nodes, then the patch-id block
func (o *Primal) ExportTri(filename string) (err error) {
	if filename == "" {
		filename = "primal.tri"
	}
	var buf bytes.Buffer
	io.Ff(&buf, "%d %d\n", o.Nnode(), o.Nface())
	for node := 0; node < o.Nnode(); node++ {
		io.Ff(&buf, "%25.17e %25.17e %25.17e\n", o.Coords[0+3*node], o.Coords[1+3*node], o.Coords[2+3*node])
	}
	for face := 0; face < o.Nface(); face++ {
		io.Ff(&buf, "%d %d %d\n", o.F2n[0+4*face]+1, o.F2n[1+4*face]+1, o.F2n[2+4*face]+1)
	}
	for face := 0; face < o.Nface(); face++ {
		io.Ff(&buf, "%d\n", o.F2n[3+4*face])
	}
	return writeFile(filename, &buf)
}

// ExportFast writes the ASCII FAST .fgrid layout
func (o *Primal) ExportFast(filename string) (err error) {
	if filename == "" {
		filename = "primal.fgrid"
	}
	var buf bytes.Buffer
	io.Ff(&buf, "%d %d %d\n", o.Nnode(), o.Nface(), o.Ncell())
	for i := 0; i < 3; i++ {
		for node := 0; node < o.Nnode(); node++ {
			io.Ff(&buf, "%25.17e\n", o.Coords[i+3*node])
		}
	}
	for face := 0; face < o.Nface(); face++ {
		io.Ff(&buf, "%d %d %d\n", o.F2n[0+4*face]+1, o.F2n[1+4*face]+1, o.F2n[2+4*face]+1)
	}
	for face := 0; face < o.Nface(); face++ {
		io.Ff(&buf, "%d\n", o.F2n[3+4*face])
	}
	for cell := 0; cell < o.Ncell(); cell++ {
		io.Ff(&buf, "%d %d %d %d\n", o.C2n[0+4*cell]+1, o.C2n[1+4*cell]+1, o.C2n[2+4*cell]+1, o.C2n[3+4*cell]+1)
	}
	return writeFile(filename, &buf)
}

// ExportSingleZoneTec writes all boundary faces as one Tecplot zone
func (o *Primal) ExportSingleZoneTec(filename string) (err error) {
	if filename == "" {
		filename = "primal.t"
	}
	var buf bytes.Buffer
	io.Ff(&buf, "title=\"tecplot knife primal geometry file\"\n")
	io.Ff(&buf, "variables=\"x\",\"y\",\"z\"\n")
	io.Ff(&buf, "zone t=surf, i=%d, j=%d, f=fepoint, et=triangle\n", o.Nnode(), o.Nface())
	for node := 0; node < o.Nnode(); node++ {
		io.Ff(&buf, "%25.17e %25.17e %25.17e\n", o.Coords[0+3*node], o.Coords[1+3*node], o.Coords[2+3*node])
	}
	for face := 0; face < o.Nface(); face++ {
		io.Ff(&buf, "%d %d %d\n", o.F2n[0+4*face]+1, o.F2n[1+4*face]+1, o.F2n[2+4*face]+1)
	}
	return writeFile(filename, &buf)
}

// ExportTec writes one Tecplot zone per boundary patch, each with a
// compact local node numbering
func (o *Primal) ExportTec(filename string) (err error) {
	if filename == "" {
		filename = "primal.t"
	}
	var buf bytes.Buffer
	io.Ff(&buf, "title=\"tecplot knife primal geometry file\"\n")
	io.Ff(&buf, "variables=\"x\",\"y\",\"z\"\n")
	for _, faceId := range o.patchIds() {
		g2l, l2g, ntri := o.patchNodes(faceId)
		io.Ff(&buf, "zone t=face%d, i=%d, j=%d, f=fepoint, et=triangle\n", faceId, len(l2g), ntri)
		for _, node := range l2g {
			io.Ff(&buf, "%25.17e %25.17e %25.17e\n", o.Coords[0+3*node], o.Coords[1+3*node], o.Coords[2+3*node])
		}
		for face := 0; face < o.Nface(); face++ {
			if o.F2n[3+4*face] == faceId {
				io.Ff(&buf, "%d %d %d\n", g2l[o.F2n[0+4*face]]+1, g2l[o.F2n[1+4*face]]+1, g2l[o.F2n[2+4*face]]+1)
			}
		}
	}
	return writeFile(filename, &buf)
}

// ExportVtk writes a VTK UnstructuredGrid .vtu with one Piece per
// boundary patch
func (o *Primal) ExportVtk(filename string) (err error) {
	if filename == "" {
		filename = "primal.vtu"
	}
	var buf bytes.Buffer
	io.Ff(&buf, "<?xml version=\"1.0\"?>\n")
	io.Ff(&buf, "<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	io.Ff(&buf, "  <UnstructuredGrid>\n")
	for _, faceId := range o.patchIds() {
		g2l, l2g, ntri := o.patchNodes(faceId)
		io.Ff(&buf, "    <Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(l2g), ntri)
		io.Ff(&buf, "      <Points Scalars=\"my_scalars\">\n")
		io.Ff(&buf, "        <DataArray type=\"Float32\" NumberOfComponents=\"3\" format=\"ascii\">\n")
		for _, node := range l2g {
			io.Ff(&buf, "%25.17e %25.17e %25.17e\n", o.Coords[0+3*node], o.Coords[1+3*node], o.Coords[2+3*node])
		}
		io.Ff(&buf, "        </DataArray>\n")
		io.Ff(&buf, "      </Points>\n")
		io.Ff(&buf, "      <Cells>\n")
		io.Ff(&buf, "        <DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
		for face := 0; face < o.Nface(); face++ {
			if o.F2n[3+4*face] == faceId {
				io.Ff(&buf, "%d %d %d\n", g2l[o.F2n[0+4*face]], g2l[o.F2n[1+4*face]], g2l[o.F2n[2+4*face]])
			}
		}
		io.Ff(&buf, "        </DataArray>\n")
		io.Ff(&buf, "        <DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
		for i := 0; i < ntri; i++ {
			io.Ff(&buf, "%d\n", 3*(i+1))
		}
		io.Ff(&buf, "        </DataArray>\n")
		io.Ff(&buf, "        <DataArray type=\"Int32\" Name=\"types\" format=\"ascii\">\n")
		for i := 0; i < ntri; i++ {
			io.Ff(&buf, "%d\n", VTK_TRIANGLE)
		}
		io.Ff(&buf, "        </DataArray>\n")
		io.Ff(&buf, "      </Cells>\n")
		io.Ff(&buf, "    </Piece>\n")
	}
	io.Ff(&buf, "  </UnstructuredGrid>\n")
	io.Ff(&buf, "</VTKFile>\n")
	return writeFile(filename, &buf)
}

// patchIds returns the distinct boundary patch ids, ascending
func (o *Primal) patchIds() []int {
	ids := make([]int, o.Nface())
	for face := 0; face < o.Nface(); face++ {
		ids[face] = o.F2n[3+4*face]
	}
	return utl.IntUnique(ids)
}

// patchNodes compacts the nodes referenced by one patch
func (o *Primal) patchNodes(faceId int) (g2l, l2g []int, ntri int) {
	g2l = make([]int, o.Nnode())
	for i := range g2l {
		g2l[i] = -1
	}
	for face := 0; face < o.Nface(); face++ {
		if o.F2n[3+4*face] == faceId {
			ntri++
			for i := 0; i < 3; i++ {
				g2l[o.F2n[i+4*face]] = 1
			}
		}
	}
	for node := 0; node < o.Nnode(); node++ {
		if g2l[node] >= 0 {
			g2l[node] = len(l2g)
			l2g = append(l2g, node)
		}
	}
	return
}

func writeFile(filename string, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stat.Err(stat.FileError, "cannot write %s: %v", filename, r)
		}
	}()
	io.WriteFile(filename, buf)
	return
}
