// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/stat"
)

// Translate shifts all node coordinates by (dx,dy,dz)
func (o *Primal) Translate(dx, dy, dz float64) {
	for node := 0; node < o.Nnode(); node++ {
		o.Coords[0+3*node] += dx
		o.Coords[1+3*node] += dy
		o.Coords[2+3*node] += dz
	}
}

// Rotate rotates all nodes about the axis (nx,ny,nz) through the origin
// by angle (radians), via the Rodrigues formula
func (o *Primal) Rotate(nx, ny, nz, angle float64) {
	norm := []float64{nx, ny, nz}
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)
	xyz := make([]float64, 3)
	for node := 0; node < o.Nnode(); node++ {
		copy(xyz, o.Coords[3*node:3*node+3])
		dot := xyz[0]*norm[0] + xyz[1]*norm[1] + xyz[2]*norm[2]
		cross := []float64{
			norm[1]*xyz[2] - norm[2]*xyz[1],
			norm[2]*xyz[0] - norm[0]*xyz[2],
			norm[0]*xyz[1] - norm[1]*xyz[0],
		}
		for i := 0; i < 3; i++ {
			o.Coords[i+3*node] = xyz[i]*cosA + norm[i]*dot*(1.0-cosA) + cross[i]*sinA
		}
	}
}

// ScaleAbout scales all nodes about the point (x,y,z)
func (o *Primal) ScaleAbout(x, y, z, scale float64) {
	for node := 0; node < o.Nnode(); node++ {
		o.Coords[0+3*node] = x + scale*(o.Coords[0+3*node]-x)
		o.Coords[1+3*node] = y + scale*(o.Coords[1+3*node]-y)
		o.Coords[2+3*node] = z + scale*(o.Coords[2+3*node]-z)
	}
}

// FlipYz maps (x,y,z) to (x,-z,y)
func (o *Primal) FlipYz() {
	for node := 0; node < o.Nnode(); node++ {
		y := o.Coords[1+3*node]
		z := o.Coords[2+3*node]
		o.Coords[1+3*node] = -z
		o.Coords[2+3*node] = y
	}
}

// FlipZy maps (x,y,z) to (x,z,-y)
func (o *Primal) FlipZy() {
	for node := 0; node < o.Nnode(); node++ {
		y := o.Coords[1+3*node]
		z := o.Coords[2+3*node]
		o.Coords[1+3*node] = z
		o.Coords[2+3*node] = -y
	}
}

// ReflectY maps (x,y,z) to (x,-y,z)
func (o *Primal) ReflectY() {
	for node := 0; node < o.Nnode(); node++ {
		o.Coords[1+3*node] = -o.Coords[1+3*node]
	}
}

// FlipFaceNormals reverses the orientation of every boundary face
func (o *Primal) FlipFaceNormals() {
	for face := 0; face < o.Nface(); face++ {
		o.F2n[0+4*face], o.F2n[1+4*face] = o.F2n[1+4*face], o.F2n[0+4*face]
	}
}

// ApplyMassoud replaces node coordinates with the deformed positions
// held by a Tecplot FEPOINT deformation file. Rows carry x y z and a
// one-based global node id followed by sensitivity columns, which are
// skipped
func (o *Primal) ApplyMassoud(filename string, verbose bool) (err error) {
	if verbose {
		io.Pf("applying massoud : %s\n", filename)
	}
	b, e := io.ReadFile(filename)
	if e != nil {
		return stat.Err(stat.Failure, "massoud: cannot open %s", filename)
	}
	tokens := strings.Fields(string(b))
	pos := 0
	next := func() (string, bool) {
		if pos >= len(tokens) {
			return "", false
		}
		tok := tokens[pos]
		pos++
		return tok, true
	}
	seek := func(want string) bool {
		for {
			tok, ok := next()
			if !ok {
				return false
			}
			if tok == want {
				return true
			}
		}
	}
	if !seek("VARIABLES") {
		return stat.Err(stat.Failure, "massoud: read to 'VARIABLES' failed")
	}
	next() // "="
	nvar := 0
	tok, ok := next()
	for ok && tok != "ZONE" {
		nvar++
		if verbose {
			io.Pf("%6d %s\n", nvar, tok)
		}
		tok, ok = next()
	}
	if !ok {
		return stat.Err(stat.Failure, "massoud: read to 'ZONE' failed")
	}
	if !seek("I") {
		return stat.Err(stat.Failure, "massoud: read to 'I' failed")
	}
	next() // "="
	tok, ok = next()
	if !ok {
		return stat.Err(stat.Failure, "massoud: read of number of nodes failed")
	}
	nnode := io.Atoi(strings.TrimSuffix(tok, ","))
	if verbose {
		io.Pf("%d nodes in massoud file\n", nnode)
	}
	if !seek("F=FEPOINT") {
		return stat.Err(stat.Failure, "massoud: read to 'F=FEPOINT' failed")
	}
	for node := 0; node < nnode; node++ {
		if pos+nvar > len(tokens) {
			return stat.Err(stat.Failure, "massoud: row %d truncated", node)
		}
		x := io.Atof(tokens[pos+0])
		y := io.Atof(tokens[pos+1])
		z := io.Atof(tokens[pos+2])
		global := io.Atoi(tokens[pos+3]) - 1
		pos += nvar // trailing sensitivity columns skipped
		if global < 0 || global >= o.Nnode() {
			return stat.Err(stat.Failure, "massoud: id %d not within %d nodes", global, o.Nnode())
		}
		o.Coords[0+3*global] = x
		o.Coords[1+3*global] = y
		o.Coords[2+3*global] = z
	}
	return
}
