// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/msh"
	"github.com/cpmech/knife/stat"
)

// ReadKnife parses a knife input script: the surface mesh file path on
// the first line, then transform directives in order, terminated by an
// optional "faces" directive selecting boundary patches. It returns the
// transformed surface primal and the cutting surface built from it.
//
//	outward            surface normal flag = outward (default)
//	inward             surface normal flag = inward
//	translate dx dy dz
//	rotate nx ny nz angle_degrees
//	scale s
//	flip_yz
//	flip_zy
//	reflect_y
//	massoud path
//	faces id ...
func ReadKnife(filename string, verbose bool) (primal *msh.Primal, surface *msh.Surface, err error) {
	b, e := io.ReadFile(filename)
	if e != nil {
		return nil, nil, stat.Err(stat.FileError, "knife input: cannot open %s", filename)
	}
	tokens := strings.Fields(string(b))
	if len(tokens) == 0 {
		return nil, nil, stat.Err(stat.FileError, "knife input: %s is empty", filename)
	}
	pos := 0
	next := func() (string, bool) {
		if pos >= len(tokens) {
			return "", false
		}
		tok := tokens[pos]
		pos++
		return tok, true
	}
	nextFloat := func(what string) (v float64, e error) {
		tok, ok := next()
		if !ok {
			return 0, stat.Err(stat.FileError, "knife input: %s argument missing", what)
		}
		return io.Atof(tok), nil
	}

	surfaceFilename, _ := next()
	primal, err = msh.PrimalFromFile(surfaceFilename)
	if LogErr(err, "input %s: surface %s", filename, surfaceFilename) {
		return nil, nil, err
	}
	Log("input %s: surface %s nnode=%d nface=%d", filename, surfaceFilename, primal.Nnode(), primal.Nface())

	inward := false
	readFaces := false
	for !readFaces {
		tok, ok := next()
		if !ok {
			break
		}
		switch tok {
		case "outward":
			inward = false
		case "inward":
			inward = true
		case "translate":
			var dx, dy, dz float64
			if dx, err = nextFloat("translate"); err != nil {
				return nil, nil, err
			}
			if dy, err = nextFloat("translate"); err != nil {
				return nil, nil, err
			}
			if dz, err = nextFloat("translate"); err != nil {
				return nil, nil, err
			}
			primal.Translate(dx, dy, dz)
		case "rotate":
			var nx, ny, nz, angle float64
			if nx, err = nextFloat("rotate"); err != nil {
				return nil, nil, err
			}
			if ny, err = nextFloat("rotate"); err != nil {
				return nil, nil, err
			}
			if nz, err = nextFloat("rotate"); err != nil {
				return nil, nil, err
			}
			if angle, err = nextFloat("rotate"); err != nil {
				return nil, nil, err
			}
			primal.Rotate(nx, ny, nz, angle*math.Pi/180.0)
		case "scale":
			var s float64
			if s, err = nextFloat("scale"); err != nil {
				return nil, nil, err
			}
			primal.ScaleAbout(0, 0, 0, s)
		case "flip_yz":
			primal.FlipYz()
		case "flip_zy":
			primal.FlipZy()
		case "reflect_y":
			primal.ReflectY()
		case "massoud":
			path, ok := next()
			if !ok {
				return nil, nil, stat.Err(stat.FileError, "knife input: massoud path missing")
			}
			if err = primal.ApplyMassoud(path, verbose); err != nil {
				return nil, nil, err
			}
		case "faces":
			readFaces = true
		default:
			return nil, nil, stat.Err(stat.FileError, "knife input: unknown directive %q", tok)
		}
	}

	var patchSet map[int]bool
	if readFaces {
		patchSet = make(map[int]bool)
		for {
			tok, ok := next()
			if !ok {
				break
			}
			patchSet[io.Atoi(tok)] = true
		}
		if len(patchSet) == 0 {
			return nil, nil, stat.Err(stat.Failure, "knife input: faces directive without patch ids")
		}
	}

	surface, err = msh.NewSurface(primal, patchSet, inward)
	return
}
