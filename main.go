// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// knife surface grid conversion front-end: reads a surface grid,
// optionally keeps a subset of its boundary patches, and exports the
// .tri, .fgrid, Tecplot and VTK renditions
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/inp"
	"github.com/cpmech/knife/msh"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// log file next to the outputs
	if err := inp.InitLogFile(".", "knife_convert"); err != nil {
		io.PfRed("cannot create log file: %v\n", err)
		return
	}
	defer inp.FlushLog()

	// message
	io.PfWhite("\nknife -- surface grid conversion\n\n")

	interrogate := flag.Bool("i", false, "print the record structure of an unformatted .tri file")
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("usage: knife [-i] input.{fgrid|tri} [ faceId ... ]")
	}
	filename := flag.Arg(0)

	if *interrogate {
		if err := msh.InterrogateTri(filename); err != nil {
			chk.Panic("interrogation failed: %v", err)
		}
		return
	}

	primal, err := msh.PrimalFromFile(filename)
	if err != nil {
		chk.Panic("cannot read %s: %v", filename, err)
	}
	io.Pf("%s: nnode=%d nface=%d ncell=%d\n", filename, primal.Nnode(), primal.Nface(), primal.Ncell())
	inp.Log("convert %s: nnode=%d nface=%d ncell=%d", filename, primal.Nnode(), primal.Nface(), primal.Ncell())

	// keep a patch subset when face ids are given
	if len(flag.Args()) > 1 {
		patchSet := make(map[int]bool)
		for _, arg := range flag.Args()[1:] {
			patchSet[io.Atoi(arg)] = true
		}
		if primal, err = primal.Subset(patchSet); err != nil {
			chk.Panic("subset failed: %v", err)
		}
		io.Pf("subset: nnode=%d nface=%d\n", primal.Nnode(), primal.Nface())
	}

	if err = primal.ExportTri(""); err != nil {
		chk.Panic("export tri failed: %v", err)
	}
	if err = primal.ExportFast(""); err != nil {
		chk.Panic("export fast failed: %v", err)
	}
	if err = primal.ExportTec(""); err != nil {
		chk.Panic("export tec failed: %v", err)
	}
	if err = primal.ExportVtk(""); err != nil {
		chk.Panic("export vtk failed: %v", err)
	}

	surface, err := msh.NewSurface(primal, nil, false)
	if err != nil {
		chk.Panic("surface creation failed: %v", err)
	}
	if err = surface.ExportTec("massoud.t"); err != nil {
		chk.Panic("surface export failed: %v", err)
	}
}
