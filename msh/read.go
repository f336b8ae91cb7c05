// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/stat"
)

// record markers announcing an unformatted .tri file: the byte length of
// the two-integer sizing record, native or byte-swapped
const (
	triMarker        = 8
	triMarkerSwapped = 134217728
)

// PrimalFromFile reads a primal grid, dispatching on the filename
// extension: *.tri and *.fgrid (FAST)
func PrimalFromFile(filename string) (o *Primal, err error) {
	switch {
	case strings.HasSuffix(filename, "tri"):
		return PrimalFromTri(filename)
	case strings.HasSuffix(filename, "rid"):
		return PrimalFromFast(filename)
	}
	return nil, stat.Err(stat.FileError, "from_file: input file name extension unknown: %s", filename)
}

// PrimalFromFast reads an ASCII FAST .fgrid file
func PrimalFromFast(filename string) (o *Primal, err error) {
	tokens, err := readTokens(filename)
	if err != nil {
		return
	}
	next := tokenCursor(tokens)
	nnode, err := nextInt(next)
	if err != nil {
		return
	}
	nface, err := nextInt(next)
	if err != nil {
		return
	}
	ncell, err := nextInt(next)
	if err != nil {
		return
	}
	o = NewPrimal(nnode, nface, ncell)
	for i := 0; i < 3; i++ {
		for node := 0; node < nnode; node++ {
			if o.Coords[i+3*node], err = nextFloat(next); err != nil {
				return nil, err
			}
		}
	}
	for face := 0; face < nface; face++ {
		for i := 0; i < 3; i++ {
			n, e := nextInt(next)
			if e != nil {
				return nil, e
			}
			o.F2n[i+4*face] = n - 1
			o.FaceAdj.Add(n-1, face)
		}
	}
	for face := 0; face < nface; face++ {
		if o.F2n[3+4*face], err = nextInt(next); err != nil {
			return nil, err
		}
	}
	for cell := 0; cell < ncell; cell++ {
		for i := 0; i < 4; i++ {
			n, e := nextInt(next)
			if e != nil {
				return nil, e
			}
			o.C2n[i+4*cell] = n - 1
			o.CellAdj.Add(n-1, cell)
		}
	}
	err = o.EstablishAll()
	return
}

// PrimalFromTri reads a .tri file, detecting the unformatted layout by
// its leading record marker
func PrimalFromTri(filename string) (o *Primal, err error) {
	b, e := io.ReadFile(filename)
	if e != nil {
		return nil, stat.Err(stat.FileError, "from_tri: cannot open %s", filename)
	}
	if len(b) >= 4 {
		header := int(int32(binary.LittleEndian.Uint32(b[:4])))
		if header == triMarker || header == triMarkerSwapped {
			return primalFromUnformattedTri(b)
		}
	}
	return primalFromAsciiTri(b)
}

// InterrogateTri prints the record structure of an unformatted .tri file
func InterrogateTri(filename string) (err error) {
	b, e := io.ReadFile(filename)
	if e != nil {
		return stat.Err(stat.FileError, "interrogate: cannot open %s", filename)
	}
	io.Pf("%s :\n", filename)
	if len(b) < 20 {
		return stat.Err(stat.FileError, "interrogate: %s too short for a sizing record", filename)
	}
	header := int(int32(binary.LittleEndian.Uint32(b[:4])))
	if header != triMarker && header != triMarkerSwapped {
		io.Pf(" is ascii, %d\n", header)
		return
	}
	order := byteOrder(header)
	nnode := int(int32(order.Uint32(b[4:8])))
	nface := int(int32(order.Uint32(b[8:12])))
	footer := int(int32(order.Uint32(b[12:16])))
	io.Pf("first record %d %d %d %d\n", triMarker, nnode, nface, footer)
	xyzBytes := int(int32(order.Uint32(b[16:20])))
	io.Pf("xyzs are %d bytes each\n", xyzBytes/3/nnode)
	return
}

func byteOrder(header int) binary.ByteOrder {
	if header == triMarkerSwapped {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func primalFromAsciiTri(b []byte) (o *Primal, err error) {
	next := tokenCursor(strings.Fields(string(b)))
	nnode, err := nextInt(next)
	if err != nil {
		return
	}
	nface, err := nextInt(next)
	if err != nil {
		return
	}
	o = NewPrimal(nnode, nface, 0)
	for node := 0; node < nnode; node++ {
		for i := 0; i < 3; i++ {
			if o.Coords[i+3*node], err = nextFloat(next); err != nil {
				return nil, err
			}
		}
	}
	for face := 0; face < nface; face++ {
		for i := 0; i < 3; i++ {
			n, e := nextInt(next)
			if e != nil {
				return nil, e
			}
			o.F2n[i+4*face] = n - 1
			o.FaceAdj.Add(n-1, face)
		}
	}
	// a truncated id block is tolerated: missing ids get greatest+1
	greatest := 0
	truncated := false
	for face := 0; face < nface; face++ {
		if !truncated {
			if id, e := nextInt(next); e == nil {
				o.F2n[3+4*face] = id
				if id > greatest {
					greatest = id
				}
				continue
			}
			truncated = true
		}
		o.F2n[3+4*face] = greatest + 1
	}
	err = o.EstablishAll()
	return
}

func primalFromUnformattedTri(b []byte) (o *Primal, err error) {
	header := int(int32(binary.LittleEndian.Uint32(b[:4])))
	order := byteOrder(header)
	pos := 0
	word := func() (v int, e error) {
		if pos+4 > len(b) {
			return 0, stat.Err(stat.FileError, "unformatted tri: truncated at byte %d", pos)
		}
		v = int(int32(order.Uint32(b[pos : pos+4])))
		pos += 4
		return
	}

	// sizing record
	head, err := word()
	if err != nil {
		return
	}
	nnode, err := word()
	if err != nil {
		return
	}
	nface, err := word()
	if err != nil {
		return
	}
	foot, err := word()
	if err != nil {
		return
	}
	if head != foot {
		return nil, stat.Err(stat.FileError, "unformatted tri: sizing record mismatch %d %d", head, foot)
	}
	o = NewPrimal(nnode, nface, 0)

	// xyz record; the marker fixes the real byte size
	if head, err = word(); err != nil {
		return
	}
	realBytes := head / 3 / nnode
	for i := 0; i < 3*nnode; i++ {
		switch realBytes {
		case 4:
			if pos+4 > len(b) {
				return nil, stat.Err(stat.FileError, "unformatted tri: truncated 4 byte xyz")
			}
			o.Coords[i] = float64(math.Float32frombits(order.Uint32(b[pos : pos+4])))
			pos += 4
		case 8:
			if pos+8 > len(b) {
				return nil, stat.Err(stat.FileError, "unformatted tri: truncated 8 byte xyz")
			}
			o.Coords[i] = math.Float64frombits(order.Uint64(b[pos : pos+8]))
			pos += 8
		default:
			return nil, stat.Err(stat.FileError, "unformatted tri: xyz byte size %d", realBytes)
		}
	}
	if foot, err = word(); err != nil {
		return
	}
	if head != foot {
		return nil, stat.Err(stat.FileError, "unformatted tri: xyz record mismatch %d %d", head, foot)
	}

	// vertex record
	if head, err = word(); err != nil {
		return
	}
	if head != 3*nface*4 {
		return nil, stat.Err(stat.FileError, "unformatted tri: vertex record wrong size %d", head)
	}
	for face := 0; face < nface; face++ {
		for i := 0; i < 3; i++ {
			n, e := word()
			if e != nil {
				return nil, e
			}
			o.F2n[i+4*face] = n - 1
			o.FaceAdj.Add(n-1, face)
		}
	}
	if foot, err = word(); err != nil {
		return
	}
	if head != foot {
		return nil, stat.Err(stat.FileError, "unformatted tri: vertex record mismatch %d %d", head, foot)
	}

	// component record
	if head, err = word(); err != nil {
		return
	}
	if head != nface*4 {
		return nil, stat.Err(stat.FileError, "unformatted tri: component record wrong size %d", head)
	}
	for face := 0; face < nface; face++ {
		if o.F2n[3+4*face], err = word(); err != nil {
			return nil, err
		}
	}
	if foot, err = word(); err != nil {
		return
	}
	if head != foot {
		return nil, stat.Err(stat.FileError, "unformatted tri: component record mismatch %d %d", head, foot)
	}

	err = o.EstablishAll()
	return
}

// token scanning helpers shared by the ASCII readers

func readTokens(filename string) (tokens []string, err error) {
	b, e := io.ReadFile(filename)
	if e != nil {
		return nil, stat.Err(stat.FileError, "cannot open %s", filename)
	}
	return strings.Fields(string(b)), nil
}

func tokenCursor(tokens []string) func() (string, bool) {
	pos := 0
	return func() (string, bool) {
		if pos >= len(tokens) {
			return "", false
		}
		tok := tokens[pos]
		pos++
		return tok, true
	}
}

func nextInt(next func() (string, bool)) (int, error) {
	tok, ok := next()
	if !ok {
		return 0, stat.Err(stat.FileError, "read error: integer expected")
	}
	return io.Atoi(tok), nil
}

func nextFloat(next func() (string, bool)) (float64, error) {
	tok, ok := next()
	if !ok {
		return 0, stat.Err(stat.FileError, "read error: real expected")
	}
	return io.Atof(tok), nil
}
