// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	os.MkdirAll("/tmp/knife/msh", 0777)
}

func comparePrimals(tst *testing.T, a, b *Primal) {
	chk.IntAssert(b.Nnode(), a.Nnode())
	chk.IntAssert(b.Nface(), a.Nface())
	chk.Ints(tst, "f2n", b.F2n, a.F2n)
	chk.Vector(tst, "coords", 1e-15, b.Coords, a.Coords)
}

func Test_read01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("read01. tri round trip")

	p, err := CubePrimal()
	if err != nil {
		tst.Errorf("cube failed: %v\n", err)
		return
	}
	fn := "/tmp/knife/msh/cube.tri"
	if err = p.ExportTri(fn); err != nil {
		tst.Errorf("export failed: %v\n", err)
		return
	}
	q, err := PrimalFromTri(fn)
	if err != nil {
		tst.Errorf("read failed: %v\n", err)
		return
	}
	comparePrimals(tst, p, q)
}

func Test_read02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("read02. fast round trip")

	p, err := CubePrimal()
	if err != nil {
		tst.Errorf("cube failed: %v\n", err)
		return
	}
	fn := "/tmp/knife/msh/cube.fgrid"
	if err = p.ExportFast(fn); err != nil {
		tst.Errorf("export failed: %v\n", err)
		return
	}
	q, err := PrimalFromFile(fn)
	if err != nil {
		tst.Errorf("read failed: %v\n", err)
		return
	}
	chk.IntAssert(q.Nnode(), p.Nnode())
	chk.IntAssert(q.Nface(), p.Nface())
	chk.Ints(tst, "f2n", q.F2n, p.F2n)
}

// writeUnformattedTri renders the unformatted record layout (sizing, xyz,
// vertex and component records) with either byte order and real size
func writeUnformattedTri(p *Primal, order binary.ByteOrder, realBytes int) []byte {
	var buf bytes.Buffer
	word := func(v int) { binary.Write(&buf, order, int32(v)) }
	word(8)
	word(p.Nnode())
	word(p.Nface())
	word(8)
	word(3 * p.Nnode() * realBytes)
	for i := 0; i < 3*p.Nnode(); i++ {
		if realBytes == 4 {
			binary.Write(&buf, order, math.Float32bits(float32(p.Coords[i])))
		} else {
			binary.Write(&buf, order, math.Float64bits(p.Coords[i]))
		}
	}
	word(3 * p.Nnode() * realBytes)
	word(3 * p.Nface() * 4)
	for face := 0; face < p.Nface(); face++ {
		for i := 0; i < 3; i++ {
			word(p.F2n[i+4*face] + 1)
		}
	}
	word(3 * p.Nface() * 4)
	word(p.Nface() * 4)
	for face := 0; face < p.Nface(); face++ {
		word(p.F2n[3+4*face])
	}
	word(p.Nface() * 4)
	return buf.Bytes()
}

func Test_read03(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("read03. unformatted tri, both byte orders")

	p, err := CubePrimal()
	if err != nil {
		tst.Errorf("cube failed: %v\n", err)
		return
	}
	ascii := "/tmp/knife/msh/plain.tri"
	if err = p.ExportTri(ascii); err != nil {
		tst.Errorf("export failed: %v\n", err)
		return
	}

	writeBin := func(fn string, b []byte) {
		var buf bytes.Buffer
		buf.Write(b)
		io.WriteFile(fn, &buf)
	}
	little := "/tmp/knife/msh/little.tri"
	big := "/tmp/knife/msh/big.tri"
	writeBin(little, writeUnformattedTri(p, binary.LittleEndian, 8))
	writeBin(big, writeUnformattedTri(p, binary.BigEndian, 8))

	// both renditions reproduce the same primal, byte-exact on re-export
	for i, fn := range []string{little, big, ascii} {
		q, err := PrimalFromTri(fn)
		if err != nil {
			tst.Errorf("read %s failed: %v\n", fn, err)
			return
		}
		comparePrimals(tst, p, q)
		out := io.Sf("/tmp/knife/msh/out%d.tri", i)
		if err = q.ExportTri(out); err != nil {
			tst.Errorf("re-export failed: %v\n", err)
			return
		}
		ref, _ := io.ReadFile(ascii)
		now, _ := io.ReadFile(out)
		if !bytes.Equal(ref, now) {
			tst.Errorf("re-export of %s differs from ascii export\n", fn)
			return
		}
	}

	// 4-byte reals survive with reduced precision
	small := "/tmp/knife/msh/small.tri"
	writeBin(small, writeUnformattedTri(p, binary.BigEndian, 4))
	q, err := PrimalFromTri(small)
	if err != nil {
		tst.Errorf("read failed: %v\n", err)
		return
	}
	chk.Vector(tst, "coords", 1e-6, q.Coords, p.Coords)
}
