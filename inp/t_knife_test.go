// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	os.MkdirAll("/tmp/knife/inp", 0777)
	InitLogFile("/tmp/knife/inp", "test")
}

func Test_knife01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("knife01. input script with transforms")

	// two-patch surface: one triangle per patch
	tri := "/tmp/knife/inp/two.tri"
	var buf bytes.Buffer
	io.Ff(&buf, "4 2\n")
	io.Ff(&buf, "%25.17e %25.17e %25.17e\n", 0.0, 0.0, 0.0)
	io.Ff(&buf, "%25.17e %25.17e %25.17e\n", 1.0, 0.0, 0.0)
	io.Ff(&buf, "%25.17e %25.17e %25.17e\n", 0.0, 1.0, 0.0)
	io.Ff(&buf, "%25.17e %25.17e %25.17e\n", 0.0, 0.0, 1.0)
	io.Ff(&buf, "1 2 3\n")
	io.Ff(&buf, "1 2 4\n")
	io.Ff(&buf, "1\n")
	io.Ff(&buf, "2\n")
	io.WriteFile(tri, &buf)

	script := "/tmp/knife/inp/two.knife"
	var sbuf bytes.Buffer
	io.Ff(&sbuf, "%s\n", tri)
	io.Ff(&sbuf, "inward\n")
	io.Ff(&sbuf, "translate 1 0 0\n")
	io.Ff(&sbuf, "scale 2\n")
	io.Ff(&sbuf, "faces 2\n")
	io.WriteFile(script, &sbuf)

	primal, surface, err := ReadKnife(script, false)
	if err != nil {
		tst.Errorf("read_knife failed: %v\n", err)
		return
	}

	// translate then scale about the origin
	xyz, _ := primal.Xyz(0)
	chk.Vector(tst, "node 0", 1e-15, xyz, []float64{2, 0, 0})
	xyz, _ = primal.Xyz(3)
	chk.Vector(tst, "node 3", 1e-15, xyz, []float64{2, 0, 2})

	// only patch 2 is kept, with compact nodes
	if !surface.Inward {
		tst.Errorf("inward flag lost\n")
		return
	}
	chk.IntAssert(surface.Ntriangle(), 1)
	chk.IntAssert(surface.Nnode(), 3)
	tri2n, _ := surface.Triangle(0)
	chk.IntAssert(tri2n[3], 2)
	chk.Ints(tst, "global", surface.Global, []int{0, 1, 3})

	// rotate by 90 degrees about z
	script2 := "/tmp/knife/inp/rot.knife"
	var rbuf bytes.Buffer
	io.Ff(&rbuf, "%s\n", tri)
	io.Ff(&rbuf, "rotate 0 0 1 90\n")
	io.WriteFile(script2, &rbuf)
	primal2, surface2, err := ReadKnife(script2, false)
	if err != nil {
		tst.Errorf("read_knife failed: %v\n", err)
		return
	}
	xyz, _ = primal2.Xyz(1)
	chk.Vector(tst, "rotated node 1", 1e-15, xyz, []float64{0, 1, 0})
	chk.IntAssert(surface2.Ntriangle(), 2) // no faces directive keeps all
}
