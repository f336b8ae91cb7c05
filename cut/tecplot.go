// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/knife/stat"
)

// ExportTec dumps the triangle's refinement as one Tecplot zone, for
// offline inspection of a failing cut
func (o *Triangle) ExportTec(filename string) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "title=\"tecplot knife triangle file\"\n")
	io.Ff(&buf, "variables=\"x\",\"y\",\"z\"\n")
	io.Ff(&buf, "zone t=tri%d, i=%d, j=%d, f=fepoint, et=triangle\n", o.Id, len(o.Subnodes), len(o.Subtris))
	index := make(map[*Subnode]int)
	for i, sn := range o.Subnodes {
		index[sn] = i
		xyz := sn.XyzIn(o)
		io.Ff(&buf, "%25.17e %25.17e %25.17e\n", xyz[0], xyz[1], xyz[2])
	}
	for _, st := range o.Subtris {
		io.Ff(&buf, "%d %d %d\n", index[st.Sn[0]]+1, index[st.Sn[1]]+1, index[st.Sn[2]]+1)
	}
	return writeBuf(filename, &buf)
}

// ExportTec dumps the mask's active subtris as one Tecplot zone
func (o *Mask) ExportTec(filename string) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "title=\"tecplot knife mask file\"\n")
	io.Ff(&buf, "variables=\"x\",\"y\",\"z\"\n")
	io.Ff(&buf, "zone t=mask%d, i=%d, j=%d, f=fepoint, et=triangle\n", o.Tri.Id, len(o.Tri.Subnodes), o.ActiveCount())
	index := make(map[*Subnode]int)
	for i, sn := range o.Tri.Subnodes {
		index[sn] = i
		xyz := sn.XyzIn(o.Tri)
		io.Ff(&buf, "%25.17e %25.17e %25.17e\n", xyz[0], xyz[1], xyz[2])
	}
	for i, st := range o.Tri.Subtris {
		if !o.SubtriActive(i) {
			continue
		}
		io.Ff(&buf, "%d %d %d\n", index[st.Sn[0]]+1, index[st.Sn[1]]+1, index[st.Sn[2]]+1)
	}
	return writeBuf(filename, &buf)
}

func writeBuf(filename string, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stat.Err(stat.FileError, "cannot write %s: %v", filename, r)
		}
	}()
	io.WriteFile(filename, buf)
	return
}
