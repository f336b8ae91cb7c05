// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Orient3d returns six times the signed volume of the tetrahedron
// (a,b,c,d): positive when d lies on the side of plane (a,b,c) that its
// right-hand normal points to
func Orient3d(a, b, c, d []float64) float64 {
	b0, b1, b2 := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	c0, c1, c2 := c[0]-a[0], c[1]-a[1], c[2]-a[2]
	d0, d1, d2 := d[0]-a[0], d[1]-a[1], d[2]-a[2]
	return b0*(c1*d2-c2*d1) - b1*(c0*d2-c2*d0) + b2*(c0*d1-c1*d0)
}

// TetVolume returns the signed volume of the tetrahedron (a,b,c,d)
func TetVolume(a, b, c, d []float64) float64 {
	return Orient3d(a, b, c, d) / 6.0
}

// TriNormal returns the (non-unit) right-hand normal of triangle (a,b,c):
// half its magnitude is the triangle area
func TriNormal(a, b, c []float64) []float64 {
	u := []float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := []float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// TriArea returns the area of triangle (a,b,c)
func TriArea(a, b, c []float64) float64 {
	return 0.5 * la.VecNorm(TriNormal(a, b, c))
}

// ClosestPointOnTri returns the point of triangle (a,b,c) closest to p
func ClosestPointOnTri(p, a, b, c []float64) []float64 {
	ab := sub3(b, a)
	ac := sub3(c, a)
	ap := sub3(p, a)
	d1 := dot3(ab, ap)
	d2 := dot3(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return []float64{a[0], a[1], a[2]}
	}
	bp := sub3(p, b)
	d3 := dot3(ab, bp)
	d4 := dot3(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return []float64{b[0], b[1], b[2]}
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		t := d1 / (d1 - d3)
		return lerp3(a, ab, t)
	}
	cp := sub3(p, c)
	d5 := dot3(ab, cp)
	d6 := dot3(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return []float64{c[0], c[1], c[2]}
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		t := d2 / (d2 - d6)
		return lerp3(a, ac, t)
	}
	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		t := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		bc := sub3(c, b)
		return lerp3(b, bc, t)
	}
	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	q := make([]float64, 3)
	for i := 0; i < 3; i++ {
		q[i] = a[i] + ab[i]*v + ac[i]*w
	}
	return q
}

func sub3(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot3(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func lerp3(a, d []float64, t float64) []float64 {
	return []float64{a[0] + t*d[0], a[1] + t*d[1], a[2] + t*d[2]}
}

// BarycentricOf returns the barycentric coordinates of a point lying on
// the plane of triangle (a,b,c)
func BarycentricOf(a, b, c, p []float64) []float64 {
	n := TriNormal(a, b, c)
	nn := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
	u := make([]float64, 3)
	u[0] = dotCross(n, b, c, p)
	u[1] = dotCross(n, c, a, p)
	u[2] = dotCross(n, a, b, p)
	for i := 0; i < 3; i++ {
		u[i] /= nn
	}
	return u
}

// dotCross returns n . ((x-p) x (y-p))
func dotCross(n, x, y, p []float64) float64 {
	ux := []float64{x[0] - p[0], x[1] - p[1], x[2] - p[2]}
	uy := []float64{y[0] - p[0], y[1] - p[1], y[2] - p[2]}
	return n[0]*(ux[1]*uy[2]-ux[2]*uy[1]) + n[1]*(ux[2]*uy[0]-ux[0]*uy[2]) + n[2]*(ux[0]*uy[1]-ux[1]*uy[0])
}

func dist(a, b []float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
