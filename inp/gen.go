// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// face tags of structured rectangles
const (
	TagBottom = -10
	TagRight  = -11
	TagTop    = -12
	TagLeft   = -13
	TagCells  = -1
)

// GenRectangle generates a structured mesh of quadrilaterals on a rectangle
//  Input:
//   dat   -- rectangle data
//   ctype -- cell type: "qua4" or "qua9"
//  Note: the divisions are first refined uniformly GlobRef times; then the
//        intervals touching the boundary are halved BdyRef times
func GenRectangle(dat *RectData, ctype string, goroutineId int) (o *Mesh, err error) {

	// check
	if dat.Nx < 1 || dat.Ny < 1 {
		return nil, chk.Err("number of divisions must be positive. nx=%d, ny=%d are invalid", dat.Nx, dat.Ny)
	}
	if dat.Xmax <= dat.Xmin || dat.Ymax <= dat.Ymin {
		return nil, chk.Err("rectangle limits are invalid: x=[%g,%g], y=[%g,%g]", dat.Xmin, dat.Xmax, dat.Ymin, dat.Ymax)
	}
	if dat.GlobRef < 0 || dat.BdyRef < 0 {
		return nil, chk.Err("number of refinements must be non-negative. globref=%d, bdyref=%d are invalid", dat.GlobRef, dat.BdyRef)
	}
	var step int
	switch ctype {
	case "qua4":
		step = 1
	case "qua9":
		step = 2
	default:
		return nil, chk.Err("cannot generate rectangle with cells of type %q", ctype)
	}

	// coordinates along each direction
	X := gradedDivisions(dat.Xmin, dat.Xmax, dat.Nx, dat.GlobRef, dat.BdyRef, step)
	Y := gradedDivisions(dat.Ymin, dat.Ymax, dat.Ny, dat.GlobRef, dat.BdyRef, step)
	npx, npy := len(X), len(Y)
	ncx, ncy := (npx-1)/step, (npy-1)/step

	// vertices
	o = new(Mesh)
	o.Verts = make([]*Vert, 0, npx*npy)
	for j := 0; j < npy; j++ {
		for i := 0; i < npx; i++ {
			o.Verts = append(o.Verts, &Vert{Id: len(o.Verts), C: []float64{X[i], Y[j]}})
		}
	}

	// cells
	id := func(i, j int) int { return j*npx + i }
	o.Cells = make([]*Cell, 0, ncx*ncy)
	for J := 0; J < ncy; J++ {
		for I := 0; I < ncx; I++ {
			i, j := I*step, J*step
			c := &Cell{Id: len(o.Cells), Tag: TagCells, Type: ctype, FTags: make([]int, 4)}
			c.Verts = []int{id(i, j), id(i+step, j), id(i+step, j+step), id(i, j+step)}
			if step == 2 {
				c.Verts = append(c.Verts, id(i+1, j), id(i+2, j+1), id(i+1, j+2), id(i, j+1), id(i+1, j+1))
			}
			if J == 0 {
				c.FTags[0] = TagBottom
			}
			if I == ncx-1 {
				c.FTags[1] = TagRight
			}
			if J == ncy-1 {
				c.FTags[2] = TagTop
			}
			if I == 0 {
				c.FTags[3] = TagLeft
			}
			o.Cells = append(o.Cells, c)
		}
	}

	// derived data
	err = o.CalcDerived(goroutineId)
	return
}

// gradedDivisions returns the coordinates of nodes along one direction
//  Note: with step == 2, mid-points are inserted between consecutive nodes
func gradedDivisions(xmin, xmax float64, ndiv, globref, bdyref, step int) (X []float64) {
	for i := 0; i < globref; i++ {
		ndiv *= 2
	}
	xs := utl.LinSpace(xmin, xmax, ndiv+1)
	for k := 0; k < bdyref; k++ {
		n := len(xs)
		if n == 2 {
			xs = []float64{xs[0], (xs[0] + xs[1]) / 2.0, xs[1]}
			continue
		}
		left := (xs[0] + xs[1]) / 2.0
		right := (xs[n-2] + xs[n-1]) / 2.0
		ys := make([]float64, 0, n+2)
		ys = append(ys, xs[0], left)
		ys = append(ys, xs[1:n-1]...)
		ys = append(ys, right, xs[n-1])
		xs = ys
	}
	if step == 1 {
		return xs
	}
	X = make([]float64, 0, 2*len(xs)-1)
	for i := 0; i < len(xs)-1; i++ {
		X = append(X, xs[i], (xs[i]+xs[i+1])/2.0)
	}
	X = append(X, xs[len(xs)-1])
	return
}
