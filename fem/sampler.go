// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/tonda/hermes/shp"
)

// Sampler evaluates finite element solutions at arbitrary points
type Sampler struct {
	Space *Space       // finite element space
	Tol   float64      // tolerance to decide whether points are on cells or not
	shps  []*shp.Shape // [ncells] shapes for inverse mapping
	lims  [][4]float64 // [ncells] bounding boxes: xmin, xmax, ymin, ymax
}

// NewSampler returns a new sampler
func NewSampler(space *Space) (o *Sampler) {
	o = new(Sampler)
	o.Space = space
	o.Tol = 1e-10
	o.shps = make([]*shp.Shape, len(space.Msh.Cells))
	o.lims = make([][4]float64, len(space.Msh.Cells))
	for _, c := range space.Msh.Cells {
		o.shps[c.Id] = c.Shp.GetCopy()
		X := space.X[c.Id]
		o.lims[c.Id] = [4]float64{X[0][0], X[0][0], X[1][0], X[1][0]}
		for m := 1; m < len(c.Verts); m++ {
			o.lims[c.Id][0] = utl.Min(o.lims[c.Id][0], X[0][m])
			o.lims[c.Id][1] = utl.Max(o.lims[c.Id][1], X[0][m])
			o.lims[c.Id][2] = utl.Min(o.lims[c.Id][2], X[1][m])
			o.lims[c.Id][3] = utl.Max(o.lims[c.Id][3], X[1][m])
		}
	}
	return
}

// Evaluate returns the value of the solution in state at (x,y)
func (o *Sampler) Evaluate(state DiscreteState, x, y float64) (val float64, err error) {
	if len(state.Coeffs) != o.Space.Ndof() {
		return 0, failf(InvalidConfig, "size of coefficients (%d) must be equal to ndof (%d)", len(state.Coeffs), o.Space.Ndof())
	}
	u := o.Space.FullValues(state.Coeffs)
	return o.eval(u, x, y)
}

// eval evaluates the interpolant of vertex values u at (x,y)
func (o *Sampler) eval(u []float64, x, y float64) (val float64, err error) {
	pt := []float64{x, y}
	R := make([]float64, 2)
	tol := o.Tol * (1.0 + utl.Max(o.Space.Msh.Xmax-o.Space.Msh.Xmin, o.Space.Msh.Ymax-o.Space.Msh.Ymin))
	for _, c := range o.Space.Msh.Cells {
		lim := o.lims[c.Id]
		if x < lim[0]-tol || x > lim[1]+tol || y < lim[2]-tol || y > lim[3]+tol {
			continue
		}
		s := o.shps[c.Id]
		if s.InvMap(R, pt, o.Space.X[c.Id]) != nil {
			continue
		}
		if s.CellBryDist(R) < -o.Tol {
			continue
		}
		s.Func(s.S, s.DSdR, R, false)
		for m, v := range c.Verts {
			val += s.S[m] * u[v]
		}
		return
	}
	return 0, chk.Err("point (%g,%g) is outside the mesh", x, y)
}
