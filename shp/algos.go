// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// InvMap computes the natural coordinates r, given the real coordinate y
//  Input:
//   y[2]         -- point coordinates
//   x[2][nverts] -- coordinates matrix of element
//  Output:
//   r[2] -- natural coordinates of given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	var δRnorm float64
	e := make([]float64, o.Gndim)  // residual
	δr := make([]float64, o.Gndim) // corrector
	r[0], r[1] = 0, 0              // first trial
	for it := 0; it < INVMAP_NIT; it++ {

		// shape functions and derivatives
		o.Func(o.S, o.DSdR, r, true)

		// residual: e = y - x * S
		for i := 0; i < o.Gndim; i++ {
			e[i] = y[i]
			for j := 0; j < o.Nverts; j++ {
				e[i] -= x[i][j] * o.S[j]
			}
		}

		// dxdR := x * dSdR
		o.calcDxdR(x)

		// dRdx := inv(dxdR)
		err = o.invDxdR()
		if err != nil {
			return
		}

		// corrector: δr = dRdx * e
		δRnorm = 0.0
		for i := 0; i < o.Gndim; i++ {
			δr[i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				δr[i] += o.DRdx.At(i, j) * e[j]
			}
		}

		// update and snap to boundary
		for i := 0; i < o.Gndim; i++ {
			r[i] += δr[i]
			δRnorm += δr[i] * δr[i]
			if math.Abs(r[i]+1.0) < INVMAP_TOL {
				r[i] = -1.0
			}
			if math.Abs(r[i]-1.0) < INVMAP_TOL {
				r[i] = 1.0
			}
		}
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			return
		}
	}
	return chk.Err("inverse mapping did not converge after %d iterations. |δr| = %g", INVMAP_NIT, math.Sqrt(δRnorm))
}

// CellBryDist returns the shortest distance between R and the boundary of the cell in natural coordinates
//  Note: negative values indicate that R is outside the cell
func (o *Shape) CellBryDist(R []float64) float64 {
	return utl.Min(1.0-math.Abs(R[0]), 1.0-math.Abs(R[1]))
}
