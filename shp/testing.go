// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
	}
}

// CheckShapeFace checks that only the shape functions of face vertices are non-zero on that face
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// sample points along each face
	errS := 0.0
	r := []float64{0, 0}
	for k, lverts := range shape.FaceLocalVerts {
		a, b := lverts[0], lverts[1]
		onface := make(map[int]bool)
		for _, m := range lverts {
			onface[m] = true
		}
		for _, α := range []float64{0.1, 0.35, 0.8} {
			for i := 0; i < shape.Gndim; i++ {
				r[i] = (1.0-α)*shape.NatCoords[i][a] + α*shape.NatCoords[i][b]
			}
			shape.Func(shape.S, shape.DSdR, r, false)
			sum := 0.0
			for m := 0; m < shape.Nverts; m++ {
				if onface[m] {
					sum += shape.S[m]
				} else {
					errS += math.Abs(shape.S[m])
				}
			}
			errS += math.Abs(sum - 1.0)
		}
		if verbose {
			io.Pforan("face %d: err = %g\n", k, errS)
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s face check failed with err = %g\n", shape.Type, errS)
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			chk.DerivScaSca(tst, io.Sf("%s: dS%ddR%d @ %v", shape.Type, n, i, r), tol, shape.DSdR[n][i], r[i], 1e-3, verbose, func(t float64) float64 {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false)
				return S_tmp[n]
			})
		}
	}
}

// CheckDSdx checks G=dSdx derivatives of shape structures
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, x []float64, tol float64, verbose bool) {

	// find r corresponding to x
	r := make([]float64, 2)
	err := shape.InvMap(r, x, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}

	// analytical
	err = shape.CalcAtR(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}
	G := utl.Alloc(shape.Nverts, 2)
	for n := range G {
		G[n][0], G[n][1] = shape.G[n][0], shape.G[n][1]
	}

	// numerical
	x_tmp := make([]float64, len(x))
	r_tmp := make([]float64, 2)
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			chk.DerivScaSca(tst, io.Sf("%s: dS%ddx%d @ %v", shape.Type, n, i, x), tol, G[n][i], x[i], 1e-3, verbose, func(t float64) float64 {
				copy(x_tmp, x)
				x_tmp[i] = t
				if err := shape.InvMap(r_tmp, x_tmp, xmat); err != nil {
					tst.Errorf("InvMap failed:\n%v", err)
				}
				shape.Func(shape.S, shape.DSdR, r_tmp, false)
				return shape.S[n]
			})
		}
	}
}
