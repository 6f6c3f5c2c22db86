// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {
	s := &Shape{
		Type:           "qua9",
		Func:           Qua9,
		FaceType:       "lin3",
		Gndim:          2,
		Nverts:         9,
		Degree:         2,
		FaceNverts:     3,
		FaceLocalVerts: [][]int{{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7}},
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1, 0},
			{-1, -1, 1, 1, -1, 0, 1, 0, 0},
		},
		DefaultNip: 9,
	}
	s.init_scratchpad()
	factory[s.Type] = s
}

// qua9 natural coordinates of vertices given as {-1,0,+1} indices
var qua9Nat = [9][2]int{
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{0, 0},
}

// Qua9 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua9
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    3-----6-----2
//    |     s     |
//    |     |     |
//    7     8--r  5
//    |           |
//    |           |
//    0-----4-----1
//
func Qua9(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	for m, a := range qua9Nat {
		lr, ls := lag3(a[0], r), lag3(a[1], s)
		S[m] = lr * ls
		if derivs {
			dSdR[m][0] = dlag3(a[0], r) * ls
			dSdR[m][1] = lr * dlag3(a[1], s)
		}
	}
}

// lag3 computes the 1D quadratic Lagrange polynomial of node a ∈ {-1,0,1}
func lag3(a int, r float64) float64 {
	switch a {
	case -1:
		return r * (r - 1.0) / 2.0
	case 1:
		return r * (r + 1.0) / 2.0
	}
	return 1.0 - r*r
}

// dlag3 computes the derivative of lag3
func dlag3(a int, r float64) float64 {
	switch a {
	case -1:
		return r - 0.5
	case 1:
		return r + 0.5
	}
	return -2.0 * r
}
