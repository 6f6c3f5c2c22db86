// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type           string      // name; e.g. "qua4"
	Func           ShpFunc     // shape/derivs function callback function
	FaceType       string      // geometry of face; e.g. "qua9" => "lin3"
	Gndim          int         // geometry of shape; e.g. "qua4" => gnd == 2
	Nverts         int         // number of vertices in cell; e.g. "qua9" => 9
	Degree         int         // polynomial degree along each natural direction
	FaceNverts     int         // number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][FaceNverts]
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]
	DefaultNip     int         // default number of integration points

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR *mat.Dense  // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx *mat.Dense  // [gndim][gndim] dRdx == inverse(dxdR)
}

// GetCopy returns a new copy of this shape structure
//  Note: the scratchpad is allocated anew, thus the copy can be used independently
func (o Shape) GetCopy() *Shape {
	p := &Shape{
		Type:           o.Type,
		Func:           o.Func,
		FaceType:       o.FaceType,
		Gndim:          o.Gndim,
		Nverts:         o.Nverts,
		Degree:         o.Degree,
		FaceNverts:     o.FaceNverts,
		FaceLocalVerts: o.FaceLocalVerts,
		NatCoords:      o.NatCoords,
		DefaultNip:     o.DefaultNip,
	}
	p.init_scratchpad()
	return p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// GetFaceLocalVerts returns the local vertices on face 'idxface' of shape 'geoType'
//  Note: returns nil if shape is not available
func GetFaceLocalVerts(geoType string, idxface int) []int {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if idxface < 0 || idxface >= len(s.FaceLocalVerts) {
		return nil
	}
	return s.FaceLocalVerts[idxface]
}

// GetTypeByDegree returns the shape type of quadrilaterals with given polynomial degree
func GetTypeByDegree(p int) (geoType string, err error) {
	for name, s := range factory {
		if s.Degree == p {
			return name, nil
		}
	}
	return "", chk.Err("there is no quadrilateral shape with polynomial degree p=%d", p)
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	o.calcDxdR(x)

	// dRdx := inv(dxdR)
	err = o.invDxdR()
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx.At(i, j)
			}
		}
	}
	return
}

// CalcAtR calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   R[2]            -- local/natural coordinates
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = mat.NewDense(o.Gndim, o.Gndim, nil)
	o.DRdx = mat.NewDense(o.Gndim, o.Gndim, nil)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
}

// calcDxdR computes dxdR := x * dSdR
func (o *Shape) calcDxdR(x [][]float64) {
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			v := 0.0
			for n := 0; n < o.Nverts; n++ {
				v += x[i][n] * o.DSdR[n][j]
			}
			o.DxdR.Set(i, j, v)
		}
	}
}

// invDxdR computes dRdx := inv(dxdR) and J := det(dxdR)
func (o *Shape) invDxdR() (err error) {
	o.J = mat.Det(o.DxdR)
	if math.Abs(o.J) < MINDET {
		return chk.Err("inverse of dxdR failed: determinant %g is smaller than %g", o.J, MINDET)
	}
	err = o.DRdx.Inverse(o.DxdR)
	if err != nil {
		return chk.Err("inverse of dxdR failed:\n%v", err)
	}
	return
}
