// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Poly implements a polynomial conductivity model
//
//   λ(u) = a0  +  a1 u  +  a2 u²  +  a3 u³  +  a4 u⁴
//
type Poly struct {
	A [5]float64 // coefficients
}

// add model to factory
func init() {
	allocators["poly"] = func() Model { return new(Poly) }
}

// Init initialises this structure
//  Note: coefficients that are not given are set to zero
func (o *Poly) Init(prms dbf.Params) (err error) {
	o.A = [5]float64{}
	for _, p := range prms {
		switch p.N {
		case "a0":
			o.A[0] = p.V
		case "a1":
			o.A[1] = p.V
		case "a2":
			o.A[2] = p.V
		case "a3":
			o.A[3] = p.V
		case "a4":
			o.A[4] = p.V
		default:
			return chk.Err("poly: parameter named %q is invalid", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Poly) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "a0", V: 1},
		&dbf.P{N: "a1", V: 0},
		&dbf.P{N: "a2", V: 0},
		&dbf.P{N: "a3", V: 0},
		&dbf.P{N: "a4", V: 1},
	}
}

// K returns λ(u)
func (o *Poly) K(u float64) float64 {
	return o.A[0] + u*(o.A[1]+u*(o.A[2]+u*(o.A[3]+u*o.A[4])))
}

// DkDu returns ∂λ/∂u
func (o *Poly) DkDu(u float64) float64 {
	return o.A[1] + u*(2.0*o.A[2]+u*(3.0*o.A[3]+u*4.0*o.A[4]))
}
