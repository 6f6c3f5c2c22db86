// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cte implements a constant conductivity model: λ(u) = k
type Cte struct {
	Kval float64
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(prms dbf.Params) (err error) {
	o.Kval = 1
	for _, p := range prms {
		switch p.N {
		case "k":
			o.Kval = p.V
		default:
			return chk.Err("cte: parameter named %q is invalid", p.N)
		}
	}
	if o.Kval <= 0 {
		return chk.Err("cte: conductivity must be positive. k=%g is invalid", o.Kval)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Cte) GetPrms(example bool) dbf.Params {
	return dbf.Params{&dbf.P{N: "k", V: 1}}
}

// K returns λ(u)
func (o *Cte) K(u float64) float64 { return o.Kval }

// DkDu returns ∂λ/∂u
func (o *Cte) DkDu(u float64) float64 { return 0 }
