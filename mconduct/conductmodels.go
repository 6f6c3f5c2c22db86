// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mconduct implements models for the thermal conductivity λ(u)
package mconduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines conductivity models
type Model interface {
	Init(prms dbf.Params) error     // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	K(u float64) float64             // K returns λ(u)
	DkDu(u float64) float64          // DkDu returns ∂λ/∂u
}

// New conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in mconduct database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
