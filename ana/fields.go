// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Field defines scalar fields f(x) with gradient
type Field interface {
	F(x []float64) float64          // F returns f(x)
	Grad(dfdx []float64, x []float64) // Grad computes ∂f/∂x
}

// GetField returns a built-in field by name
func GetField(name string) (fcn Field, err error) {
	allocator, ok := fields[name]
	if !ok {
		return nil, chk.Err("field %q is not available in ana database", name)
	}
	return allocator(), nil
}

// FieldNames returns the names of all built-in fields (sorted)
func FieldNames() (names []string) {
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// fields holds all available fields
var fields = map[string]func() Field{
	"heatlift": func() Field { return &HeatLift{X0: -10, Y0: -10, L: 10} },
	"zero":     func() Field { return new(Zero) },
}

// HeatLift implements the bilinear lift of Dirichlet data used in the heat example
//
//   g(x,y) = (x - x0) (y - y0) / L²
//
//   x0 = y0 = -10 and L = 10 => g = (x+10)(y+10)/100
//
type HeatLift struct {
	X0, Y0, L float64
}

// F returns f(x)
func (o *HeatLift) F(x []float64) float64 {
	return (x[0] - o.X0) * (x[1] - o.Y0) / (o.L * o.L)
}

// Grad computes ∂f/∂x
func (o *HeatLift) Grad(dfdx []float64, x []float64) {
	dfdx[0] = (x[1] - o.Y0) / (o.L * o.L)
	dfdx[1] = (x[0] - o.X0) / (o.L * o.L)
}

// Zero implements f(x) = 0
type Zero struct{}

// F returns f(x)
func (o *Zero) F(x []float64) float64 { return 0 }

// Grad computes ∂f/∂x
func (o *Zero) Grad(dfdx []float64, x []float64) {
	dfdx[0], dfdx[1] = 0, 0
}
