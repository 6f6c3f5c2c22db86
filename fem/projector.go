// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/tonda/hermes/inp"
)

// Projector computes the global projection of functions onto the free DOFs of a space
type Projector struct {
	Norm   string         // "l2" or "h1"
	LinSol inp.LinSolData // linear solver configuration
}

// Project returns the coefficients u minimising ‖u - f‖ in the L2 or H1 norm
//  Note: prescribed vertices keep their lifted values
func (o *Projector) Project(space *Space, fcn ExactFunction) (x []float64, err error) {

	// form
	form := &formProjection{fcn: fcn, dfdx: make([]float64, 2)}
	switch o.Norm {
	case "l2":
	case "h1", "":
		form.h1 = true
	default:
		return nil, failf(InvalidConfig, "projection norm must be \"l2\" or \"h1\". %q is invalid", o.Norm)
	}

	// linear system
	ndof := space.Ndof()
	linsys, err := NewLinearSystem(ndof, o.LinSol)
	if err != nil {
		return
	}
	defer linsys.Free()

	// solve linear problem starting from zero
	newton := &NewtonSolver{Problem: NewAssembler(space, form, true), LinSys: linsys}
	x, _, err = newton.Solve(make([]float64, ndof), 1, 1)
	return
}
