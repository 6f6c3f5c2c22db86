// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// ConvergenceRecord holds the outcome of Newton iterations
type ConvergenceRecord struct {
	Iterations int       // number of performed iterations
	Norm       float64   // last convergence measure ‖Δx‖
	Converged  bool      // tolerance was met
	History    []float64 // convergence measure at each iteration
}

// NewtonSolver solves F(x) = 0 with the Newton-Raphson method
type NewtonSolver struct {
	Problem DiscreteProblem // discrete problem
	LinSys  *LinearSystem   // linear system: holds the Jacobian and the right-hand side
	ShowR   bool            // print convergence measure at each iteration
	T       float64         // time to be printed with the convergence measure
}

// Solve runs Newton iterations starting from x0
//  Input:
//   x0    -- initial coefficients; not modified
//   tol   -- tolerance on ‖Δx‖₂
//   maxit -- maximum number of iterations
//  Output:
//   x   -- solution; nil on failure
//   rec -- convergence record; available even on failure
func (o *NewtonSolver) Solve(x0 []float64, tol float64, maxit int) (x []float64, rec *ConvergenceRecord, err error) {

	// check
	rec = new(ConvergenceRecord)
	ndof := o.Problem.Ndof()
	if len(x0) != ndof {
		return nil, rec, failf(InvalidConfig, "size of initial coefficients (%d) must be equal to ndof (%d)", len(x0), ndof)
	}
	if o.LinSys.Ndof() != ndof {
		return nil, rec, failf(InvalidConfig, "size of linear system (%d) must be equal to ndof (%d)", o.LinSys.Ndof(), ndof)
	}
	if maxit <= 0 {
		return nil, rec, &Failure{Kind: ConvergenceFailure, Err: chk.Err("maximum number of iterations must be positive. maxit=%d", maxit)}
	}

	// auxiliary
	x = make([]float64, ndof)
	copy(x, x0)
	dx := make([]float64, ndof)
	A, b := o.LinSys.A, o.LinSys.B

	// message
	if o.ShowR {
		io.Pf("\n%13s%4s%23s\n", "t", "it", "‖Δx‖")
	}

	// iterations
	for it := 1; it <= maxit; it++ {

		// assemble Jacobian and right-hand side with negative of residuals
		err = o.Problem.Assemble(x, A, b)
		if err != nil {
			return nil, rec, withIteration(err, it)
		}
		for i := range b {
			b[i] = -b[i]
		}

		// solve for increment
		err = o.LinSys.Solve(dx)
		if err != nil {
			return nil, rec, withIteration(err, it)
		}

		// update and measure
		for i := range x {
			x[i] += dx[i]
		}
		rec.Iterations = it
		rec.Norm = 0
		if ndof > 0 {
			rec.Norm = floats.Norm(dx, 2)
		}
		rec.History = append(rec.History, rec.Norm)
		if o.ShowR {
			io.Pf("%13.6e%4d%23.15e\n", o.T, it, rec.Norm)
		}

		// check convergence
		if o.Problem.IsLinear() || rec.Norm <= tol {
			rec.Converged = true
			return
		}
	}

	// failure
	return nil, rec, &Failure{Kind: ConvergenceFailure, Iteration: rec.Iterations,
		Err: chk.Err("Newton iterations did not converge after %d iterations: ‖Δx‖ = %g > %g", maxit, rec.Norm, tol)}
}

// withIteration sets the iteration number in failures
func withIteration(err error, it int) error {
	if f, ok := err.(*Failure); ok {
		f.Iteration = it
		return f
	}
	return &Failure{Kind: InvalidConfig, Iteration: it, Err: err}
}
