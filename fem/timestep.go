// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"iter"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/inp"
)

// DiscreteState holds the coefficients at one accepted time level
type DiscreteState struct {
	Coeffs []float64 // [ndof] coefficients
	Time   float64   // time
	Step   int       // step index; 0 => initial state
}

// Controller advances DiscreteStates in time by solving one nonlinear problem per step
type Controller struct {
	Problem DiscreteProblem // discrete problem; may implement TimeDependent
	LinSol  inp.LinSolData  // linear solver configuration
	ShowR   bool            // print Newton convergence measures
	Verbose bool            // print time at each step

	// Monitor is called after each accepted step; may be nil
	Monitor func(step int, rec *ConvergenceRecord)
}

// Steps returns a sequence of accepted states
//  Input:
//   x0    -- initial coefficients; e.g. projection of initial condition
//   dt    -- time step size
//   tf    -- final time
//   tol   -- tolerance of Newton iterations
//   maxit -- maximum number of Newton iterations
//  Note: on failure, the sequence yields one (zero state, error) pair and stops
func (o *Controller) Steps(x0 []float64, dt, tf, tol float64, maxit int) iter.Seq2[DiscreteState, error] {
	return func(yield func(DiscreteState, error) bool) {

		// check
		if err := checkStepping(dt, tf, tol, maxit); err != nil {
			yield(DiscreteState{}, err)
			return
		}
		ndof := o.Problem.Ndof()
		if len(x0) != ndof {
			yield(DiscreteState{}, failf(InvalidConfig, "size of initial coefficients (%d) must be equal to ndof (%d)", len(x0), ndof))
			return
		}

		// linear system
		linsys, err := NewLinearSystem(ndof, o.LinSol)
		if err != nil {
			yield(DiscreteState{}, err)
			return
		}
		defer linsys.Free()
		newton := &NewtonSolver{Problem: o.Problem, LinSys: linsys, ShowR: o.ShowR}
		tdep, _ := o.Problem.(TimeDependent)

		// time loop
		prev := make([]float64, ndof)
		copy(prev, x0)
		t, step := 0.0, 0
		for t < tf {

			// previous time level
			if tdep != nil {
				err = tdep.SetPrevious(prev, t+dt, dt)
				if err != nil {
					yield(DiscreteState{}, stepFailure(err, step+1, t+dt))
					return
				}
			}

			// message
			if o.Verbose && !o.ShowR {
				io.PfWhite("%30.15f\r", t+dt)
			}

			// solve
			newton.T = t + dt
			x, rec, err := newton.Solve(prev, tol, maxit)
			if err != nil {
				yield(DiscreteState{}, stepFailure(err, step+1, t+dt))
				return
			}

			// accept
			prev = x
			t += dt
			step++
			if o.Monitor != nil {
				o.Monitor(step, rec)
			}
			res := make([]float64, ndof)
			copy(res, x)
			if !yield(DiscreteState{Coeffs: res, Time: t, Step: step}, nil) {
				return
			}
		}
	}
}

// Run collects all states; see Steps
//  Note: no state is returned on failure
func (o *Controller) Run(x0 []float64, dt, tf, tol float64, maxit int) (states []DiscreteState, err error) {
	for state, e := range o.Steps(x0, dt, tf, tol, maxit) {
		if e != nil {
			return nil, e
		}
		states = append(states, state)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// checkStepping checks time stepping and Newton parameters
func checkStepping(dt, tf, tol float64, maxit int) error {
	switch {
	case dt <= 0:
		return failf(InvalidConfig, "time step size must be positive. dt=%g is invalid", dt)
	case tf <= 0:
		return failf(InvalidConfig, "final time must be positive. tf=%g is invalid", tf)
	case tol <= 0:
		return failf(InvalidConfig, "tolerance must be positive. tol=%g is invalid", tol)
	case maxit < 0:
		return failf(InvalidConfig, "maximum number of iterations must be non-negative. maxit=%d is invalid", maxit)
	}
	return nil
}

// stepFailure sets step and time in failures
func stepFailure(err error, step int, t float64) error {
	var f *Failure
	if !errors.As(err, &f) {
		f = &Failure{Kind: InvalidConfig, Err: chk.Err("%v", err)}
	}
	f.Step, f.Time = step, t
	return f
}
