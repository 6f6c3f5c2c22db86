// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// DiscreteProblem defines nonlinear discrete problems F(x) = 0
type DiscreteProblem interface {
	Ndof() int      // number of unknowns
	IsLinear() bool // F is linear in x: one Newton pass is enough

	// Assemble computes the residual R = F(x) and the Jacobian J = ∂F/∂x at x
	//  Note: J or R may be nil; in this case, they are not computed
	Assemble(x []float64, J *SparseMatrix, R []float64) error
}

// TimeDependent defines problems that depend on the solution at the previous time level
type TimeDependent interface {

	// SetPrevious sets the previous time-level solution
	//  Input:
	//   prev -- coefficients at the previous time level
	//   t    -- time at the new time level
	//   dt   -- time step size
	SetPrevious(prev []float64, t, dt float64) error
}

// PointState holds the state of the solution at an integration point
type PointState struct {
	U     float64    // u(x)
	GradU [2]float64 // ∇u(x)
	X     [2]float64 // coordinates
	Uprev float64    // u(x) at the previous time level
	T     float64    // time at the new time level
	Dt    float64    // time step size
}

// WeakForm defines the integrands of the residual and Jacobian at integration points
//
//   residual:  ∫ f0 v + f1 · ∇v
//
//   Jacobian:  ∫ (g0 φ + g1 · ∇φ) v  +  (g2 φ + g3 ∇φ) · ∇v
//
//   where v are the test functions and φ the trial functions
type WeakForm interface {
	ResidualContribution(p *PointState) (f0 float64, f1 [2]float64)
	JacobianContribution(p *PointState) (g0 float64, g1, g2 [2]float64, g3 [2][2]float64)
}

// ExactFunction defines continuous functions f(x) with gradient
type ExactFunction interface {
	F(x []float64) float64            // F returns f(x)
	Grad(dfdx []float64, x []float64) // Grad computes ∂f/∂x
}
