// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/ana"
	"github.com/tonda/hermes/inp"
)

func Test_newton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton01. monotonic convergence and determinism")

	prob := &cubicProblem{C: []float64{8, 27}}
	ls, err := NewLinearSystem(2, inp.LinSolData{Name: "dense"})
	if err != nil {
		tst.Errorf("NewLinearSystem failed:\n%v", err)
		return
	}
	defer ls.Free()
	newton := &NewtonSolver{Problem: prob, LinSys: ls, ShowR: chk.Verbose}

	x0 := []float64{1, 1}
	x, rec, err := newton.Solve(x0, 1e-12, 50)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("history = %v\n", rec.History)
	chk.Array(tst, "x", 1e-12, x, []float64{2, 3})
	chk.Array(tst, "x0 is unchanged", 1e-17, x0, []float64{1, 1})
	if !rec.Converged || rec.Norm > 1e-12 {
		tst.Errorf("record is incorrect: %+v\n", rec)
		return
	}
	chk.Int(tst, "len(history)", len(rec.History), rec.Iterations)
	for k := 1; k < len(rec.History); k++ {
		if rec.History[k] >= rec.History[k-1] {
			tst.Errorf("measure must decrease: history[%d]=%g >= history[%d]=%g\n", k, rec.History[k], k-1, rec.History[k-1])
		}
	}

	// repeated solve
	y, rec2, err := newton.Solve(x0, 1e-12, 50)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if !sameBits(x, y) || !sameBits(rec.History, rec2.History) {
		tst.Errorf("repeated solves must give identical results\n")
	}
}

func Test_newton02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton02. failures")

	prob := &cubicProblem{C: []float64{8}}
	ls, _ := NewLinearSystem(1, inp.LinSolData{Name: "dense"})
	newton := &NewtonSolver{Problem: prob, LinSys: ls}

	// maxit == 0
	x, rec, err := newton.Solve([]float64{1}, 1e-10, 0)
	if !errors.Is(err, ErrConvergence) || x != nil {
		tst.Errorf("maxit=0 should give ConvergenceFailure. %v is incorrect\n", err)
		return
	}
	chk.Int(tst, "iterations", rec.Iterations, 0)

	// too few iterations
	_, rec, err = newton.Solve([]float64{1}, 1e-10, 2)
	io.Pforan("%v\n", err)
	if KindOf(err) != ConvergenceFailure {
		tst.Errorf("maxit=2 should give ConvergenceFailure. %v is incorrect\n", err)
		return
	}
	chk.Int(tst, "iterations", rec.Iterations, 2)
	chk.Int(tst, "len(history)", len(rec.History), 2)
	if rec.Converged {
		tst.Errorf("record should not be converged\n")
	}

	// singular Jacobian
	sing := &denseProblem{A: [][]float64{{1, 1}, {1, 1}}, B: []float64{1, 2}}
	ls2, _ := NewLinearSystem(2, inp.LinSolData{Name: "dense"})
	newton = &NewtonSolver{Problem: sing, LinSys: ls2}
	_, _, err = newton.Solve([]float64{0, 0}, 1e-10, 10)
	io.Pforan("%v\n", err)
	if KindOf(err) != LinearSolveFailure {
		tst.Errorf("singular Jacobian should give LinearSolveFailure. %v is incorrect\n", err)
		return
	}
	var f *Failure
	if errors.As(err, &f) {
		chk.Int(tst, "iteration", f.Iteration, 1)
	}
}

func Test_newton03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton03. linear problems: single pass")

	// algebraic
	prob := &denseProblem{A: [][]float64{{2, 1}, {1, 3}}, B: []float64{3, 5}}
	ls, _ := NewLinearSystem(2, inp.LinSolData{Name: "dense"})
	newton := &NewtonSolver{Problem: prob, LinSys: ls}
	x, rec, err := newton.Solve([]float64{0, 0}, 1e-30, 10)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Int(tst, "iterations", rec.Iterations, 1)
	chk.Array(tst, "x", 1e-15, x, []float64{0.8, 1.4})

	// Laplace equation with bilinear boundary values: solution is exact
	space := newSquareSpace(tst, -10, 10, 2, "qua9", allFaces("heatlift"))
	form, err := NewWeakForm("laplace", nil)
	if err != nil {
		tst.Errorf("NewWeakForm failed:\n%v", err)
		return
	}
	ndof := space.Ndof()
	chk.Int(tst, "ndof", ndof, 9)
	ls, _ = NewLinearSystem(ndof, inp.LinSolData{Name: "dense"})
	newton = &NewtonSolver{Problem: NewAssembler(space, form, true), LinSys: ls}
	x, rec, err = newton.Solve(make([]float64, ndof), 1e-30, 10)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Int(tst, "iterations", rec.Iterations, 1)
	g, _ := ana.GetField("heatlift")
	for eq, v := range space.Free {
		chk.Float64(tst, io.Sf("u @ vert %d", v), 1e-12, x[eq], g.F(space.Msh.Verts[v].C))
	}
}

func Test_newton04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton04. one step of nonlinear heat equation")

	space := newSquareSpace(tst, -10, 10, 2, "qua9", allFaces("heatlift"))
	ndof := space.Ndof()
	prob := NewAssembler(space, newHeatForm(tst, 1), false)

	// initial state: lift at free vertices
	x0 := make([]float64, ndof)
	for eq, v := range space.Free {
		x0[eq] = heatLiftAt(space.Msh.Verts[v].C[0], space.Msh.Verts[v].C[1])
	}
	err := prob.SetPrevious(x0, 0.2, 0.2)
	if err != nil {
		tst.Errorf("SetPrevious failed:\n%v", err)
		return
	}

	// solve
	ls, _ := NewLinearSystem(ndof, inp.LinSolData{Name: "dense"})
	newton := &NewtonSolver{Problem: prob, LinSys: ls, ShowR: chk.Verbose, T: 0.2}
	x, rec, err := newton.Solve(x0, 1e-10, 20)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("history = %v\n", rec.History)
	if rec.Iterations < 2 {
		tst.Errorf("nonlinear problem should need more than one iteration\n")
	}

	// heat source increases the temperature at the centre
	for eq, v := range space.Free {
		c := space.Msh.Verts[v].C
		if c[0] == 0 && c[1] == 0 {
			io.Pforan("u(0,0) = %v\n", x[eq])
			if x[eq] <= x0[eq] {
				tst.Errorf("u(0,0) = %g should be greater than %g\n", x[eq], x0[eq])
			}
		}
	}

	// residual at solution is small
	R := make([]float64, ndof)
	err = prob.Assemble(x, nil, R)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}
	for _, r := range R {
		if r > 1e-8 || r < -1e-8 {
			tst.Errorf("residual %g is too large\n", r)
		}
	}
}
