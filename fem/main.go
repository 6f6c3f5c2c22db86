// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the nonlinear time-dependent FE solver and the eigenvalue pipeline
package fem

import (
	"math"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/inp"
	"github.com/tonda/hermes/mconduct"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure; may be nil
	Space   *Space          // finite element space
	Problem *Assembler      // discrete problem
	Resolve Resolver        // gets functions by name
	State   DiscreteState   // last accepted state
	Eigen   *EigenResponse  // results of eigenvalue problem
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, verbose bool, goroutineId int) (o *Main, err error) {

	// read input data
	sim, err := inp.ReadSim(simfilepath, alias, erasePrev, goroutineId)
	if err != nil {
		return nil, &Failure{Kind: InvalidConfig, Err: err}
	}
	if verbose {
		io.Pf("> Simulation (.sim) file read\n")
	}
	return NewMainSim(sim, saveSummary, verbose)
}

// NewMainSim returns a new Main structure from simulation data
func NewMainSim(sim *inp.Simulation, saveSummary, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose
	if saveSummary {
		o.Summary = new(Summary)
	}

	// space
	o.Resolve = NewResolver(sim.Functions)
	o.Space, err = NewSpace(sim.Msh, sim.Space.Ctype, sim.Space.Nip, o.Resolve)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Space with %d cells of type %q and ndof = %d allocated\n", len(sim.Msh.Cells), sim.Space.Ctype, o.Space.Ndof())
	}

	// conductivity model
	var dat FormData
	if sim.Problem.Model != "" {
		dat.Model, err = mconduct.New(sim.Problem.Model)
		if err != nil {
			return nil, &Failure{Kind: InvalidConfig, Err: err}
		}
		err = dat.Model.Init(sim.Problem.Prms)
		if err != nil {
			return nil, &Failure{Kind: InvalidConfig, Err: chk.Err("cannot initialise conductivity model %q:\n%v", sim.Problem.Model, err)}
		}
	}

	// source term
	if sim.Problem.Source != "" {
		var src dbf.T
		src, err = sim.Functions.Get(sim.Problem.Source)
		if err != nil {
			return nil, &Failure{Kind: InvalidConfig, Err: err}
		}
		dat.Source = src
	}

	// discrete problem
	form, err := NewWeakForm(sim.Problem.Form, &dat)
	if err != nil {
		return nil, err
	}
	o.Problem = NewAssembler(o.Space, form, sim.Problem.Linear)
	return
}

// Run runs the time-dependent simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// initial state
	if o.ShowMsg {
		io.Pf("> Projecting initial condition\n")
	}
	name := o.Sim.Problem.Initial
	if name == "" {
		name = "zero"
	}
	fcn, err := o.Resolve(name)
	if err != nil {
		return &Failure{Kind: InvalidConfig, Err: chk.Err("cannot get initial condition:\n%v", err)}
	}
	proj := &Projector{Norm: o.Sim.Problem.Projection, LinSol: o.Sim.LinSol}
	x0, err := proj.Project(o.Space, fcn)
	if err != nil {
		return
	}
	o.State = DiscreteState{Coeffs: x0}
	err = o.save(0)
	if err != nil {
		return
	}

	// controller
	ctrl := &Controller{
		Problem: o.Problem,
		LinSol:  o.Sim.LinSol,
		ShowR:   o.Sim.Solver.ShowR,
		Verbose: o.ShowMsg,
	}
	if o.Summary != nil {
		ctrl.Monitor = func(step int, rec *ConvergenceRecord) {
			o.Summary.Record(rec, o.Sim.Data.Stat)
		}
	}

	// time loop
	if o.ShowMsg {
		io.Pf("> Running FE solver\n")
	}
	tc := o.Sim.Control
	tout := tc.DtOut
	tidx := 1
	for state, e := range ctrl.Steps(x0, tc.Dt, tc.Tf, o.Sim.Solver.Tol, o.Sim.Solver.NmaxIt) {
		if e != nil {
			return e
		}
		o.State = state
		if state.Time >= tout || state.Time >= tc.Tf {
			err = o.save(tidx)
			if err != nil {
				return
			}
			tout += tc.DtOut
			tidx++
		}
	}

	// sample points
	return o.CheckSamples()
}

// RunEigen runs the generalized eigenvalue problem
func (o *Main) RunEigen() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// eigensolver
	workdir := o.Sim.Eigen.WorkDir
	if workdir == "" {
		workdir = o.Sim.DirOut
	}
	solver, err := NewEigenSolver(&o.Sim.Eigen, workdir)
	if err != nil {
		return
	}

	// run pipeline
	if o.ShowMsg {
		io.Pf("> Solving eigenvalue problem with %q eigensolver\n", o.Sim.Eigen.Backend)
	}
	pipe := &EigenPipeline{Space: o.Space, Solver: solver, Dat: o.Sim.Eigen, WorkDir: workdir}
	o.Eigen, err = pipe.Run()
	if err != nil {
		return
	}
	if o.Sim.Eigen.Backend != "process" {
		err = WriteEigenExchange(filepath.Join(workdir, EIG_VECS), o.Eigen)
		if err != nil {
			return
		}
	}
	if o.Summary != nil {
		o.Summary.Eigen = o.Eigen.Values
	}

	// message
	if o.ShowMsg {
		for k, λ := range o.Eigen.Values {
			io.Pf("%4d : λ = %23.15e\n", k, λ)
		}
	}
	return
}

// CheckSamples samples the last state at the sample points and compares with reference values
func (o *Main) CheckSamples() (err error) {
	pts := o.Sim.Samples.Points
	if len(pts) == 0 {
		return
	}
	sampler := NewSampler(o.Space)
	vals := make([]float64, len(pts))
	for i, p := range pts {
		vals[i], err = sampler.Evaluate(o.State, p[0], p[1])
		if err != nil {
			return &Failure{Kind: InvalidConfig, Err: chk.Err("cannot evaluate sample point %d:\n%v", i, err)}
		}
	}
	if o.Summary != nil {
		o.Summary.Samples = vals
	}
	refs, tol := o.Sim.Samples.Refs, o.Sim.Samples.Tol
	if o.ShowMsg {
		io.Pf("\n%8s%8s%23s%23s\n", "x", "y", "u", "reference")
	}
	failed := 0
	for i, p := range pts {
		if len(refs) == 0 {
			if o.ShowMsg {
				io.Pf("%8g%8g%23.15e\n", p[0], p[1], vals[i])
			}
			continue
		}
		ok := math.Abs(vals[i]-refs[i]) <= tol
		if !ok {
			failed++
		}
		if o.ShowMsg {
			if ok {
				io.Pf("%8g%8g%23.15e%23.15e\n", p[0], p[1], vals[i], refs[i])
			} else {
				io.Pfred("%8g%8g%23.15e%23.15e\n", p[0], p[1], vals[i], refs[i])
			}
		}
	}
	if failed > 0 {
		return chk.Err("%d sample points deviate from reference values by more than %g", failed, tol)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// save saves the current state and the output time
func (o *Main) save(tidx int) (err error) {
	if o.Summary == nil {
		return
	}
	o.Summary.OutTimes = append(o.Summary.OutTimes, o.State.Time)
	return SaveSol(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx, o.State, o.Sim.Data.Stat && o.ShowMsg)
}

// onexit prints final message with cpu time and saves summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Summary != nil {
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, false)
		if err != nil && prevErr == nil {
			return
		}
	}

	// previous error has priority
	if prevErr != nil {
		err = prevErr
	}
	return
}
