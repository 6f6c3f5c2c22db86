// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/tonda/hermes/fem"
	"github.com/tonda/hermes/inp"
	"github.com/tonda/hermes/out"
)

// flags
var (
	alias       string
	verbose     bool
	erasePrev   bool
	saveSummary bool

	// overrides of run
	dt, tf, tol float64
	maxit       int
	linsol      string
	showR       bool

	// overrides of eigen
	nev     int
	target  float64
	backend string

	// sample
	points []string
	along  string
	times  []float64
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "hermes",
		Short: "nonlinear time-dependent finite element solver",
	}
	rootCmd.PersistentFlags().StringVar(&alias, "alias", "", "word to add to results")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", true, "show messages")

	runCmd := &cobra.Command{
		Use:   "run [simfile]",
		Short: "run time-dependent simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().BoolVar(&erasePrev, "erase", true, "erase previous results")
	runCmd.Flags().BoolVar(&saveSummary, "summary", true, "save summary")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "time step size; 0 => from simfile")
	runCmd.Flags().Float64Var(&tf, "tf", 0, "final time; 0 => from simfile")
	runCmd.Flags().Float64Var(&tol, "tol", 0, "Newton tolerance; 0 => from simfile")
	runCmd.Flags().IntVar(&maxit, "maxit", -1, "max number of Newton iterations; -1 => from simfile")
	runCmd.Flags().StringVar(&linsol, "linsol", "", "linear solver: umfpack, dense or cholesky")
	runCmd.Flags().BoolVar(&showR, "showr", false, "show Newton convergence measures")

	eigenCmd := &cobra.Command{
		Use:   "eigen [simfile]",
		Short: "solve generalized eigenvalue problem",
		Args:  cobra.ExactArgs(1),
		RunE:  runEigen,
	}
	eigenCmd.Flags().IntVar(&nev, "nev", 0, "number of eigenvalues; 0 => from simfile")
	eigenCmd.Flags().Float64Var(&target, "target", 0, "target eigenvalue; 0 => from simfile")
	eigenCmd.Flags().StringVar(&backend, "backend", "", "eigensolver: process or dense")

	sampleCmd := &cobra.Command{
		Use:   "sample [simfile]",
		Short: "sample results of a previous run",
		Args:  cobra.ExactArgs(1),
		RunE:  sampleResults,
	}
	sampleCmd.Flags().StringArrayVar(&points, "at", nil, "point x,y; may be repeated")
	sampleCmd.Flags().StringVar(&along, "along", "", "line x0,y0,x1,y1")
	sampleCmd.Flags().Float64SliceVar(&times, "times", nil, "selected output times; default => all")

	rootCmd.AddCommand(runCmd, eigenCmd, sampleCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) (err error) {

	// read input data
	sim, err := inp.ReadSim(args[0], alias, erasePrev, 0)
	if err != nil {
		return
	}
	if dt > 0 {
		sim.Control.Dt = dt
	}
	if tf > 0 {
		sim.Control.Tf = tf
	}
	if tol > 0 {
		sim.Solver.Tol = tol
	}
	if maxit >= 0 {
		sim.Solver.NmaxIt = maxit
	}
	if linsol != "" {
		sim.LinSol.Name = linsol
	}
	if showR {
		sim.Solver.ShowR = true
	}
	header(sim)

	// run simulation
	analysis, err := fem.NewMainSim(sim, saveSummary, verbose)
	if err != nil {
		return
	}
	return analysis.Run()
}

func runEigen(cmd *cobra.Command, args []string) (err error) {

	// read input data
	sim, err := inp.ReadSim(args[0], alias, false, 0)
	if err != nil {
		return
	}
	if nev > 0 {
		sim.Eigen.Nev = nev
	}
	if target != 0 {
		sim.Eigen.Target = target
	}
	if backend != "" {
		sim.Eigen.Backend = backend
	}
	header(sim)

	// run pipeline
	analysis, err := fem.NewMainSim(sim, false, verbose)
	if err != nil {
		return
	}
	return analysis.RunEigen()
}

func sampleResults(cmd *cobra.Command, args []string) (err error) {

	// results
	res, err := out.Start(args[0], alias)
	if err != nil {
		return
	}

	// define entities
	for i, str := range points {
		var x []float64
		x, err = parseCoords(str, 2)
		if err != nil {
			return
		}
		err = res.Define(io.Sf("P%d", i), out.At(x))
		if err != nil {
			return
		}
	}
	if along != "" {
		var x []float64
		x, err = parseCoords(along, 4)
		if err != nil {
			return
		}
		err = res.Define("line", out.Along{x[:2], x[2:]})
		if err != nil {
			return
		}
	}
	if len(res.Defined) == 0 {
		return chk.Err("at least one --at or --along flag is required")
	}

	// load results
	err = res.LoadResults(times)
	if err != nil {
		return
	}

	// time series
	for i, str := range points {
		key := io.Sf("P%d", i)
		vals, _ := res.GetRes(key, 0)
		io.Pf("\n%s = (%s)\n", key, str)
		io.Pf("%13s%23s\n", "t", "u")
		for j, t := range res.Times {
			io.Pf("%13.6e%23.15e\n", t, vals[j])
		}
		if len(vals) > 1 {
			s := out.Splot(io.Sf("u(%s) versus t", str))
			res.Plot(s, key, 0)
			io.Pf("\n%s\n", s.Draw())
		}
	}

	// space series at last selected time
	if along != "" {
		vals, _ := res.GetRes("line", -1)
		dist := res.GetDist("line")
		io.Pf("\nline (%s) @ t = %g\n", along, res.Times[len(res.Times)-1])
		io.Pf("%13s%23s\n", "dist", "u")
		for j := range vals {
			io.Pf("%13.6e%23.15e\n", dist[j], vals[j])
		}
		s := out.Splot(io.Sf("u along (%s)", along))
		res.Plot(s, "line", -1)
		io.Pf("\n%s\n", s.Draw())
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// header prints the initial message
func header(sim *inp.Simulation) {
	if !verbose {
		return
	}
	io.PfWhite("\nHermes -- nonlinear time-dependent finite element solver\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")
	io.Pf("> %s\n", sim.Data.Desc)
}

// parseCoords parses a comma separated list of n numbers
func parseCoords(str string, n int) (x []float64, err error) {
	fields := strings.Split(str, ",")
	if len(fields) != n {
		return nil, chk.Err("%q must have %d comma separated numbers", str, n)
	}
	x = make([]float64, n)
	for i, f := range fields {
		x[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, chk.Err("cannot parse %q:\n%v", str, err)
		}
	}
	return
}
