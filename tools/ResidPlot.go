// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"

	"github.com/tonda/hermes/fem"
	"github.com/tonda/hermes/inp"
)

func read_summary(simfn, alias string) (*fem.Summary, string) {
	sim, err := inp.ReadSim(simfn, alias, false, 0)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return nil, ""
	}
	sum, err := fem.ReadSum(sim.DirOut, sim.Key, sim.EncType)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return nil, ""
	}
	return sum, sim.Key
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, _ := io.ArgToFilename(0, "heat", ".sim", true)
	skip := io.ArgToInt(1, 0)
	alias := io.ArgToString(2, "")

	// print input data
	io.Pf("\n%s\n", io.ArgsTable(
		"simulation filename", "simfn", simfn,
		"number of initial steps to skip", "skip", skip,
		"word added to results", "alias", alias,
	))

	// summary
	sum, fnk := read_summary(simfn, alias)
	if sum == nil {
		return
	}
	if skip >= len(sum.Iters) {
		io.PfRed("ERROR: there are only %d steps\n", len(sum.Iters))
		return
	}

	// number of iterations
	var N []float64
	imax, nmax := skip, 0
	for i := skip; i < len(sum.Iters); i++ {
		N = append(N, float64(sum.Iters[i]))
		if sum.Iters[i] > nmax {
			imax, nmax = i, sum.Iters[i]
		}
	}
	io.Pf("\n%s\n", asciigraph.Plot(N, asciigraph.Height(10), asciigraph.Caption(io.Sf("%s: number of iterations per step", fnk))))

	// convergence history of the hardest step
	if len(sum.Resids) <= imax {
		io.Pfyel("statistics were not recorded; set \"stat\" to true in the simulation file\n")
		return
	}
	var L []float64
	for _, r := range sum.Resids[imax] {
		L = append(L, math.Log10(math.Max(r, 1e-300)))
	}
	io.Pf("\n%s\n", asciigraph.Plot(L, asciigraph.Height(10), asciigraph.Caption(io.Sf("%s: log10 of convergence measure at step %d", fnk, imax+1))))
}
