// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements handling of FE simulation results for analyses and plotting
package out

import (
	"github.com/cpmech/gosl/chk"

	"github.com/tonda/hermes/fem"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y coordinates
	TolT = 1e-3 // tolerance to compare times
)

// ResultsMap maps aliases to points
type ResultsMap map[string]Points

// Results holds the results of a simulation read from files
type Results struct {

	// set by Start
	Main    *fem.Main    // the FE structure; holds the simulation data and the space
	Sum     *fem.Summary // summary read from file
	Space   *fem.Space   // [from Main] finite element space
	Sampler *fem.Sampler // evaluates solutions at any point of the mesh

	// defined entities and results loaded by LoadResults
	Defined  ResultsMap // maps aliases to points
	TimeInds []int      // selected output indices
	Times    []float64  // selected output times
}

// Start starts handling of results given a simulation input file
//  Note: the simulation must have been run with the summary turned on
func Start(simfnpath, alias string) (o *Results, err error) {

	// fem structure
	o = new(Results)
	o.Main, err = fem.NewMain(simfnpath, alias, false, false, false, 0)
	if err != nil {
		return nil, chk.Err("cannot allocate FE structure:\n%v", err)
	}
	o.Space = o.Main.Space

	// summary
	sim := o.Main.Sim
	o.Sum, err = fem.ReadSum(sim.DirOut, sim.Key, sim.EncType)
	if err != nil {
		return nil, err
	}
	if len(o.Sum.OutTimes) == 0 {
		return nil, chk.Err("summary of simulation %q has no output times", sim.Key)
	}

	// auxiliary
	o.Sampler = fem.NewSampler(o.Space)
	o.Defined = make(map[string]Points)
	return
}
