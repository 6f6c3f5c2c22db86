// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"os"

	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/fem"
)

// EigSolve is an external eigensolver following the exchange protocol of fem.ProcessEigenSolver:
//   EigSolve left.mtx right.mtx target nev tol maxit
// results are written to eivecs.dat in the current directory
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// input data
	left := io.ArgToString(0, fem.EIG_LEFT)
	right := io.ArgToString(1, fem.EIG_RIGHT)
	target := io.ArgToFloat(2, 2.0)
	nev := io.ArgToInt(3, 4)
	tol := io.ArgToFloat(4, 1e-10)
	maxit := io.ArgToInt(5, 1000)

	// matrices
	A, err := fem.ReadMatrixMarketFile(left, true)
	if err != nil {
		panic(err)
	}
	B, err := fem.ReadMatrixMarketFile(right, true)
	if err != nil {
		panic(err)
	}

	// solve
	var solver fem.DenseEigenSolver
	res, err := solver.Solve(&fem.EigenRequest{Left: A, Right: B, Target: target, Nev: nev, Tol: tol, MaxIt: maxit})
	if err != nil {
		panic(err)
	}
	err = fem.WriteEigenExchange(fem.EIG_VECS, res)
	if err != nil {
		panic(err)
	}
	for k, λ := range res.Values {
		io.Pf("%4d : λ = %23.15e\n", k, λ)
	}
}
