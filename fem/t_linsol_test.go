// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/inp"
)

func Test_linsol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsol01. dense and Cholesky backends")

	//      [ 4 1 0 ]       [ 1 ]
	//  A = [ 1 4 1 ]   x = [ 2 ]   b = A x
	//      [ 0 1 4 ]       [ 3 ]
	for _, name := range []string{"dense", "cholesky"} {
		io.Pforan("backend = %v\n", name)
		ls, err := NewLinearSystem(3, inp.LinSolData{Name: name, Symmetric: true})
		if err != nil {
			tst.Errorf("NewLinearSystem failed:\n%v", err)
			return
		}
		ls.A.Start()
		ls.A.Put(0, 0, 4)
		ls.A.Put(0, 1, 1)
		ls.A.Put(1, 0, 1)
		ls.A.Put(1, 1, 2)
		ls.A.Put(1, 1, 2) // repeated entries are summed
		ls.A.Put(1, 2, 1)
		ls.A.Put(2, 1, 1)
		ls.A.Put(2, 2, 4)
		copy(ls.B, []float64{6, 12, 14})
		x := make([]float64, 3)
		err = ls.Solve(x)
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return
		}
		chk.Array(tst, "x", 1e-14, x, []float64{1, 2, 3})

		// solve again with new right-hand side
		copy(ls.B, []float64{4, 1, 0})
		err = ls.SolveAgain(x)
		if err != nil {
			tst.Errorf("SolveAgain failed:\n%v", err)
			return
		}
		chk.Array(tst, "x", 1e-14, x, []float64{1, 0, 0})
		ls.Free()
	}
}

func Test_linsol02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsol02. failures")

	// unknown backend
	_, err := NewLinearSystem(2, inp.LinSolData{Name: "unknown"})
	if KindOf(err) != InvalidConfig {
		tst.Errorf("unknown backend should give InvalidConfig. %v is incorrect\n", err)
		return
	}

	// singular matrix
	for _, name := range []string{"dense", "cholesky"} {
		ls, err := NewLinearSystem(2, inp.LinSolData{Name: name})
		if err != nil {
			tst.Errorf("NewLinearSystem failed:\n%v", err)
			return
		}
		ls.A.Put(0, 0, 1)
		ls.A.Put(0, 1, 1)
		ls.A.Put(1, 0, 1)
		ls.A.Put(1, 1, 1)
		ls.B[0], ls.B[1] = 1, 2
		err = ls.Solve(make([]float64, 2))
		io.Pforan("%s: %v\n", name, err)
		if !errors.Is(err, ErrLinearSolve) {
			tst.Errorf("%s: singular matrix should give LinearSolveFailure. %v is incorrect\n", name, err)
		}
	}

	// wrong size of solution
	ls, _ := NewLinearSystem(2, inp.LinSolData{Name: "dense"})
	err = ls.Solve(make([]float64, 3))
	if KindOf(err) != InvalidConfig {
		tst.Errorf("wrong size should give InvalidConfig. %v is incorrect\n", err)
	}
}

func Test_sparse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse01. triplet")

	A := NewSparseMatrix(3, 3, 2)
	A.Put(2, 0, 1)
	A.Put(0, 0, 2)
	A.Put(2, 0, 3)
	A.Put(1, 2, 1e-20)
	A.Put(0, 2, 5)
	chk.Int(tst, "len", A.Len(), 5)
	chk.Float64(tst, "A20", 1e-17, A.Get(2, 0), 4)
	chk.Float64(tst, "A11", 1e-17, A.Get(1, 1), 0)

	ents := A.Entries(1e-15)
	chk.Int(tst, "nentries", len(ents), 3)
	chk.Ints(tst, "I", []int{ents[0].I, ents[1].I, ents[2].I}, []int{0, 0, 2})
	chk.Ints(tst, "J", []int{ents[0].J, ents[1].J, ents[2].J}, []int{0, 2, 0})

	low := A.Lower(1e-15)
	chk.Int(tst, "nlower", len(low), 2)
	chk.Float64(tst, "low[1]", 1e-17, low[1].X, 4)

	D := A.ToDense()
	chk.Float64(tst, "D02", 1e-17, D.At(0, 2), 5)

	A.Start()
	chk.Int(tst, "len after Start", A.Len(), 0)
}
