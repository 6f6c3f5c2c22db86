// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/inp"
	"github.com/tonda/hermes/mconduct"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// allFaces returns essential conditions with function fcn on all faces of rectangles
func allFaces(fcn string) []*inp.EssenBc {
	return []*inp.EssenBc{
		{Tag: inp.TagBottom, Func: fcn},
		{Tag: inp.TagRight, Func: fcn},
		{Tag: inp.TagTop, Func: fcn},
		{Tag: inp.TagLeft, Func: fcn},
	}
}

// newSquareSpace returns a space on the square [xmin,xmax]² with n×n cells
func newSquareSpace(tst *testing.T, xmin, xmax float64, n int, ctype string, ebcs []*inp.EssenBc) *Space {
	msh, err := inp.GenRectangle(&inp.RectData{Xmin: xmin, Xmax: xmax, Ymin: xmin, Ymax: xmax, Nx: n, Ny: n}, ctype, 0)
	if err != nil {
		tst.Fatalf("GenRectangle failed:\n%v", err)
	}
	for _, c := range msh.Cells {
		err = c.SetFaceConds(ebcs)
		if err != nil {
			tst.Fatalf("SetFaceConds failed:\n%v", err)
		}
	}
	space, err := NewSpace(msh, ctype, 0, NewResolver(nil))
	if err != nil {
		tst.Fatalf("NewSpace failed:\n%v", err)
	}
	return space
}

// newHeatForm returns the heat form with λ = 1 + u⁴ and s = src
func newHeatForm(tst *testing.T, src float64) WeakForm {
	model, err := mconduct.New("poly")
	if err != nil {
		tst.Fatalf("mconduct.New failed:\n%v", err)
	}
	err = model.Init(dbf.Params{&dbf.P{N: "a0", V: 1}, &dbf.P{N: "a4", V: 1}})
	if err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	fcn, err := dbf.New("cte", dbf.Params{&dbf.P{N: "c", V: src}})
	if err != nil {
		tst.Fatalf("dbf.New failed:\n%v", err)
	}
	form, err := NewWeakForm("heat", &FormData{Model: model, Source: fcn})
	if err != nil {
		tst.Fatalf("NewWeakForm failed:\n%v", err)
	}
	return form
}

// newLinearHeatForm returns the heat form with λ = 1 and s = 0
func newLinearHeatForm(tst *testing.T) WeakForm {
	model, err := mconduct.New("cte")
	if err != nil {
		tst.Fatalf("mconduct.New failed:\n%v", err)
	}
	err = model.Init(dbf.Params{&dbf.P{N: "k", V: 1}})
	if err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	form, err := NewWeakForm("heat", &FormData{Model: model})
	if err != nil {
		tst.Fatalf("NewWeakForm failed:\n%v", err)
	}
	return form
}

// cubicProblem implements F_i(x) = x_i³ - C_i
type cubicProblem struct {
	C []float64
}

func (o *cubicProblem) Ndof() int      { return len(o.C) }
func (o *cubicProblem) IsLinear() bool { return false }

func (o *cubicProblem) Assemble(x []float64, J *SparseMatrix, R []float64) error {
	J.Start()
	for i, c := range o.C {
		R[i] = x[i]*x[i]*x[i] - c
		J.Put(i, i, 3*x[i]*x[i])
	}
	return nil
}

// denseProblem implements F(x) = A x - b
type denseProblem struct {
	A [][]float64
	B []float64
}

func (o *denseProblem) Ndof() int      { return len(o.B) }
func (o *denseProblem) IsLinear() bool { return true }

func (o *denseProblem) Assemble(x []float64, J *SparseMatrix, R []float64) error {
	J.Start()
	for i := range o.A {
		R[i] = -o.B[i]
		for j := range o.A[i] {
			R[i] += o.A[i][j] * x[j]
			J.Put(i, j, o.A[i][j])
		}
	}
	return nil
}

// heatLiftAt returns (x+10)(y+10)/100
func heatLiftAt(x, y float64) float64 {
	return (x + 10) * (y + 10) / 100
}

// sameBits checks that a and b are bit-identical
func sameBits(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}
