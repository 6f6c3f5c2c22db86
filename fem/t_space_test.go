// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/ana"
	"github.com/tonda/hermes/inp"
)

func Test_space01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space01. equations and lifted values")

	// 2x2 qua4 cells; left face is natural
	//
	//   6 ---- 7 ---- 8
	//   |      |      |
	//   3 ---- 4 ---- 5
	//   |      |      |
	//   0 ---- 1 ---- 2
	//
	ebcs := []*inp.EssenBc{
		{Tag: inp.TagBottom, Func: "heatlift"},
		{Tag: inp.TagRight, Func: "heatlift"},
		{Tag: inp.TagTop, Func: "heatlift"},
	}
	space := newSquareSpace(tst, -10, 10, 2, "qua4", ebcs)
	chk.Int(tst, "ndof", space.Ndof(), 2)
	chk.Ints(tst, "free", space.Free, []int{3, 4})
	chk.Ints(tst, "eq", space.Eq, []int{-1, -1, -1, 0, 1, -1, -1, -1, -1})
	chk.Int(tst, "nips", len(space.Ips), 4)

	u := space.FullValues([]float64{11, 22})
	chk.Array(tst, "u", 1e-15, u, []float64{0, 0, 0, 11, 22, heatLiftAt(10, 0), 0, heatLiftAt(0, 10), 4})

	ue := make([]float64, 4)
	space.Gather(ue, u, 3)
	chk.Array(tst, "ue", 1e-15, ue, []float64{22, heatLiftAt(10, 0), 4, heatLiftAt(0, 10)})

	// unknown function
	msh := space.Msh
	for _, c := range msh.Cells {
		c.SetFaceConds([]*inp.EssenBc{{Tag: inp.TagBottom, Func: "unknown"}})
	}
	_, err := NewSpace(msh, "qua4", 0, NewResolver(nil))
	if KindOf(err) != InvalidConfig {
		tst.Errorf("unknown function should give InvalidConfig. %v is incorrect\n", err)
	}

	// invalid number of integration points
	_, err = NewSpace(msh, "qua4", 5, NewResolver(nil))
	if KindOf(err) != InvalidConfig {
		tst.Errorf("nip=5 should give InvalidConfig. %v is incorrect\n", err)
	}

	// wrong cell type
	_, err = NewSpace(msh, "qua9", 0, NewResolver(nil))
	if KindOf(err) != InvalidConfig {
		tst.Errorf("wrong cell type should give InvalidConfig. %v is incorrect\n", err)
	}
}

func Test_space02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space02. resolver")

	funcs := inp.FuncsData{{Name: "two", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 2}}}}
	resolve := NewResolver(funcs)

	// analytical field
	f, err := resolve("heatlift")
	if err != nil {
		tst.Errorf("resolve failed:\n%v", err)
		return
	}
	chk.Float64(tst, "heatlift", 1e-15, f.F([]float64{0, 0}), 1)

	// zero
	f, err = resolve("zero")
	if err != nil {
		tst.Errorf("resolve failed:\n%v", err)
		return
	}
	chk.Float64(tst, "zero", 1e-15, f.F([]float64{3, 4}), 0)

	// function from database
	f, err = resolve("two")
	if err != nil {
		tst.Errorf("resolve failed:\n%v", err)
		return
	}
	chk.Float64(tst, "two", 1e-15, f.F([]float64{3, 4}), 2)

	// unknown
	_, err = resolve("unknown")
	if err == nil {
		tst.Errorf("resolve should fail with unknown function\n")
	}
}

func Test_assembler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler01. mass and stiffness matrices")

	// one qua4 cell without essential conditions
	space := newSquareSpace(tst, 0, 2, 1, "qua4", nil)
	chk.Int(tst, "ndof", space.Ndof(), 4)
	x := make([]float64, 4)

	// mass matrix of bilinear element with area 4: (A/36) [4 2 1 2; ...]
	//  Note: equations follow vertex ids {0,1,2,3} whereas the cell has verts {0,1,3,2}
	mass, _ := NewWeakForm("mass", nil)
	M := NewSparseMatrix(4, 4, 16)
	err := NewAssembler(space, mass, true).Assemble(x, M, nil)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}
	Mcor := [][]float64{
		{4, 2, 2, 1},
		{2, 4, 1, 2},
		{2, 1, 4, 2},
		{1, 2, 2, 4},
	}
	D := M.ToDense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			chk.Float64(tst, io.Sf("M%d%d", i, j), 1e-14, D.At(i, j), Mcor[i][j]*4.0/36.0)
		}
	}

	// stiffness matrix of bilinear square element: (1/6) [4 -1 -2 -1; ...]
	laplace, _ := NewWeakForm("laplace", nil)
	K := NewSparseMatrix(4, 4, 16)
	R := make([]float64, 4)
	x = []float64{1, 1, 1, 1}
	err = NewAssembler(space, laplace, true).Assemble(x, K, R)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}
	Kcor := [][]float64{
		{4, -1, -1, -2},
		{-1, 4, -2, -1},
		{-1, -2, 4, -1},
		{-2, -1, -1, 4},
	}
	D = K.ToDense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			chk.Float64(tst, io.Sf("K%d%d", i, j), 1e-14, D.At(i, j), Kcor[i][j]/6.0)
		}
	}
	chk.Array(tst, "R(constant)", 1e-14, R, []float64{0, 0, 0, 0})

	// wrong sizes
	err = NewAssembler(space, laplace, true).Assemble([]float64{1}, K, R)
	if KindOf(err) != InvalidConfig {
		tst.Errorf("wrong size should give InvalidConfig. %v is incorrect\n", err)
	}
	err = NewAssembler(space, laplace, true).Assemble(x, NewSparseMatrix(3, 3, 0), R)
	if KindOf(err) != InvalidConfig {
		tst.Errorf("wrong size should give InvalidConfig. %v is incorrect\n", err)
	}
}

func Test_assembler02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler02. Jacobian of heat form")

	space := newSquareSpace(tst, -10, 10, 2, "qua9", allFaces("heatlift"))
	ndof := space.Ndof()
	prob := NewAssembler(space, newHeatForm(tst, 1), false)
	prev := make([]float64, ndof)
	x := make([]float64, ndof)
	for i := range x {
		prev[i] = 0.5 + 0.1*float64(i)
		x[i] = 0.8 + 0.05*float64(i)
	}
	err := prob.SetPrevious(prev, 0.2, 0.2)
	if err != nil {
		tst.Errorf("SetPrevious failed:\n%v", err)
		return
	}

	// analytical Jacobian
	J := NewSparseMatrix(ndof, ndof, 9*ndof)
	R := make([]float64, ndof)
	err = prob.Assemble(x, J, R)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}
	Jana := J.ToDense()

	// numerical Jacobian
	var errR error
	var tmp float64
	Rtmp := make([]float64, ndof)
	xx := make([]float64, ndof)
	copy(xx, x)
	for i := 0; i < ndof; i++ {
		for j := 0; j < ndof; j++ {
			chk.DerivScaSca(tst, io.Sf("dR%d/dx%d", i, j), 1e-6*(1+Jana.At(i, i)), Jana.At(i, j), x[j], 1e-6, chk.Verbose, func(t float64) float64 {
				tmp, xx[j] = xx[j], t
				if err := prob.Assemble(xx, nil, Rtmp); err != nil && errR == nil {
					errR = err
				}
				xx[j] = tmp
				return Rtmp[i]
			})
			if errR != nil {
				tst.Errorf("Assemble failed during numerical differentiation:\n%v", errR)
				return
			}
		}
	}
}

func Test_projector01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("projector01. bilinear functions are reproduced")

	g, _ := ana.GetField("heatlift")
	for _, bcs := range [][]*inp.EssenBc{allFaces("heatlift"), nil} {
		space := newSquareSpace(tst, -10, 10, 2, "qua9", bcs)
		for _, norm := range []string{"l2", "h1"} {
			io.Pforan("nbcs = %d, norm = %s\n", len(bcs), norm)
			proj := &Projector{Norm: norm, LinSol: inp.LinSolData{Name: "dense"}}
			x, err := proj.Project(space, g)
			if err != nil {
				tst.Errorf("Project failed:\n%v", err)
				return
			}
			chk.Int(tst, "len(x)", len(x), space.Ndof())
			for eq, v := range space.Free {
				chk.Float64(tst, io.Sf("u @ %d", v), 1e-11, x[eq], g.F(space.Msh.Verts[v].C))
			}
		}
	}

	// invalid norm
	space := newSquareSpace(tst, -10, 10, 1, "qua9", nil)
	proj := &Projector{Norm: "h2", LinSol: inp.LinSolData{Name: "dense"}}
	_, err := proj.Project(space, g)
	if KindOf(err) != InvalidConfig {
		tst.Errorf("invalid norm should give InvalidConfig. %v is incorrect\n", err)
	}
}

func Test_sampler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sampler01. evaluation at points")

	space := newSquareSpace(tst, -10, 10, 3, "qua9", allFaces("heatlift"))
	g, _ := ana.GetField("heatlift")
	proj := &Projector{Norm: "h1", LinSol: inp.LinSolData{Name: "dense"}}
	x, err := proj.Project(space, g)
	if err != nil {
		tst.Errorf("Project failed:\n%v", err)
		return
	}
	state := DiscreteState{Coeffs: x, Time: 0}

	sampler := NewSampler(space)
	for _, p := range [][]float64{{-10, -10}, {10, 10}, {-6, -6}, {-2, -2}, {2, 2}, {6, 6}, {1.234, -7.5}, {-10, 3}} {
		u, err := sampler.Evaluate(state, p[0], p[1])
		if err != nil {
			tst.Errorf("Evaluate failed:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("u(%g,%g)", p[0], p[1]), 1e-11, u, heatLiftAt(p[0], p[1]))
	}

	// outside
	_, err = sampler.Evaluate(state, 10.5, 0)
	if err == nil {
		tst.Errorf("Evaluate should fail with point outside mesh\n")
	}

	// wrong size
	_, err = sampler.Evaluate(DiscreteState{Coeffs: []float64{1}}, 0, 0)
	if KindOf(err) != InvalidConfig {
		tst.Errorf("wrong size should give InvalidConfig. %v is incorrect\n", err)
	}
}
