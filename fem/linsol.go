// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/tonda/hermes/inp"
)

// LinSolver defines linear solver backends
type LinSolver interface {
	Init(A *SparseMatrix, dat *inp.LinSolData) error // Init analyses the structure of A; called once
	Fact(A *SparseMatrix) error                      // Fact factorises A
	Solve(x, b []float64) error                      // Solve solves A x = b with the last factorisation
	Free()                                           // Free releases resources
}

// linsolallocators holds all available linear solvers
var linsolallocators = make(map[string]func() LinSolver)

// LinearSystem holds the matrix, the right-hand side and the backend of a linear system
type LinearSystem struct {
	A   *SparseMatrix  // left-hand side; e.g. Jacobian
	B   []float64      // right-hand side
	Dat inp.LinSolData // configuration

	backend LinSolver // linear solver
	init    bool      // backend has been initialised
}

// NewLinearSystem allocates a new linear system of size ndof
func NewLinearSystem(ndof int, dat inp.LinSolData) (o *LinearSystem, err error) {
	if ndof < 0 {
		return nil, failf(InvalidConfig, "number of equations must be non-negative. ndof=%d is invalid", ndof)
	}
	alloc, ok := linsolallocators[dat.Name]
	if !ok {
		return nil, failf(InvalidConfig, "cannot find linear solver named %q. options: umfpack, dense, cholesky", dat.Name)
	}
	o = new(LinearSystem)
	o.A = NewSparseMatrix(ndof, ndof, 9*ndof)
	o.B = make([]float64, ndof)
	o.Dat = dat
	o.backend = alloc()
	return
}

// Ndof returns the number of equations
func (o *LinearSystem) Ndof() int { return len(o.B) }

// Solve factorises A and solves A x = B
func (o *LinearSystem) Solve(x []float64) (err error) {
	if len(x) != len(o.B) {
		return failf(InvalidConfig, "size of solution vector (%d) must be equal to ndof (%d)", len(x), len(o.B))
	}
	if len(x) == 0 {
		return
	}
	if !o.init {
		err = o.backend.Init(o.A, &o.Dat)
		if err != nil {
			return &Failure{Kind: LinearSolveFailure, Err: err}
		}
		o.init = true
	}
	err = o.backend.Fact(o.A)
	if err != nil {
		return &Failure{Kind: LinearSolveFailure, Err: err}
	}
	return o.SolveAgain(x)
}

// SolveAgain solves A x = B with the last factorisation of A
func (o *LinearSystem) SolveAgain(x []float64) (err error) {
	if !o.init {
		return failf(LinearSolveFailure, "matrix must be factorised first")
	}
	err = o.backend.Solve(x, o.B)
	if err != nil {
		return &Failure{Kind: LinearSolveFailure, Err: err}
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return failf(LinearSolveFailure, "solution of linear system has non-finite values")
		}
	}
	return
}

// Free releases the backend resources
func (o *LinearSystem) Free() {
	if o.init {
		o.backend.Free()
		o.init = false
	}
}

// umfpack ////////////////////////////////////////////////////////////////////////////////////////

// linsolUmfpack wraps the UMFPACK sparse direct solver
type linsolUmfpack struct {
	dat *inp.LinSolData // configuration
	tri *la.Triplet     // copy of A in gosl format
	sol la.SparseSolver // gosl solver
	nnz int             // number of entries when triplet was allocated
}

func init() {
	linsolallocators["umfpack"] = func() LinSolver { return new(linsolUmfpack) }
}

func (o *linsolUmfpack) Init(A *SparseMatrix, dat *inp.LinSolData) (err error) {
	o.dat = dat
	return
}

func (o *linsolUmfpack) Fact(A *SparseMatrix) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("umfpack factorisation failed: %v", r)
		}
	}()

	// copy triplet; (re)initialise solver if the number of entries changed
	m, n := A.Size()
	if o.tri == nil || A.Len() > o.nnz {
		o.Free()
		o.nnz = A.Len()
		o.tri = new(la.Triplet)
		o.tri.Init(m, n, o.nnz)
	}
	o.tri.Start()
	for k := range A.X {
		o.tri.Put(A.I[k], A.J[k], A.X[k])
	}
	if o.sol == nil {
		args := la.NewSparseConfig(nil)
		args.Symmetric = o.dat.Symmetric
		args.Verbose = o.dat.Verbose
		o.sol = la.NewSparseSolver("umfpack")
		o.sol.Init(o.tri, args)
	}
	o.sol.Fact()
	return
}

func (o *linsolUmfpack) Solve(x, b []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("umfpack solution failed: %v", r)
		}
	}()
	o.sol.Solve(x, b, false)
	return
}

func (o *linsolUmfpack) Free() {
	if o.sol != nil {
		o.sol.Free()
		o.sol = nil
	}
}

// dense //////////////////////////////////////////////////////////////////////////////////////////

// MAXCOND is the maximum condition number accepted by the dense solvers
const MAXCOND = 1e15

// linsolDense solves linear systems with the LU decomposition of a dense copy of A
type linsolDense struct {
	lu mat.LU
}

func init() {
	linsolallocators["dense"] = func() LinSolver { return new(linsolDense) }
}

func (o *linsolDense) Init(A *SparseMatrix, dat *inp.LinSolData) (err error) { return }

func (o *linsolDense) Fact(A *SparseMatrix) (err error) {
	o.lu.Factorize(A.ToDense())
	cond := o.lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > MAXCOND {
		return chk.Err("matrix is singular or ill-conditioned: cond = %g", cond)
	}
	return
}

func (o *linsolDense) Solve(x, b []float64) (err error) {
	dst := mat.NewVecDense(len(x), x)
	err = o.lu.SolveVecTo(dst, false, mat.NewVecDense(len(b), b))
	if err != nil {
		return chk.Err("LU solution failed: %v", err)
	}
	return
}

func (o *linsolDense) Free() {}

// cholesky ///////////////////////////////////////////////////////////////////////////////////////

// linsolCholesky solves symmetric positive-definite systems with the Cholesky decomposition
type linsolCholesky struct {
	chol mat.Cholesky
}

func init() {
	linsolallocators["cholesky"] = func() LinSolver { return new(linsolCholesky) }
}

func (o *linsolCholesky) Init(A *SparseMatrix, dat *inp.LinSolData) (err error) { return }

func (o *linsolCholesky) Fact(A *SparseMatrix) (err error) {
	if ok := o.chol.Factorize(symmetricPart(A.ToDense())); !ok {
		return chk.Err("matrix is not symmetric positive-definite")
	}
	if cond := o.chol.Cond(); cond > MAXCOND {
		return chk.Err("matrix is ill-conditioned: cond = %g", cond)
	}
	return
}

func (o *linsolCholesky) Solve(x, b []float64) (err error) {
	dst := mat.NewVecDense(len(x), x)
	err = o.chol.SolveVecTo(dst, mat.NewVecDense(len(b), b))
	if err != nil {
		return chk.Err("Cholesky solution failed: %v", err)
	}
	return
}

func (o *linsolCholesky) Free() {}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// symmetricPart returns (A + Aᵀ)/2
func symmetricPart(a *mat.Dense) (s *mat.SymDense) {
	n, _ := a.Dims()
	s = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, (a.At(i, j)+a.At(j, i))/2.0)
		}
	}
	return
}
