// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// ProcessEigenSolver calls an external program to solve the eigenvalue problem
//
//   the program is called within WorkDir as:
//
//     command left.mtx right.mtx target nev tol maxit
//
//   and must write the eigenpairs to eivecs.dat; see ReadEigenExchange
//
type ProcessEigenSolver struct {
	Command string // command and initial arguments; e.g. "python solveGenEigenFromMtx.py"
	WorkDir string // working directory
	Output  []byte // combined output of last call
}

// Solve calls the external program and reads its results
func (o *ProcessEigenSolver) Solve(req *EigenRequest) (res *EigenResponse, err error) {
	fields := strings.Fields(o.Command)
	if len(fields) == 0 {
		return nil, failf(InvalidConfig, "command of external eigensolver must be given")
	}
	args := append(fields[1:len(fields):len(fields)], req.LeftPath, req.RightPath,
		io.Sf("%g", req.Target), io.Sf("%d", req.Nev), io.Sf("%g", req.Tol), io.Sf("%d", req.MaxIt))
	out := filepath.Join(o.WorkDir, EIG_VECS)
	if err = os.Remove(out); err != nil && !os.IsNotExist(err) {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot remove previous eigensolver output %q:\n%v", out, err)}
	}
	cmd := exec.Command(fields[0], args...)
	cmd.Dir = o.WorkDir
	o.Output, err = cmd.CombinedOutput()
	if err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("external eigensolver %q failed:\n%v\n%s", o.Command, err, o.Output)}
	}
	ndof, _ := req.Left.Size()
	return ReadEigenExchange(out, ndof, req.Nev)
}

// DenseEigenSolver solves the generalized symmetric eigenvalue problem with dense matrices
//
//   A v = λ B v  with  B = L Lᵀ   =>   (L⁻¹ A L⁻ᵀ) w = λ w  and  v = L⁻ᵀ w
//
type DenseEigenSolver struct{}

// Solve returns the Nev eigenpairs closest to Target sorted by ascending eigenvalues
func (o *DenseEigenSolver) Solve(req *EigenRequest) (res *EigenResponse, err error) {

	// check
	n, nb := req.Left.Size()
	if m, mb := req.Right.Size(); n != nb || m != mb || n != m {
		return nil, failf(InvalidConfig, "matrices must be square and of the same size: %d×%d and %d×%d", n, nb, m, mb)
	}
	if req.Nev < 1 || req.Nev > n {
		return nil, failf(InvalidConfig, "number of eigenvalues must be in [1, %d]. nev=%d is invalid", n, req.Nev)
	}

	// Cholesky factorisation of B
	var chol mat.Cholesky
	if ok := chol.Factorize(symmetricPart(req.Right.ToDense())); !ok {
		return nil, failf(LinearSolveFailure, "right-hand side matrix is not symmetric positive-definite")
	}
	var L, Linv mat.TriDense
	chol.LTo(&L)
	err = Linv.InverseTri(&L)
	if err != nil {
		return nil, &Failure{Kind: LinearSolveFailure, Err: chk.Err("cannot invert Cholesky factor:\n%v", err)}
	}

	// standard problem: C = L⁻¹ A L⁻ᵀ
	var tmp, C mat.Dense
	tmp.Mul(&Linv, req.Left.ToDense())
	C.Mul(&tmp, Linv.T())
	var eig mat.EigenSym
	if ok := eig.Factorize(symmetricPart(&C), true); !ok {
		return nil, failf(LinearSolveFailure, "symmetric eigenvalue decomposition failed")
	}
	vals := eig.Values(nil)
	var W, V mat.Dense
	eig.VectorsTo(&W)
	V.Mul(Linv.T(), &W)

	// select eigenpairs closest to target
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(vals[idx[a]]-req.Target) < math.Abs(vals[idx[b]]-req.Target)
	})
	idx = idx[:req.Nev]
	sort.Ints(idx)

	// results
	res = &EigenResponse{Values: make([]float64, req.Nev), Vectors: make([][]float64, req.Nev)}
	for k, j := range idx {
		res.Values[k] = vals[j]
		res.Vectors[k] = mat.Col(nil, j, &V)
	}
	return
}
