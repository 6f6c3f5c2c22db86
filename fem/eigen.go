// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tonda/hermes/inp"
)

// exchange files
const (
	EIG_LEFT  = "mat_left.mtx"  // stiffness matrix
	EIG_RIGHT = "mat_right.mtx" // mass matrix
	EIG_VECS  = "eivecs.dat"    // eigenvalues and eigenvectors computed by eigensolver
)

// EigenRequest holds the generalized eigenvalue problem A v = λ B v
type EigenRequest struct {
	Left      *SparseMatrix // A
	Right     *SparseMatrix // B
	LeftPath  string        // file with A in MatrixMarket format
	RightPath string        // file with B in MatrixMarket format
	Target    float64       // eigenvalues closest to Target are requested
	Nev       int           // number of requested eigenvalues
	Tol       float64       // tolerance
	MaxIt     int           // max number of iterations
}

// EigenResponse holds eigenpairs
type EigenResponse struct {
	Values  []float64   // [nev] eigenvalues
	Vectors [][]float64 // [nev][ndof] eigenvectors
}

// EigenSolver defines generalized eigenvalue solvers
type EigenSolver interface {
	Solve(req *EigenRequest) (*EigenResponse, error)
}

// NewEigenSolver returns the eigensolver selected in dat
func NewEigenSolver(dat *inp.EigenData, workdir string) (EigenSolver, error) {
	switch dat.Backend {
	case "dense":
		return new(DenseEigenSolver), nil
	case "process":
		return &ProcessEigenSolver{Command: dat.Command, WorkDir: workdir}, nil
	}
	return nil, failf(InvalidConfig, "cannot find eigensolver named %q. options: dense, process", dat.Backend)
}

// EigenPipeline assembles the stiffness and mass matrices, exports them and calls an eigensolver
type EigenPipeline struct {
	Space   *Space        // finite element space; prescribed vertices are removed
	Solver  EigenSolver   // eigensolver
	Dat     inp.EigenData // configuration
	WorkDir string        // directory for exchange files
}

// Assemble assembles the stiffness (left) and mass (right) matrices
func (o *EigenPipeline) Assemble() (left, right *SparseMatrix, err error) {
	ndof := o.Space.Ndof()
	x := make([]float64, ndof)
	assemble := func(name string) (A *SparseMatrix, err error) {
		form, err := NewWeakForm(name, nil)
		if err != nil {
			return
		}
		A = NewSparseMatrix(ndof, ndof, 9*ndof)
		err = NewAssembler(o.Space, form, true).Assemble(x, A, nil)
		return
	}
	left, err = assemble("laplace")
	if err != nil {
		return
	}
	right, err = assemble("mass")
	return
}

// Run runs the pipeline
func (o *EigenPipeline) Run() (res *EigenResponse, err error) {

	// check
	ndof := o.Space.Ndof()
	if o.Dat.Nev < 1 || o.Dat.Nev > ndof {
		return nil, failf(InvalidConfig, "number of eigenvalues must be in [1, %d]. nev=%d is invalid", ndof, o.Dat.Nev)
	}

	// matrices
	left, right, err := o.Assemble()
	if err != nil {
		return
	}

	// export
	dir, err := filepath.Abs(o.WorkDir)
	if err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: err}
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot create directory %q:\n%v", dir, err)}
	}
	req := &EigenRequest{
		Left:      left,
		Right:     right,
		LeftPath:  filepath.Join(dir, EIG_LEFT),
		RightPath: filepath.Join(dir, EIG_RIGHT),
		Target:    o.Dat.Target,
		Nev:       o.Dat.Nev,
		Tol:       o.Dat.Tol,
		MaxIt:     o.Dat.MaxIt,
	}
	err = WriteMatrixMarketFile(req.LeftPath, left)
	if err != nil {
		return
	}
	err = WriteMatrixMarketFile(req.RightPath, right)
	if err != nil {
		return
	}

	// solve
	res, err = o.Solver.Solve(req)
	if err != nil {
		return nil, err
	}
	if len(res.Values) != o.Dat.Nev || len(res.Vectors) != o.Dat.Nev {
		return nil, failf(ProtocolMismatch, "eigensolver returned %d eigenpairs. %d were requested", len(res.Values), o.Dat.Nev)
	}
	for i, v := range res.Vectors {
		if len(v) != ndof {
			return nil, failf(ProtocolMismatch, "eigenvector %d has %d components. ndof=%d", i, len(v), ndof)
		}
	}
	return
}

// exchange file /////////////////////////////////////////////////////////////////////////////////

// ReadEigenExchange reads eigenpairs written by eigensolvers
//
//   line 1: ndof
//   line 2: number of eigenpairs
//   then, for each eigenpair: one line with the eigenvalue followed by ndof lines with the eigenvector
//
func ReadEigenExchange(path string, ndof, nev int) (res *EigenResponse, err error) {

	// open file
	f, err := os.Open(path)
	if err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot open eigensolver output file %q:\n%v", path, err)}
	}
	defer f.Close()

	// scanner
	sc := bufio.NewScanner(f)
	lnum := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lnum++
			if line := strings.TrimSpace(sc.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}
	readInt := func(what string, expected int) error {
		line, ok := next()
		if !ok {
			return failf(ProtocolMismatch, "eigensolver output file %q is truncated: %s is missing", path, what)
		}
		n, e := strconv.Atoi(line)
		if e != nil {
			return failf(ProtocolMismatch, "cannot parse %s at line %d of %q: %q", what, lnum, path, line)
		}
		if n != expected {
			return failf(ProtocolMismatch, "mismatched %s in eigensolver output file: %d != %d", what, n, expected)
		}
		return nil
	}
	readFloat := func() (x float64, err error) {
		line, ok := next()
		if !ok {
			return 0, failf(ProtocolMismatch, "eigensolver output file %q is truncated after line %d", path, lnum)
		}
		x, err = strconv.ParseFloat(line, 64)
		if err != nil {
			return 0, failf(ProtocolMismatch, "cannot parse number at line %d of %q: %q", lnum, path, line)
		}
		return
	}

	// header
	if err = readInt("ndof", ndof); err != nil {
		return nil, err
	}
	if err = readInt("number of eigenvectors", nev); err != nil {
		return nil, err
	}

	// eigenpairs
	res = &EigenResponse{Values: make([]float64, nev), Vectors: make([][]float64, nev)}
	for k := 0; k < nev; k++ {
		if res.Values[k], err = readFloat(); err != nil {
			return nil, err
		}
		res.Vectors[k] = make([]float64, ndof)
		for i := 0; i < ndof; i++ {
			if res.Vectors[k][i], err = readFloat(); err != nil {
				return nil, err
			}
		}
	}
	if err = sc.Err(); err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot read eigensolver output file %q:\n%v", path, err)}
	}
	return
}

// WriteEigenExchange writes eigenpairs; see ReadEigenExchange
func WriteEigenExchange(path string, res *EigenResponse) (err error) {
	ndof := 0
	if len(res.Vectors) > 0 {
		ndof = len(res.Vectors[0])
	}
	var b bytes.Buffer
	io.Ff(&b, "%d\n%d\n", ndof, len(res.Values))
	for k, λ := range res.Values {
		if len(res.Vectors[k]) != ndof {
			return failf(InvalidConfig, "all eigenvectors must have %d components. eigenvector %d has %d", ndof, k, len(res.Vectors[k]))
		}
		io.Ff(&b, "%24.15e\n", λ)
		for _, v := range res.Vectors[k] {
			io.Ff(&b, "%24.15e\n", v)
		}
	}
	err = os.WriteFile(path, b.Bytes(), 0644)
	if err != nil {
		return &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot write file %q:\n%v", path, err)}
	}
	return
}
