// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// SparseMatrix holds a sparse matrix in triplet (coordinate) format
//  Note: repeated (i,j) entries are summed when the matrix is read
type SparseMatrix struct {
	m, n int       // dimensions
	I    []int     // row indices
	J    []int     // column indices
	X    []float64 // values
}

// Entry holds one entry of a sparse matrix
type Entry struct {
	I, J int
	X    float64
}

// NewSparseMatrix returns a new m×n sparse matrix with capacity for nnz entries
func NewSparseMatrix(m, n, nnz int) (o *SparseMatrix) {
	o = new(SparseMatrix)
	o.Init(m, n, nnz)
	return
}

// Init initialises the matrix
func (o *SparseMatrix) Init(m, n, nnz int) {
	o.m, o.n = m, n
	o.I = make([]int, 0, nnz)
	o.J = make([]int, 0, nnz)
	o.X = make([]float64, 0, nnz)
}

// Start (re)starts the assembly; memory is kept
func (o *SparseMatrix) Start() {
	o.I, o.J, o.X = o.I[:0], o.J[:0], o.X[:0]
}

// Put adds x to entry (i,j)
func (o *SparseMatrix) Put(i, j int, x float64) {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("cannot put entry (%d,%d) into %d×%d matrix", i, j, o.m, o.n)
	}
	o.I = append(o.I, i)
	o.J = append(o.J, j)
	o.X = append(o.X, x)
}

// Size returns the dimensions of the matrix
func (o *SparseMatrix) Size() (m, n int) { return o.m, o.n }

// Len returns the number of stored entries, including repeated ones
func (o *SparseMatrix) Len() int { return len(o.X) }

// Get returns the value of entry (i,j)
func (o *SparseMatrix) Get(i, j int) (x float64) {
	for k := range o.X {
		if o.I[k] == i && o.J[k] == j {
			x += o.X[k]
		}
	}
	return
}

// Entries returns the entries with repeated ones summed, sorted by row and then by column
//  Note: entries with |x| ≤ tol are skipped
func (o *SparseMatrix) Entries(tol float64) (res []Entry) {
	sum := make(map[[2]int]float64, len(o.X))
	for k := range o.X {
		sum[[2]int{o.I[k], o.J[k]}] += o.X[k]
	}
	res = make([]Entry, 0, len(sum))
	for ij, x := range sum {
		if math.Abs(x) > tol {
			res = append(res, Entry{ij[0], ij[1], x})
		}
	}
	sort.Slice(res, func(a, b int) bool {
		if res[a].I == res[b].I {
			return res[a].J < res[b].J
		}
		return res[a].I < res[b].I
	})
	return
}

// Lower returns the entries of the lower triangle (j ≤ i); see Entries
func (o *SparseMatrix) Lower(tol float64) (res []Entry) {
	for _, e := range o.Entries(tol) {
		if e.J <= e.I {
			res = append(res, e)
		}
	}
	return
}

// ToDense converts this matrix to a dense one
func (o *SparseMatrix) ToDense() (a *mat.Dense) {
	if o.m == 0 || o.n == 0 {
		return &mat.Dense{}
	}
	a = mat.NewDense(o.m, o.n, nil)
	for k := range o.X {
		a.Set(o.I[k], o.J[k], a.At(o.I[k], o.J[k])+o.X[k])
	}
	return
}
