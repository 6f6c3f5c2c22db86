// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bufio"
	"bytes"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
const (
	MTX_HEADER = "%%MatrixMarket matrix coordinate real symmetric" // header of MatrixMarket files
	MTX_ZERO   = 1e-15                                             // entries with |v| ≤ MTX_ZERO are not written
)

// WriteMatrixMarket writes the lower triangle of symmetric matrix A in MatrixMarket format
func WriteMatrixMarket(w goio.Writer, A *SparseMatrix) (err error) {
	m, n := A.Size()
	lower := A.Lower(MTX_ZERO)
	var b bytes.Buffer
	io.Ff(&b, "%s\n", MTX_HEADER)
	io.Ff(&b, "%d %d %d\n", m, n, len(lower))
	for _, e := range lower {
		io.Ff(&b, "%d %d %24.15e\n", e.I+1, e.J+1, e.X)
	}
	_, err = w.Write(b.Bytes())
	if err != nil {
		return &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot write matrix:\n%v", err)}
	}
	return
}

// WriteMatrixMarketFile writes A to file; see WriteMatrixMarket
func WriteMatrixMarketFile(path string, A *SparseMatrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot create file %q:\n%v", path, err)}
	}
	err = WriteMatrixMarket(f, A)
	if e := f.Close(); err == nil && e != nil {
		err = &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot close file %q:\n%v", path, e)}
	}
	return
}

// ReadMatrixMarket reads symmetric matrices written by WriteMatrixMarket
//  Input:
//   expand -- also add the upper triangle (j > i) entries
func ReadMatrixMarket(r goio.Reader, expand bool) (A *SparseMatrix, err error) {
	sc := bufio.NewScanner(r)
	lnum := 0
	var nnz, k int
	for sc.Scan() {
		lnum++
		line := strings.TrimSpace(sc.Text())
		if lnum == 1 {
			if line != MTX_HEADER {
				return nil, failf(ProtocolMismatch, "MatrixMarket header %q is not supported. %q is required", line, MTX_HEADER)
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, failf(ProtocolMismatch, "line %d of MatrixMarket file must have 3 fields: %q", lnum, line)
		}

		// size
		if A == nil {
			m, e1 := strconv.Atoi(f[0])
			n, e2 := strconv.Atoi(f[1])
			c, e3 := strconv.Atoi(f[2])
			if e1 != nil || e2 != nil || e3 != nil || m < 0 || n < 0 || c < 0 {
				return nil, failf(ProtocolMismatch, "invalid size line %d in MatrixMarket file: %q", lnum, line)
			}
			nnz = c
			A = NewSparseMatrix(m, n, 2*nnz)
			continue
		}

		// entry
		i, e1 := strconv.Atoi(f[0])
		j, e2 := strconv.Atoi(f[1])
		x, e3 := strconv.ParseFloat(f[2], 64)
		m, n := A.Size()
		if e1 != nil || e2 != nil || e3 != nil || i < 1 || i > m || j < 1 || j > n {
			return nil, failf(ProtocolMismatch, "invalid entry at line %d in MatrixMarket file: %q", lnum, line)
		}
		if k == nnz {
			return nil, failf(ProtocolMismatch, "MatrixMarket file has more than %d entries", nnz)
		}
		A.Put(i-1, j-1, x)
		if expand && i != j {
			A.Put(j-1, i-1, x)
		}
		k++
	}
	if err = sc.Err(); err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot read MatrixMarket data:\n%v", err)}
	}
	if A == nil {
		return nil, failf(ProtocolMismatch, "MatrixMarket data is empty or has no size line")
	}
	if k != nnz {
		return nil, failf(ProtocolMismatch, "MatrixMarket file is truncated: %d entries found but %d declared", k, nnz)
	}
	return
}

// ReadMatrixMarketFile reads matrix from file; see ReadMatrixMarket
func ReadMatrixMarketFile(path string, expand bool) (A *SparseMatrix, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot open file %q:\n%v", path, err)}
	}
	defer f.Close()
	return ReadMatrixMarket(f, expand)
}
