// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func Test_mtx01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mtx01. MatrixMarket round trip")

	// stiffness matrix
	space := newSquareSpace(tst, 0, 3, 2, "qua9", allFaces("zero"))
	ndof := space.Ndof()
	laplace, _ := NewWeakForm("laplace", nil)
	A := NewSparseMatrix(ndof, ndof, 0)
	err := NewAssembler(space, laplace, true).Assemble(make([]float64, ndof), A, nil)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}

	// write
	var buf bytes.Buffer
	err = WriteMatrixMarket(&buf, A)
	if err != nil {
		tst.Errorf("WriteMatrixMarket failed:\n%v", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	io.Pforan("%s\n%s\n", lines[0], lines[1])
	if lines[0] != "%%MatrixMarket matrix coordinate real symmetric" {
		tst.Errorf("header is incorrect: %q\n", lines[0])
		return
	}
	nlower := len(A.Lower(MTX_ZERO))
	chk.Int(tst, "nlines", len(lines), 2+nlower)
	if lines[1] != io.Sf("%d %d %d", ndof, ndof, nlower) {
		tst.Errorf("size line is incorrect: %q\n", lines[1])
		return
	}

	// read
	B, err := ReadMatrixMarket(strings.NewReader(buf.String()), true)
	if err != nil {
		tst.Errorf("ReadMatrixMarket failed:\n%v", err)
		return
	}
	m, n := B.Size()
	chk.Ints(tst, "size", []int{m, n}, []int{ndof, ndof})
	opt := cmpopts.EquateApprox(1e-14, 1e-14)
	if diff := cmp.Diff(A.Entries(MTX_ZERO), B.Entries(0), opt); diff != "" {
		tst.Errorf("round trip failed (-want +got):\n%s", diff)
	}

	// lower triangle only
	C, err := ReadMatrixMarket(strings.NewReader(buf.String()), false)
	if err != nil {
		tst.Errorf("ReadMatrixMarket failed:\n%v", err)
		return
	}
	if diff := cmp.Diff(A.Lower(MTX_ZERO), C.Entries(0), opt); diff != "" {
		tst.Errorf("lower triangle is incorrect (-want +got):\n%s", diff)
	}

	// files
	fn := filepath.Join(tst.TempDir(), "A.mtx")
	err = WriteMatrixMarketFile(fn, A)
	if err != nil {
		tst.Errorf("WriteMatrixMarketFile failed:\n%v", err)
		return
	}
	D, err := ReadMatrixMarketFile(fn, true)
	if err != nil {
		tst.Errorf("ReadMatrixMarketFile failed:\n%v", err)
		return
	}
	if diff := cmp.Diff(A.Entries(MTX_ZERO), D.Entries(0), opt); diff != "" {
		tst.Errorf("round trip with files failed (-want +got):\n%s", diff)
	}
}

func Test_mtx02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mtx02. MatrixMarket failures")

	hdr := "%%MatrixMarket matrix coordinate real symmetric\n"
	for i, txt := range []string{
		"",
		"%%MatrixMarket matrix array real general\n2 2\n",
		hdr,
		hdr + "2 2 3\n1 1 1.0\n2 1 2.0\n",
		hdr + "2 2 1\n1 1 1.0\n2 2 2.0\n",
		hdr + "2 2 1\n3 1 1.0\n",
		hdr + "2 2 1\n1 1 abc\n",
		hdr + "2 2\n",
	} {
		_, err := ReadMatrixMarket(strings.NewReader(txt), true)
		io.Pforan("%d: %v\n", i, err)
		if KindOf(err) != ProtocolMismatch {
			tst.Errorf("case %d should give ProtocolMismatch. %v is incorrect\n", i, err)
		}
	}

	// comments are skipped
	A, err := ReadMatrixMarket(strings.NewReader(hdr+"% comment\n2 2 1\n2 1 -3.5\n"), true)
	if err != nil {
		tst.Errorf("ReadMatrixMarket failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A12", 1e-17, A.Get(0, 1), -3.5)
	chk.Float64(tst, "A21", 1e-17, A.Get(1, 0), -3.5)

	// missing file
	_, err = ReadMatrixMarketFile(filepath.Join(tst.TempDir(), "missing.mtx"), true)
	if KindOf(err) != ResourceUnavailable {
		tst.Errorf("missing file should give ResourceUnavailable. %v is incorrect\n", err)
	}
}
