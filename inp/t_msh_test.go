// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01")

	msh, err := ReadMsh("data", "twoqua4.msh", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pforan("%v\n", msh)
	}

	chk.Int(tst, "nverts", len(msh.Verts), 6)
	chk.Int(tst, "ncells", len(msh.Cells), 2)
	chk.Float64(tst, "xmax", 1e-15, msh.Xmax, 2)
	chk.Float64(tst, "ymax", 1e-15, msh.Ymax, 1)
	chk.Int(tst, "ntagged verts", len(msh.VertTag2verts[-100]), 1)
	chk.Ints(tst, "bottom verts", msh.FaceTag2verts[-10], []int{0, 1, 2})
	chk.Ints(tst, "top verts", msh.FaceTag2verts[-12], []int{3, 4, 5})
	chk.Ints(tst, "right verts", msh.FaceTag2verts[-11], []int{2, 5})
	chk.Ints(tst, "left verts", msh.FaceTag2verts[-13], []int{0, 3})
	chk.Int(tst, "ncells with bottom", len(msh.FaceTag2cells[-10]), 2)

	X := msh.ExtractCellCoords(1)
	chk.Array(tst, "x(cell 1)", 1e-15, X[0], []float64{1, 2, 2, 1})
	chk.Array(tst, "y(cell 1)", 1e-15, X[1], []float64{0, 0, 1, 1})

	_, err = ReadMsh("data", "doesnotexist.msh", 0)
	if err == nil {
		tst.Errorf("reading a missing mesh file should fail\n")
	}
}

func Test_gen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen01. structured rectangle")

	dat := &RectData{Xmin: 0, Xmax: 4, Ymin: 0, Ymax: 2, Nx: 2, Ny: 1}

	// qua4
	msh, err := GenRectangle(dat, "qua4", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "nverts", len(msh.Verts), 6)
	chk.Int(tst, "ncells", len(msh.Cells), 2)
	chk.Ints(tst, "cell 1 verts", msh.Cells[1].Verts, []int{1, 2, 5, 4})
	chk.Ints(tst, "cell 0 ftags", msh.Cells[0].FTags, []int{TagBottom, 0, TagTop, TagLeft})
	chk.Ints(tst, "cell 1 ftags", msh.Cells[1].FTags, []int{TagBottom, TagRight, TagTop, 0})

	// qua9 with refinements
	dat.GlobRef, dat.BdyRef = 1, 1
	msh, err = GenRectangle(dat, "qua9", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	// x: 2 => 4 => 6 divisions; y: 1 => 2 => 4 divisions
	chk.Int(tst, "ncells", len(msh.Cells), 6*4)
	chk.Int(tst, "nverts", len(msh.Verts), 13*9)
	chk.Float64(tst, "xmax", 1e-15, msh.Xmax, 4)
	chk.Float64(tst, "ymax", 1e-15, msh.Ymax, 2)

	// first cell spans [0,0.5]x[0,0.5]
	X := msh.ExtractCellCoords(0)
	chk.Array(tst, "x(cell 0)", 1e-15, X[0], []float64{0, 0.5, 0.5, 0, 0.25, 0.5, 0.25, 0, 0.25})
	chk.Array(tst, "y(cell 0)", 1e-15, X[1], []float64{0, 0, 0.5, 0.5, 0, 0.25, 0.5, 0.25, 0.25})

	// boundary vertices
	left := msh.FaceTag2verts[TagLeft]
	sort.Ints(left)
	chk.Int(tst, "nverts on left", len(left), 9)
	for _, v := range left {
		chk.Float64(tst, "x on left", 1e-15, msh.Verts[v].C[0], 0)
	}

	// errors
	_, err = GenRectangle(&RectData{Xmin: 1, Xmax: 0, Ymax: 1, Nx: 1, Ny: 1}, "qua4", 0)
	if err == nil {
		tst.Errorf("invalid limits should fail\n")
	}
	_, err = GenRectangle(dat, "tri3", 0)
	if err == nil {
		tst.Errorf("invalid cell type should fail\n")
	}
}
