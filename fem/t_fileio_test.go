// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fileio01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio01. solution files")

	dir := tst.TempDir()
	for _, enctype := range []string{"gob", "json"} {

		// state A
		stA := DiscreteState{Coeffs: make([]float64, 7), Time: 1.4, Step: 7}
		for i := range stA.Coeffs {
			stA.Coeffs[i] = float64(i) / 3.0
		}
		io.Pforan("A = %v\n", stA)

		// write file
		tidx := 123
		err := SaveSol(dir, "fileio01", enctype, tidx, stA, chk.Verbose)
		if err != nil {
			tst.Errorf("SaveSol failed:\n%v", err)
			return
		}

		// read file
		stB, err := ReadSol(dir, "fileio01", enctype, tidx)
		if err != nil {
			tst.Errorf("ReadSol failed:\n%v", err)
			return
		}
		io.Pfgreen("B = %v\n", stB)

		// check
		chk.Float64(tst, enctype+": time", 1e-17, stB.Time, stA.Time)
		chk.Int(tst, enctype+": step", stB.Step, stA.Step)
		chk.Array(tst, enctype+": coeffs", 1e-17, stB.Coeffs, stA.Coeffs)

		// missing file
		_, err = ReadSol(dir, "fileio01", enctype, 124)
		if KindOf(err) != ResourceUnavailable {
			tst.Errorf("%s: ReadSol of missing file should return ResourceUnavailable. err = %v\n", enctype, err)
		}
	}
}

func Test_fileio02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio02. summary")

	dir := tst.TempDir()
	for _, enctype := range []string{"gob", "json"} {

		// record
		var sumA Summary
		sumA.OutTimes = []float64{0, 1, 2}
		sumA.Record(&ConvergenceRecord{Iterations: 3, History: []float64{1, 1e-3, 1e-8}}, true)
		sumA.Record(&ConvergenceRecord{Iterations: 2, History: []float64{1e-2, 1e-9}}, true)
		sumA.Record(&ConvergenceRecord{Iterations: 1, History: []float64{1e-12}}, false)
		sumA.Samples = []float64{0, 4}
		chk.Ints(tst, "iters", sumA.Iters, []int{3, 2, 1})
		chk.Int(tst, "nresids", len(sumA.Resids), 2)

		// save and read
		err := sumA.Save(dir, "fileio02", enctype, chk.Verbose)
		if err != nil {
			tst.Errorf("Save failed:\n%v", err)
			return
		}
		sumB, err := ReadSum(dir, "fileio02", enctype)
		if err != nil {
			tst.Errorf("ReadSum failed:\n%v", err)
			return
		}
		chk.Array(tst, enctype+": times", 1e-17, sumB.OutTimes, sumA.OutTimes)
		chk.Ints(tst, enctype+": iters", sumB.Iters, sumA.Iters)
		chk.Array(tst, enctype+": resids[0]", 1e-17, sumB.Resids[0], sumA.Resids[0])
		chk.Array(tst, enctype+": resids[1]", 1e-17, sumB.Resids[1], sumA.Resids[1])
		chk.Array(tst, enctype+": samples", 1e-17, sumB.Samples, sumA.Samples)
		chk.String(tst, sumB.Dirout, dir)
		chk.String(tst, sumB.Fnkey, "fileio02")
	}

	// missing file
	_, err := ReadSum(dir, "missing", "gob")
	if KindOf(err) != ResourceUnavailable {
		tst.Errorf("ReadSum of missing file should return ResourceUnavailable. err = %v\n", err)
	}
}
