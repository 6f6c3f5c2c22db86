// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_race01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("race01")

	nchan := 2
	done := make(chan float64, nchan)

	shapes := make([]*Shape, nchan)
	for i := 0; i < nchan; i++ {
		shapes[i] = Get("qua9", i+1)
	}

	xmat := [][]float64{
		{0, 2, 2, 0, 1, 2, 1, 0, 1},
		{0, 0, 2, 2, 0, 1, 2, 1, 1},
	}
	for i := 0; i < nchan; i++ {
		go func(shape *Shape) {
			shape.CalcAtR(xmat, []float64{0.5, 0.5}, true)
			done <- shape.J
		}(shapes[i])
	}

	for i := 0; i < nchan; i++ {
		chk.Float64(tst, "J", 1e-15, <-done, 1)
	}
}
