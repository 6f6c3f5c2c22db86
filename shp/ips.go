// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds integration point data: {r, s, t, weight}
type Ipoint []float64

// gauss1d holds 1D Gauss-Legendre points and weights; n => {points, weights}
var gauss1d = map[int][2][]float64{
	2: {
		{-1.0 / math.Sqrt(3.0), 1.0 / math.Sqrt(3.0)},
		{1.0, 1.0},
	},
	3: {
		{-math.Sqrt(3.0 / 5.0), 0.0, math.Sqrt(3.0 / 5.0)},
		{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0},
	},
	4: {
		{-0.861136311594052575224, -0.339981043584856264803, 0.339981043584856264803, 0.861136311594052575224},
		{0.347854845137453857373, 0.652145154862546142627, 0.652145154862546142627, 0.347854845137453857373},
	},
}

// GetIps returns the integration points of quadrilaterals
//  Input:
//   nip -- number of integration points: 4, 9 or 16; 0 => use shape's default
//  Note: points are returned in tensor-product order with r varying fastest
func (o *Shape) GetIps(nip int) (ips []Ipoint, err error) {
	if nip == 0 {
		nip = o.DefaultNip
	}
	n := int(math.Round(math.Sqrt(float64(nip))))
	dat, ok := gauss1d[n]
	if !ok || n*n != nip {
		return nil, chk.Err("number of integration points nip=%d is not available for %q. options: 4, 9, 16", nip, o.Type)
	}
	pts, wts := dat[0], dat[1]
	ips = make([]Ipoint, 0, nip)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			ips = append(ips, Ipoint{pts[i], pts[j], 0, wts[i] * wts[j]})
		}
	}
	return
}
