// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"sort"
)

// LaplaceSquareEigenvalues returns the n smallest eigenvalues of
//
//   -Δu = λ u   in (0,a)²   with   u = 0 on the boundary
//
//   λ = (m² + k²) (π/a)²,   m, k = 1, 2, ...
//
//  Note: repeated eigenvalues are listed according to their multiplicity
func LaplaceSquareEigenvalues(a float64, n int) (λ []float64) {
	if n < 1 {
		return
	}
	c := (math.Pi / a) * (math.Pi / a)
	nmax := int(math.Ceil(math.Sqrt(float64(n)))) + 1
	for {
		λ = λ[:0]
		for m := 1; m <= nmax; m++ {
			for k := 1; k <= nmax; k++ {
				λ = append(λ, float64(m*m+k*k)*c)
			}
		}
		sort.Float64s(λ)

		// all eigenvalues up to λ[n-1] are included if λ[n-1] < (1 + (nmax+1)²) c
		if len(λ) >= n && λ[n-1] < float64(1+(nmax+1)*(nmax+1))*c {
			return λ[:n]
		}
		nmax++
	}
}
