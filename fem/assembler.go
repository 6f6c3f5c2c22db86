// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
)

// Assembler implements DiscreteProblem by integrating a weak form over all cells
type Assembler struct {
	Space  *Space   // finite element space
	Form   WeakForm // weak form
	Linear bool     // problem is linear

	// time integration
	Uprev []float64 // [nverts] values at previous time level
	T     float64   // time at new time level
	Dt    float64   // time step size

	// scratchpad
	u  []float64 // [nverts] values at all vertices
	ue []float64 // [cell.nverts] values at cell vertices
	up []float64 // [cell.nverts] previous values at cell vertices
}

// NewAssembler returns a new assembler
func NewAssembler(space *Space, form WeakForm, linear bool) (o *Assembler) {
	o = new(Assembler)
	o.Space = space
	o.Form = form
	o.Linear = linear
	nv := len(space.Eq)
	o.Uprev = make([]float64, nv)
	o.Dt = 1.0
	o.u = make([]float64, nv)
	nverts := space.Msh.Cells[0].Shp.Nverts
	o.ue = make([]float64, nverts)
	o.up = make([]float64, nverts)
	return
}

// Ndof returns the number of degrees of freedom
func (o *Assembler) Ndof() int { return o.Space.Ndof() }

// IsLinear returns whether the problem is linear or not
func (o *Assembler) IsLinear() bool { return o.Linear }

// SetPrevious sets the previous time-level solution
func (o *Assembler) SetPrevious(prev []float64, t, dt float64) (err error) {
	if len(prev) != o.Ndof() {
		return failf(InvalidConfig, "size of previous solution (%d) must be equal to ndof (%d)", len(prev), o.Ndof())
	}
	if dt <= 0 {
		return failf(InvalidConfig, "time step size must be positive. dt=%g is invalid", dt)
	}
	o.Space.fill(o.Uprev, prev)
	o.T, o.Dt = t, dt
	return
}

// Assemble computes the residual R and the Jacobian J at x
func (o *Assembler) Assemble(x []float64, J *SparseMatrix, R []float64) (err error) {

	// check
	ndof := o.Ndof()
	if len(x) != ndof {
		return failf(InvalidConfig, "size of coefficients vector (%d) must be equal to ndof (%d)", len(x), ndof)
	}
	if R != nil {
		if len(R) != ndof {
			return failf(InvalidConfig, "size of residual vector (%d) must be equal to ndof (%d)", len(R), ndof)
		}
		for i := range R {
			R[i] = 0
		}
	}
	if J != nil {
		if m, n := J.Size(); m != ndof || n != ndof {
			return failf(InvalidConfig, "Jacobian must be %d×%d. %d×%d is invalid", ndof, ndof, m, n)
		}
		J.Start()
	}

	// values at all vertices
	sp := o.Space
	sp.fill(o.u, x)

	// loop over cells
	var p PointState
	p.T, p.Dt = o.T, o.Dt
	for _, c := range sp.Msh.Cells {
		sp.Gather(o.ue, o.u, c.Id)
		sp.Gather(o.up, o.Uprev, c.Id)
		X := sp.X[c.Id]
		s := c.Shp

		// loop over integration points
		for _, ip := range sp.Ips {

			// shape functions and derivatives
			err = s.CalcAtIp(X, ip, true)
			if err != nil {
				return &Failure{Kind: InvalidConfig, Err: chk.Err("cannot compute shape functions of cell %d:\n%v", c.Id, err)}
			}
			coef := ip[3] * s.J

			// state at ip
			p.U, p.Uprev = 0, 0
			p.GradU = [2]float64{}
			p.X = [2]float64{}
			for m := 0; m < s.Nverts; m++ {
				p.U += s.S[m] * o.ue[m]
				p.Uprev += s.S[m] * o.up[m]
				p.GradU[0] += s.G[m][0] * o.ue[m]
				p.GradU[1] += s.G[m][1] * o.ue[m]
				p.X[0] += s.S[m] * X[0][m]
				p.X[1] += s.S[m] * X[1][m]
			}

			// residual
			if R != nil {
				f0, f1 := o.Form.ResidualContribution(&p)
				for m, v := range c.Verts {
					if I := sp.Eq[v]; I >= 0 {
						R[I] += coef * (f0*s.S[m] + f1[0]*s.G[m][0] + f1[1]*s.G[m][1])
					}
				}
			}

			// Jacobian
			if J != nil {
				g0, g1, g2, g3 := o.Form.JacobianContribution(&p)
				for m, vm := range c.Verts {
					I := sp.Eq[vm]
					if I < 0 {
						continue
					}
					for n, vn := range c.Verts {
						K := sp.Eq[vn]
						if K < 0 {
							continue
						}
						a := g0*s.S[n] + g1[0]*s.G[n][0] + g1[1]*s.G[n][1]
						b0 := g2[0]*s.S[n] + g3[0][0]*s.G[n][0] + g3[0][1]*s.G[n][1]
						b1 := g2[1]*s.S[n] + g3[1][0]*s.G[n][0] + g3[1][1]*s.G[n][1]
						J.Put(I, K, coef*(a*s.S[m]+b0*s.G[m][0]+b1*s.G[m][1]))
					}
				}
			}
		}
	}
	return
}
