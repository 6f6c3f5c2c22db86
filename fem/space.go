// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/tonda/hermes/ana"
	"github.com/tonda/hermes/inp"
	"github.com/tonda/hermes/shp"
)

// Space implements a continuous H1 finite element space with one DOF per free vertex
//  Note: vertices on faces with essential conditions are removed from the unknowns
//        and their prescribed (lifted) values are stored in Lifted
type Space struct {
	Msh    *inp.Mesh     // mesh
	Ctype  string        // cell type; e.g. "qua9"
	Ips    []shp.Ipoint  // integration points
	X      [][][]float64 // [ncells][ndim][nverts] coordinates of cells
	Eq     []int         // [nverts] vertex => equation number; -1 => prescribed or not used
	Fixed  []bool        // [nverts] vertex has prescribed value
	Lifted []float64     // [nverts] prescribed values
	Free   []int         // [ndof] equation => vertex
}

// Resolver returns functions by name
type Resolver func(name string) (ExactFunction, error)

// NewSpace allocates a new finite element space
//  Input:
//   msh     -- mesh with cells of type ctype; cells must have FaceBcs set
//   ctype   -- cell type
//   nip     -- number of integration points; 0 => default
//   resolve -- gets functions defining essential conditions
func NewSpace(msh *inp.Mesh, ctype string, nip int, resolve Resolver) (o *Space, err error) {

	// check cells
	if msh == nil || len(msh.Cells) == 0 {
		return nil, failf(InvalidConfig, "mesh must have at least one cell")
	}
	for _, c := range msh.Cells {
		if c.Type != ctype {
			return nil, failf(InvalidConfig, "all cells must be of type %q. cell %d of type %q is invalid", ctype, c.Id, c.Type)
		}
	}

	// new space
	o = new(Space)
	o.Msh = msh
	o.Ctype = ctype
	o.Ips, err = msh.Cells[0].Shp.GetIps(nip)
	if err != nil {
		return nil, &Failure{Kind: InvalidConfig, Err: err}
	}
	o.X = make([][][]float64, len(msh.Cells))
	for _, c := range msh.Cells {
		o.X[c.Id] = msh.ExtractCellCoords(c.Id)
	}

	// prescribed values. the first condition setting a vertex wins
	nv := len(msh.Verts)
	o.Fixed = make([]bool, nv)
	o.Lifted = make([]float64, nv)
	for _, c := range msh.Cells {
		for _, fc := range c.FaceBcs {
			fcn, e := resolve(fc.Func)
			if e != nil {
				return nil, &Failure{Kind: InvalidConfig, Err: chk.Err("cannot set essential condition on face %d of cell %d:\n%v", fc.FaceId, c.Id, e)}
			}
			for _, v := range fc.GlobalVerts {
				if !o.Fixed[v] {
					o.Fixed[v] = true
					o.Lifted[v] = fcn.F(msh.Verts[v].C)
				}
			}
		}
	}

	// equation numbers. only vertices used by cells are counted
	used := make([]bool, nv)
	for _, c := range msh.Cells {
		for _, v := range c.Verts {
			used[v] = true
		}
	}
	o.Eq = make([]int, nv)
	for v := 0; v < nv; v++ {
		o.Eq[v] = -1
		if used[v] && !o.Fixed[v] {
			o.Eq[v] = len(o.Free)
			o.Free = append(o.Free, v)
		}
	}
	return
}

// Ndof returns the number of degrees of freedom
func (o *Space) Ndof() int { return len(o.Free) }

// FullValues returns the values at all vertices, including prescribed ones
//  Input:
//   x -- [ndof] coefficients
//  Output:
//   u -- [nverts] values at vertices
func (o *Space) FullValues(x []float64) (u []float64) {
	u = make([]float64, len(o.Eq))
	o.fill(u, x)
	return
}

// fill fills u with values at vertices
func (o *Space) fill(u, x []float64) {
	for v, eq := range o.Eq {
		if eq < 0 {
			u[v] = o.Lifted[v]
			continue
		}
		u[v] = x[eq]
	}
}

// Gather collects the values at the vertices of cell
//  Input:
//   u -- [nverts] values at all vertices; see FullValues
//  Output:
//   ue -- [cell.nverts] values at cell vertices
func (o *Space) Gather(ue, u []float64, cellId int) {
	for m, v := range o.Msh.Cells[cellId].Verts {
		ue[m] = u[v]
	}
}

// NewResolver returns a resolver that searches for analytical fields first
// and then for functions in the database
//  Note: functions from the database are evaluated at t = 0
func NewResolver(funcs inp.FuncsData) Resolver {
	return func(name string) (ExactFunction, error) {
		if f, err := ana.GetField(name); err == nil {
			return f, nil
		}
		f, err := funcs.Get(name)
		if err != nil {
			return nil, err
		}
		return &dbfField{f, 0}, nil
	}
}

// dbfField wraps time-space functions at a fixed time
type dbfField struct {
	fcn dbf.T   // function
	t   float64 // time
}

func (o *dbfField) F(x []float64) float64 { return o.fcn.F(o.t, x) }

func (o *dbfField) Grad(dfdx []float64, x []float64) { o.fcn.Grad(dfdx, o.t, x) }
