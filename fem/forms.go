// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/tonda/hermes/mconduct"
)

// FormData holds data required by weak forms
type FormData struct {
	Model  mconduct.Model // conductivity λ(u)
	Source dbf.T          // source term s(t,x); nil => zero
}

// formallocators holds all available weak forms
var formallocators = make(map[string]func(dat *FormData) (WeakForm, error))

// NewWeakForm allocates a weak form by name
func NewWeakForm(name string, dat *FormData) (WeakForm, error) {
	alloc, ok := formallocators[name]
	if !ok {
		return nil, failf(InvalidConfig, "cannot find weak form named %q. options: heat, poisson, laplace, mass", name)
	}
	if dat == nil {
		dat = new(FormData)
	}
	return alloc(dat)
}

// source evaluates s(t,x)
func (o *FormData) source(p *PointState) float64 {
	if o.Source == nil {
		return 0
	}
	return o.Source.F(p.T, p.X[:])
}

// heat ///////////////////////////////////////////////////////////////////////////////////////////

// FormHeat implements the implicit Euler discretisation of the nonlinear heat equation
//
//   ∂u/∂t - div(λ(u) ∇u) = s
//
type FormHeat struct {
	FormData
}

func init() {
	formallocators["heat"] = func(dat *FormData) (WeakForm, error) {
		if dat.Model == nil {
			return nil, failf(InvalidConfig, "heat form requires a conductivity model")
		}
		return &FormHeat{*dat}, nil
	}
}

// ResidualContribution returns f0 = (u - uprev)/Δt - s and f1 = λ(u) ∇u
func (o *FormHeat) ResidualContribution(p *PointState) (f0 float64, f1 [2]float64) {
	λ := o.Model.K(p.U)
	f0 = (p.U-p.Uprev)/p.Dt - o.source(p)
	f1 = [2]float64{λ * p.GradU[0], λ * p.GradU[1]}
	return
}

// JacobianContribution returns g0 = 1/Δt, g2 = λ'(u) ∇u and g3 = λ(u) I
func (o *FormHeat) JacobianContribution(p *PointState) (g0 float64, g1, g2 [2]float64, g3 [2][2]float64) {
	λ, dλdu := o.Model.K(p.U), o.Model.DkDu(p.U)
	g0 = 1.0 / p.Dt
	g2 = [2]float64{dλdu * p.GradU[0], dλdu * p.GradU[1]}
	g3 = [2][2]float64{{λ, 0}, {0, λ}}
	return
}

// poisson ////////////////////////////////////////////////////////////////////////////////////////

// FormPoisson implements the steady nonlinear Poisson equation
//
//   - div(λ(u) ∇u) = s
//
type FormPoisson struct {
	FormData
}

func init() {
	formallocators["poisson"] = func(dat *FormData) (WeakForm, error) {
		if dat.Model == nil {
			return nil, failf(InvalidConfig, "poisson form requires a conductivity model")
		}
		return &FormPoisson{*dat}, nil
	}
}

// ResidualContribution returns f0 = -s and f1 = λ(u) ∇u
func (o *FormPoisson) ResidualContribution(p *PointState) (f0 float64, f1 [2]float64) {
	λ := o.Model.K(p.U)
	f0 = -o.source(p)
	f1 = [2]float64{λ * p.GradU[0], λ * p.GradU[1]}
	return
}

// JacobianContribution returns g2 = λ'(u) ∇u and g3 = λ(u) I
func (o *FormPoisson) JacobianContribution(p *PointState) (g0 float64, g1, g2 [2]float64, g3 [2][2]float64) {
	λ, dλdu := o.Model.K(p.U), o.Model.DkDu(p.U)
	g2 = [2]float64{dλdu * p.GradU[0], dλdu * p.GradU[1]}
	g3 = [2][2]float64{{λ, 0}, {0, λ}}
	return
}

// laplace and mass ///////////////////////////////////////////////////////////////////////////////

// FormLaplace implements the bilinear form ∫ ∇u · ∇v
type FormLaplace struct{}

// FormMass implements the bilinear form ∫ u v
type FormMass struct{}

func init() {
	formallocators["laplace"] = func(dat *FormData) (WeakForm, error) { return new(FormLaplace), nil }
	formallocators["mass"] = func(dat *FormData) (WeakForm, error) { return new(FormMass), nil }
}

// ResidualContribution returns f1 = ∇u
func (o *FormLaplace) ResidualContribution(p *PointState) (f0 float64, f1 [2]float64) {
	return 0, p.GradU
}

// JacobianContribution returns g3 = I
func (o *FormLaplace) JacobianContribution(p *PointState) (g0 float64, g1, g2 [2]float64, g3 [2][2]float64) {
	g3 = [2][2]float64{{1, 0}, {0, 1}}
	return
}

// ResidualContribution returns f0 = u
func (o *FormMass) ResidualContribution(p *PointState) (f0 float64, f1 [2]float64) {
	return p.U, f1
}

// JacobianContribution returns g0 = 1
func (o *FormMass) JacobianContribution(p *PointState) (g0 float64, g1, g2 [2]float64, g3 [2][2]float64) {
	g0 = 1
	return
}

// projection /////////////////////////////////////////////////////////////////////////////////////

// formProjection implements the L2 or H1 projection of f
//
//   L2:  ∫ (u - f) v = 0
//
//   H1:  ∫ (u - f) v + (∇u - ∇f) · ∇v = 0
//
type formProjection struct {
	fcn  ExactFunction // function to be projected
	h1   bool          // use H1 norm
	dfdx []float64     // ∇f
}

func (o *formProjection) ResidualContribution(p *PointState) (f0 float64, f1 [2]float64) {
	f0 = p.U - o.fcn.F(p.X[:])
	if o.h1 {
		o.fcn.Grad(o.dfdx, p.X[:])
		f1 = [2]float64{p.GradU[0] - o.dfdx[0], p.GradU[1] - o.dfdx[1]}
	}
	return
}

func (o *formProjection) JacobianContribution(p *PointState) (g0 float64, g1, g2 [2]float64, g3 [2][2]float64) {
	g0 = 1
	if o.h1 {
		g3 = [2][2]float64{{1, 0}, {0, 1}}
	}
	return
}
