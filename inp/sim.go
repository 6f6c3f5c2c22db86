// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"

	"github.com/tonda/hermes/shp"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/hermes
	Encoder string `json:"encoder" yaml:"encoder"` // encoder name; e.g. "gob" "json"
	Stat    bool   `json:"stat" yaml:"stat"`       // activate statistics
}

// MeshData holds the mesh definition: either a file or a structured rectangle
type MeshData struct {
	File    string    `json:"file" yaml:"file"`       // mesh file path (gofem JSON format)
	AbsPath bool      `json:"abspath" yaml:"abspath"` // mesh filename is given in absolute path
	Rect    *RectData `json:"rect" yaml:"rect"`       // structured rectangle generator
}

// RectData holds the data of a structured rectangular mesh
//
//           -12 (top)
//       +-----------+
//       |           |
//   -13 |           | -11
//       |           |
//       +-----------+
//          -10 (bottom)
//
type RectData struct {
	Xmin    float64 `json:"xmin" yaml:"xmin"`       // left x-coordinate
	Xmax    float64 `json:"xmax" yaml:"xmax"`       // right x-coordinate
	Ymin    float64 `json:"ymin" yaml:"ymin"`       // bottom y-coordinate
	Ymax    float64 `json:"ymax" yaml:"ymax"`       // top y-coordinate
	Nx      int     `json:"nx" yaml:"nx"`           // number of divisions along x
	Ny      int     `json:"ny" yaml:"ny"`           // number of divisions along y
	GlobRef int     `json:"globref" yaml:"globref"` // number of uniform global refinements
	BdyRef  int     `json:"bdyref" yaml:"bdyref"`   // number of refinements towards the boundary
}

// SpaceData holds data of the finite element space
type SpaceData struct {
	P   int `json:"p" yaml:"p"`     // polynomial degree: 1 => qua4, 2 => qua9
	Nip int `json:"nip" yaml:"nip"` // number of integration points; 0 => use default

	// derived
	Ctype string `json:"-" yaml:"-"` // cell type corresponding to P
}

// ProblemData holds the definition of the PDE
type ProblemData struct {
	Form       string     `json:"form" yaml:"form"`             // weak form: heat, poisson, laplace, mass
	Linear     bool       `json:"linear" yaml:"linear"`         // problem is linear: assemble and solve once per step
	Model      string     `json:"model" yaml:"model"`           // conductivity model: poly, cte
	Prms       dbf.Params `json:"prms" yaml:"prms"`             // conductivity model parameters
	Source     string     `json:"source" yaml:"source"`         // source term function name
	Initial    string     `json:"initial" yaml:"initial"`       // initial condition function name
	Projection string     `json:"projection" yaml:"projection"` // norm of initial projection: l2 or h1
}

// EssenBc holds one essential (Dirichlet) boundary condition
type EssenBc struct {
	Tag  int    `json:"tag" yaml:"tag"`   // face tag
	Func string `json:"func" yaml:"func"` // name of function g(x,y)
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name" yaml:"name"`           // "umfpack", "dense" or "cholesky"
	Symmetric bool   `json:"symmetric" yaml:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose" yaml:"verbose"`     // verbose?
}

// SolverData holds nonlinear solver data
type SolverData struct {
	NmaxIt int     `json:"nmaxit" yaml:"nmaxit"` // number of max iterations
	Tol    float64 `json:"tol" yaml:"tol"`       // tolerance on the norm of the Newton update
	ShowR  bool    `json:"showr" yaml:"showr"`   // show convergence measure
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf" yaml:"tf"`       // final time
	Dt    float64 `json:"dt" yaml:"dt"`       // time step size
	DtOut float64 `json:"dtout" yaml:"dtout"` // time step size for output
}

// EigenData holds data for the generalized eigenvalue problem
type EigenData struct {
	Backend string  `json:"backend" yaml:"backend"` // "process" or "dense"
	Command string  `json:"command" yaml:"command"` // external eigensolver command
	WorkDir string  `json:"workdir" yaml:"workdir"` // directory for exchange files; "" => DirOut
	Nev     int     `json:"nev" yaml:"nev"`         // number of requested eigenvalues
	Target  float64 `json:"target" yaml:"target"`   // eigenvalues closest to target are requested
	Tol     float64 `json:"tol" yaml:"tol"`         // tolerance of eigensolver
	MaxIt   int     `json:"maxit" yaml:"maxit"`     // max number of iterations of eigensolver
}

// SamplesData holds points where the solution is sampled at the end of the simulation
type SamplesData struct {
	Points [][]float64 `json:"points" yaml:"points"` // [nsamples][2] coordinates
	Refs   []float64   `json:"refs" yaml:"refs"`     // [nsamples] reference values; optional
	Tol    float64     `json:"tol" yaml:"tol"`       // tolerance when comparing with reference values
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data" yaml:"data"`           // global simulation data
	Mesh      MeshData    `json:"mesh" yaml:"mesh"`           // mesh definition
	Space     SpaceData   `json:"space" yaml:"space"`         // finite element space
	Problem   ProblemData `json:"problem" yaml:"problem"`     // PDE definition
	EssenBcs  []*EssenBc  `json:"essenbcs" yaml:"essenbcs"`   // essential boundary conditions
	Functions FuncsData   `json:"functions" yaml:"functions"` // functions database
	LinSol    LinSolData  `json:"linsol" yaml:"linsol"`       // linear solver data
	Solver    SolverData  `json:"solver" yaml:"solver"`       // nonlinear solver data
	Control   TimeControl `json:"control" yaml:"control"`     // time control
	Eigen     EigenData   `json:"eigen" yaml:"eigen"`         // eigenvalue problem data
	Samples   SamplesData `json:"samples" yaml:"samples"`     // sampling points

	// derived
	GoroutineId int    `json:"-" yaml:"-"` // id of goroutine to avoid race problems
	DirOut      string `json:"-" yaml:"-"` // directory to save results
	Key         string `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType     string `json:"-" yaml:"-"` // encoder type
	Msh         *Mesh  `json:"-" yaml:"-"` // the mesh
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim file
//  Note: files ending with .yaml or .yml are decoded as YAML; all others as JSON
func ReadSim(simfilepath, alias string, erasefiles bool, goroutineId int) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// new sim with default values
	o = NewSimulation()
	o.GoroutineId = goroutineId

	// decode
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/hermes/" + fnkey
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// derived data and mesh
	err = o.PostProcess(dir)
	return
}

// NewSimulation returns a new simulation with default values
func NewSimulation() (o *Simulation) {
	o = new(Simulation)
	o.Space.P = 2
	o.Problem.Form = "heat"
	o.Problem.Projection = "h1"
	o.LinSol.SetDefault()
	o.Solver.SetDefault()
	o.Control.SetDefault()
	o.Eigen.SetDefault()
	o.Samples.Tol = 1e-6
	return
}

// PostProcess checks input values, sets derived data and reads or generates the mesh
//  Input:
//   dir -- directory of .sim file; used to find the mesh file
func (o *Simulation) PostProcess(dir string) (err error) {

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// space
	o.Space.Ctype, err = shp.GetTypeByDegree(o.Space.P)
	if err != nil {
		return
	}
	if o.Problem.Projection != "l2" && o.Problem.Projection != "h1" {
		return chk.Err("projection norm must be \"l2\" or \"h1\". %q is invalid", o.Problem.Projection)
	}

	// output times
	if o.Control.DtOut < o.Control.Dt {
		o.Control.DtOut = o.Control.Dt
	}

	// sample points
	for i, x := range o.Samples.Points {
		if len(x) != 2 {
			return chk.Err("sample point %d must have 2 coordinates. %v is invalid", i, x)
		}
	}
	if len(o.Samples.Refs) > 0 && len(o.Samples.Refs) != len(o.Samples.Points) {
		return chk.Err("number of reference values (%d) must be equal to the number of sample points (%d)", len(o.Samples.Refs), len(o.Samples.Points))
	}

	// mesh
	switch {
	case o.Mesh.Rect != nil:
		o.Msh, err = GenRectangle(o.Mesh.Rect, o.Space.Ctype, o.GoroutineId)
	case o.Mesh.File != "":
		ddir := dir
		if o.Mesh.AbsPath {
			ddir = ""
		}
		o.Msh, err = ReadMsh(ddir, o.Mesh.File, o.GoroutineId)
	default:
		return chk.Err("mesh must be given by \"file\" or \"rect\"")
	}
	if err != nil {
		return
	}
	if cells, ok := o.Msh.Ctype2cells[o.Space.Ctype]; !ok || len(cells) != len(o.Msh.Cells) {
		return chk.Err("all cells in mesh must be of type %q (polynomial degree p=%d)", o.Space.Ctype, o.Space.P)
	}

	// essential boundary conditions
	for _, c := range o.Msh.Cells {
		err = c.SetFaceConds(o.EssenBcs)
		if err != nil {
			return
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// GetEssenBc returns the essential boundary condition corresponding to face tag
//  Note: returns nil if not found; i.e. face is natural
func (o *Simulation) GetEssenBc(facetag int) *EssenBc {
	for _, ebc := range o.EssenBcs {
		if facetag == ebc.Tag {
			return ebc
		}
	}
	return nil
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 100
	o.Tol = 1e-6
}

// SetDefault set defaults values
func (o *TimeControl) SetDefault() {
	o.Dt = 0.2
	o.Tf = 5.0
}

// SetDefault set defaults values
func (o *EigenData) SetDefault() {
	o.Backend = "dense"
	o.Nev = 4
	o.Target = 2.0
	o.Tol = 1e-10
	o.MaxIt = 1000
}
