// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/tonda/hermes/fem"
)

// Point holds information about one point where results are sampled
type Point struct {
	Vid  int       // vertex id; -1 if point is not a vertex
	X, Y float64   // coordinates
	Dist float64   // distance from the first point defining a line, if any
	Vals []float64 // [ntimes] values at selected output times
}

// Points is a set of points with results
type Points []*Point

// Len the length of Points
func (o Points) Len() int { return len(o) }

// Swap swaps two points
func (o Points) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Less compares points based on Dist
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// Define defines aliases
//  alias -- an alias to a group of points, an individual point, or to a set of points
//  loc   -- locator
func (o *Results) Define(alias string, loc Locator) (err error) {
	pts, err := loc.Locate(o)
	if err != nil {
		return chk.Err("cannot define %q:\n%v", alias, err)
	}
	if len(pts) == 0 {
		return chk.Err("cannot define %q: no points found", alias)
	}
	o.Defined[alias] = pts
	return
}

// LoadResults loads all results after points are defined
//  times -- specified selected output times
//           use nil to indicate that all times are required
func (o *Results) LoadResults(times []float64) (err error) {

	// selected output times and indices
	if times == nil {
		times = o.Sum.OutTimes
	}
	o.TimeInds, o.Times, err = selectTimes(o.Sum.OutTimes, times, TolT)
	if err != nil {
		return
	}

	// clear previous values
	for _, pts := range o.Defined {
		for _, p := range pts {
			p.Vals = make([]float64, 0, len(o.TimeInds))
		}
	}

	// for each selected output time
	sim := o.Main.Sim
	for _, tidx := range o.TimeInds {

		// read state
		var state fem.DiscreteState
		state, err = fem.ReadSol(sim.DirOut, sim.Key, sim.EncType, tidx)
		if err != nil {
			return
		}
		if len(state.Coeffs) != o.Space.Ndof() {
			return chk.Err("inconsistency of results detected: summary and simulation file might be different")
		}
		u := o.Space.FullValues(state.Coeffs)

		// for each point
		for alias, pts := range o.Defined {
			for _, p := range pts {
				if p.Vid >= 0 {
					p.Vals = append(p.Vals, u[p.Vid])
					continue
				}
				var val float64
				val, err = o.Sampler.Evaluate(state, p.X, p.Y)
				if err != nil {
					return chk.Err("cannot load results of %q:\n%v", alias, err)
				}
				p.Vals = append(p.Vals, val)
			}
		}
	}
	return
}

// GetRes gets results as a time or space series corresponding to a given alias
// for a single point or set of points.
//  idxI -- index in TimeInds slice corresponding to selected output time; use -1 for the last item.
//          If alias defines a single point, the whole time series is returned and idxI is ignored.
func (o *Results) GetRes(alias string, idxI int) (res []float64, err error) {
	pts, ok := o.Defined[alias]
	if !ok {
		return nil, chk.Err("cannot find alias %q", alias)
	}
	if len(pts) == 1 {
		return pts[0].Vals, nil
	}
	if idxI < 0 {
		idxI = len(o.TimeInds) - 1
	}
	if idxI < 0 || idxI >= len(o.TimeInds) {
		return nil, chk.Err("output index %d is out of range; results may not have been loaded", idxI)
	}
	res = make([]float64, len(pts))
	for i, p := range pts {
		res[i] = p.Vals[idxI]
	}
	return
}

// GetDist gets distances of points along line defined by alias
func (o *Results) GetDist(alias string) (dist []float64) {
	for _, p := range o.Defined[alias] {
		dist = append(dist, p.Dist)
	}
	return
}

// GetCoords gets the coordinates of a single point defined by alias
func (o *Results) GetCoords(alias string) []float64 {
	pts := o.Defined[alias]
	if len(pts) != 1 {
		return nil
	}
	return []float64{pts[0].X, pts[0].Y}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// selectTimes finds the indices of the output times closest to the selected times
func selectTimes(outTimes, times []float64, tol float64) (I []int, T []float64, err error) {
	for _, t := range times {
		found := false
		for i, tout := range outTimes {
			if math.Abs(tout-t) < tol {
				I = append(I, i)
				T = append(T, tout)
				found = true
				break
			}
		}
		if !found {
			return nil, nil, chk.Err("cannot find output time %g in summary", t)
		}
	}
	return
}
