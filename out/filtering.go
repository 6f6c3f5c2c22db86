// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Locator defines interface for locating space positions
type Locator interface {
	Locate(o *Results) (Points, error)
}

// At implements locator at point {x, y}
//  Note: if the point coincides with a vertex, the vertex id is recorded
type At []float64

// N implements node locator
// Ids or tags of vertices can be stored in N
//  Note: negative values mean vertex tags
type N []int

// Along implements locator of vertices along line
//  Example: {{0,0}, {1,1}}
type Along [][]float64

// AlongX implements locator of vertices along line with []float64{y_cte}
type AlongX []float64

// AlongY implements locator of vertices along line with []float64{x_cte}
type AlongY []float64

// Locate finds points
func (o At) Locate(r *Results) (res Points, err error) {
	if len(o) != 2 {
		return nil, chk.Err("At locator requires 2 coordinates. %v is invalid", []float64(o))
	}
	vid := -1
	for v := range r.Space.Msh.Verts {
		if used(r, v) && dist(r, v, o[0], o[1]) < TolC {
			vid = v
			break
		}
	}
	return Points{&Point{Vid: vid, X: o[0], Y: o[1]}}, nil
}

// Locate finds points
func (o N) Locate(r *Results) (res Points, err error) {
	msh := r.Space.Msh
	for _, key := range o {
		if key < 0 {
			verts, ok := msh.VertTag2verts[key]
			if !ok {
				return nil, chk.Err("cannot find vertices with tag = %d", key)
			}
			for _, v := range verts {
				if used(r, v.Id) {
					res = append(res, vertpoint(r, v.Id))
				}
			}
			continue
		}
		if key >= len(msh.Verts) || !used(r, key) {
			return nil, chk.Err("cannot find vertex with id = %d", key)
		}
		res = append(res, vertpoint(r, key))
	}
	return
}

// Locate finds points
func (o Along) Locate(r *Results) (res Points, err error) {

	// check if there are two points
	if len(o) != 2 || len(o[0]) != 2 || len(o[1]) != 2 {
		return nil, chk.Err("Along locator requires two points with 2 coordinates each")
	}
	A, B := o[0], o[1]
	dx, dy := B[0]-A[0], B[1]-A[1]
	L := math.Sqrt(dx*dx + dy*dy)
	if L < TolC {
		return nil, chk.Err("points defining line must be distinct")
	}

	// vertices on segment
	for v, vert := range r.Space.Msh.Verts {
		if !used(r, v) {
			continue
		}
		px, py := vert.C[0]-A[0], vert.C[1]-A[1]
		s := (px*dx + py*dy) / L
		h := math.Abs(px*dy-py*dx) / L
		if h < TolC && s > -TolC && s < L+TolC {
			q := vertpoint(r, v)
			q.Dist = s
			res = append(res, q)
		}
	}
	if len(res) == 0 {
		return nil, chk.Err("cannot find vertices along line %v", [][]float64(o))
	}
	sort.Sort(res)
	return
}

// Locate finds points
func (o AlongX) Locate(r *Results) (res Points, err error) {
	if len(o) != 1 {
		return nil, chk.Err("AlongX locator requires y_cte. %v is invalid", []float64(o))
	}
	msh := r.Space.Msh
	return Along{{msh.Xmin, o[0]}, {msh.Xmax, o[0]}}.Locate(r)
}

// Locate finds points
func (o AlongY) Locate(r *Results) (res Points, err error) {
	if len(o) != 1 {
		return nil, chk.Err("AlongY locator requires x_cte. %v is invalid", []float64(o))
	}
	msh := r.Space.Msh
	return Along{{o[0], msh.Ymin}, {o[0], msh.Ymax}}.Locate(r)
}

// AllNodes returns a node locator with all vertices of the space
func AllNodes(r *Results) (res N) {
	for v := range r.Space.Msh.Verts {
		if used(r, v) {
			res = append(res, v)
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// used tells whether vertex v belongs to the space; i.e. it holds a dof or a prescribed value
func used(r *Results, v int) bool {
	return r.Space.Eq[v] >= 0 || r.Space.Fixed[v]
}

// dist returns the distance between vertex v and (x,y)
func dist(r *Results, v int, x, y float64) float64 {
	c := r.Space.Msh.Verts[v].C
	return math.Sqrt((c[0]-x)*(c[0]-x) + (c[1]-y)*(c[1]-y))
}

// vertpoint returns a new point at vertex v
func vertpoint(r *Results, v int) *Point {
	c := r.Space.Msh.Verts[v].C
	return &Point{Vid: v, X: c[0], Y: c[1]}
}
