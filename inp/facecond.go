// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/tonda/hermes/shp"
)

// FaceCond holds information of one single essential boundary condition on a face. Example:
//
//   36    -12     35     -12 => "top"
//    (3)--------(2)      -11 => "right"
//     |    2     |
//     |          |       face id => conditions
//     |3        1| -11         1 => "right" => localVerts={1,2} => globalVerts={34,35}
//     |          |             2 => "top"   => localVerts={2,3} => globalVerts={35,36}
//     |    0     |
//    (0)--------(1)      faces 0 and 3 are natural
//   33            34
//
type FaceCond struct {
	FaceId      int    // msh: cell's face local id
	FaceTag     int    // msh: face tag
	LocalVerts  []int  // msh: cell's face local vertices ids
	GlobalVerts []int  // msh: global vertices ids
	Func        string // sim: name of function g(x,y)
}

// FaceConds hold many face boundary conditions
type FaceConds []*FaceCond

// GetVerts gets all local vertices with essential conditions (sorted)
func (o FaceConds) GetVerts() (verts []int) {
	added := make(map[int]bool)
	for _, fc := range o {
		for _, lv := range fc.LocalVerts {
			if !added[lv] {
				added[lv] = true
				verts = append(verts, lv)
			}
		}
	}
	sort.Ints(verts)
	return
}

// SetFaceConds sets face boundary conditions in cell
func (o *Cell) SetFaceConds(ebcs []*EssenBc) (err error) {

	// for each face tag
	o.FaceBcs = make([]*FaceCond, 0)
	for faceId, faceTag := range o.FTags {

		// skip zero or positive tags
		if faceTag >= 0 {
			continue
		}

		// find boundary condition; skip natural faces
		var ebc *EssenBc
		for _, e := range ebcs {
			if e.Tag == faceTag {
				ebc = e
				break
			}
		}
		if ebc == nil {
			continue
		}
		if ebc.Func == "" {
			return chk.Err("function name corresponding to face tag %d must be given (@ cell %d)", faceTag, o.Id)
		}

		// local and global ids of vertices on face
		lverts := shp.GetFaceLocalVerts(o.Type, faceId)
		gverts := make([]int, len(lverts))
		for i, l := range lverts {
			gverts[i] = o.Verts[l]
		}
		o.FaceBcs = append(o.FaceBcs, &FaceCond{faceId, faceTag, lverts, gverts, ebc.Func})
	}
	return
}
