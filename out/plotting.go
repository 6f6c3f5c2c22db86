// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// constants
var (
	PlotHeight = 12 // height of terminal charts
	PlotWidth  = 72 // width of terminal charts; 0 => number of values
)

// PltEntity stores the data of one series to be plotted
type PltEntity struct {
	Alias string    // alias
	Y     []float64 // values
}

// SplotDat stores all data for one chart
type SplotDat struct {
	Title string       // title of chart
	Data  []*PltEntity // series to be drawn together
}

// Splot activates a new chart
func Splot(title string) *SplotDat {
	return &SplotDat{Title: title}
}

// Plot adds the results of alias to chart s
//  idxI -- index of output time for sets of points; see GetRes
func (o *Results) Plot(s *SplotDat, alias string, idxI int) (err error) {
	y, err := o.GetRes(alias, idxI)
	if err != nil {
		return
	}
	if len(y) == 0 {
		return chk.Err("there are no results for %q", alias)
	}
	s.Data = append(s.Data, &PltEntity{Alias: alias, Y: y})
	return
}

// Draw returns the terminal chart of s
func (o *SplotDat) Draw() string {
	if len(o.Data) == 0 {
		return ""
	}
	caption := o.Title
	all := make([][]float64, len(o.Data))
	for i, d := range o.Data {
		all[i] = d.Y
		if caption != "" {
			caption += " "
		}
		caption += io.Sf("[%s]", d.Alias)
	}
	opts := []asciigraph.Option{asciigraph.Height(PlotHeight), asciigraph.Caption(caption)}
	if PlotWidth > 0 {
		opts = append(opts, asciigraph.Width(PlotWidth))
	}
	if len(all) == 1 {
		return asciigraph.Plot(all[0], opts...)
	}
	return asciigraph.PlotMany(all, opts...)
}
