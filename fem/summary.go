// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records summary of outputs
type Summary struct {

	// main data
	OutTimes []float64   // [nOutTimes] output times
	Iters    []int       // [nsteps] number of Newton iterations at each step
	Resids   [][]float64 // [nsteps][nit] Newton convergence measures (if Stat is on)
	Samples  []float64   // [nsamples] values at sample points at the end of simulation
	Eigen    []float64   // [nev] eigenvalues
	Dirout   string      // directory where results are stored
	Fnkey    string      // filename key of simulation
}

// Record records the Newton convergence record of one step
func (o *Summary) Record(rec *ConvergenceRecord, stat bool) {
	o.Iters = append(o.Iters, rec.Iterations)
	if stat {
		o.Resids = append(o.Resids, append([]float64{}, rec.History...))
	}
}

// Save saves summary to disc
func (o *Summary) Save(dirout, fnkey, enctype string, verbose bool) (err error) {

	// set flags before saving
	o.Dirout = dirout
	o.Fnkey = fnkey

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}

	// save file
	return save_file(out_sum_path(dirout, fnkey, enctype), &buf, verbose)
}

// ReadSum reads summary back
func ReadSum(dir, fnkey, enctype string) (o *Summary, err error) {

	// open file
	fn := out_sum_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, &Failure{Kind: ResourceUnavailable, Err: chk.Err("cannot open summary file %q:\n%v", fn, err)}
	}
	defer fil.Close()

	// decode summary
	o = new(Summary)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string) string {
	return filepath.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}
