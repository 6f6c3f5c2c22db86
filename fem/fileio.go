// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveSol saves state to a file which name is set with tidx (time output index)
func SaveSol(dir, fnkey, enctype string, tidx int, state DiscreteState, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode state
	err = enc.Encode(state.Time)
	if err != nil {
		return chk.Err("cannot encode DiscreteState.Time\n%v", err)
	}
	err = enc.Encode(state.Step)
	if err != nil {
		return chk.Err("cannot encode DiscreteState.Step\n%v", err)
	}
	err = enc.Encode(state.Coeffs)
	if err != nil {
		return chk.Err("cannot encode DiscreteState.Coeffs\n%v", err)
	}

	// save file
	return save_file(out_nod_path(dir, fnkey, enctype, tidx), &buf, verbose)
}

// ReadSol reads state from a file which name is set with tidx (time output index)
func ReadSol(dir, fnkey, enctype string, tidx int) (state DiscreteState, err error) {

	// open file
	fn := out_nod_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		err = &Failure{Kind: ResourceUnavailable, Err: err}
		return
	}
	defer fil.Close()

	// decode state
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&state.Time)
	if err != nil {
		err = chk.Err("cannot decode DiscreteState.Time\n%v", err)
		return
	}
	err = dec.Decode(&state.Step)
	if err != nil {
		err = chk.Err("cannot decode DiscreteState.Step\n%v", err)
		return
	}
	err = dec.Decode(&state.Coeffs)
	if err != nil {
		err = chk.Err("cannot decode DiscreteState.Coeffs\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_nod_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_nod_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	err = os.MkdirAll(filepath.Dir(filename), 0777)
	if err != nil {
		return &Failure{Kind: ResourceUnavailable, Err: err}
	}
	fil, err := os.Create(filename)
	if err != nil {
		return &Failure{Kind: ResourceUnavailable, Err: err}
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
