// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.cal) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds the analysis input data
type Data struct {

	// global information
	Desc   string `json:"desc"`   // description of analysis
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/calcination

	// process conditions
	Tini float64 `json:"tini"` // [K] initial temperature
	Tfin float64 `json:"tfin"` // [K] final (calcination) temperature
	Pres float64 `json:"pres"` // [Pa] system pressure
	Mass float64 `json:"mass"` // [kg] mass of limestone
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.Tini = 298.15 // 25 °C
	o.Tfin = 973.15 // 700 °C
	o.Pres = 101325 // 1 atm
	o.Mass = 100.0
}

// SweepData holds the grids of candidate input values for the sensitivity
// study. Empty grids are allowed and produce no results
type SweepData struct {
	Tini []float64 `json:"tini"` // [K] initial temperature candidates
	Tfin []float64 `json:"tfin"` // [K] final temperature candidates
	Pres []float64 `json:"pres"` // [Pa] pressure candidates
}

// SetDefault sets the default study grids
func (o *SweepData) SetDefault() {
	o.Tini = []float64{250.15, 300.15, 350.15}
	o.Tfin = []float64{973.15, 1073.15, 1173.15}
	o.Pres = []float64{101325, 200000, 300000}
}

// Input holds all analysis data
type Input struct {

	// input
	Data  Data       `json:"data"`  // analysis data
	Sweep *SweepData `json:"sweep"` // sensitivity study grids; may be absent

	// derived
	Key    string // filename key; e.g. lime01.cal => lime01
	DirOut string // directory to save results
}

// Read reads analysis data from a (.cal) JSON file. An empty filename
// returns the default analysis. Process conditions absent from the file
// keep their default values
func Read(calfilepath string) (o *Input, err error) {

	// default values
	o = new(Input)
	o.Data.SetDefault()
	o.Key = "calcination"

	// read and decode file
	if calfilepath != "" {
		b, e := os.ReadFile(calfilepath)
		if e != nil {
			return nil, chk.Err("Read: cannot read analysis file %q", calfilepath)
		}
		if e := json.Unmarshal(b, o); e != nil {
			return nil, chk.Err("Read: cannot unmarshal analysis file %q\n%v", calfilepath, e)
		}
		o.Key = io.FnKey(filepath.Base(calfilepath))
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/calcination/" + o.Key
	}
	return
}
