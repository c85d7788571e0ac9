// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cal

import (
	"github.com/SinceOctober/Calcination/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Driver runs the sensitivity study: one energy balance per combination of
// the candidate input values
type Driver struct {

	// input
	Dat   *inp.Data      // base analysis data
	Sweep *inp.SweepData // candidate grids

	// settings
	Silent bool // do not show progress messages

	// results
	Res []*Record // results; one record per combination
}

// Init initialises driver
func (o *Driver) Init(dat *inp.Data, sweep *inp.SweepData) {
	o.Dat = dat
	o.Sweep = sweep
	o.Silent = !chk.Verbose
}

// Run performs the sensitivity study. The combinations follow the nesting
// order of the grids: initial temperature (outermost), final temperature,
// and pressure (innermost). The mass of limestone is held at the base value.
// Absent (nil) or empty grids produce no results
func (o *Driver) Run() (err error) {

	// results array; no grids means no combinations
	if o.Sweep == nil {
		o.Res = nil
		return
	}
	o.Res = make([]*Record, 0, len(o.Sweep.Tini)*len(o.Sweep.Tfin)*len(o.Sweep.Pres))

	// one analysis per combination
	var rec *Record
	for _, t0 := range o.Sweep.Tini {
		for _, tf := range o.Sweep.Tfin {
			for _, p := range o.Sweep.Pres {
				dat := *o.Dat
				dat.Tini, dat.Tfin, dat.Pres = t0, tf, p
				if !o.Silent {
					io.Pf("> running: T0 = %g K, Tf = %g K, P = %g Pa\n", t0, tf, p)
				}
				rec, err = New(&dat).Run()
				if err != nil {
					return
				}
				o.Res = append(o.Res, rec)
			}
		}
	}
	return
}
