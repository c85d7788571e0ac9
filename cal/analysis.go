// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cal implements the calcination analyses: the energy balance of a
// single process and the sensitivity study over grids of input values
package cal

import (
	"github.com/SinceOctober/Calcination/ana"
	"github.com/SinceOctober/Calcination/inp"
	"github.com/SinceOctober/Calcination/mdl/reaction"
)

// Analysis holds data for computing the complete energy balance of one
// calcination process
type Analysis struct {

	// input
	Dat *inp.Data // analysis data

	// derived
	Mdl reaction.Model  // reaction data
	Sol ana.Calcination // closed-form solution
}

// New returns a new Analysis structure
func New(dat *inp.Data) (o *Analysis) {
	o = new(Analysis)
	o.Dat = dat
	o.Mdl = reaction.CaCO3()
	o.Sol.Init(o.Mdl, dat.Tini, dat.Tfin, dat.Pres, dat.Mass)
	return
}

// Run computes the energy balance and returns it as an ordered record.
// The chemical potential and the thermal energy results are computed
// independently; the entropy generation is computed from the latter
func (o *Analysis) Run() (rec *Record, err error) {

	// closed-form solutions
	cp := o.Sol.ChemPotential()
	th := o.Sol.ThermalEnergy()
	sgen, err := o.Sol.EntropyGen(th)
	if err != nil {
		return nil, err
	}

	// merge results, in report order
	rec = new(Record)
	rec.Append("Initial Temperature (K)", o.Dat.Tini)
	rec.Append("Final Temperature (K)", o.Dat.Tfin)
	rec.Append("Pressure (Pa)", o.Dat.Pres)
	rec.Append("Limestone Mass (kg)", o.Dat.Mass)
	rec.Append("Molar Quantity", th.Moles)
	rec.Append("Standard Enthalpy (kJ/mol)", cp.Hf)
	rec.Append("Standard Entropy (J/(mol·K))", cp.S)
	rec.Append("Gibbs Free Energy (kJ/mol)", cp.G)
	rec.Append("Sensible Heat (kJ)", th.Qsen)
	rec.Append("Latent Heat (kJ)", th.Qlat)
	rec.Append("Entropy Generation", sgen)
	return
}
