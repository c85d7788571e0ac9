// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package reaction implements the thermodynamic data of the calcination
// (thermal decomposition) of calcium carbonate
package reaction

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the standard-state properties of the calcination reaction
//   CaCO3 → CaO + CO2
// Heat capacities are constants; i.e. their temperature dependence is
// disregarded
type Model struct {

	// chemical potential data
	Hf float64 // [kJ/mol] standard enthalpy of formation of CaCO3
	S  float64 // [J/(mol·K)] standard molar entropy of CaCO3

	// thermal data
	CpCaCO3 float64 // [J/(g·K)] specific heat capacity of CaCO3
	CpCaO   float64 // [J/(g·K)] specific heat capacity of CaO
	L       float64 // [kJ/mol] latent heat of decomposition

	// constants
	Mm float64 // [g/mol] molar mass of CaCO3
	R  float64 // [J/(mol·K)] universal gas constant
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	o.Mm = 100.0869
	o.R = 8.31446261815324
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "hf":
			o.Hf = p.V
		case "s":
			o.S = p.V
		case "cpcaco3":
			o.CpCaCO3 = p.V
		case "cpcao":
			o.CpCaO = p.V
		case "l":
			o.L = p.V
		case "mm":
			o.Mm = p.V
		default:
			return chk.Err("reaction: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns the calcite data set; otherwise returns current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Hf", V: -1206.9},    // [kJ/mol]
			&dbf.P{N: "S", V: 92.9},        // [J/(mol·K)]
			&dbf.P{N: "CpCaCO3", V: 0.879}, // [J/(g·K)]
			&dbf.P{N: "CpCaO", V: 0.942},   // [J/(g·K)]
			&dbf.P{N: "L", V: 178.3},       // [kJ/mol]
			&dbf.P{N: "Mm", V: 100.0869},   // [g/mol]
		}
	}
	return dbf.Params{
		&dbf.P{N: "Hf", V: o.Hf},
		&dbf.P{N: "S", V: o.S},
		&dbf.P{N: "CpCaCO3", V: o.CpCaCO3},
		&dbf.P{N: "CpCaO", V: o.CpCaO},
		&dbf.P{N: "L", V: o.L},
		&dbf.P{N: "Mm", V: o.Mm},
	}
}

// Moles returns the molar quantity of CaCO3 corresponding to a mass of limestone
//  Input:
//   mass -- mass of limestone [kg]
func (o Model) Moles(mass float64) float64 {
	return mass * 1000.0 / o.Mm
}

// CaCO3 returns a model initialised with the calcite data set
func CaCO3() (mdl Model) {
	if err := mdl.Init(mdl.GetPrms(true)); err != nil {
		chk.Panic("cannot initialise the calcite data set:\n%v", err)
	}
	return
}
