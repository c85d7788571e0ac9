// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the closed-form solution of the static energy
// balance of limestone calcination
package ana

import (
	"github.com/SinceOctober/Calcination/mdl/reaction"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// ChemPotResult holds the chemical potential results of the reaction
type ChemPotResult struct {
	Hf float64 // [kJ/mol] standard enthalpy of formation of CaCO3
	S  float64 // [J/(mol·K)] standard molar entropy of CaCO3
	G  float64 // [kJ/mol] Gibbs free energy change at the final temperature
}

// ThermalResult holds the thermal energy results of the heating process
type ThermalResult struct {
	Moles float64 // [mol] molar quantity of CaCO3
	Qsen  float64 // [kJ] sensible heat
	Qlat  float64 // [kJ] latent heat
}

// Calcination computes the static energy balance of a batch of limestone
// heated from T0 to Tf and decomposed at Tf:
//
//    CaCO3 → CaO + CO2
//
//    ΔG   = ΔH°f - Tf・S°/1000
//    n    = 1000・m/Mm
//    Qsen = n・[cp(CaCO3)・(Tf-T0) + cp(CaO)・(Tf-T0)]/1000
//    Qlat = n・L/1000
//    Sgen = Qsen/Tf + Qlat/Tf
//
// The Gibbs free energy change is evaluated at the standard state; thus it
// depends on Tf only: neither T0 nor the pressure P enter its computation.
// P is reported nonetheless
type Calcination struct {
	Mdl  reaction.Model // reaction data
	T0   float64        // [K] initial temperature
	Tf   float64        // [K] final (calcination) temperature
	P    float64        // [Pa] system pressure
	Mass float64        // [kg] mass of limestone
}

// Init initialises this structure
func (o *Calcination) Init(mdl reaction.Model, T0, Tf, P, mass float64) {
	o.Mdl = mdl
	o.T0 = T0
	o.Tf = Tf
	o.P = P
	o.Mass = mass
}

// ChemPotential computes the Gibbs free energy change of the reaction at Tf
func (o Calcination) ChemPotential() (res ChemPotResult) {
	res.Hf = o.Mdl.Hf
	res.S = o.Mdl.S
	res.G = o.Mdl.Hf - o.Tf*(o.Mdl.S/1000.0)
	return
}

// ThermalEnergy computes the sensible and latent heat of the process
func (o Calcination) ThermalEnergy() (res ThermalResult) {
	ΔT := o.Tf - o.T0
	res.Moles = o.Mdl.Moles(o.Mass)
	res.Qsen = res.Moles * (o.Mdl.CpCaCO3*ΔT + o.Mdl.CpCaO*ΔT) / 1000.0
	res.Qlat = o.Mdl.L * res.Moles / 1000.0
	return
}

// EntropyGen computes the entropy generation indicator of the process.
// Tf must be nonzero; the zero division is reported as an error
func (o Calcination) EntropyGen(th ThermalResult) (sgen float64, err error) {
	if o.Tf == 0 {
		return 0, chk.Err("entropy generation is undefined for Tf = 0")
	}
	sgen = th.Qsen/o.Tf + th.Qlat/o.Tf
	return
}

// Plot plots the heat components as functions of the final temperature
func (o Calcination) Plot(dirout, fnkey string, TfMin, TfMax float64, np int) {

	Tf := utl.LinSpace(TfMin, TfMax, np)
	Qsen := make([]float64, np)
	Qlat := make([]float64, np)
	aux := o
	for i, tf := range Tf {
		aux.Tf = tf
		th := aux.ThermalEnergy()
		Qsen[i] = th.Qsen
		Qlat[i] = th.Qlat
	}

	plt.Plot(Tf, Qsen, &plt.A{C: "r", Ls: "-", L: "sensible"})
	plt.Plot(Tf, Qlat, &plt.A{C: "b", Ls: "--", L: "latent"})
	plt.Gll("$T_f$ [K]", "$Q$ [kJ]", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
