// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/SinceOctober/Calcination/cal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// PlotEnergy generates a bar-style figure comparing the sensible and the
// latent heat of an energy balance record. The components are taken from
// the record by label
func PlotEnergy(rec *cal.Record, dirout, fnkey string) (err error) {

	// energy components
	qsen, found := rec.Value("Sensible Heat (kJ)")
	if !found {
		return chk.Err("record does not have %q", "Sensible Heat (kJ)")
	}
	qlat, found := rec.Value("Latent Heat (kJ)")
	if !found {
		return chk.Err("record does not have %q", "Latent Heat (kJ)")
	}

	// two bars drawn as thick vertical lines
	plt.Reset(false, nil)
	plt.Plot([]float64{1, 1}, []float64{0, qsen}, &plt.A{C: "b", Lw: 40, L: "Sensible Heat"})
	plt.Plot([]float64{2, 2}, []float64{0, qlat}, &plt.A{C: "orange", Lw: 40, L: "Latent Heat"})
	plt.Gll("heat component", "Energy (kJ)", nil)
	plt.SetTicksNormal()
	plt.Save(dirout, fnkey)
	return
}
