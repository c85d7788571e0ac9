// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cal

import (
	"testing"

	"github.com/SinceOctober/Calcination/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_cal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cal01. single energy balance")

	var dat inp.Data
	dat.SetDefault()

	a := New(&dat)
	rec, err := a.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// labels, in report order
	chk.Strings(tst, "labels", rec.Labels, []string{
		"Initial Temperature (K)",
		"Final Temperature (K)",
		"Pressure (Pa)",
		"Limestone Mass (kg)",
		"Molar Quantity",
		"Standard Enthalpy (kJ/mol)",
		"Standard Entropy (J/(mol·K))",
		"Gibbs Free Energy (kJ/mol)",
		"Sensible Heat (kJ)",
		"Latent Heat (kJ)",
		"Entropy Generation",
	})
	chk.IntAssert(len(rec.Values), len(rec.Labels))

	// values
	for i, label := range rec.Labels {
		io.Pf("%30s = %v\n", label, rec.Values[i])
	}
	chk.Float64(tst, "T0", 1e-15, rec.Values[0], 298.15)
	chk.Float64(tst, "Tf", 1e-15, rec.Values[1], 973.15)
	chk.Float64(tst, "P", 1e-15, rec.Values[2], 101325)
	chk.Float64(tst, "mass", 1e-15, rec.Values[3], 100.0)
	chk.Float64(tst, "moles", 1e-4, rec.Values[4], 999.13175)
	chk.Float64(tst, "G", 1e-9, rec.Values[7], -1297.305635)

	// lookup by label
	qsen, found := rec.Value("Sensible Heat (kJ)")
	if !found {
		tst.Errorf("cannot find the sensible heat in the record")
		return
	}
	chk.Float64(tst, "Qsen", 1e-4, qsen, 1228.10777)

	// entropy generation is consistent with the heats
	qlat, _ := rec.Value("Latent Heat (kJ)")
	sgen, _ := rec.Value("Entropy Generation")
	chk.Float64(tst, "Sgen", 1e-12, sgen, qsen/973.15+qlat/973.15)

	// unknown label
	if _, found := rec.Value("Enthalpy of Mixing"); found {
		tst.Errorf("lookup of an unknown label should have failed")
		return
	}

	// a second run gives the same results
	rec2, err := a.Run()
	if err != nil {
		tst.Errorf("second Run failed:\n%v", err)
		return
	}
	chk.Array(tst, "values: second run", 1e-17, rec2.Values, rec.Values)
}

func Test_cal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cal02. zero final temperature")

	var dat inp.Data
	dat.SetDefault()
	dat.Tfin = 0

	_, err := New(&dat).Run()
	if err == nil {
		tst.Errorf("Run should have failed with Tfin = 0")
		return
	}
	io.Pforan("err = %v\n", err)
}
