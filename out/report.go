// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of analysis results: text report,
// spreadsheet and csv tables, and the energy distribution figure
package out

import (
	"strings"

	"github.com/SinceOctober/Calcination/cal"
	"github.com/cpmech/gosl/io"
)

// Report returns a text table with the energy balance quantities, one line
// per quantity, in record order
func Report(rec *cal.Record) (table string) {
	l := strings.Repeat("=", 51)
	table = l + "\nENERGY BALANCE\n" + l + "\n"
	for i, label := range rec.Labels {
		table += io.Sf("%-30s %20.6f\n", label, rec.Values[i])
	}
	table += l + "\n"
	return
}

// PrintReport prints the energy balance table
func PrintReport(rec *cal.Record) {
	io.Pf("\n%v\n", Report(rec))
}
