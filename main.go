// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/SinceOctober/Calcination/cal"
	"github.com/SinceOctober/Calcination/inp"
	"github.com/SinceOctober/Calcination/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				io.Pf("See location of error below:\n")
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".cal", false)
	verbose := io.ArgToBool(1, true)
	sweep := io.ArgToBool(2, false)
	saveXlsx := io.ArgToBool(3, false)
	saveCsv := io.ArgToBool(4, false)
	plotEnergy := io.ArgToBool(5, false)

	// message
	if verbose {
		io.PfWhite("\nCalcination v1.0 -- Thermodynamic Analysis of Limestone Calcination\n")
		io.Pf("Copyright 2016 The Calcination Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"run sensitivity study", "sweep", sweep,
			"save xlsx workbook", "saveXlsx", saveXlsx,
			"save csv table", "saveCsv", saveCsv,
			"plot energy distribution", "plotEnergy", plotEnergy,
		))
	}

	// read input data
	input, err := inp.Read(fnamepath)
	if err != nil {
		chk.Panic("cannot read input data:\n%v", err)
	}

	// run analysis
	analysis := cal.New(&input.Data)
	rec, err := analysis.Run()
	if err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// report
	if verbose {
		out.PrintReport(rec)
	}

	// energy distribution figure
	if plotEnergy {
		err = out.PlotEnergy(rec, input.DirOut, input.Key)
		if err != nil {
			chk.Panic("cannot plot energy distribution:\n%v", err)
		}
		if verbose {
			io.Pf("figure saved in <%s>\n", input.DirOut)
		}
	}

	// results to export
	recs := []*cal.Record{rec}

	// sensitivity study
	if sweep {

		// default grids unless the file has a sweep section
		if input.Sweep == nil {
			input.Sweep = new(inp.SweepData)
			input.Sweep.SetDefault()
		}

		// run driver
		var drv cal.Driver
		drv.Init(&input.Data, input.Sweep)
		drv.Silent = !verbose
		err = drv.Run()
		if err != nil {
			chk.Panic("sensitivity study failed:\n%v", err)
		}
		recs = drv.Res
	}

	// save tables
	if saveXlsx || saveCsv {
		err = os.MkdirAll(input.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", input.DirOut, err)
		}
	}
	if saveXlsx {
		fn := filepath.Join(input.DirOut, input.Key+".xlsx")
		err = out.SaveXlsx(recs, fn)
		if err != nil {
			chk.Panic("cannot save xlsx workbook:\n%v", err)
		}
		if verbose {
			io.Pf("file <%s> written\n", fn)
		}
	}
	if saveCsv {
		fn := filepath.Join(input.DirOut, input.Key+".csv")
		err = out.SaveCSV(recs, fn)
		if err != nil {
			chk.Panic("cannot save csv table:\n%v", err)
		}
		if verbose {
			io.Pf("file <%s> written\n", fn)
		}
	}

	// final message
	if verbose {
		io.PfGreen("> Success\n")
	}
}
