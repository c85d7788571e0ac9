// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/SinceOctober/Calcination/cal"
	"github.com/SinceOctober/Calcination/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

func Test_export01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export01. csv table of the default study")

	// run the default study
	var dat inp.Data
	dat.SetDefault()
	var sweep inp.SweepData
	sweep.SetDefault()
	var drv cal.Driver
	drv.Init(&dat, &sweep)
	err := drv.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// write csv table
	dirout := "/tmp/calcination"
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		tst.Errorf("cannot create %q:\n%v", dirout, err)
		return
	}
	path := filepath.Join(dirout, "sweep.csv")
	err = SaveCSV(drv.Res, path)
	if err != nil {
		tst.Errorf("SaveCSV failed:\n%v", err)
		return
	}

	// read table back
	file, err := os.Open(path)
	if err != nil {
		tst.Errorf("cannot open %q:\n%v", path, err)
		return
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		tst.Errorf("cannot read %q:\n%v", path, err)
		return
	}
	chk.IntAssert(len(rows), 1+27)
	chk.Strings(tst, "header", rows[0], drv.Res[0].Labels)

	// no records
	err = SaveCSV(nil, path)
	if err == nil {
		tst.Errorf("SaveCSV should have failed with no records")
		return
	}

	// write errors must not be dropped; /dev/full fails on flush
	err = SaveCSV(drv.Res, "/dev/full")
	if err == nil {
		tst.Errorf("SaveCSV should have failed writing to /dev/full")
		return
	}
}

func Test_export02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export02. xlsx workbook")

	var dat inp.Data
	dat.SetDefault()
	rec, err := cal.New(&dat).Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// write workbook
	dirout := "/tmp/calcination"
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		tst.Errorf("cannot create %q:\n%v", dirout, err)
		return
	}
	path := filepath.Join(dirout, "balance.xlsx")
	err = SaveXlsx([]*cal.Record{rec}, path)
	if err != nil {
		tst.Errorf("SaveXlsx failed:\n%v", err)
		return
	}

	// read workbook back
	f, err := excelize.OpenFile(path)
	if err != nil {
		tst.Errorf("cannot open %q:\n%v", path, err)
		return
	}
	defer f.Close()
	rows, err := f.GetRows("EnergyBalance")
	if err != nil {
		tst.Errorf("cannot read %q:\n%v", path, err)
		return
	}
	chk.IntAssert(len(rows), 2)
	chk.Strings(tst, "header", rows[0], rec.Labels)

	// no records
	err = SaveXlsx(nil, path)
	if err == nil {
		tst.Errorf("SaveXlsx should have failed with no records")
		return
	}
}
