// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/csv"
	"os"

	"github.com/SinceOctober/Calcination/cal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

// SaveCSV writes energy balance records to a CSV file, one row per record,
// one column per label
func SaveCSV(recs []*cal.Record, path string) (err error) {

	// check
	if len(recs) == 0 {
		return chk.Err("SaveCSV: there are no records to save")
	}

	// create file
	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer file.Close()

	// header with labels
	writer := csv.NewWriter(file)
	err = writer.Write(recs[0].Labels)
	if err != nil {
		return
	}

	// one row per record
	for _, rec := range recs {
		row := make([]string, len(rec.Values))
		for j, v := range rec.Values {
			row[j] = io.Sf("%g", v)
		}
		err = writer.Write(row)
		if err != nil {
			return
		}
	}

	// the csv writer buffers; write errors surface on flush
	writer.Flush()
	return writer.Error()
}

// SaveXlsx writes energy balance records to an xlsx workbook, one row per
// record, one column per label
func SaveXlsx(recs []*cal.Record, path string) (err error) {

	// check
	if len(recs) == 0 {
		return chk.Err("SaveXlsx: there are no records to save")
	}

	// new workbook with a single sheet
	f := excelize.NewFile()
	defer f.Close()
	sheet := "EnergyBalance"
	err = f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return
	}

	// header with labels
	header := make([]interface{}, len(recs[0].Labels))
	for j, label := range recs[0].Labels {
		header[j] = label
	}
	err = sw.SetRow("A1", header)
	if err != nil {
		return
	}

	// one row per record
	for i, rec := range recs {
		row := make([]interface{}, len(rec.Values))
		for j, v := range rec.Values {
			row[j] = v
		}
		cell, e := excelize.CoordinatesToCellName(1, i+2)
		if e != nil {
			return e
		}
		err = sw.SetRow(cell, row)
		if err != nil {
			return
		}
	}

	// flush stream and save workbook
	err = sw.Flush()
	if err != nil {
		return
	}
	return f.SaveAs(path)
}
