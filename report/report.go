// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package report records named state variables of synapse instances at a fixed
sampling interval into an etable.Table, and writes them as tab-separated ASCII
with emergent-style headers.
*/
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// LogPrec is the precision for saving float values
var LogPrec = 8

// VarSource is anything with named variables, e.g. a syn.Mechanism
type VarSource interface {
	ID() int
	VarByName(varNm string) (float64, error)
}

// Report samples Vars of each target every Dt msec between Start and Stop
type Report struct {

	// name, used as the table name
	Name string

	// sampling interval, msec
	Dt float64 `default:"0.1"`

	// first sample time, msec
	Start float64

	// last sample time, msec; <= 0 = no limit
	Stop float64

	// variables recorded for every target
	Vars []string

	// instances recorded
	Targets []VarSource `view:"-"`

	// recorded samples: Time column, then one column per target and var
	Table *etable.Table `view:"no-inline"`

	next float64
}

// ColName returns the column name for variable varNm of target id
func ColName(varNm string, id int) string {
	return varNm + ":" + strconv.Itoa(id)
}

// Init validates the variable names against every target and configures an
// empty table.
func (rp *Report) Init() error {
	if rp.Dt <= 0 {
		return fmt.Errorf("report %q: Dt must be > 0, is: %g", rp.Name, rp.Dt)
	}
	sch := etable.Schema{{Name: "Time", Type: etensor.FLOAT64}}
	for _, tg := range rp.Targets {
		for _, vn := range rp.Vars {
			if _, err := tg.VarByName(vn); err != nil {
				return fmt.Errorf("report %q: %w", rp.Name, err)
			}
			sch = append(sch, etable.Column{Name: ColName(vn, tg.ID()), Type: etensor.FLOAT64})
		}
	}
	if rp.Table == nil {
		rp.Table = &etable.Table{}
	}
	rp.Table.SetMetaData("name", rp.Name)
	rp.Table.SetMetaData("read-only", "true")
	rp.Table.SetMetaData("precision", strconv.Itoa(LogPrec))
	rp.Table.SetFromSchema(sch, 0)
	rp.next = rp.Start
	return nil
}

// Due returns true if a sample is due at time t
func (rp *Report) Due(t float64) bool {
	if rp.Stop > 0 && t > rp.Stop+1.0e-9 {
		return false
	}
	return t+1.0e-9 >= rp.next
}

// Sample records one row at time t if one is due
func (rp *Report) Sample(t float64) error {
	if !rp.Due(t) {
		return nil
	}
	dt := rp.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Time", row, t)
	for _, tg := range rp.Targets {
		for _, vn := range rp.Vars {
			v, err := tg.VarByName(vn)
			if err != nil {
				return err
			}
			dt.SetCellFloat(ColName(vn, tg.ID()), row, v)
		}
	}
	rp.next += rp.Dt
	for rp.next <= t {
		rp.next += rp.Dt
	}
	return nil
}

// Range returns the range of values recorded in the given column
func (rp *Report) Range(colNm string) (minmax.F64, error) {
	ci, err := rp.Table.ColIdxTry(colNm)
	if err != nil {
		return minmax.F64{}, err
	}
	var mm minmax.F64
	mm.SetInfinity()
	for r := 0; r < rp.Table.Rows; r++ {
		mm.FitValInRange(rp.Table.CellFloatIdx(ci, r))
	}
	return mm, nil
}

// WriteASCII writes the recorded table as tab-separated values with headers
func (rp *Report) WriteASCII(w io.Writer) error {
	return rp.Table.WriteCSV(w, etable.Tab, etable.Headers)
}
