// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synreader reads per-synapse parameter tables: one row per synapse with
columns synapseID, weight, delay, Use, Dep, Fac, Nrrp, and optionally
theta_d, theta_p, rho0. Files are tab-separated with emergent-style _H: headers,
as written by Write or by etable.
*/
package synreader

import (
	"fmt"
	"io"
	"math"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/synmech/syn"
)

// Required and optional column names
var (
	ReqCols   = []string{"synapseID", "weight", "delay", "Use", "Dep", "Fac", "Nrrp"}
	PlastCols = []string{"theta_d", "theta_p", "rho0"}
)

// Record is the parameter set of one synapse
type Record struct {
	SynapseID int
	Weight    float64
	Delay     float64
	Use       float64
	Dep       float64
	Fac       float64
	Nrrp      int

	// HasPlast is true if the plasticity columns were present
	HasPlast bool
	ThetaD   float64
	ThetaP   float64
	Rho0     float64
}

// GluParams returns a copy of base with this record's release and
// plasticity parameters applied
func (rc *Record) GluParams(base *syn.GluParams) *syn.GluParams {
	gp := *base
	gp.Rel.Use = rc.Use
	gp.Rel.Dep = rc.Dep
	gp.Rel.Fac = rc.Fac
	gp.Rel.Nrrp = rc.Nrrp
	if rc.HasPlast {
		gp.Pre.ThetaD = rc.ThetaD
		gp.Pre.ThetaP = rc.ThetaP
		gp.Pre.Rho0 = rc.Rho0
		gp.Post.ThetaD = rc.ThetaD
		gp.Post.ThetaP = rc.ThetaP
		gp.Post.Rho0 = rc.Rho0
	}
	return &gp
}

// Schema returns the table schema for records, with or without the plasticity columns
func Schema(plast bool) etable.Schema {
	sch := etable.Schema{}
	for _, cn := range ReqCols {
		sch = append(sch, etable.Column{Name: cn, Type: etensor.FLOAT64})
	}
	if plast {
		for _, cn := range PlastCols {
			sch = append(sch, etable.Column{Name: cn, Type: etensor.FLOAT64})
		}
	}
	return sch
}

// ReadTable reads a tab-separated table with headers
func ReadTable(r io.Reader) (*etable.Table, error) {
	dt := &etable.Table{}
	if err := dt.ReadCSV(r, etable.Tab); err != nil {
		return nil, fmt.Errorf("synreader: %w", err)
	}
	return dt, nil
}

// Read reads records from r. All required columns must be present; the
// plasticity columns are used only if all of them are present.
func Read(r io.Reader) ([]Record, error) {
	dt, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return FromTable(dt)
}

func colIdxs(dt *etable.Table, names []string) ([]int, error) {
	idxs := make([]int, len(names))
	for i, cn := range names {
		ci, err := dt.ColIdxTry(cn)
		if err != nil {
			return nil, err
		}
		idxs[i] = ci
	}
	return idxs, nil
}

// FromTable converts the rows of dt into records
func FromTable(dt *etable.Table) ([]Record, error) {
	req, err := colIdxs(dt, ReqCols)
	if err != nil {
		return nil, fmt.Errorf("synreader: %w", err)
	}
	opt, oerr := colIdxs(dt, PlastCols)
	hasPlast := oerr == nil
	recs := make([]Record, dt.Rows)
	for r := 0; r < dt.Rows; r++ {
		rc := &recs[r]
		rc.SynapseID = int(math.Round(dt.CellFloatIdx(req[0], r)))
		rc.Weight = dt.CellFloatIdx(req[1], r)
		rc.Delay = dt.CellFloatIdx(req[2], r)
		rc.Use = dt.CellFloatIdx(req[3], r)
		rc.Dep = dt.CellFloatIdx(req[4], r)
		rc.Fac = dt.CellFloatIdx(req[5], r)
		rc.Nrrp = int(math.Round(dt.CellFloatIdx(req[6], r)))
		if rc.Nrrp < 1 {
			return nil, fmt.Errorf("synreader: row %d: Nrrp must be >= 1, is: %d", r, rc.Nrrp)
		}
		if hasPlast {
			rc.HasPlast = true
			rc.ThetaD = dt.CellFloatIdx(opt[0], r)
			rc.ThetaP = dt.CellFloatIdx(opt[1], r)
			rc.Rho0 = dt.CellFloatIdx(opt[2], r)
		}
	}
	return recs, nil
}

// Write writes records as a tab-separated table with headers, including
// the plasticity columns if plast is true
func Write(w io.Writer, recs []Record, plast bool) error {
	dt := &etable.Table{}
	dt.SetFromSchema(Schema(plast), len(recs))
	for r, rc := range recs {
		vals := []float64{float64(rc.SynapseID), rc.Weight, rc.Delay, rc.Use, rc.Dep, rc.Fac, float64(rc.Nrrp)}
		for ci, v := range vals {
			dt.SetCellFloatIdx(ci, r, v)
		}
		if plast {
			n := len(ReqCols)
			dt.SetCellFloatIdx(n, r, rc.ThetaD)
			dt.SetCellFloatIdx(n+1, r, rc.ThetaP)
			dt.SetCellFloatIdx(n+2, r, rc.Rho0)
		}
	}
	return dt.WriteCSV(w, etable.Tab, etable.Headers)
}
