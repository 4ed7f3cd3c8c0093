// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synreader

import (
	"bytes"
	"testing"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/synmech/syn"
)

func TestReadPlast(t *testing.T) {
	recs := []Record{
		{SynapseID: 4, Weight: 1.2, Delay: 0.5, Use: 0.3, Dep: 400, Fac: 20, Nrrp: 3, ThetaD: 0.005, ThetaP: 0.011, Rho0: 1},
		{SynapseID: 9, Weight: 0.7, Delay: 1.5, Use: 0.6, Dep: 700, Fac: 0, Nrrp: 1, ThetaD: 0.007, ThetaP: 0.013},
	}
	var buf bytes.Buffer
	if err := Write(&buf, recs, true); err != nil {
		t.Fatal(err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(recs) {
		t.Fatalf("records: %d", len(got))
	}
	for i := range recs {
		cor := recs[i]
		cor.HasPlast = true
		if got[i] != cor {
			t.Errorf("record %d:\n%+v\ncor:\n%+v", i, got[i], cor)
		}
	}
	gp := got[0].GluParams(syn.NewGluParams())
	if gp.Rel.Nrrp != 3 || gp.Rel.Use != 0.3 || gp.Pre.Rho0 != 1 || gp.Post.ThetaP != 0.011 {
		t.Errorf("params not applied: %+v %+v", gp.Rel, gp.Pre)
	}
}

func TestReadNoPlast(t *testing.T) {
	recs := []Record{{SynapseID: 1, Weight: 1, Delay: 1, Use: 0.5, Dep: 100, Fac: 10, Nrrp: 2}}
	var buf bytes.Buffer
	if err := Write(&buf, recs, false); err != nil {
		t.Fatal(err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].HasPlast || got[0].Nrrp != 2 {
		t.Errorf("record: %+v", got)
	}
	base := syn.NewGluParams()
	gp := got[0].GluParams(base)
	if gp.Pre.ThetaD != base.Pre.ThetaD {
		t.Errorf("missing plasticity columns should leave defaults")
	}
}

func TestReadMissingColumn(t *testing.T) {
	dt := &etable.Table{}
	sch := Schema(false)
	dt.SetFromSchema(sch[:len(sch)-1], 1)
	if _, err := FromTable(dt); err == nil {
		t.Errorf("expected error for missing Nrrp column")
	}
}
