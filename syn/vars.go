// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"fmt"
)

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// GluVars are the recordable variables of a Glu synapse
var GluVars = []string{"A_AMPA", "B_AMPA", "g_AMPA", "i_AMPA", "A_NMDA", "B_NMDA", "g_NMDA", "i_NMDA",
	"m_VDCC", "h_VDCC", "i_VDCC", "cai", "effcai", "rho", "rho_pre", "rho_post", "dep", "pot",
	"Use_GB", "gmax_AMPA", "u", "tsyn", "occupied", "unoccupied", "released", "synstate", "v"}

var gluVarFuncs = map[string]func(sy *Glu) float64{
	"A_AMPA":     func(sy *Glu) float64 { return sy.AMPA.A },
	"B_AMPA":     func(sy *Glu) float64 { return sy.AMPA.B },
	"g_AMPA":     func(sy *Glu) float64 { return sy.GAMPA() },
	"i_AMPA":     func(sy *Glu) float64 { return sy.IAMPA(sy.V) },
	"A_NMDA":     func(sy *Glu) float64 { return sy.NMDA.A },
	"B_NMDA":     func(sy *Glu) float64 { return sy.NMDA.B },
	"g_NMDA":     func(sy *Glu) float64 { return sy.GNMDA(sy.V) },
	"i_NMDA":     func(sy *Glu) float64 { return sy.INMDA(sy.V) },
	"m_VDCC":     func(sy *Glu) float64 { return sy.VDCC.M },
	"h_VDCC":     func(sy *Glu) float64 { return sy.VDCC.H },
	"i_VDCC":     func(sy *Glu) float64 { return sy.IVDCC(sy.V) },
	"cai":        func(sy *Glu) float64 { return sy.Ca.Cai },
	"effcai":     func(sy *Glu) float64 { return sy.Ca.EffCai },
	"rho":        func(sy *Glu) float64 { return sy.Sides[0].Rho },
	"rho_pre":    func(sy *Glu) float64 { return sy.Sides[0].Rho },
	"rho_post":   func(sy *Glu) float64 { return sy.Sides[sy.gmaxSide()].Rho },
	"dep":        func(sy *Glu) float64 { return b2f(sy.Sides[0].Dep) },
	"pot":        func(sy *Glu) float64 { return b2f(sy.Sides[0].Pot) },
	"Use_GB":     func(sy *Glu) float64 { return sy.UseGB },
	"gmax_AMPA":  func(sy *Glu) float64 { return sy.GmaxAMPA },
	"u":          func(sy *Glu) float64 { return sy.Pool.U },
	"tsyn":       func(sy *Glu) float64 { return sy.Pool.Tsyn },
	"occupied":   func(sy *Glu) float64 { return float64(sy.Pool.Occupied) },
	"unoccupied": func(sy *Glu) float64 { return float64(sy.Pool.Unoccupied) },
	"released":   func(sy *Glu) float64 { return float64(sy.Released) },
	"synstate":   func(sy *Glu) float64 { return b2f(sy.Rewire.State == Active) },
	"v":          func(sy *Glu) float64 { return sy.V },
}

func (sy *Glu) VarNames() []string {
	return GluVars
}

// VarByName returns variable by name, or error
func (sy *Glu) VarByName(varNm string) (float64, error) {
	fn, ok := gluVarFuncs[varNm]
	if !ok {
		return 0, fmt.Errorf("Glu VarByName: variable name: %v not valid", varNm)
	}
	return fn(sy), nil
}

// GABAABVars are the recordable variables of a GABAAB synapse
var GABAABVars = []string{"A_GABAA", "B_GABAA", "g_GABAA", "i_GABAA", "A_GABAB", "B_GABAB", "g_GABAB", "i_GABAB",
	"u", "R", "tsyn", "occupied", "unoccupied", "released", "v"}

var gabaVarFuncs = map[string]func(sy *GABAAB) float64{
	"A_GABAA":    func(sy *GABAAB) float64 { return sy.GABAA.A },
	"B_GABAA":    func(sy *GABAAB) float64 { return sy.GABAA.B },
	"g_GABAA":    func(sy *GABAAB) float64 { return sy.GGABAA() },
	"i_GABAA":    func(sy *GABAAB) float64 { return sy.GGABAA() * (sy.V - sy.Glob.Erev.GABAA) },
	"A_GABAB":    func(sy *GABAAB) float64 { return sy.GABAB.A },
	"B_GABAB":    func(sy *GABAAB) float64 { return sy.GABAB.B },
	"g_GABAB":    func(sy *GABAAB) float64 { return sy.GGABAB() },
	"i_GABAB":    func(sy *GABAAB) float64 { return sy.GGABAB() * (sy.V - sy.Glob.Erev.GABAB) },
	"u":          func(sy *GABAAB) float64 { return sy.releaseU() },
	"R":          func(sy *GABAAB) float64 { return sy.TM.R },
	"tsyn":       func(sy *GABAAB) float64 { return sy.tsyn() },
	"occupied":   func(sy *GABAAB) float64 { return float64(sy.Pool.Occupied) },
	"unoccupied": func(sy *GABAAB) float64 { return float64(sy.Pool.Unoccupied) },
	"released":   func(sy *GABAAB) float64 { return sy.Released },
	"v":          func(sy *GABAAB) float64 { return sy.V },
}

func (sy *GABAAB) releaseU() float64 {
	if sy.Params.Stochastic {
		return sy.Pool.U
	}
	return sy.TM.U
}

func (sy *GABAAB) VarNames() []string {
	return GABAABVars
}

func (sy *GABAAB) VarByName(varNm string) (float64, error) {
	fn, ok := gabaVarFuncs[varNm]
	if !ok {
		return 0, fmt.Errorf("GABAAB VarByName: variable name: %v not valid", varNm)
	}
	return fn(sy), nil
}

// compile-time interface checks
var (
	_ Mechanism = (*Glu)(nil)
	_ Mechanism = (*GABAAB)(nil)
)
