// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

const (
	// Faraday constant in C/mol
	Faraday = 96485.33212

	// GasConst is the molar gas constant in J/(K mol)
	GasConst = 8.314462618
)

// GHK returns the Goldman-Hodgkin-Katz driving force in mV for an ion of valence z
// with inside and outside concentrations ci, co (mM), at v (mV) and temperature celsius.
// Multiplying by a conductance in uS yields a current in nA.
func GHK(v, ci, co float64, z float64, celsius float64) float64 {
	f := GasConst * (celsius + 273.15) / (z * 1e-3 * Faraday)
	xi := v / f
	exi := math.Exp(xi)
	var fxi float64
	if math.Abs(xi) < 1e-4 {
		fxi = 1 - xi/2
	} else {
		fxi = xi / (exi - 1)
	}
	return f * ((ci/co)*exi - 1) * fxi
}

// VDCCParams control an R-type voltage-dependent calcium channel with
// m^2 h gating, providing the spine calcium influx from depolarization.
type VDCCParams struct {

	// maximal conductance in nS
	Gbar float64 `default:"0.0744"`

	// half-activation voltage of m, mV
	Vhm float64 `default:"-5.9"`

	// activation slope of m, mV
	Km float64 `default:"9.5"`

	// half-inactivation voltage of h, mV
	Vhh float64 `default:"-39"`

	// inactivation slope of h, mV (negative)
	Kh float64 `default:"-9.2"`

	// m time constant, msec
	MTau float64 `default:"1"`

	// h time constant, msec
	HTau float64 `default:"27"`

	// extracellular calcium concentration, mM
	Cao float64 `default:"2"`
}

func (vp *VDCCParams) Defaults() {
	vp.Gbar = 0.0744
	vp.Vhm = -5.9
	vp.Km = 9.5
	vp.Vhh = -39
	vp.Kh = -9.2
	vp.MTau = 1
	vp.HTau = 27
	vp.Cao = 2
}

// MInf returns the steady-state activation at v
func (vp *VDCCParams) MInf(v float64) float64 {
	return 1 / (1 + math.Exp((vp.Vhm-v)/vp.Km))
}

// HInf returns the steady-state inactivation at v
func (vp *VDCCParams) HInf(v float64) float64 {
	return 1 / (1 + math.Exp((vp.Vhh-v)/vp.Kh))
}

// VDCC is the gating state of one calcium channel population
type VDCC struct {
	M float64
	H float64
}

// Init sets the gates to their steady state at v
func (vc *VDCC) Init(v float64, vp *VDCCParams) {
	vc.M = vp.MInf(v)
	vc.H = vp.HInf(v)
}

// Step advances the gates over dt at fixed v, using the exact solution of the
// linear relaxation (cnexp-style)
func (vc *VDCC) Step(dt, v float64, vp *VDCCParams) {
	mi := vp.MInf(v)
	hi := vp.HInf(v)
	vc.M = mi + (vc.M-mi)*math.Exp(-dt/vp.MTau)
	vc.H = hi + (vc.H-hi)*math.Exp(-dt/vp.HTau)
}

// G returns the channel conductance in uS
func (vc *VDCC) G(vp *VDCCParams) float64 {
	return 1e-3 * vp.Gbar * vc.M * vc.M * vc.H
}

// ICa returns the calcium current in nA at v, given internal calcium cai
func (vc *VDCC) ICa(v, cai, celsius float64, vp *VDCCParams) float64 {
	return vc.G(vp) * GHK(v, cai, vp.Cao, 2, celsius)
}
