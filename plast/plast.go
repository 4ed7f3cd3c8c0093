// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plast implements calcium-based long-term plasticity in the style of
Graupner & Brunel (2012), as used by glutamatergic synapses: a spine calcium
state driven by NMDA and VDCC calcium currents, a low-pass filtered effective
calcium (EffCai), and one or more bistable efficacy variables (rho) whose
depression and potentiation drives are switched on and off by level-crossing
watches on EffCai.

Slow time constants (Side.Tau, RelaxParams.Tau) are in seconds, all others in msec.
*/
package plast

import (
	"math"

	"github.com/emer/synmech/chans"
)

// CaParams control the spine calcium dynamics
type CaParams struct {

	// spine volume in um^3
	Volume float64 `default:"0.087"`

	// fraction of calcium current not buffered
	GammaCa float64 `default:"0.04"`

	// calcium extrusion time constant, msec
	TauCa float64 `default:"12"`

	// resting calcium concentration, mM
	MinCa float64 `default:"70e-6"`

	// time constant of the effective calcium low-pass filter, msec
	TauEffCa float64 `default:"200"`

	// fraction of the NMDA current carried by calcium
	CaFracNMDA float64 `default:"0.1"`
}

func (cp *CaParams) Defaults() {
	cp.Volume = 0.087
	cp.GammaCa = 0.04
	cp.TauCa = 12
	cp.MinCa = 70e-6
	cp.TauEffCa = 200
	cp.CaFracNMDA = 0.1
}

// Influx returns the calcium concentration rate in mM/msec produced by a
// total calcium current ica in nA (negative = inward)
func (cp *CaParams) Influx(ica float64) float64 {
	return -1e-9 * ica * cp.GammaCa / (1e-15 * cp.Volume * 2 * chans.Faraday)
}

// Calcium is the spine calcium state
type Calcium struct {

	// intracellular calcium concentration, mM
	Cai float64

	// effective calcium: low-pass filter of Cai - MinCa, mM msec
	EffCai float64
}

func (ca *Calcium) Init(cp *CaParams) {
	ca.Cai = cp.MinCa
	ca.EffCai = 0
}

// Step integrates
//
//	dCai/dt = Influx(ica) - (Cai - MinCa)/TauCa
//	dEffCai/dt = -EffCai/TauEffCa + (Cai - MinCa)
//
// over dt, holding ica fixed. Both are linear and solved exactly,
// with EffCai driven by the step-averaged Cai.
func (ca *Calcium) Step(dt, ica float64, cp *CaParams) {
	c0 := ca.Cai - cp.MinCa
	cinf := cp.Influx(ica) * cp.TauCa
	c1 := cinf + (c0-cinf)*math.Exp(-dt/cp.TauCa)
	ca.Cai = cp.MinCa + c1

	drive := 0.5 * (c0 + c1)
	einf := drive * cp.TauEffCa
	ca.EffCai = einf + (ca.EffCai-einf)*math.Exp(-dt/cp.TauEffCa)
}
