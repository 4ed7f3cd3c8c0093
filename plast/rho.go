// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/minmax"
)

// RhoRange is the range rho is kept in after each step
var RhoRange = minmax.F64{Min: 0, Max: 1}

// SideParams control one bistable efficacy variable rho and the
// calcium thresholds that switch its depression and potentiation drives.
type SideParams struct {

	// depression threshold on EffCai
	ThetaD float64 `default:"0.006"`

	// potentiation threshold on EffCai
	ThetaP float64 `default:"0.012"`

	// initial value of rho
	Rho0 float64 `default:"0" min:"0" max:"1"`

	// depression rate while EffCai > ThetaD
	GammaD float64 `default:"100"`

	// potentiation rate while EffCai > ThetaP
	GammaP float64 `default:"450"`

	// unstable fixed point separating the two attractors
	RhoStar float64 `default:"0.5"`

	// time constant of rho, in seconds
	Tau float64 `default:"100"`
}

func (sp *SideParams) Defaults() {
	sp.ThetaD = 0.006
	sp.ThetaP = 0.012
	sp.Rho0 = 0
	sp.GammaD = 100
	sp.GammaP = 450
	sp.RhoStar = 0.5
	sp.Tau = 100
}

func (sp *SideParams) Validate() error {
	if sp.Tau <= 0 {
		return fmt.Errorf("plast.SideParams: Tau must be > 0, is: %g", sp.Tau)
	}
	if sp.Rho0 < 0 || sp.Rho0 > 1 {
		return fmt.Errorf("plast.SideParams: Rho0 must be in [0,1], is: %g", sp.Rho0)
	}
	return nil
}

// DRho returns drho/dt (per msec) for given rho and drive flags
func (sp *SideParams) DRho(rho float64, dep, pot bool) float64 {
	d := -rho * (1 - rho) * (sp.RhoStar - rho)
	if pot {
		d += sp.GammaP * (1 - rho)
	}
	if dep {
		d -= sp.GammaD * rho
	}
	return d / (1e3 * sp.Tau)
}

// Side is the state of one bistable efficacy variable
type Side struct {

	// efficacy, attracted to 0 (depressed) or 1 (potentiated)
	Rho float64

	// depression drive is on (EffCai above ThetaD)
	Dep bool

	// potentiation drive is on (EffCai above ThetaP)
	Pot bool
}

func (sd *Side) Init(sp *SideParams) {
	sd.Rho = sp.Rho0
	sd.Dep = false
	sd.Pot = false
}

// Step integrates rho over dt with the explicit midpoint method,
// holding the drive flags fixed, and clips the result to RhoRange.
func (sd *Side) Step(dt float64, sp *SideParams) {
	k1 := sp.DRho(sd.Rho, sd.Dep, sd.Pot)
	mid := sd.Rho + 0.5*dt*k1
	k2 := sp.DRho(mid, sd.Dep, sd.Pot)
	sd.Rho = RhoRange.ClipVal(sd.Rho + dt*k2)
}

// RelaxParams control a slow variable relaxing toward a target interpolated
// between a depressed (D) and potentiated (P) value by rho.
type RelaxParams struct {

	// value at rho = 0
	D float64

	// value at rho = 1
	P float64

	// relaxation time constant, in seconds
	Tau float64 `default:"100"`
}

// Target returns the value the variable relaxes to at given rho
func (rp *RelaxParams) Target(rho float64) float64 {
	return rp.D + rho*(rp.P-rp.D)
}

// Norm returns x normalized into the [D, P] range
func (rp *RelaxParams) Norm(x float64) float64 {
	if rp.P == rp.D {
		return 0
	}
	return (x - rp.D) / (rp.P - rp.D)
}

// Step returns x after relaxing toward Target(rho) for dt msec,
// using the exact solution at fixed rho.
func (rp *RelaxParams) Step(x, rho, dt float64) float64 {
	tgt := rp.Target(rho)
	return tgt + (x-tgt)*math.Exp(-dt/(1e3*rp.Tau))
}
