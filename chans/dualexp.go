// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"fmt"
	"math"
)

// DualExpParams are the rise and decay time constants of a dual-exponential
// conductance profile g(t) ~ exp(-t/Decay) - exp(-t/Rise), produced by two
// uncoupled linear states A (rise) and B (decay), with g = B - A.
type DualExpParams struct {

	// rise time constant in msec
	Rise float64 `default:"0.2" min:"0"`

	// decay time constant in msec -- must be > Rise
	Decay float64 `default:"1.7" min:"0"`

	// time of peak conductance after an impulse, in msec, computed from Rise and Decay
	Tp float64 `edit:"-"`

	// peak normalization factor applied to impulses, so that a unit
	// impulse produces a unit peak in B - A
	Factor float64 `edit:"-" display:"-"`
}

// Set sets the rise and decay time constants and updates derived values
func (dp *DualExpParams) Set(rise, decay float64) {
	dp.Rise = rise
	dp.Decay = decay
	dp.Update()
}

// Update computes Tp and Factor, and must be called after changing Rise or Decay
func (dp *DualExpParams) Update() {
	if dp.Rise <= 0 || dp.Decay <= dp.Rise {
		dp.Tp = 0
		dp.Factor = 1
		return
	}
	dp.Tp = ((dp.Rise * dp.Decay) / (dp.Decay - dp.Rise)) * math.Log(dp.Decay/dp.Rise)
	dp.Factor = 1 / (-math.Exp(-dp.Tp/dp.Rise) + math.Exp(-dp.Tp/dp.Decay))
}

// Validate returns an error if the time constants cannot produce a
// dual-exponential profile.
func (dp *DualExpParams) Validate() error {
	if dp.Rise <= 0 {
		return fmt.Errorf("chans.DualExpParams: Rise must be > 0, is: %g", dp.Rise)
	}
	if dp.Decay <= dp.Rise {
		return fmt.Errorf("chans.DualExpParams: Decay: %g must be > Rise: %g", dp.Decay, dp.Rise)
	}
	return nil
}

// Coefs returns the exact per-step decay multipliers for A and B over dt
func (dp *DualExpParams) Coefs(dt float64) (ca, cb float64) {
	return math.Exp(-dt / dp.Rise), math.Exp(-dt / dp.Decay)
}

// DualExp is the A (rising) and B (decaying) state pair of one receptor.
type DualExp struct {
	A float64
	B float64
}

// Init zeroes the states
func (de *DualExp) Init() {
	de.A = 0
	de.B = 0
}

// Bump adds an impulse of given amount, scaled by the peak factor
func (de *DualExp) Bump(amt float64, dp *DualExpParams) {
	inc := amt * dp.Factor
	de.A += inc
	de.B += inc
}

// Decay integrates dA/dt = -A/Rise, dB/dt = -B/Decay exactly over dt
func (de *DualExp) Decay(dt float64, dp *DualExpParams) {
	ca, cb := dp.Coefs(dt)
	de.DecayCoefs(ca, cb)
}

// DecayCoefs applies precomputed decay multipliers from Coefs
func (de *DualExp) DecayCoefs(ca, cb float64) {
	de.A *= ca
	de.B *= cb
}

// G returns the normalized conductance waveform B - A
func (de *DualExp) G() float64 {
	return de.B - de.A
}
