// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package release implements presynaptic short-term plasticity in the generalized
Tsodyks-Markram framework: a multi-vesicular stochastic pool of Nrrp release
sites (Pool), and the deterministic mean-field version (TM).
*/
package release

import (
	"fmt"
	"math"

	"github.com/emer/synmech/srand"
)

// TMParams are the Tsodyks-Markram short-term plasticity parameters
type TMParams struct {

	// utilization of synaptic efficacy: baseline release probability per site
	Use float64 `default:"0.5" min:"0" max:"1"`

	// depression recovery time constant, msec
	Dep float64 `default:"100" min:"0"`

	// facilitation decay time constant, msec -- 0 = no facilitation
	Fac float64 `default:"10" min:"0"`

	// number of release sites (readily releasable pool)
	Nrrp int `default:"1" min:"1"`

	// initial value of the facilitation variable u
	U0 float64 `default:"0"`

	// spontaneous (mini) events release at most one vesicle
	SingleVesicleMinis bool
}

func (tp *TMParams) Defaults() {
	tp.Use = 0.5
	tp.Dep = 100
	tp.Fac = 10
	tp.Nrrp = 1
	tp.U0 = 0
}

func (tp *TMParams) Validate() error {
	if tp.Nrrp < 1 {
		return fmt.Errorf("release.TMParams: Nrrp must be >= 1, is: %d", tp.Nrrp)
	}
	if tp.Dep <= 0 {
		return fmt.Errorf("release.TMParams: Dep must be > 0, is: %g", tp.Dep)
	}
	if tp.Fac < 0 {
		return fmt.Errorf("release.TMParams: Fac must be >= 0, is: %g", tp.Fac)
	}
	return nil
}

// Facilitate returns the facilitation variable u after an interval isi since
// the last event, given current u and the effective utilization use.
func (tp *TMParams) Facilitate(u, isi, use float64) float64 {
	if tp.Fac > 0 {
		u *= math.Exp(-isi / tp.Fac)
		u += use * (1 - u)
		return u
	}
	return use
}

///////////////////////////////////////////////////////////////////////
//  Pool

// Pool is the stochastic multi-vesicular release state of one synapse.
// Occupied + Unoccupied == Nrrp always holds.
type Pool struct {

	// number of release sites docked with a vesicle
	Occupied int

	// number of empty release sites
	Unoccupied int

	// running facilitation variable
	U float64

	// time of last processed spike, msec
	Tsyn float64
}

// Init fills all sites and resets u and tsyn
func (pl *Pool) Init(t0 float64, tp *TMParams) {
	pl.Occupied = tp.Nrrp
	pl.Unoccupied = 0
	pl.U = tp.U0
	pl.Tsyn = t0
}

// OnSpike processes a presynaptic spike at time t and returns the number
// of released vesicles, which may be 0 (total failure). use is the effective
// utilization (plasticity-modulated or static), and mini marks spontaneous events.
// Draws unoccupied + occu uniforms from rs, in that order: first one recovery
// trial per empty site, then one release trial per candidate vesicle.
func (pl *Pool) OnSpike(rs srand.Stream, t, use float64, mini bool, tp *TMParams) int {
	isi := t - pl.Tsyn
	pl.U = tp.Facilitate(pl.U, isi, use)

	psurv := math.Exp(-isi / tp.Dep)
	for i := 0; i < pl.Unoccupied; i++ {
		if rs.Float64() > psurv {
			pl.Occupied++
		}
	}

	occu := pl.Occupied
	if mini && tp.SingleVesicleMinis && occu > 1 {
		occu = 1
	}
	released := 0
	for i := 0; i < occu; i++ {
		if rs.Float64() < pl.U {
			pl.Occupied--
			released++
		}
	}

	pl.Unoccupied = tp.Nrrp - pl.Occupied
	pl.Tsyn = t
	return released
}

// Conserved returns true if the site counts are consistent with nrrp
func (pl *Pool) Conserved(nrrp int) bool {
	return pl.Occupied >= 0 && pl.Unoccupied >= 0 && pl.Occupied+pl.Unoccupied == nrrp
}

///////////////////////////////////////////////////////////////////////
//  TM

// TM is the deterministic Tsodyks-Markram release state: R is the
// fraction of available resources and U the facilitation variable.
type TM struct {
	R    float64
	U    float64
	Tsyn float64
}

func (tm *TM) Init(t0 float64, tp *TMParams) {
	tm.R = 1
	tm.U = tp.U0
	tm.Tsyn = t0
}

// OnSpike processes a spike at time t and returns the release
// fraction Pr = u*R, which scales the conductance impulse.
func (tm *TM) OnSpike(t, use float64, tp *TMParams) float64 {
	isi := t - tm.Tsyn
	tm.U = tp.Facilitate(tm.U, isi, use)
	tm.R = 1 - (1-tm.R)*math.Exp(-isi/tp.Dep)
	pr := tm.U * tm.R
	tm.R -= pr
	tm.Tsyn = t
	return pr
}
