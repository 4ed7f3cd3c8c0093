// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"math"

	"github.com/goki/ki/kit"
	"go.uber.org/zap"
)

// MsecPerDay converts rates per day into rates per msec
const MsecPerDay = 8.64e7

// RewireStates are the structural states of a synapse
type RewireStates int32

//go:generate stringer -type=RewireStates

var KiT_RewireStates = kit.Enums.AddEnum(RewireStatesN, kit.NotBitFlag, nil)

func (ev RewireStates) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *RewireStates) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Active synapses transmit spikes
	Active RewireStates = iota

	// Inactive synapses have been eliminated and wait for creation
	Inactive

	RewireStatesN
)

// RewireState is the structural state of one synapse
type RewireState struct {
	State RewireStates

	// time of the next scheduled elimination check or creation, msec
	Next float64

	// eliminations since init
	NElim int

	// creations since init
	NCreate int
}

func (rs *RewireState) Init(rp *RewireParams) {
	rs.State = Active
	if rp.StartInactive {
		rs.State = Inactive
	}
	rs.Next = 0
	rs.NElim = 0
	rs.NCreate = 0
}

// ElimProb returns the elimination rate per day at normalized weight w:
// PElim0 * exp(-a^2 w^2), with a chosen so that ElimProb(1) = PElim1.
func (rp *RewireParams) ElimProb(w float64) float64 {
	a2 := -math.Log(rp.PElim1 / rp.PElim0)
	return rp.PElim0 * math.Exp(-a2*w*w)
}

// RenewalInterval returns an exponential interval in msec for a rate per day,
// from a uniform draw u.
func RenewalInterval(u, ratePerDay float64) float64 {
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	}
	return -math.Log(u) * MsecPerDay / ratePerDay
}

// scheduleElim draws the next elimination check at the maximal rate PElim0
func (sy *Glu) scheduleElim(t float64, sc Scheduler) {
	iv := RenewalInterval(sy.Rand.Float64(), sy.Params.Rewire.PElim0)
	sy.Rewire.Next = t + iv
	sy.send(Event{Time: sy.Rewire.Next, Flag: FlagElim, Conn: -1}, sc)
}

func (sy *Glu) scheduleCreate(t float64, sc Scheduler) {
	iv := RenewalInterval(sy.Rand.Float64(), sy.Params.Rewire.PGen)
	sy.Rewire.Next = t + iv
	sy.send(Event{Time: sy.Rewire.Next, Flag: FlagCreate, Conn: -1}, sc)
}

// NormWeight returns the AMPA conductance normalized into the [depressed, potentiated] range
func (sy *Glu) NormWeight() float64 {
	return sy.Params.GmaxAMPA.Norm(sy.GmaxAMPA)
}

// elimCheck thins the PElim0 renewal process down to the weight-dependent
// rate: the synapse is eliminated with probability ElimProb(w) / PElim0.
func (sy *Glu) elimCheck(t float64, sc Scheduler) {
	rp := &sy.Params.Rewire
	if sy.Rewire.State != Active {
		return
	}
	w := sy.NormWeight()
	pacc := rp.ElimProb(w) / rp.PElim0
	if sy.Rand.Float64() < pacc {
		sy.Rewire.State = Inactive
		sy.Rewire.NElim++
		sy.logEvent(1, "eliminated", zap.Float64("t", t), zap.Float64("w", w))
		sy.scheduleCreate(t, sc)
		return
	}
	sy.scheduleElim(t, sc)
}

// create re-activates the synapse with fresh plastic and release state
func (sy *Glu) create(t float64, sc Scheduler) {
	p := sy.Params
	if sy.Rewire.State != Inactive {
		return
	}
	sy.AMPA.Init()
	sy.NMDA.Init()
	sy.Pool.Init(t, &p.Rel)
	sy.initPlastic()
	sy.Rewire.State = Active
	sy.Rewire.NCreate++
	sy.logEvent(1, "created", zap.Float64("t", t))
	sy.scheduleElim(t, sc)
}
