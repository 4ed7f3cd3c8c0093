// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"github.com/emer/synmech/chans"
	"github.com/emer/synmech/release"
	"github.com/emer/synmech/srand"
	"go.uber.org/zap"
)

// GABAAB is an inhibitory GABA-A + GABA-B synapse. Release is deterministic
// Tsodyks-Markram by default, or stochastic vesicle release with GABAParams.Stochastic.
type GABAAB struct {
	Base

	Params *GABAParams `view:"-"`
	Glob   *Globals    `view:"-"`

	GABAA chans.DualExp
	GABAB chans.DualExp

	// stochastic release state
	Pool release.Pool

	// deterministic release state
	TM release.TM

	// membrane potential at the last step, mV
	V float64

	// release fraction of the last spike
	Released float64

	// processed spikes since init
	NSpikes int
}

// NewGABAAB returns a new GABAAB synapse. rs is only drawn from with stochastic release.
func NewGABAAB(id int, gp *GABAParams, gl *Globals, rs srand.Stream) (*GABAAB, error) {
	if err := gp.Validate(); err != nil {
		return nil, err
	}
	sy := &GABAAB{Params: gp, Glob: gl}
	sy.initBase(id, gp.Verbose, gp.Conductance, rs)
	return sy, nil
}

func (sy *GABAAB) tsyn() float64 {
	if sy.Params.Stochastic {
		return sy.Pool.Tsyn
	}
	return sy.TM.Tsyn
}

func (sy *GABAAB) Init(t0 float64, sc Scheduler) error {
	p := sy.Params
	sy.resetEvents(t0)
	sy.V = sy.Glob.VInit
	sy.GABAA.Init()
	sy.GABAB.Init()
	sy.Pool.Init(t0, &p.Rel)
	sy.TM.Init(t0, &p.Rel)
	sy.Released = 0
	sy.NSpikes = 0
	sy.send(Event{Time: t0, Flag: FlagInit, Conn: -1}, sc)
	return sy.drain(sc, sy.handle)
}

func (sy *GABAAB) HandleEvent(ev Event, sc Scheduler) error {
	if ev.Flag != FlagSpike {
		sy.delivered(ev)
	}
	if ev.Time > sy.Now {
		sy.Now = ev.Time
	}
	if err := sy.handle(ev, sc); err != nil {
		return err
	}
	return sy.drain(sc, sy.handle)
}

func (sy *GABAAB) handle(ev Event, sc Scheduler) error {
	switch ev.Flag {
	case FlagSpike:
		return sy.spike(ev)
	case FlagInit:
		sy.scheduleDelays(ev.Time, sc)
	case FlagDelay:
		sy.applyDelay(ev)
	case FlagRestart:
		sy.resend(sc)
	default:
		sy.logEvent(1, "unhandled event", zap.Float64("t", ev.Time), zap.Stringer("flag", ev.Flag))
	}
	return nil
}

func (sy *GABAAB) spike(ev Event) error {
	p := sy.Params
	cn, ok, err := sy.checkSpike(ev, sy.tsyn())
	if err != nil || !ok {
		return err
	}
	var frac float64
	if p.Stochastic {
		rel := sy.Pool.OnSpike(sy.Rand, ev.Time, p.Rel.Use, cn.Type == Mini, &p.Rel)
		frac = float64(rel) / float64(p.Rel.Nrrp)
	} else {
		frac = sy.TM.OnSpike(ev.Time, p.Rel.Use, &p.Rel)
	}
	sy.Released = frac
	sy.NSpikes++
	if frac > 0 {
		amt := cn.Weight * frac
		sy.GABAA.Bump(amt, &p.GABAA)
		sy.GABAB.Bump(amt*p.GABABRatio, &p.GABAB)
	}
	sy.logEvent(1, "spike", zap.Float64("t", ev.Time), zap.Int("conn", ev.Conn), zap.Float64("released", frac))
	return nil
}

func (sy *GABAAB) Step(t, dt, v float64, sc Scheduler) error {
	p := sy.Params
	sy.V = v
	sy.GABAA.Decay(dt, &p.GABAA)
	sy.GABAB.Decay(dt, &p.GABAB)
	sy.Now = t + dt
	return sy.drain(sc, sy.handle)
}

// GGABAA returns the GABA-A conductance in uS
func (sy *GABAAB) GGABAA() float64 {
	return sy.Params.Gmax * sy.GABAA.G()
}

// GGABAB returns the GABA-B conductance in uS
func (sy *GABAAB) GGABAB() float64 {
	return sy.Params.Gmax * sy.GABAB.G()
}

// Current is linear in v, so didv is the total conductance
func (sy *GABAAB) Current(v float64) (i, didv float64) {
	ga := sy.GGABAA()
	gb := sy.GGABAB()
	i = ga*(v-sy.Glob.Erev.GABAA) + gb*(v-sy.Glob.Erev.GABAB)
	didv = ga + gb
	return
}
