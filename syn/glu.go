// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"github.com/emer/synmech/chans"
	"github.com/emer/synmech/plast"
	"github.com/emer/synmech/release"
	"github.com/emer/synmech/srand"
	"go.uber.org/zap"
)

// Glu is a glutamatergic AMPA + NMDA synapse with stochastic vesicle release,
// spine calcium and calcium-based plasticity. See GluParams for the variants.
type Glu struct {
	Base

	// shared parameters
	Params *GluParams `view:"-"`

	// shared constants
	Glob *Globals `view:"-"`

	// AMPA receptor state
	AMPA chans.DualExp

	// NMDA receptor state
	NMDA chans.DualExp

	// release sites
	Pool release.Pool

	// spine calcium
	Ca plast.Calcium

	// calcium channel gates
	VDCC chans.VDCC

	// efficacies: [0] is the single side, or pre; [1] is post
	Sides [2]plast.Side

	// plastic utilization of synaptic efficacy
	UseGB float64

	// plastic AMPA conductance, nS
	GmaxAMPA float64

	// structural state
	Rewire RewireState

	// effcai threshold watches, 4 per side
	Watches []plast.Watch `view:"-"`

	// membrane potential at the last step, mV
	V float64

	// vesicles released by the last spike
	Released int

	// processed spikes since init
	NSpikes int

	// released vesicles since init
	NReleased int
}

// NewGlu returns a new Glu synapse using given parameters and random stream.
// gp and gl are not copied and must not change during a run.
func NewGlu(id int, gp *GluParams, gl *Globals, rs srand.Stream) (*Glu, error) {
	if err := gp.Validate(); err != nil {
		return nil, err
	}
	sy := &Glu{Params: gp, Glob: gl}
	sy.initBase(id, gp.Verbose, gp.Conductance, rs)
	ns := gp.NSides()
	sy.Watches = make([]plast.Watch, 0, ns*plast.WatchesPerSide)
	for s := 0; s < ns; s++ {
		ws := plast.SideWatches(sy.SideParams(s), int(FlagWatch)+s*plast.WatchesPerSide)
		sy.Watches = append(sy.Watches, ws[:]...)
	}
	return sy, nil
}

// SideParams returns the parameters of side s
func (sy *Glu) SideParams(s int) *plast.SideParams {
	if s == 0 {
		return &sy.Params.Pre
	}
	return &sy.Params.Post
}

// useSide is the side whose rho drives UseGB
func (sy *Glu) useSide() int { return 0 }

// gmaxSide is the side whose rho drives GmaxAMPA
func (sy *Glu) gmaxSide() int { return sy.Params.NSides() - 1 }

// Use returns the effective utilization: UseGB with plasticity, the static Use otherwise
func (sy *Glu) Use() float64 {
	if sy.Params.EnablePlasticity {
		return sy.UseGB
	}
	return sy.Params.Rel.Use
}

func (sy *Glu) Init(t0 float64, sc Scheduler) error {
	p := sy.Params
	sy.resetEvents(t0)
	sy.V = sy.Glob.VInit
	sy.AMPA.Init()
	sy.NMDA.Init()
	sy.Pool.Init(t0, &p.Rel)
	sy.Ca.Init(&p.Ca)
	sy.VDCC.Init(sy.V, &p.VDCC)
	sy.initPlastic()
	sy.Rewire.Init(&p.Rewire)
	for i := range sy.Watches {
		sy.Watches[i].Armed = false
		sy.Watches[i].Cond = false
	}
	sy.Released = 0
	sy.NSpikes = 0
	sy.NReleased = 0
	sy.send(Event{Time: t0, Flag: FlagInit, Conn: -1}, sc)
	return sy.drain(sc, sy.handle)
}

// initPlastic resets the efficacies and the variables they drive
func (sy *Glu) initPlastic() {
	p := sy.Params
	for s := 0; s < p.NSides(); s++ {
		sy.Sides[s].Init(sy.SideParams(s))
	}
	sy.UseGB = p.UseGB.Target(sy.Sides[sy.useSide()].Rho)
	sy.GmaxAMPA = p.GmaxAMPA.Target(sy.Sides[sy.gmaxSide()].Rho)
}

func (sy *Glu) HandleEvent(ev Event, sc Scheduler) error {
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

// handle dispatches one event by flag
func (sy *Glu) handle(ev Event, sc Scheduler) error {
	p := sy.Params
	rewire := p.EnableRewiring && !p.TM
	switch {
	case ev.Flag == FlagSpike:
		return sy.spike(ev)
	case ev.Flag == FlagInit:
		sy.onInit(ev.Time, sc)
	case ev.Flag == FlagDelay:
		sy.applyDelay(ev)
	case ev.Flag == FlagRestart:
		sy.onRestart(sc)
	case ev.Flag == FlagElim && rewire:
		sy.elimCheck(ev.Time, sc)
	case ev.Flag == FlagCreate && rewire:
		sy.create(ev.Time, sc)
	case ev.Flag >= FlagWatch && int(ev.Flag-FlagWatch) < len(sy.Watches):
		off := int(ev.Flag - FlagWatch)
		sd := &sy.Sides[off/plast.WatchesPerSide]
		sd.Apply(off % plast.WatchesPerSide)
		sy.logEvent(2, "plasticity drive", zap.Float64("t", ev.Time), zap.Stringer("flag", ev.Flag),
			zap.Float64("effcai", sy.Ca.EffCai), zap.Bool("dep", sd.Dep), zap.Bool("pot", sd.Pot))
	default:
		sy.logEvent(1, "unhandled event", zap.Float64("t", ev.Time), zap.Stringer("flag", ev.Flag))
	}
	return nil
}

func (sy *Glu) onInit(t float64, sc Scheduler) {
	p := sy.Params
	if p.EnablePlasticity {
		for i := range sy.Watches {
			sy.Watches[i].Arm(sy.Ca.EffCai)
		}
	}
	sy.scheduleDelays(t, sc)
	if p.EnableRewiring && !p.TM {
		if sy.Rewire.State == Active {
			sy.scheduleElim(t, sc)
		} else {
			sy.scheduleCreate(t, sc)
		}
	}
}

func (sy *Glu) onRestart(sc Scheduler) {
	if sy.Params.EnablePlasticity {
		for i := range sy.Watches {
			sy.Watches[i].Arm(sy.Ca.EffCai)
		}
	}
	sy.resend(sc)
	sy.logEvent(1, "restart", zap.Float64("t", sy.Now), zap.Int("inFlight", len(sy.inFlight)))
}

// spike processes a presynaptic spike: release, then conductance impulses
// scaled by the released fraction of the pool.
func (sy *Glu) spike(ev Event) error {
	p := sy.Params
	cn, ok, err := sy.checkSpike(ev, sy.Pool.Tsyn)
	if err != nil || !ok {
		return err
	}
	if sy.Rewire.State == Inactive {
		sy.logEvent(2, "spike on inactive synapse", zap.Float64("t", ev.Time))
		return nil
	}
	rel := sy.Pool.OnSpike(sy.Rand, ev.Time, sy.Use(), cn.Type == Mini, &p.Rel)
	sy.Released = rel
	sy.NSpikes++
	sy.NReleased += rel
	if rel > 0 {
		amt := cn.Weight * float64(rel) / float64(p.Rel.Nrrp)
		sy.AMPA.Bump(amt, &p.AMPA)
		sy.NMDA.Bump(amt*p.NMDARatio, &p.NMDA)
	}
	sy.logEvent(1, "spike", zap.Float64("t", ev.Time), zap.Int("conn", ev.Conn), zap.Int("released", rel),
		zap.Int("occupied", sy.Pool.Occupied), zap.Float64("u", sy.Pool.U))
	return nil
}

// Step integrates the receptor, calcium and plasticity state over dt at v,
// then fires any effcai threshold watches crossed during the step.
func (sy *Glu) Step(t, dt, v float64, sc Scheduler) error {
	p := sy.Params
	sy.V = v
	ica := p.Ca.CaFracNMDA*sy.INMDA(v) + sy.IVDCC(v)
	sy.VDCC.Step(dt, v, &p.VDCC)
	e0 := sy.Ca.EffCai
	sy.Ca.Step(dt, ica, &p.Ca)
	if p.EnablePlasticity {
		for s := 0; s < p.NSides(); s++ {
			sy.Sides[s].Step(dt, sy.SideParams(s))
		}
		sy.UseGB = p.UseGB.Step(sy.UseGB, sy.Sides[sy.useSide()].Rho, dt)
		sy.GmaxAMPA = p.GmaxAMPA.Step(sy.GmaxAMPA, sy.Sides[sy.gmaxSide()].Rho, dt)
	}
	sy.AMPA.Decay(dt, &p.AMPA)
	sy.NMDA.Decay(dt, &p.NMDA)

	sy.Now = t + dt
	e1 := sy.Ca.EffCai
	for i := range sy.Watches {
		w := &sy.Watches[i]
		if w.Check(e1) {
			sy.send(Event{Time: w.CrossTime(t, t+dt, e0, e1), Flag: EventFlags(w.Flag), Conn: -1}, sc)
		}
	}
	return sy.drain(sc, sy.handle)
}

// GAMPA returns the AMPA conductance in uS
func (sy *Glu) GAMPA() float64 {
	return 1e-3 * sy.GmaxAMPA * sy.AMPA.G()
}

// GNMDA returns the NMDA conductance in uS at v, including the Mg block
func (sy *Glu) GNMDA(v float64) float64 {
	return 1e-3 * sy.Params.GmaxNMDA * sy.NMDA.G() * sy.Glob.MgBlock.Gate(v)
}

func (sy *Glu) IAMPA(v float64) float64 {
	return sy.GAMPA() * (v - sy.Glob.Erev.AMPA)
}

func (sy *Glu) INMDA(v float64) float64 {
	return sy.GNMDA(v) * (v - sy.Glob.Erev.NMDA)
}

// IVDCC returns the calcium channel current in nA
func (sy *Glu) IVDCC(v float64) float64 {
	return sy.VDCC.ICa(v, sy.Ca.Cai, sy.Glob.Celsius, &sy.Params.VDCC)
}

func (sy *Glu) current(v float64) float64 {
	return sy.IAMPA(v) + sy.INMDA(v) + sy.IVDCC(v)
}

func (sy *Glu) Current(v float64) (i, didv float64) {
	i = sy.current(v)
	dv := sy.Glob.DV
	didv = (sy.current(v+dv) - i) / dv
	return
}
