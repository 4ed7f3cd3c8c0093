// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/empi/v2/mpi"
	"github.com/emer/synmech/report"
	"github.com/emer/synmech/syn"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is a spike generator, e.g., netstim.Poisson or netstim.Vec
type Source interface {
	Init()

	// Next returns successive spike times, false when done
	Next() (float64, bool)
}

// NetCon connects a source to one connection of a synapse
type NetCon struct {
	Syn   int
	Conn  int
	Delay float64
}

// Engine is a fixed-step host for a population of synapses: it owns the
// global event queue, the spike sources and their connections, and the
// membrane potential seen by each synapse.
type Engine struct {

	// timing
	Time Time

	// shared constants
	Glob *syn.Globals

	// synapse instances
	Synapses []syn.Mechanism

	// membrane potential per synapse
	Volts []VoltageSource

	// spike sources
	Sources []Source

	// connections from each source
	SrcCons [][]NetCon

	// number of goroutines for stepping synapses; 0 = GOMAXPROCS
	NThreads int

	// reports sampled after every step
	Reports *report.Registry

	// diagnostics
	Log *zap.Logger `view:"-"`

	// first and last+1 synapse simulated by this rank
	RankSt, RankEd int

	queue Queue

	// time of the last delivery phase, for checkpoints
	delivered float64

	direct []syn.Scheduler
	buffer []syn.Scheduler
	outbox [][]syn.Event
}

// NewEngine returns an engine with default time step and globals; lg may be nil
func NewEngine(gl *syn.Globals, lg *zap.Logger) *Engine {
	if gl == nil {
		gl = syn.NewGlobals()
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	en := &Engine{Glob: gl, Log: lg}
	en.Time.Defaults()
	en.Reports = report.NewRegistry(lg)
	return en
}

// directSched pushes self-events straight onto the queue
type directSched struct {
	en  *Engine
	idx int
}

func (ds *directSched) Send(ev syn.Event) {
	ds.en.queue.Push(Item{Time: ev.Time, Kind: ItemDeliver, Target: ds.idx, Ev: ev})
}

// bufferSched collects self-events during the parallel step
type bufferSched struct {
	en  *Engine
	idx int
}

func (bs *bufferSched) Send(ev syn.Event) {
	bs.en.outbox[bs.idx] = append(bs.en.outbox[bs.idx], ev)
}

// AddSynapse adds a synapse, driven by a membrane potential clamped at Glob.VInit
// until SetVoltage is called, and returns its index
func (en *Engine) AddSynapse(sy syn.Mechanism) int {
	idx := len(en.Synapses)
	en.Synapses = append(en.Synapses, sy)
	en.Volts = append(en.Volts, Clamp(en.Glob.VInit))
	en.direct = append(en.direct, &directSched{en: en, idx: idx})
	en.buffer = append(en.buffer, &bufferSched{en: en, idx: idx})
	en.outbox = append(en.outbox, nil)
	return idx
}

// SetVoltage sets the membrane potential source of synapse idx
func (en *Engine) SetVoltage(idx int, vs VoltageSource) {
	en.Volts[idx] = vs
}

// AddSource adds a spike source and returns its index
func (en *Engine) AddSource(src Source) int {
	en.Sources = append(en.Sources, src)
	en.SrcCons = append(en.SrcCons, nil)
	return len(en.Sources) - 1
}

// Connect connects source src to synapse sy with given weight and delay.
// The delay must be at least one time step.
func (en *Engine) Connect(src, sy int, weight, delay float64, ct syn.ConnTypes, dv *syn.DelayVecs) (int, error) {
	if src < 0 || src >= len(en.Sources) {
		return -1, fmt.Errorf("sim.Connect: source index %d out of range", src)
	}
	if sy < 0 || sy >= len(en.Synapses) {
		return -1, fmt.Errorf("sim.Connect: synapse index %d out of range", sy)
	}
	if delay < en.Time.Dt {
		return -1, fmt.Errorf("sim.Connect: delay %g must be >= dt %g", delay, en.Time.Dt)
	}
	if dv != nil {
		if err := dv.Validate(); err != nil {
			return -1, err
		}
	}
	ci := en.Synapses[sy].AddConn(syn.Conn{Weight: weight, Type: ct, Delays: dv})
	en.SrcCons[src] = append(en.SrcCons[src], NetCon{Syn: sy, Conn: ci, Delay: delay})
	return ci, nil
}

// Deliver queues an event for synapse sy, e.g., a replayed spike
func (en *Engine) Deliver(sy int, ev syn.Event) {
	en.queue.Push(Item{Time: ev.Time, Kind: ItemDeliver, Target: sy, Ev: ev})
}

// Pending returns the number of queued events
func (en *Engine) Pending() int {
	return en.queue.Len()
}

// Partition sets RankSt, RankEd to this rank's share of the synapses
func (en *Engine) Partition() {
	en.RankSt, en.RankEd = PartitionRange(len(en.Synapses), mpi.WorldRank(), mpi.WorldSize())
}

// PartitionRange returns the contiguous block of n items owned by rank out of size ranks
func PartitionRange(n, rank, size int) (st, ed int) {
	if size < 1 {
		size = 1
	}
	per := n / size
	rem := n % size
	st = rank*per + min(rank, rem)
	ed = st + per
	if rank < rem {
		ed++
	}
	return
}

func (en *Engine) local(sy int) bool {
	return sy >= en.RankSt && sy < en.RankEd
}

// Init resets time and the queue, initializes all local synapses, sources and reports,
// and records the initial report samples.
func (en *Engine) Init(t0 float64) error {
	en.Time.Reset(t0)
	en.queue.Reset()
	en.delivered = t0 - en.Time.Dt
	en.Partition()
	for i := en.RankSt; i < en.RankEd; i++ {
		en.outbox[i] = en.outbox[i][:0]
		if err := en.Synapses[i].Init(t0, en.direct[i]); err != nil {
			return fmt.Errorf("sim.Init: synapse %d: %w", en.Synapses[i].ID(), err)
		}
	}
	for si, src := range en.Sources {
		src.Init()
		en.scheduleSource(si)
	}
	if err := en.Reports.Init(); err != nil {
		return err
	}
	return en.Reports.Sample(t0)
}

func (en *Engine) scheduleSource(si int) {
	if tm, ok := en.Sources[si].Next(); ok {
		en.queue.Push(Item{Time: tm, Kind: ItemSource, Target: si})
	}
}

// deliverDue handles all queued items due at or before t, in queue order
func (en *Engine) deliverDue(t float64) error {
	for {
		it, ok := en.queue.PopDue(t + 1.0e-9)
		if !ok {
			break
		}
		switch it.Kind {
		case ItemSource:
			for _, nc := range en.SrcCons[it.Target] {
				if !en.local(nc.Syn) {
					continue
				}
				en.Deliver(nc.Syn, syn.Event{Time: it.Time + nc.Delay, Flag: syn.FlagSpike, Conn: nc.Conn})
			}
			en.scheduleSource(it.Target)
		case ItemDeliver:
			if !en.local(it.Target) {
				continue
			}
			sy := en.Synapses[it.Target]
			if err := sy.HandleEvent(it.Ev, en.direct[it.Target]); err != nil {
				return fmt.Errorf("sim: t = %g: %w", t, err)
			}
		}
	}
	en.delivered = t
	return nil
}

// nThreads returns the effective number of goroutines
func (en *Engine) nThreads() int {
	if en.NThreads > 0 {
		return en.NThreads
	}
	return runtime.GOMAXPROCS(0)
}

// stepSynapses advances all local synapses in parallel chunks,
// then merges their self-events into the queue in synapse order.
func (en *Engine) stepSynapses(t float64) error {
	dt := en.Time.Dt
	n := en.RankEd - en.RankSt
	nthr := min(en.nThreads(), max(n, 1))
	var eg errgroup.Group
	for th := 0; th < nthr; th++ {
		st, ed := PartitionRange(n, th, nthr)
		eg.Go(func() error {
			for i := en.RankSt + st; i < en.RankSt+ed; i++ {
				v := en.Volts[i].V(t)
				if err := en.Synapses[i].Step(t, dt, v, en.buffer[i]); err != nil {
					return fmt.Errorf("sim: t = %g: synapse %d: %w", t, en.Synapses[i].ID(), err)
				}
			}
			return nil
		})
	}
	err := eg.Wait()
	for i := en.RankSt; i < en.RankEd; i++ {
		for _, ev := range en.outbox[i] {
			en.direct[i].Send(ev)
		}
		en.outbox[i] = en.outbox[i][:0]
	}
	return err
}

// Step delivers due events, advances all synapses by one time step,
// and samples the reports.
func (en *Engine) Step() error {
	t := en.Time.Time
	if err := en.deliverDue(t); err != nil {
		return err
	}
	if err := en.stepSynapses(t); err != nil {
		return err
	}
	en.Time.StepInc()
	return en.Reports.Sample(en.Time.Time)
}

// Run steps until tstop
func (en *Engine) Run(tstop float64) error {
	n := en.Time.NSteps(tstop)
	for i := 0; i < n; i++ {
		if err := en.Step(); err != nil {
			en.Log.Error("run stopped", zap.Float64("t", en.Time.Time), zap.Error(err))
			return err
		}
	}
	return nil
}

// SizeReport returns a string reporting the number and memory of synapses and queued events
func (en *Engine) SizeReport() string {
	var b strings.Builder
	nglu, ngaba, nconn := 0, 0, 0
	mem := 0
	for _, sy := range en.Synapses {
		switch st := sy.(type) {
		case *syn.Glu:
			nglu++
			mem += int(unsafe.Sizeof(*st)) + len(st.Watches)*int(unsafe.Sizeof(st.Watches[0]))
			nconn += len(st.Conns)
		case *syn.GABAAB:
			ngaba++
			mem += int(unsafe.Sizeof(*st))
			nconn += len(st.Conns)
		}
	}
	mem += nconn * int(unsafe.Sizeof(syn.Conn{}))
	qmem := en.queue.Len() * int(unsafe.Sizeof(Item{}))
	fmt.Fprintf(&b, "%14s:\t Glu: %d\t GABAAB: %d\t Conns: %d\t SynMem: %v\n", "Synapses", nglu, ngaba, nconn, (datasize.ByteSize)(mem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Sources: %d\t Queued: %d\t QueueMem: %v\n", "Events", len(en.Sources), en.queue.Len(), (datasize.ByteSize)(qmem).HumanReadable())
	return b.String()
}
