// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"github.com/emer/synmech/srand"
	"go.uber.org/zap"
)

// Mechanism is a synapse instance driven by a host simulator
type Mechanism interface {
	// ID returns the synapse id used in diagnostics and checkpoints
	ID() int

	// AddConn adds an incoming connection and returns its index,
	// which spike events must carry in Event.Conn
	AddConn(cn Conn) int

	// ConnByIndex returns the connection at given index
	ConnByIndex(idx int) *Conn

	// Init resets all state to initial values at time t0 and processes
	// the init event, scheduling any later self-events with sc.
	Init(t0 float64, sc Scheduler) error

	// HandleEvent processes one event delivered at ev.Time
	HandleEvent(ev Event, sc Scheduler) error

	// Step integrates continuous state from t to t+dt at membrane potential v
	Step(t, dt, v float64, sc Scheduler) error

	// Current returns the total synaptic current (nA, outward positive)
	// at membrane potential v, and its slope di/dv
	Current(v float64) (i, didv float64)

	// Checkpoint returns a snapshot of the full instance state
	Checkpoint() *Checkpoint

	// Restore sets the instance state from a snapshot and re-schedules
	// its in-flight self-events with sc
	Restore(ck *Checkpoint, sc Scheduler) error

	// VarByName returns the value of a named state variable
	VarByName(varNm string) (float64, error)

	// VarNames returns the names of the state variables
	VarNames() []string
}

// Base holds the state common to all mechanisms: identity, connections,
// random stream, diagnostics, and the self-event bookkeeping.
type Base struct {

	// synapse id, for diagnostics
	SynapseID int

	// diagnostics level: 0 = none, 1 = events, 2 = events + details
	Verbose int

	// scale applied to delayed weight changes
	Conductance float64

	// incoming connections
	Conns []Conn

	// time of the most recent event or step end, msec
	Now float64

	// per-instance random stream
	Rand srand.Stream `view:"-"`

	// diagnostic logger; no-op unless SetLogger is called
	Log *zap.Logger `view:"-"`

	// same-tick self-events
	fifo eventFIFO

	// self-events handed to the host and not yet delivered
	inFlight []Event
}

func (bs *Base) ID() int { return bs.SynapseID }

func (bs *Base) AddConn(cn Conn) int {
	bs.Conns = append(bs.Conns, cn)
	return len(bs.Conns) - 1
}

func (bs *Base) ConnByIndex(idx int) *Conn {
	return &bs.Conns[idx]
}

// SetLogger sets the diagnostics logger, tagging every entry with the synapse id
func (bs *Base) SetLogger(lg *zap.Logger) {
	if lg == nil {
		lg = zap.NewNop()
	}
	bs.Log = lg.With(zap.Int("synapseID", bs.SynapseID))
}

func (bs *Base) initBase(id int, verbose int, conductance float64, rs srand.Stream) {
	bs.SynapseID = id
	bs.Verbose = verbose
	bs.Conductance = conductance
	bs.Rand = rs
	if bs.Log == nil {
		bs.SetLogger(nil)
	}
}

// logEvent emits a diagnostic if Verbose >= level
func (bs *Base) logEvent(level int, msg string, fields ...zap.Field) {
	if bs.Verbose < level {
		return
	}
	if level > 1 {
		bs.Log.Debug(msg, fields...)
		return
	}
	bs.Log.Info(msg, fields...)
}

// resetEvents clears all pending self-events
func (bs *Base) resetEvents(t0 float64) {
	bs.fifo = eventFIFO{}
	bs.inFlight = bs.inFlight[:0]
	bs.Now = t0
}

// send schedules a self-event: events at or before Now go into the FIFO,
// later ones to the host.
func (bs *Base) send(ev Event, sc Scheduler) {
	if ev.Time <= bs.Now || sc == nil {
		bs.fifo.push(ev)
		return
	}
	bs.inFlight = append(bs.inFlight, ev)
	sc.Send(ev)
}

// delivered removes ev from the in-flight list, if present
func (bs *Base) delivered(ev Event) {
	for i, fe := range bs.inFlight {
		if fe == ev {
			bs.inFlight = append(bs.inFlight[:i], bs.inFlight[i+1:]...)
			return
		}
	}
}

// drain handles FIFO events until it is empty
func (bs *Base) drain(sc Scheduler, handle func(ev Event, sc Scheduler) error) error {
	for {
		ev, ok := bs.fifo.pop()
		if !ok {
			return nil
		}
		if err := handle(ev, sc); err != nil {
			return err
		}
	}
}

// resend hands all recorded in-flight self-events to sc again, used after a restore
func (bs *Base) resend(sc Scheduler) {
	if sc == nil {
		return
	}
	for _, ev := range bs.inFlight {
		sc.Send(ev)
	}
}

// scheduleDelays schedules the delayed weight changes of all Presyn connections
func (bs *Base) scheduleDelays(t0 float64, sc Scheduler) {
	for ci := range bs.Conns {
		cn := &bs.Conns[ci]
		cn.NextDelay = 0
		if cn.Type != Presyn || cn.Delays == nil {
			continue
		}
		n := cn.Delays.N()
		for i := 0; i < n; i++ {
			bs.send(Event{Time: t0 + cn.Delays.Times[i], Flag: FlagDelay, Conn: ci}, sc)
		}
	}
}

// applyDelay applies the next delayed weight change of connection ev.Conn.
// Beyond the end of the vectors it does nothing.
func (bs *Base) applyDelay(ev Event) {
	if ev.Conn < 0 || ev.Conn >= len(bs.Conns) {
		return
	}
	cn := &bs.Conns[ev.Conn]
	if cn.Delays == nil || cn.NextDelay >= cn.Delays.N() {
		bs.logEvent(1, "delay index past end of vectors", zap.Int("conn", ev.Conn), zap.Int("next", cn.NextDelay))
		return
	}
	cn.Weight = bs.Conductance * cn.Delays.Weights[cn.NextDelay]
	cn.NextDelay++
	bs.logEvent(1, "delayed weight change", zap.Float64("t", ev.Time), zap.Int("conn", ev.Conn), zap.Float64("weight", cn.Weight))
}

// checkSpike returns ok = false for events that must be ignored (non-positive
// weight or negative time) and a CausalityError for events arriving before tsyn.
func (bs *Base) checkSpike(ev Event, tsyn float64) (cn *Conn, ok bool, err error) {
	if ev.Conn < 0 || ev.Conn >= len(bs.Conns) {
		return nil, false, nil
	}
	cn = &bs.Conns[ev.Conn]
	if !(cn.Weight > 0) || ev.Time < 0 {
		bs.logEvent(1, "spike ignored", zap.Float64("t", ev.Time), zap.Float64("weight", cn.Weight))
		return cn, false, nil
	}
	if ev.Time < tsyn {
		return cn, false, &CausalityError{SynapseID: bs.SynapseID, Time: ev.Time, Tsyn: tsyn}
	}
	return cn, true, nil
}

func (bs *Base) connStates() []ConnState {
	cs := make([]ConnState, len(bs.Conns))
	for i := range bs.Conns {
		cs[i] = ConnState{Weight: bs.Conns[i].Weight, NextDelay: bs.Conns[i].NextDelay}
	}
	return cs
}

func (bs *Base) restoreBase(ck *Checkpoint) error {
	if len(ck.Conns) != len(bs.Conns) {
		return &RestoreError{SynapseID: bs.SynapseID, Msg: "number of connections differs"}
	}
	for i := range bs.Conns {
		bs.Conns[i].Weight = ck.Conns[i].Weight
		bs.Conns[i].NextDelay = ck.Conns[i].NextDelay
	}
	rs, err := srand.New(ck.Rand)
	if err != nil {
		return err
	}
	bs.Rand = rs
	bs.fifo = eventFIFO{}
	bs.inFlight = append([]Event(nil), ck.InFlight...)
	bs.Now = ck.Time
	return nil
}
