// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"io"

	"github.com/emer/synmech/chans"
	"github.com/emer/synmech/plast"
	"github.com/emer/synmech/release"
	"github.com/emer/synmech/srand"
	"github.com/vmihailenco/msgpack/v5"
)

// Kinds of mechanism recorded in a Checkpoint
const (
	KindGlu    = "Glu"
	KindGABAAB = "GABAAB"
)

// Checkpoint is a snapshot of the full state of one synapse instance,
// including its random stream position and the self-events it has
// handed to the host but not yet received. Fields that do not apply
// to a kind are left zero.
type Checkpoint struct {
	Kind      string
	SynapseID int

	// time of the snapshot, msec
	Time float64

	// membrane potential at the last step
	V float64

	AMPA  chans.DualExp `msgpack:",omitempty"`
	NMDA  chans.DualExp `msgpack:",omitempty"`
	GABAA chans.DualExp `msgpack:",omitempty"`
	GABAB chans.DualExp `msgpack:",omitempty"`

	Pool release.Pool
	TM   release.TM `msgpack:",omitempty"`

	Ca       plast.Calcium `msgpack:",omitempty"`
	VDCC     chans.VDCC    `msgpack:",omitempty"`
	Sides    [2]plast.Side `msgpack:",omitempty"`
	UseGB    float64       `msgpack:",omitempty"`
	GmaxAMPA float64       `msgpack:",omitempty"`
	Rewire   RewireState   `msgpack:",omitempty"`
	Watches  []plast.Watch `msgpack:",omitempty"`

	Conns    []ConnState
	InFlight []Event
	Rand     srand.State

	NSpikes   int
	NReleased int
}

// Encode writes the checkpoint in msgpack format
func (ck *Checkpoint) Encode(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(ck)
}

// DecodeCheckpoint reads a checkpoint written by Encode
func DecodeCheckpoint(r io.Reader) (*Checkpoint, error) {
	ck := &Checkpoint{}
	if err := msgpack.NewDecoder(r).Decode(ck); err != nil {
		return nil, err
	}
	return ck, nil
}

func (bs *Base) baseCheckpoint(kind string) *Checkpoint {
	return &Checkpoint{
		Kind:      kind,
		SynapseID: bs.SynapseID,
		Time:      bs.Now,
		Conns:     bs.connStates(),
		InFlight:  append([]Event(nil), bs.inFlight...),
		Rand:      bs.Rand.State(),
	}
}

func (sy *Glu) Checkpoint() *Checkpoint {
	ck := sy.baseCheckpoint(KindGlu)
	ck.V = sy.V
	ck.AMPA = sy.AMPA
	ck.NMDA = sy.NMDA
	ck.Pool = sy.Pool
	ck.Ca = sy.Ca
	ck.VDCC = sy.VDCC
	ck.Sides = sy.Sides
	ck.UseGB = sy.UseGB
	ck.GmaxAMPA = sy.GmaxAMPA
	ck.Rewire = sy.Rewire
	ck.Watches = append([]plast.Watch(nil), sy.Watches...)
	ck.NSpikes = sy.NSpikes
	ck.NReleased = sy.NReleased
	return ck
}

// Restore sets the state from ck and delivers a restart event, which
// re-arms the effcai watches and re-sends the in-flight self-events to sc.
func (sy *Glu) Restore(ck *Checkpoint, sc Scheduler) error {
	if ck.Kind != KindGlu {
		return &RestoreError{SynapseID: sy.SynapseID, Msg: "checkpoint kind is " + ck.Kind}
	}
	if len(ck.Watches) != len(sy.Watches) {
		return &RestoreError{SynapseID: sy.SynapseID, Msg: "number of watches differs"}
	}
	if err := sy.restoreBase(ck); err != nil {
		return err
	}
	sy.V = ck.V
	sy.AMPA = ck.AMPA
	sy.NMDA = ck.NMDA
	sy.Pool = ck.Pool
	sy.Ca = ck.Ca
	sy.VDCC = ck.VDCC
	sy.Sides = ck.Sides
	sy.UseGB = ck.UseGB
	sy.GmaxAMPA = ck.GmaxAMPA
	sy.Rewire = ck.Rewire
	copy(sy.Watches, ck.Watches)
	sy.NSpikes = ck.NSpikes
	sy.NReleased = ck.NReleased
	sy.send(Event{Time: ck.Time, Flag: FlagRestart, Conn: -1}, sc)
	return sy.drain(sc, sy.handle)
}

func (sy *GABAAB) Checkpoint() *Checkpoint {
	ck := sy.baseCheckpoint(KindGABAAB)
	ck.V = sy.V
	ck.GABAA = sy.GABAA
	ck.GABAB = sy.GABAB
	ck.Pool = sy.Pool
	ck.TM = sy.TM
	ck.NSpikes = sy.NSpikes
	return ck
}

func (sy *GABAAB) Restore(ck *Checkpoint, sc Scheduler) error {
	if ck.Kind != KindGABAAB {
		return &RestoreError{SynapseID: sy.SynapseID, Msg: "checkpoint kind is " + ck.Kind}
	}
	if err := sy.restoreBase(ck); err != nil {
		return err
	}
	sy.V = ck.V
	sy.GABAA = ck.GABAA
	sy.GABAB = ck.GABAB
	sy.Pool = ck.Pool
	sy.TM = ck.TM
	sy.NSpikes = ck.NSpikes
	sy.send(Event{Time: ck.Time, Flag: FlagRestart, Conn: -1}, sc)
	return sy.drain(sc, sy.handle)
}
