// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/emer/synmech/syn"
	"github.com/vmihailenco/msgpack/v5"
)

// Checkpoint file format
const (
	MagicBytes    = "SYNM"
	FormatVersion = 1
)

// Header precedes the msgpack payload of a checkpoint file
type Header struct {
	Magic   [4]byte
	Version uint16
	NSyn    uint32
}

// State is the engine state saved in a checkpoint. Pending holds every queued
// item in queue order, so that ties between equal times resolve as in the
// uninterrupted run.
type State struct {
	Time      float64
	Step      int
	StepTot   int
	Delivered float64
	Synapses  []*syn.Checkpoint
	Pending   []Item
}

// SaveCheckpoint writes the state of all local synapses and pending spike deliveries
func (en *Engine) SaveCheckpoint(w io.Writer) error {
	st := &State{Time: en.Time.Time, Step: en.Time.Step, StepTot: en.Time.StepTot, Delivered: en.delivered}
	for i := en.RankSt; i < en.RankEd; i++ {
		st.Synapses = append(st.Synapses, en.Synapses[i].Checkpoint())
	}
	st.Pending = en.queue.Items()
	hdr := Header{Version: FormatVersion, NSyn: uint32(len(st.Synapses))}
	copy(hdr.Magic[:], MagicBytes)
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(st)
}

// LoadCheckpoint restores a state written by SaveCheckpoint into an engine built
// with the same synapses, connections and sources as the saved one. Sources must
// be in their freshly-built state: they are replayed up to the saved time.
func (en *Engine) LoadCheckpoint(r io.Reader) error {
	var hdr Header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	if string(hdr.Magic[:]) != MagicBytes {
		return errors.New("sim.LoadCheckpoint: invalid magic bytes")
	}
	if hdr.Version != FormatVersion {
		return fmt.Errorf("sim.LoadCheckpoint: unsupported version %d", hdr.Version)
	}
	st := &State{}
	if err := msgpack.NewDecoder(r).Decode(st); err != nil {
		return err
	}
	en.Partition()
	if len(st.Synapses) != en.RankEd-en.RankSt || int(hdr.NSyn) != len(st.Synapses) {
		return fmt.Errorf("sim.LoadCheckpoint: %d synapses saved, %d local", len(st.Synapses), en.RankEd-en.RankSt)
	}
	en.queue.Reset()
	en.Time.T0 = st.Time - float64(st.Step)*en.Time.Dt
	en.Time.Time = st.Time
	en.Time.Step = st.Step
	en.Time.StepTot = st.StepTot
	en.delivered = st.Delivered
	// in-flight self-events are already in Pending
	discard := syn.SchedFunc(func(ev syn.Event) {})
	for i, ck := range st.Synapses {
		si := en.RankSt + i
		en.outbox[si] = en.outbox[si][:0]
		if err := en.Synapses[si].Restore(ck, discard); err != nil {
			return err
		}
	}
	for _, it := range st.Pending {
		en.queue.Push(it)
	}
	// advance sources past the spikes already fired; the next one is in Pending
	for _, src := range en.Sources {
		src.Init()
		for {
			tm, ok := src.Next()
			if !ok || tm > en.delivered+1.0e-9 {
				break
			}
		}
	}
	return nil
}
