// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package srand provides the per-synapse uniform random streams consumed by the
release and rewiring processes. A stream is chosen once at construction:

  - Philox: counter-based Philox2x32 (the Random123 family), keyed by synapse id,
    so each synapse owns an independent, position-addressable sequence.
  - Sys: the legacy sequential generator (math/rand via erand), seeded per synapse.
  - Script: a fixed list of draws, for tests and reference traces.

All streams record their sequence position in a State, from which an identical
stream can be rebuilt with New.
*/
package srand

//go:generate stringer -type=StreamTypes

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// Stream supplies uniform draws in [0,1)
type Stream interface {
	Float64() float64

	// State returns the information needed to rebuild the stream at its current position
	State() State
}

// StreamTypes are the available stream strategies
type StreamTypes int32

var KiT_StreamTypes = kit.Enums.AddEnum(StreamTypesN, kit.NotBitFlag, nil)

func (ev StreamTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *StreamTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Philox is the counter-based Philox2x32 generator
	Philox StreamTypes = iota

	// Sys is the sequential system generator
	Sys

	// Scripted replays a fixed list of draws
	Scripted

	StreamTypesN
)

// State is a serializable stream position
type State struct {
	Type StreamTypes

	// Key is the Philox key, or the Sys seed
	Key int64

	// Stream is the Philox stream id (high word of the counter)
	Stream uint32

	// Draws is the number of draws taken so far
	Draws uint64

	// Script holds the draws of a Scripted stream
	Script []float64 `msgpack:",omitempty"`
}

// New returns a stream rebuilt from the given state, positioned
// after State.Draws draws.
func New(st State) (Stream, error) {
	switch st.Type {
	case Philox:
		ps := NewPhilox(uint32(st.Key), st.Stream)
		ps.Seek(st.Draws)
		return ps, nil
	case Sys:
		ss := NewSys(st.Key)
		for i := uint64(0); i < st.Draws; i++ {
			ss.Float64()
		}
		return ss, nil
	case Scripted:
		sc := NewScript(st.Script...)
		sc.pos = st.Draws
		return sc, nil
	}
	return nil, fmt.Errorf("srand.New: stream type %v not valid", st.Type)
}
