// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// ConnTypes are the kinds of incoming connection
type ConnTypes int32

//go:generate stringer -type=ConnTypes

var KiT_ConnTypes = kit.Enums.AddEnum(ConnTypesN, kit.NotBitFlag, nil)

func (ev ConnTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ConnTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Presyn is a connection from a presynaptic cell. Only Presyn
	// connections take delayed weight changes.
	Presyn ConnTypes = iota

	// Mini is a spontaneous release source
	Mini

	// Replay delivers a recorded spike train
	Replay

	ConnTypesN
)

// DelayVecs are the delayed weight changes of a connection: at Times[i]
// msec after init, the connection weight becomes Conductance * Weights[i].
// Entries are applied in order, and at most min(len(Times), len(Weights)) of them.
type DelayVecs struct {
	Times   []float64
	Weights []float64
}

// N returns the number of applicable entries
func (dv *DelayVecs) N() int {
	return min(len(dv.Times), len(dv.Weights))
}

func (dv *DelayVecs) Validate() error {
	for i, tm := range dv.Times {
		if tm < 0 {
			return fmt.Errorf("syn.DelayVecs: Times[%d] must be >= 0, is: %g", i, tm)
		}
		if i > 0 && tm < dv.Times[i-1] {
			return fmt.Errorf("syn.DelayVecs: Times must be non-decreasing, Times[%d] = %g < %g", i, tm, dv.Times[i-1])
		}
	}
	return nil
}

// Conn is one incoming connection of a synapse instance.
// Weight is mutable through delayed weight changes.
type Conn struct {

	// current weight
	Weight float64

	// kind of connection
	Type ConnTypes

	// optional delayed weight changes, shared read-only
	Delays *DelayVecs `msgpack:"-"`

	// index of the next delayed weight change to apply
	NextDelay int
}

// ConnState is the mutable part of a Conn, for checkpoints
type ConnState struct {
	Weight    float64
	NextDelay int
}
