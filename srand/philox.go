// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srand

import (
	"github.com/emer/gosl/v2/slrand"
	"github.com/emer/gosl/v2/sltype"
)

// PhiloxStream is a Philox2x32 stream. The key identifies the owner
// (synapse id) and the high word of the counter selects one of many
// independent streams per key; the low word is the sequence position,
// giving 2^32 draws per stream.
type PhiloxStream struct {
	Key     uint32
	Counter sltype.Uint2
	stream  uint32
	draws   uint64
}

// NewPhilox returns a new stream for given key and stream id
func NewPhilox(key, stream uint32) *PhiloxStream {
	ps := &PhiloxStream{Key: key, stream: stream}
	ps.Counter.Y = stream
	return ps
}

// Float64 returns a uniform draw in [0,1) with 53 bits of precision,
// built from both 32 bit words of one Philox block.
func (ps *PhiloxStream) Float64() float64 {
	r := slrand.Philox2x32(ps.Counter, ps.Key)
	slrand.CounterIncr(&ps.Counter)
	ps.draws++
	bits := (uint64(r.X)<<32 | uint64(r.Y)) >> 11
	return float64(bits) / (1 << 53)
}

// Seek positions the stream after n draws
func (ps *PhiloxStream) Seek(n uint64) {
	ps.Counter.X = uint32(n)
	ps.Counter.Y = ps.stream + uint32(n>>32)
	ps.draws = n
}

func (ps *PhiloxStream) State() State {
	return State{Type: Philox, Key: int64(ps.Key), Stream: ps.stream, Draws: ps.draws}
}
