// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srand

// ScriptStream replays a fixed list of draws, wrapping around at the end.
// An empty script always returns 0.
type ScriptStream struct {
	Draws []float64
	pos   uint64
}

// NewScript returns a stream that replays the given draws
func NewScript(draws ...float64) *ScriptStream {
	return &ScriptStream{Draws: draws}
}

func (sc *ScriptStream) Float64() float64 {
	n := uint64(len(sc.Draws))
	sc.pos++
	if n == 0 {
		return 0
	}
	return sc.Draws[(sc.pos-1)%n]
}

// N returns the number of draws taken so far
func (sc *ScriptStream) N() uint64 {
	return sc.pos
}

func (sc *ScriptStream) State() State {
	return State{Type: Scripted, Draws: sc.pos, Script: sc.Draws}
}
