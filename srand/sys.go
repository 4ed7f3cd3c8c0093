// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srand

import "github.com/emer/emergent/v2/erand"

// SysStream wraps a seeded system generator, counting draws so that
// the position can be restored by replay.
type SysStream struct {
	Seed  int64
	rnd   *erand.SysRand
	draws uint64
}

// NewSys returns a new sequential stream with given seed
func NewSys(seed int64) *SysStream {
	return &SysStream{Seed: seed, rnd: erand.NewSysRand(seed)}
}

func (ss *SysStream) Float64() float64 {
	ss.draws++
	return ss.rnd.Float64(-1)
}

func (ss *SysStream) State() State {
	return State{Type: Sys, Key: ss.Seed, Draws: ss.draws}
}
