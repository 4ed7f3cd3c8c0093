// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package netstim provides spike sources that drive synapses: Poisson, a
NetStim-style generator with regular, Poisson or mixed intervals, and Vec,
which replays a fixed vector of spike times.
*/
package netstim

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/synmech/srand"
)

// NoiseRange is the valid range of Poisson.Noise
var NoiseRange = minmax.F64{Min: 0, Max: 1}

// Poisson generates Number spikes starting at Start. Intervals have a fixed part
// (1-Noise)*Interval plus an exponential part with mean Noise*Interval, so Noise = 0
// is perfectly regular and Noise = 1 is a Poisson process.
type Poisson struct {

	// mean interval between spikes, msec
	Interval float64 `default:"10"`

	// number of spikes
	Number int `default:"10"`

	// time of the first spike (with Noise = 0), msec; < 0 = off
	Start float64 `default:"50"`

	// fraction of the interval that is random, in [0,1]
	Noise float64 `default:"0" min:"0" max:"1"`

	// random stream for intervals
	Rand srand.Stream `view:"-"`

	// spikes emitted since Init
	NSpikes int `edit:"-"`

	// time of the last emitted spike
	Last float64 `edit:"-"`
}

func (ps *Poisson) Defaults() {
	ps.Interval = 10
	ps.Number = 10
	ps.Start = 50
	ps.Noise = 0
}

func (ps *Poisson) Validate() error {
	if ps.Interval <= 0 {
		return fmt.Errorf("netstim.Poisson: Interval must be > 0, is: %g", ps.Interval)
	}
	if ps.Noise > 0 && ps.Rand == nil {
		return fmt.Errorf("netstim.Poisson: Noise > 0 requires a random stream")
	}
	return nil
}

func (ps *Poisson) Init() {
	ps.Noise = NoiseRange.ClipVal(ps.Noise)
	ps.NSpikes = 0
	ps.Last = 0
}

// interval returns one inter-spike interval
func (ps *Poisson) interval() float64 {
	if ps.Noise == 0 {
		return ps.Interval
	}
	u := ps.Rand.Float64()
	return (1-ps.Noise)*ps.Interval + ps.Noise*ps.Interval*(-math.Log(1-u))
}

// Next returns the next spike time, or false when all Number spikes are done
func (ps *Poisson) Next() (float64, bool) {
	if ps.Start < 0 || ps.NSpikes >= ps.Number {
		return 0, false
	}
	var tm float64
	if ps.NSpikes == 0 {
		tm = math.Max(0, ps.Start+ps.interval()-ps.Interval*(1-ps.Noise))
	} else {
		tm = ps.Last + ps.interval()
	}
	ps.NSpikes++
	ps.Last = tm
	return tm, true
}

// Vec replays a non-decreasing vector of spike times
type Vec struct {
	Times []float64
	idx   int
}

// NewVec returns a Vec for given times, which must be non-decreasing
func NewVec(times ...float64) (*Vec, error) {
	vs := &Vec{Times: times}
	if err := vs.Validate(); err != nil {
		return nil, err
	}
	return vs, nil
}

func (vs *Vec) Validate() error {
	for i := 1; i < len(vs.Times); i++ {
		if vs.Times[i] < vs.Times[i-1] {
			return fmt.Errorf("netstim.Vec: Times must be non-decreasing: Times[%d] = %g < %g", i, vs.Times[i], vs.Times[i-1])
		}
	}
	return nil
}

func (vs *Vec) Init() {
	vs.idx = 0
}

// Next returns the next spike time; negative times are skipped
func (vs *Vec) Next() (float64, bool) {
	for vs.idx < len(vs.Times) {
		tm := vs.Times[vs.idx]
		vs.idx++
		if tm >= 0 {
			return tm, true
		}
	}
	return 0, false
}
