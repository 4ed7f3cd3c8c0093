// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// sim.Time contains the timing state and parameters of a fixed-step run
type Time struct {

	// current simulation time, in msec
	Time float64

	// time at the start of the run, in msec
	T0 float64

	// step counter since the start of the run
	Step int

	// total step count, incremented continuously from whenever it was last reset
	StepTot int

	// integration time step, in msec
	Dt float64 `default:"0.025"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 0.025
}

// Reset resets the counters back to zero, with the run starting at t0
func (tm *Time) Reset(t0 float64) {
	tm.T0 = t0
	tm.Time = t0
	tm.Step = 0
	tm.StepTot = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// StepInc increments at the step level. Time is computed from the step
// count so that it does not accumulate rounding error.
func (tm *Time) StepInc() {
	tm.Step++
	tm.StepTot++
	tm.Time = tm.T0 + float64(tm.Step)*tm.Dt
}

// NSteps returns the number of steps needed to reach tstop from the current time
func (tm *Time) NSteps(tstop float64) int {
	n := 0
	for tm.T0+float64(tm.Step+n)*tm.Dt < tstop-1.0e-9 {
		n++
	}
	return n
}
