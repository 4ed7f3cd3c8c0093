// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "math"

// VoltageSource supplies the membrane potential at a synapse, in mV.
// V may be called concurrently for different synapses.
type VoltageSource interface {
	V(t float64) float64
}

// Clamp is a constant membrane potential
type Clamp float64

func (vc Clamp) V(t float64) float64 { return float64(vc) }

// Trace is a membrane potential given as a function of time
type Trace func(t float64) float64

func (tr Trace) V(t float64) float64 { return tr(t) }

// Pulses returns a Trace at rest mV, depolarized to peak mV for width msec
// starting at each of the given times
func Pulses(rest, peak, width float64, times ...float64) Trace {
	return func(t float64) float64 {
		for _, st := range times {
			if t >= st && t < st+width {
				return peak
			}
		}
		return rest
	}
}

// Sine returns a Trace oscillating around mean mV with given amplitude and period in msec
func Sine(mean, amp, period float64) Trace {
	return func(t float64) float64 {
		return mean + amp*math.Sin(2*math.Pi*t/period)
	}
}
