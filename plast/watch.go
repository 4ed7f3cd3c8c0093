// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

// Watch is an edge-triggered level-crossing detector on a continuous
// variable. It fires once each time its condition (x > Thr, or x < Thr when
// Above is false) goes from false to true, and is re-armed implicitly.
type Watch struct {

	// threshold
	Thr float64

	// condition is x > Thr if true, x < Thr if false
	Above bool

	// event flag delivered when the watch fires
	Flag int

	// last evaluated condition
	Cond bool

	// installed
	Armed bool
}

// Eval returns the watch condition for x
func (w *Watch) Eval(x float64) bool {
	if w.Above {
		return x > w.Thr
	}
	return x < w.Thr
}

// Arm installs the watch at the current value x, without firing
func (w *Watch) Arm(x float64) {
	w.Cond = w.Eval(x)
	w.Armed = true
}

// Check evaluates the watch at x and returns true if the condition
// just became true.
func (w *Watch) Check(x float64) bool {
	if !w.Armed {
		return false
	}
	c := w.Eval(x)
	fired := c && !w.Cond
	w.Cond = c
	return fired
}

// CrossTime returns the linearly interpolated time within [t0, t1] at which
// x crossed Thr going from x0 to x1
func (w *Watch) CrossTime(t0, t1, x0, x1 float64) float64 {
	if x1 == x0 {
		return t1
	}
	f := (w.Thr - x0) / (x1 - x0)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return t0 + f*(t1-t0)
}

// Offsets of the four watch flags of one side, relative to the side's base flag
const (
	DepOn = iota
	DepOff
	PotOn
	PotOff

	WatchesPerSide
)

// SideWatches returns the four watches of one side: depression on / off
// at ThetaD and potentiation on / off at ThetaP, with flags base..base+3.
func SideWatches(sp *SideParams, base int) [WatchesPerSide]Watch {
	return [WatchesPerSide]Watch{
		{Thr: sp.ThetaD, Above: true, Flag: base + DepOn},
		{Thr: sp.ThetaD, Above: false, Flag: base + DepOff},
		{Thr: sp.ThetaP, Above: true, Flag: base + PotOn},
		{Thr: sp.ThetaP, Above: false, Flag: base + PotOff},
	}
}

// Apply sets the side drive flag selected by the watch offset
func (sd *Side) Apply(offset int) {
	switch offset {
	case DepOn:
		sd.Dep = true
	case DepOff:
		sd.Dep = false
	case PotOn:
		sd.Pot = true
	case PotOff:
		sd.Pot = false
	}
}
