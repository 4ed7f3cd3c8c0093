// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"github.com/emer/synmech/chans"
)

// Globals are the simulation-wide constants shared by all synapse instances.
// They are read-only once a run has started.
type Globals struct {

	// reversal potentials per receptor, mV
	Erev chans.Chans `view:"inline"`

	// NMDA magnesium block
	MgBlock chans.MgBlockParams `view:"inline"`

	// temperature, for the GHK calcium driving force
	Celsius float64 `default:"34"`

	// membrane potential assumed at init, before the first step, mV
	VInit float64 `default:"-65"`

	// voltage increment used to compute the current slope di/dv, mV
	DV float64 `default:"0.001"`
}

func (gl *Globals) Defaults() {
	gl.Erev.Defaults()
	gl.MgBlock.Defaults()
	gl.Celsius = 34
	gl.VInit = -65
	gl.DV = 0.001
}

// NewGlobals returns Globals with default values
func NewGlobals() *Globals {
	gl := &Globals{}
	gl.Defaults()
	return gl
}
