// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// MgBlockParams control the voltage-dependent magnesium block of NMDA receptors,
// based on Jahr & Stevens (1990) as fit for neocortical synapses.
type MgBlockParams struct {

	// extracellular magnesium concentration in mM
	Mg float64 `default:"1"`

	// voltage slope of the block in 1/mV
	Slope float64 `default:"0.072"`

	// scale of the magnesium dependence in mM
	Scale float64 `default:"2.552"`
}

func (mp *MgBlockParams) Defaults() {
	mp.Mg = 1
	mp.Slope = 0.072
	mp.Scale = 2.552
}

// Gate returns the fraction of unblocked NMDA conductance at membrane potential v (mV)
func (mp *MgBlockParams) Gate(v float64) float64 {
	return 1 / (1 + math.Exp(-mp.Slope*v)*(mp.Mg/mp.Scale))
}
