// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the receptor and calcium channels used by the synapse
mechanisms: dual-exponential receptor kinetics (AMPA, NMDA, GABA-A, GABA-B),
the voltage-dependent magnesium block of NMDA receptors, and the R-type
voltage-dependent calcium channel with a GHK driving force.

Units follow point-process conventions: mV, ms, uS, nA, mM.
*/
package chans

// Chans holds one value per receptor channel, typically reversal potentials.
type Chans struct {

	// AMPA glutamate receptor
	AMPA float64

	// NMDA glutamate receptor
	NMDA float64

	// GABA-A chloride receptor
	GABAA float64

	// GABA-B metabotropic potassium receptor
	GABAB float64
}

// SetAll sets all the values
func (ch *Chans) SetAll(ampa, nmda, gabaa, gabab float64) {
	ch.AMPA, ch.NMDA, ch.GABAA, ch.GABAB = ampa, nmda, gabaa, gabab
}

// Defaults sets the standard reversal potentials in mV
func (ch *Chans) Defaults() {
	ch.SetAll(0, 0, -80, -97)
}

// Receptors enumerates the receptor subtypes, for indexing per-receptor state.
type Receptors int32

const (
	AMPA Receptors = iota
	NMDA
	GABAA
	GABAB

	ReceptorsN
)

var receptorNames = [ReceptorsN]string{"AMPA", "NMDA", "GABAA", "GABAB"}

func (rc Receptors) String() string {
	if rc < 0 || rc >= ReceptorsN {
		return "Receptors(?)"
	}
	return receptorNames[rc]
}

// Get returns the value for given receptor
func (ch *Chans) Get(rc Receptors) float64 {
	switch rc {
	case AMPA:
		return ch.AMPA
	case NMDA:
		return ch.NMDA
	case GABAA:
		return ch.GABAA
	case GABAB:
		return ch.GABAB
	}
	return 0
}
