// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import (
	"fmt"

	"github.com/emer/synmech/chans"
	"github.com/emer/synmech/plast"
	"github.com/emer/synmech/release"
)

// RewireParams control structural plasticity: elimination of weak synapses
// and creation of new ones, as renewal processes with rates per day.
type RewireParams struct {

	// elimination rate per day of a fully depressed synapse
	PElim0 float64 `default:"0.8"`

	// elimination rate per day of a fully potentiated synapse
	PElim1 float64 `default:"0.1"`

	// creation rate per day of an inactive synapse
	PGen float64 `default:"0.1"`

	// start the run inactive, waiting for creation
	StartInactive bool
}

func (rp *RewireParams) Defaults() {
	rp.PElim0 = 0.8
	rp.PElim1 = 0.1
	rp.PGen = 0.1
}

func (rp *RewireParams) Validate() error {
	if rp.PElim0 <= 0 || rp.PElim1 <= 0 || rp.PGen <= 0 {
		return fmt.Errorf("syn.RewireParams: rates must be > 0: PElim0 = %g, PElim1 = %g, PGen = %g", rp.PElim0, rp.PElim1, rp.PGen)
	}
	if rp.PElim1 > rp.PElim0 {
		return fmt.Errorf("syn.RewireParams: PElim1 (%g) must be <= PElim0 (%g)", rp.PElim1, rp.PElim0)
	}
	return nil
}

// GluParams are the parameters of a glutamatergic synapse, shared read-only
// by every instance built from them.
type GluParams struct {

	// two-sided variant: separate pre (release probability) and post (AMPA conductance) efficacies
	TM bool

	// AMPA dual-exponential kinetics, msec
	AMPA chans.DualExpParams `view:"inline"`

	// NMDA dual-exponential kinetics, msec
	NMDA chans.DualExpParams `view:"inline"`

	// NMDA impulse relative to AMPA
	NMDARatio float64 `default:"0.71"`

	// NMDA conductance scale, nS
	GmaxNMDA float64 `default:"1"`

	// release parameters; Use is the static utilization used without plasticity
	Rel release.TMParams `view:"inline"`

	// utilization relaxing with rho: D = Use_d, P = Use_p, Tau in seconds
	UseGB plast.RelaxParams `view:"inline"`

	// AMPA conductance relaxing with rho: D = gmax_d, P = gmax_p, nS, Tau in seconds
	GmaxAMPA plast.RelaxParams `view:"inline"`

	// spine calcium
	Ca plast.CaParams `view:"inline"`

	// R-type calcium channel
	VDCC chans.VDCCParams `view:"inline"`

	// efficacy of the single side, or the pre side of the two-sided variant
	Pre plast.SideParams `view:"inline"`

	// efficacy of the post side of the two-sided variant
	Post plast.SideParams `view:"inline"`

	// structural rewiring
	Rewire RewireParams `view:"inline"`

	// rho drives Use and gmax_AMPA; otherwise the static Use is used
	EnablePlasticity bool

	// elimination and creation (single-sided variant only)
	EnableRewiring bool

	// scale for delayed weight changes
	Conductance float64 `default:"1"`

	// diagnostics level
	Verbose int
}

func (gp *GluParams) Defaults() {
	gp.AMPA.Set(0.2, 1.7)
	gp.NMDA.Set(0.29, 43)
	gp.NMDARatio = 0.71
	gp.GmaxNMDA = 1
	gp.Rel.Defaults()
	gp.UseGB = plast.RelaxParams{D: 0.2, P: 0.8, Tau: 100}
	gp.GmaxAMPA = plast.RelaxParams{D: 1, P: 2, Tau: 100}
	gp.Ca.Defaults()
	gp.VDCC.Defaults()
	gp.Pre.Defaults()
	gp.Post.Defaults()
	gp.Rewire.Defaults()
	gp.Conductance = 1
}

// Update recomputes derived parameters; call after changing any time constant
func (gp *GluParams) Update() {
	gp.AMPA.Update()
	gp.NMDA.Update()
}

// NSides returns the number of efficacy variables: 2 for the two-sided variant
func (gp *GluParams) NSides() int {
	if gp.TM {
		return 2
	}
	return 1
}

func (gp *GluParams) Validate() error {
	if err := gp.AMPA.Validate(); err != nil {
		return err
	}
	if err := gp.NMDA.Validate(); err != nil {
		return err
	}
	if err := gp.Rel.Validate(); err != nil {
		return err
	}
	if err := gp.Pre.Validate(); err != nil {
		return err
	}
	if gp.TM {
		if err := gp.Post.Validate(); err != nil {
			return err
		}
		if gp.EnableRewiring {
			return fmt.Errorf("syn.GluParams: rewiring is only supported by the single-sided synapse")
		}
	}
	if gp.EnableRewiring {
		if err := gp.Rewire.Validate(); err != nil {
			return err
		}
	}
	if gp.UseGB.Tau <= 0 || gp.GmaxAMPA.Tau <= 0 {
		return fmt.Errorf("syn.GluParams: relaxation time constants must be > 0")
	}
	if gp.Ca.TauCa <= 0 || gp.Ca.TauEffCa <= 0 {
		return fmt.Errorf("syn.GluParams: calcium time constants must be > 0")
	}
	return nil
}

// NewGluParams returns default GluParams
func NewGluParams() *GluParams {
	gp := &GluParams{}
	gp.Defaults()
	return gp
}

// GABAParams are the parameters of a GABA-A + GABA-B synapse
type GABAParams struct {

	// GABA-A dual-exponential kinetics, msec
	GABAA chans.DualExpParams `view:"inline"`

	// GABA-B dual-exponential kinetics, msec
	GABAB chans.DualExpParams `view:"inline"`

	// GABA-B impulse relative to GABA-A
	GABABRatio float64 `default:"0"`

	// conductance per unit weight, uS
	Gmax float64 `default:"0.001"`

	// release parameters
	Rel release.TMParams `view:"inline"`

	// stochastic vesicle release instead of deterministic Tsodyks-Markram
	Stochastic bool

	// scale for delayed weight changes
	Conductance float64 `default:"1"`

	// diagnostics level
	Verbose int
}

func (gp *GABAParams) Defaults() {
	gp.GABAA.Set(0.2, 8)
	gp.GABAB.Set(3.5, 260.9)
	gp.GABABRatio = 0
	gp.Gmax = 0.001
	gp.Rel.Defaults()
	gp.Rel.Use = 1
	gp.Conductance = 1
}

func (gp *GABAParams) Update() {
	gp.GABAA.Update()
	gp.GABAB.Update()
}

func (gp *GABAParams) Validate() error {
	if err := gp.GABAA.Validate(); err != nil {
		return err
	}
	if err := gp.GABAB.Validate(); err != nil {
		return err
	}
	return gp.Rel.Validate()
}

func NewGABAParams() *GABAParams {
	gp := &GABAParams{}
	gp.Defaults()
	return gp
}
