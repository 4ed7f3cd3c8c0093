// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synmech is the overall repository for event-driven models of single
synapses with stochastic transmitter release and calcium-based plasticity,
implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* chans: reversal potentials, dual-exponential receptor kinetics, the NMDA
magnesium block and voltage-dependent calcium channel gating.

* release: the multi-vesicular stochastic release pool and the deterministic
Tsodyks-Markram release used by GABA synapses.

* plast: spine calcium, the bistable efficacy (rho) dynamics and the
level-crossing watches that switch depression and potentiation on and off.

* srand: per-synapse random streams (Philox counter-based, sequential system, or scripted).

* syn: the synapse mechanisms themselves (Glu, its two-sided variant, GABAAB),
with their event handling, delayed weight changes, structural rewiring and checkpoints.

* netstim, report, synreader: spike sources, trace reports and synapse parameter files.

* sim: a fixed-step host that owns the global event queue and steps a population
of synapses in parallel.

* examples: examples/glusyn compiles into a runnable program and is the place
to start.
*/
package synmech
