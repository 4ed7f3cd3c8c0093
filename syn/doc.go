// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package syn implements event-driven synapse mechanisms:

  - Glu: glutamatergic AMPA + NMDA synapse with stochastic multi-vesicular release,
    spine calcium (NMDA + VDCC), calcium-threshold plasticity of release probability
    and AMPA conductance, and structural rewiring. With GluParams.TM set it is the
    two-sided variant, where separate pre and post efficacies (rho) modulate release
    probability and AMPA conductance respectively.
  - GABAAB: GABA-A + GABA-B synapse with deterministic (or stochastic) release.

Each mechanism is driven by a host through the Mechanism interface: Init at the
start of a run, HandleEvent for every event delivered from the host queue,
Step once per integration step, and Current for the membrane current.

Events carry an EventFlags value. Spikes arriving over a connection use FlagSpike;
all other flags are self-events the mechanism schedules for itself. Self-events
at the current time go into a per-instance FIFO that is drained to a fixed point
before HandleEvent or Step return; later self-events are passed to the host Scheduler.

Instances share no mutable state: the Globals and the XParams are read-only once
built, and each instance owns its random stream, so distinct instances can be
stepped on separate goroutines.
*/
package syn
