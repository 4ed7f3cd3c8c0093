// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import "fmt"

// CausalityError is returned when a spike arrives earlier than the last
// processed spike of the same synapse. It means the host delivered events
// out of order (e.g., a connection delay shorter than the time step), and
// the run must stop.
type CausalityError struct {
	SynapseID int

	// arrival time of the offending event
	Time float64

	// time of the last processed spike
	Tsyn float64
}

func (ce *CausalityError) Error() string {
	return fmt.Sprintf("synapse %d: event at t = %g precedes last event at tsyn = %g", ce.SynapseID, ce.Time, ce.Tsyn)
}

// RestoreError is returned when a checkpoint does not fit the instance it is restored into
type RestoreError struct {
	SynapseID int
	Msg       string
}

func (re *RestoreError) Error() string {
	return fmt.Sprintf("synapse %d: restore: %s", re.SynapseID, re.Msg)
}
