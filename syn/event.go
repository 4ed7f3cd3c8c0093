// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syn

import "github.com/goki/ki/kit"

// EventFlags identify the kind of event delivered to a mechanism
type EventFlags int32

//go:generate stringer -type=EventFlags

var KiT_EventFlags = kit.Enums.AddEnum(EventFlagsN, kit.NotBitFlag, nil)

func (ev EventFlags) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EventFlags) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// FlagSpike is a presynaptic spike arriving over a connection
	FlagSpike EventFlags = 0

	// FlagInit installs watches, schedules delayed weight changes and seeds rewiring
	FlagInit EventFlags = 1

	// FlagWatch is the flag of the first plasticity watch. Side s, watch offset o
	// (plast.DepOn .. plast.PotOff) uses FlagWatch + 4*s + o, so a single-sided
	// synapse uses 2..5 and a two-sided one 2..9.
	FlagWatch EventFlags = 2

	// FlagElim is a rewiring elimination check (single-sided Glu only)
	FlagElim EventFlags = 8

	// FlagCreate is a rewiring creation (single-sided Glu only)
	FlagCreate EventFlags = 9

	// FlagDelay applies the next delayed weight change of a connection
	FlagDelay EventFlags = 10

	// FlagRestart re-arms watches and in-flight self-events after a restore
	FlagRestart EventFlags = 11

	EventFlagsN EventFlags = 12
)

// Event is a discrete event for one mechanism instance
type Event struct {

	// delivery time, msec
	Time float64

	// kind of event
	Flag EventFlags

	// index of the connection the event belongs to, -1 if none
	Conn int
}

// Scheduler accepts self-events for later delivery back to the same instance
type Scheduler interface {
	Send(ev Event)
}

// SchedFunc adapts a function to the Scheduler interface
type SchedFunc func(ev Event)

func (sf SchedFunc) Send(ev Event) { sf(ev) }

// eventFIFO is the same-tick queue of zero-delay self-events
type eventFIFO struct {
	evs  []Event
	head int
}

func (fq *eventFIFO) push(ev Event) {
	fq.evs = append(fq.evs, ev)
}

func (fq *eventFIFO) pop() (Event, bool) {
	if fq.head >= len(fq.evs) {
		fq.evs = fq.evs[:0]
		fq.head = 0
		return Event{}, false
	}
	ev := fq.evs[fq.head]
	fq.head++
	return ev, true
}
