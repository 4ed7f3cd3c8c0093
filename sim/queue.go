// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"container/heap"

	"github.com/emer/synmech/syn"
)

// Kinds of queue item
const (
	// ItemDeliver delivers Ev to synapse Target
	ItemDeliver = iota

	// ItemSource fires source Target
	ItemSource
)

// Item is one entry of the global event queue
type Item struct {
	Time float64

	// insertion order, breaks ties between equal times
	Seq uint64

	Kind int

	// synapse or source index
	Target int

	Ev syn.Event
}

// eventQueue is a min-heap on (Time, Seq)
type eventQueue []Item

func (eq eventQueue) Len() int { return len(eq) }

func (eq eventQueue) Less(i, j int) bool {
	if eq[i].Time != eq[j].Time {
		return eq[i].Time < eq[j].Time
	}
	return eq[i].Seq < eq[j].Seq
}

func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) { *eq = append(*eq, x.(Item)) }

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	it := old[n-1]
	*eq = old[:n-1]
	return it
}

// Queue orders events by time, first-in first-out among equal times
type Queue struct {
	items eventQueue
	seq   uint64
}

func (qu *Queue) Reset() {
	qu.items = qu.items[:0]
	qu.seq = 0
}

// Push adds an item, assigning its sequence number
func (qu *Queue) Push(it Item) {
	it.Seq = qu.seq
	qu.seq++
	heap.Push(&qu.items, it)
}

func (qu *Queue) Len() int { return len(qu.items) }

// PopDue removes and returns the earliest item if its time is <= t
func (qu *Queue) PopDue(t float64) (Item, bool) {
	if len(qu.items) == 0 || qu.items[0].Time > t {
		return Item{}, false
	}
	return heap.Pop(&qu.items).(Item), true
}

// Items returns a copy of the pending items in queue order
func (qu *Queue) Items() []Item {
	cp := append(eventQueue(nil), qu.items...)
	its := make([]Item, 0, len(cp))
	for cp.Len() > 0 {
		its = append(its, heap.Pop(&cp).(Item))
	}
	return its
}
