// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"github.com/goki/kigen/ordmap"
	"go.uber.org/zap"
)

// Handle identifies a report in a Registry
type Handle int

// Registry holds reports in the order they were added, keyed by handle
type Registry struct {
	Reports *ordmap.Map[Handle, *Report]

	// diagnostics for unknown handles
	Log *zap.Logger `view:"-"`

	nextHandle Handle
}

// NewRegistry returns an empty registry; lg may be nil
func NewRegistry(lg *zap.Logger) *Registry {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Registry{Reports: ordmap.New[Handle, *Report](), Log: lg, nextHandle: 1}
}

// Add initializes rp and adds it, returning its handle
func (rg *Registry) Add(rp *Report) (Handle, error) {
	if err := rp.Init(); err != nil {
		return 0, err
	}
	h := rg.nextHandle
	rg.nextHandle++
	rg.Reports.Add(h, rp)
	return h, nil
}

// Get returns the report for h. An unknown handle is logged and returns false.
func (rg *Registry) Get(h Handle) (*Report, bool) {
	rp, ok := rg.Reports.ValByKey(h)
	if !ok {
		rg.Log.Warn("unknown report handle", zap.Int("handle", int(h)))
	}
	return rp, ok
}

// Remove deletes the report for h, returning false if it is unknown
func (rg *Registry) Remove(h Handle) bool {
	if !rg.Reports.DeleteKey(h) {
		rg.Log.Warn("unknown report handle", zap.Int("handle", int(h)))
		return false
	}
	return true
}

func (rg *Registry) Len() int {
	return rg.Reports.Len()
}

// Sample samples every report at time t, in the order they were added
func (rg *Registry) Sample(t float64) error {
	for i := 0; i < rg.Reports.Len(); i++ {
		if err := rg.Reports.ValByIdx(i).Sample(t); err != nil {
			return err
		}
	}
	return nil
}

// Init re-initializes every report, clearing recorded samples
func (rg *Registry) Init() error {
	for i := 0; i < rg.Reports.Len(); i++ {
		if err := rg.Reports.ValByIdx(i).Init(); err != nil {
			return err
		}
	}
	return nil
}
