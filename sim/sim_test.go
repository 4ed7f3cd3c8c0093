// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/emer/synmech/netstim"
	"github.com/emer/synmech/report"
	"github.com/emer/synmech/srand"
	"github.com/emer/synmech/syn"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// ignore goroutines started during package init by dependencies
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

const nTestSyn = 12

// buildEngine returns a mixed population driven by three Poisson sources
func buildEngine(t *testing.T, nthr int) *Engine {
	t.Helper()
	en := NewEngine(nil, nil)
	en.NThreads = nthr
	gp := syn.NewGluParams()
	gp.Rel.Nrrp = 4
	gp.EnablePlasticity = true
	gb := syn.NewGABAParams()
	gb.GABABRatio = 0.3
	for i := 0; i < nTestSyn; i++ {
		var sy syn.Mechanism
		var err error
		if i%4 == 3 {
			sy, err = syn.NewGABAAB(i, gb, en.Glob, srand.NewPhilox(uint32(i), 0))
		} else {
			sy, err = syn.NewGlu(i, gp, en.Glob, srand.NewPhilox(uint32(i), 0))
		}
		if err != nil {
			t.Fatal(err)
		}
		idx := en.AddSynapse(sy)
		en.SetVoltage(idx, Sine(-60, 15, 50))
	}
	dv := &syn.DelayVecs{Times: []float64{0, 30, 60}, Weights: []float64{1, 2, 0.5}}
	for s := 0; s < 3; s++ {
		src := en.AddSource(&netstim.Poisson{Interval: 8, Number: 100, Start: 5, Noise: 1, Rand: srand.NewPhilox(1000+uint32(s), 0)})
		for i := s; i < nTestSyn; i += 3 {
			var sdv *syn.DelayVecs
			if i == 0 {
				sdv = dv
			}
			if _, err := en.Connect(src, i, 1, 1+0.5*float64(s), syn.Presyn, sdv); err != nil {
				t.Fatal(err)
			}
		}
	}
	return en
}

func compareEngines(t *testing.T, a, b *Engine) {
	t.Helper()
	if a.Time.Time != b.Time.Time {
		t.Errorf("time: %v %v", a.Time.Time, b.Time.Time)
	}
	for i := range a.Synapses {
		sa, sb := a.Synapses[i], b.Synapses[i]
		for _, vn := range sa.VarNames() {
			va, _ := sa.VarByName(vn)
			vb, _ := sb.VarByName(vn)
			if math.Abs(va-vb) > 1.0e-9*math.Max(1, math.Abs(va)) {
				t.Errorf("synapse %d var %s: %v != %v", i, vn, va, vb)
			}
		}
	}
}

func TestPartitionRange(t *testing.T) {
	cor := [][2]int{{0, 4}, {4, 7}, {7, 10}}
	for r, c := range cor {
		st, ed := PartitionRange(10, r, 3)
		if st != c[0] || ed != c[1] {
			t.Errorf("rank %d: %d..%d, cor: %v", r, st, ed, c)
		}
	}
	if st, ed := PartitionRange(5, 0, 1); st != 0 || ed != 5 {
		t.Errorf("single rank: %d..%d", st, ed)
	}
}

func TestTime(t *testing.T) {
	tm := NewTime()
	tm.Reset(10)
	if n := tm.NSteps(11); n != 40 {
		t.Errorf("steps to 11: %d", n)
	}
	for i := 0; i < 40; i++ {
		tm.StepInc()
	}
	if math.Abs(tm.Time-11) > 1.0e-12 || tm.StepTot != 40 {
		t.Errorf("time: %v steps: %d", tm.Time, tm.StepTot)
	}
}

func TestQueueOrder(t *testing.T) {
	var qu Queue
	qu.Push(Item{Time: 2, Target: 0})
	qu.Push(Item{Time: 1, Target: 1})
	qu.Push(Item{Time: 2, Target: 2})
	qu.Push(Item{Time: 1, Target: 3})
	var got []int
	for {
		it, ok := qu.PopDue(5)
		if !ok {
			break
		}
		got = append(got, it.Target)
	}
	cor := []int{1, 3, 0, 2}
	for i := range cor {
		if got[i] != cor[i] {
			t.Fatalf("order: %v, cor: %v", got, cor)
		}
	}
	qu.Push(Item{Time: 3})
	if _, ok := qu.PopDue(2); ok {
		t.Errorf("item at 3 should not be due at 2")
	}
}

func TestConnectDelay(t *testing.T) {
	en := NewEngine(nil, nil)
	sy, err := syn.NewGlu(0, syn.NewGluParams(), en.Glob, srand.NewPhilox(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	en.AddSynapse(sy)
	vs, _ := netstim.NewVec(1, 2)
	src := en.AddSource(vs)
	if _, err := en.Connect(src, 0, 1, en.Time.Dt/2, syn.Presyn, nil); err == nil {
		t.Errorf("expected error for delay < dt")
	}
	if _, err := en.Connect(src, 0, 1, en.Time.Dt, syn.Presyn, nil); err != nil {
		t.Errorf("delay == dt should be allowed: %v", err)
	}
}

func TestThreadsDeterminism(t *testing.T) {
	a := buildEngine(t, 1)
	b := buildEngine(t, 4)
	for _, en := range []*Engine{a, b} {
		if err := en.Init(0); err != nil {
			t.Fatal(err)
		}
		if err := en.Run(200); err != nil {
			t.Fatal(err)
		}
	}
	compareEngines(t, a, b)
	sy := a.Synapses[0].(*syn.Glu)
	if sy.NSpikes == 0 {
		t.Errorf("synapse 0 received no spikes")
	}
	if sy.ConnByIndex(0).Weight != 0.5 {
		t.Errorf("delayed weight changes not applied: %v", sy.ConnByIndex(0).Weight)
	}
}

func TestEngineCheckpoint(t *testing.T) {
	full := buildEngine(t, 2)
	if err := full.Init(0); err != nil {
		t.Fatal(err)
	}
	if err := full.Run(100); err != nil {
		t.Fatal(err)
	}

	part := buildEngine(t, 2)
	if err := part.Init(0); err != nil {
		t.Fatal(err)
	}
	if err := part.Run(40); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := part.SaveCheckpoint(&buf); err != nil {
		t.Fatal(err)
	}

	res := buildEngine(t, 3)
	if err := res.LoadCheckpoint(&buf); err != nil {
		t.Fatal(err)
	}
	if res.Pending() != part.Pending() {
		t.Errorf("pending events: %d, saved: %d", res.Pending(), part.Pending())
	}
	if err := res.Run(100); err != nil {
		t.Fatal(err)
	}
	compareEngines(t, full, res)
}

func TestCheckpointBadMagic(t *testing.T) {
	en := buildEngine(t, 1)
	if err := en.LoadCheckpoint(strings.NewReader("XXXXXXXXXXXXXXXX")); err == nil {
		t.Errorf("expected error for bad magic bytes")
	}
}

func TestEngineCausality(t *testing.T) {
	en := NewEngine(nil, nil)
	gp := syn.NewGluParams()
	gp.Rel.Use = 1
	sy, err := syn.NewGlu(7, gp, en.Glob, srand.NewPhilox(7, 0))
	if err != nil {
		t.Fatal(err)
	}
	en.AddSynapse(sy)
	vs, _ := netstim.NewVec()
	src := en.AddSource(vs)
	ci, err := en.Connect(src, 0, 1, 1, syn.Presyn, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := en.Init(0); err != nil {
		t.Fatal(err)
	}
	en.Deliver(0, syn.Event{Time: 4, Flag: syn.FlagSpike, Conn: ci})
	if err := en.Run(10); err != nil {
		t.Fatal(err)
	}
	en.Deliver(0, syn.Event{Time: 2, Flag: syn.FlagSpike, Conn: ci})
	err = en.Step()
	var ce *syn.CausalityError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CausalityError, got: %v", err)
	}
	if ce.SynapseID != 7 || ce.Tsyn != 4 {
		t.Errorf("causality error: %+v", ce)
	}
}

func TestEngineReports(t *testing.T) {
	en := buildEngine(t, 2)
	rp := &report.Report{Name: "g", Dt: 1, Vars: []string{"g_AMPA", "effcai"}, Targets: []report.VarSource{en.Synapses[0], en.Synapses[1]}}
	h, err := en.Reports.Add(rp)
	if err != nil {
		t.Fatal(err)
	}
	if err := en.Init(0); err != nil {
		t.Fatal(err)
	}
	if err := en.Run(10); err != nil {
		t.Fatal(err)
	}
	got, ok := en.Reports.Get(h)
	if !ok {
		t.Fatalf("report handle %d not found", h)
	}
	if got.Table.Rows != 11 {
		t.Errorf("report rows: %d", got.Table.Rows)
	}
	sr := en.SizeReport()
	if !strings.Contains(sr, "Glu: 9") || !strings.Contains(sr, "GABAAB: 3") {
		t.Errorf("size report:\n%s", sr)
	}
}

func TestPulsesCalcium(t *testing.T) {
	pv := Pulses(-65, 0, 10, 20, 40)
	cor := [][2]float64{{0, -65}, {20, 0}, {29.9, 0}, {30, -65}, {45, 0}, {50, -65}}
	for _, c := range cor {
		if v := pv.V(c[0]); v != c[1] {
			t.Errorf("Pulses at t = %v: %v, cor: %v", c[0], v, c[1])
		}
	}

	en := NewEngine(nil, nil)
	gp := syn.NewGluParams()
	gp.EnablePlasticity = true
	sy, err := syn.NewGlu(0, gp, en.Glob, srand.NewPhilox(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	en.SetVoltage(en.AddSynapse(sy), pv)
	if err := en.Init(0); err != nil {
		t.Fatal(err)
	}
	if err := en.Run(19); err != nil {
		t.Fatal(err)
	}
	rest, _ := sy.VarByName("cai")
	if err := en.Run(29); err != nil {
		t.Fatal(err)
	}
	depol, _ := sy.VarByName("cai")
	if v, _ := sy.VarByName("v"); v != 0 {
		t.Errorf("synapse should see the pulse potential: %v", v)
	}
	if depol <= rest {
		t.Errorf("depolarization should drive VDCC calcium influx: cai rest: %v pulse: %v", rest, depol)
	}
}
