// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srand

import (
	"math"
	"testing"
)

func TestStreamRestore(t *testing.T) {
	streams := []Stream{NewPhilox(42, 3), NewSys(1234), NewScript(0.1, 0.2, 0.3)}
	for _, rs := range streams {
		for i := 0; i < 17; i++ {
			rs.Float64()
		}
		st := rs.State()
		rb, err := New(st)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			a := rs.Float64()
			b := rb.Float64()
			if a != b {
				t.Errorf("%v: restored stream diverged at draw %d: %v vs %v", st.Type, i, a, b)
				break
			}
		}
	}
}

func TestPhiloxIndependent(t *testing.T) {
	a := NewPhilox(1, 0)
	b := NewPhilox(2, 0)
	c := NewPhilox(1, 1)
	same := 0
	for i := 0; i < 100; i++ {
		av := a.Float64()
		if av == b.Float64() {
			same++
		}
		if av == c.Float64() {
			same++
		}
	}
	if same > 0 {
		t.Errorf("distinct keys / streams should not produce identical draws: %d", same)
	}
}

func TestPhiloxUniform(t *testing.T) {
	ps := NewPhilox(7, 0)
	n := 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := ps.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw out of range: %v", v)
		}
		sum += v
	}
	mean := sum / float64(n)
	if math.Abs(mean-0.5) > 0.01 {
		t.Errorf("mean of uniform draws: %v, should be near 0.5", mean)
	}
	if ps.State().Draws != uint64(n) {
		t.Errorf("draw count: %v, should be %v", ps.State().Draws, n)
	}
}

func TestScriptWrap(t *testing.T) {
	sc := NewScript(0.25, 0.75)
	cor := []float64{0.25, 0.75, 0.25}
	for i, c := range cor {
		if v := sc.Float64(); v != c {
			t.Errorf("draw %d: %v, cor: %v", i, v, c)
		}
	}
	if sc.N() != 3 {
		t.Errorf("N: %v", sc.N())
	}
	if NewScript().Float64() != 0 {
		t.Errorf("empty script should return 0")
	}
}

func TestStreamTypesString(t *testing.T) {
	var st StreamTypes
	if err := st.FromString("Scripted"); err != nil || st != Scripted {
		t.Errorf("FromString: %v %v", st, err)
	}
	if Philox.String() != "Philox" {
		t.Errorf("String: %v", Philox.String())
	}
}

func TestSysStreamSeed(t *testing.T) {
	a := NewSys(5)
	b := NewSys(5)
	c := NewSys(6)
	same := 0
	for i := 0; i < 50; i++ {
		av := a.Float64()
		bv := b.Float64()
		cv := c.Float64()
		if av != bv {
			t.Errorf("same seed diverged at draw %d: %v vs %v", i, av, bv)
		}
		if av == cv {
			same++
		}
		if av < 0 || av >= 1 {
			t.Errorf("draw %d out of range: %v", i, av)
		}
	}
	if same == 50 {
		t.Errorf("different seeds gave identical streams")
	}
}
