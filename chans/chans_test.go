// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"math"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-9

func TestDualExpPeak(t *testing.T) {
	taus := [][2]float64{{0.2, 1.7}, {0.29, 43}, {0.2, 8}, {3.5, 260.9}}
	for _, tc := range taus {
		dp := DualExpParams{}
		dp.Set(tc[0], tc[1])
		if err := dp.Validate(); err != nil {
			t.Fatal(err)
		}
		dt := dp.Tp / 2000
		de := DualExp{}
		de.Bump(1, &dp)
		if de.A != dp.Factor || de.B != dp.Factor {
			t.Errorf("bump: A: %v B: %v factor: %v", de.A, de.B, dp.Factor)
		}
		ca, cb := dp.Coefs(dt)
		maxG := 0.0
		maxT := 0.0
		for i := 1; i < 6000; i++ {
			de.DecayCoefs(ca, cb)
			if g := de.G(); g > maxG {
				maxG = g
				maxT = float64(i) * dt
			}
		}
		if math.Abs(maxT-dp.Tp) > 2*dt {
			t.Errorf("rise: %v decay: %v peak at: %v, Tp: %v", tc[0], tc[1], maxT, dp.Tp)
		}
		if math.Abs(maxG-1) > 1.0e-5 {
			t.Errorf("rise: %v decay: %v peak g: %v, should be 1", tc[0], tc[1], maxG)
		}
	}
}

func TestDualExpDecaySplit(t *testing.T) {
	dp := DualExpParams{}
	dp.Set(0.2, 1.7)
	a := DualExp{}
	b := DualExp{}
	a.Bump(0.7, &dp)
	b.Bump(0.7, &dp)
	a.Decay(1.0, &dp)
	for i := 0; i < 40; i++ {
		b.Decay(0.025, &dp)
	}
	if math.Abs(a.A-b.A) > difTol || math.Abs(a.B-b.B) > difTol {
		t.Errorf("exact decay should not depend on sub-stepping: %v vs %v", a, b)
	}
}

func TestDualExpValidate(t *testing.T) {
	dp := DualExpParams{}
	dp.Set(2, 1)
	if err := dp.Validate(); err == nil {
		t.Errorf("Decay < Rise should not validate")
	}
	if dp.Factor != 1 {
		t.Errorf("degenerate params should have unit factor, got: %v", dp.Factor)
	}
}

func TestMgGate(t *testing.T) {
	mp := MgBlockParams{}
	mp.Defaults()
	vs := []float64{-80, -65, -40, 0, 20}
	prev := 0.0
	for _, v := range vs {
		g := mp.Gate(v)
		if g <= prev || g >= 1 {
			t.Errorf("Mg gate should increase monotonically in (0,1): v: %v g: %v prev: %v", v, g, prev)
		}
		prev = g
	}
	cor := 1 / (1 + 1/2.552)
	if math.Abs(mp.Gate(0)-cor) > difTol {
		t.Errorf("Mg gate at 0: %v, cor: %v", mp.Gate(0), cor)
	}
}

func TestGHK(t *testing.T) {
	// continuity across the small-xi branch
	lo := GHK(-1.0e-4, 70e-6, 2, 2, 34)
	mid := GHK(0, 70e-6, 2, 2, 34)
	hi := GHK(1.0e-4, 70e-6, 2, 2, 34)
	if !(lo < mid && mid < hi) {
		t.Errorf("GHK should be increasing around 0: %v %v %v", lo, mid, hi)
	}
	if mid >= 0 {
		t.Errorf("GHK with ci << co should drive inward (negative) current at 0 mV: %v", mid)
	}
}

func TestVDCCSteady(t *testing.T) {
	vp := VDCCParams{}
	vp.Defaults()
	vc := VDCC{}
	vc.Init(-65, &vp)
	m0, h0 := vc.M, vc.H
	vc.Step(10, -65, &vp)
	if math.Abs(vc.M-m0) > difTol || math.Abs(vc.H-h0) > difTol {
		t.Errorf("gates should stay at steady state: m: %v -> %v h: %v -> %v", m0, vc.M, h0, vc.H)
	}
	vc.Step(5, 0, &vp)
	if vc.M <= m0 {
		t.Errorf("depolarization should open m: %v -> %v", m0, vc.M)
	}
	if vc.ICa(0, 70e-6, 34, &vp) >= 0 {
		t.Errorf("calcium current should be inward")
	}
}
