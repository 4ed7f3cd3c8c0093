// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"math"
	"testing"
)

const difTol = 1.0e-9

func TestThresholdCrossing(t *testing.T) {
	sp := SideParams{}
	sp.Defaults()
	ws := SideWatches(&sp, 2)
	sd := Side{}
	sd.Init(&sp)
	for i := range ws {
		ws[i].Arm(0)
	}

	dt := 0.025
	slope := 1.0e-4 // per msec
	depOnAt, potOnAt := -1.0, -1.0
	nDep, nPot := 0, 0
	// rise to 2 * ThetaP, then fall back to 0
	peak := 2 * sp.ThetaP
	tpk := peak / slope
	for tm := dt; tm < 2*tpk; tm += dt {
		x := slope * tm
		if tm > tpk {
			x = peak - slope*(tm-tpk)
		}
		for i := range ws {
			w := &ws[i]
			if !w.Check(x) {
				continue
			}
			off := w.Flag - 2
			sd.Apply(off)
			switch off {
			case DepOn:
				nDep++
				depOnAt = x
			case PotOn:
				nPot++
				potOnAt = x
			}
		}
		if tm < tpk {
			if sd.Dep != (x > sp.ThetaD) {
				t.Fatalf("rising: dep flag: %v at x: %v", sd.Dep, x)
			}
			if sd.Pot != (x > sp.ThetaP) {
				t.Fatalf("rising: pot flag: %v at x: %v", sd.Pot, x)
			}
		}
	}
	if nDep != 1 || nPot != 1 {
		t.Errorf("each on-watch should fire exactly once: dep: %d pot: %d", nDep, nPot)
	}
	if math.Abs(depOnAt-sp.ThetaD) > slope*dt*1.01 {
		t.Errorf("dep on at: %v, theta_d: %v", depOnAt, sp.ThetaD)
	}
	if math.Abs(potOnAt-sp.ThetaP) > slope*dt*1.01 {
		t.Errorf("pot on at: %v, theta_p: %v", potOnAt, sp.ThetaP)
	}
	if sd.Dep || sd.Pot {
		t.Errorf("flags should be off after falling below thresholds: dep: %v pot: %v", sd.Dep, sd.Pot)
	}
}

func TestWatchArm(t *testing.T) {
	w := Watch{Thr: 1, Above: true}
	if w.Check(2) {
		t.Errorf("unarmed watch should not fire")
	}
	w.Arm(2)
	if w.Check(3) {
		t.Errorf("watch armed above threshold should not fire until it re-crosses")
	}
	w.Check(0.5)
	if !w.Check(1.5) {
		t.Errorf("watch should fire on upward crossing")
	}
	ct := w.CrossTime(10, 11, 0.5, 1.5)
	if math.Abs(ct-10.5) > difTol {
		t.Errorf("cross time: %v", ct)
	}
}

func TestRhoBistable(t *testing.T) {
	sp := SideParams{}
	sp.Defaults()
	sp.Tau = 0.001 // 1 msec, to converge quickly
	dt := 0.1
	lo := Side{Rho: 0.45}
	hi := Side{Rho: 0.55}
	for i := 0; i < 20000; i++ {
		lo.Step(dt, &sp)
		hi.Step(dt, &sp)
	}
	if lo.Rho > 0.01 {
		t.Errorf("rho below rho_star should decay toward 0: %v", lo.Rho)
	}
	if hi.Rho < 0.99 {
		t.Errorf("rho above rho_star should grow toward 1: %v", hi.Rho)
	}

	sp.Tau = 1
	pot := Side{Rho: 0.1, Pot: true}
	dep := Side{Rho: 0.9, Dep: true}
	for i := 0; i < 1000; i++ {
		pot.Step(dt, &sp)
		dep.Step(dt, &sp)
	}
	if pot.Rho < 0.9 || pot.Rho > 1 {
		t.Errorf("potentiation drive should push rho up to 1: %v", pot.Rho)
	}
	if dep.Rho > 0.1 || dep.Rho < 0 {
		t.Errorf("depression drive should push rho down to 0: %v", dep.Rho)
	}
}

func TestCalcium(t *testing.T) {
	cp := CaParams{}
	cp.Defaults()
	ca := Calcium{}
	ca.Init(&cp)
	for i := 0; i < 1000; i++ {
		ca.Step(0.1, 0, &cp)
	}
	if math.Abs(ca.Cai-cp.MinCa) > difTol || math.Abs(ca.EffCai) > difTol {
		t.Errorf("no influx should stay at rest: cai: %v effcai: %v", ca.Cai, ca.EffCai)
	}
	ica := -0.01 // nA inward
	for i := 0; i < 20000; i++ {
		ca.Step(0.1, ica, &cp)
	}
	cor := cp.MinCa + cp.Influx(ica)*cp.TauCa
	if math.Abs(ca.Cai-cor) > 1.0e-12 {
		t.Errorf("steady-state cai: %v, cor: %v", ca.Cai, cor)
	}
	ecor := (cor - cp.MinCa) * cp.TauEffCa
	if math.Abs(ca.EffCai-ecor)/ecor > 1.0e-4 {
		t.Errorf("steady-state effcai: %v, cor: %v", ca.EffCai, ecor)
	}
}

func TestRelax(t *testing.T) {
	rp := RelaxParams{D: 0.2, P: 0.8, Tau: 0.001}
	x := 0.2
	for i := 0; i < 100; i++ {
		x = rp.Step(x, 1, 0.1)
	}
	if math.Abs(x-0.8) > 1.0e-3 {
		t.Errorf("relax to P at rho 1: %v", x)
	}
	if math.Abs(rp.Norm(0.5)-0.5) > difTol {
		t.Errorf("norm: %v", rp.Norm(0.5))
	}
}
