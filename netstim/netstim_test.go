// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netstim

import (
	"math"
	"testing"

	"github.com/emer/synmech/srand"
)

const difTol = 1.0e-12

func TestRegular(t *testing.T) {
	ps := &Poisson{Interval: 5, Number: 4, Start: 10}
	if err := ps.Validate(); err != nil {
		t.Fatal(err)
	}
	ps.Init()
	cor := []float64{10, 15, 20, 25}
	for i, c := range cor {
		tm, ok := ps.Next()
		if !ok || math.Abs(tm-c) > difTol {
			t.Errorf("spike %d: %v %v, cor: %v", i, tm, ok, c)
		}
	}
	if _, ok := ps.Next(); ok {
		t.Errorf("should stop after Number spikes")
	}
	ps.Init()
	if tm, ok := ps.Next(); !ok || tm != 10 {
		t.Errorf("Init should restart the train: %v", tm)
	}
}

func TestPoissonMean(t *testing.T) {
	n := 20000
	ps := &Poisson{Interval: 20, Number: n, Start: 0, Noise: 1, Rand: srand.NewPhilox(3, 0)}
	if err := ps.Validate(); err != nil {
		t.Fatal(err)
	}
	ps.Init()
	prv := 0.0
	sum, sum2 := 0.0, 0.0
	for i := 0; i < n; i++ {
		tm, ok := ps.Next()
		if !ok {
			t.Fatalf("ended early at %d", i)
		}
		if tm < prv {
			t.Fatalf("spike times must not decrease: %v < %v", tm, prv)
		}
		if i > 0 {
			iv := tm - prv
			sum += iv
			sum2 += iv * iv
		}
		prv = tm
	}
	m := sum / float64(n-1)
	sd := math.Sqrt(sum2/float64(n-1) - m*m)
	if math.Abs(m-20)/20 > 0.03 {
		t.Errorf("mean interval: %v", m)
	}
	// exponential: sd == mean
	if math.Abs(sd-m)/m > 0.05 {
		t.Errorf("interval sd: %v, mean: %v", sd, m)
	}
}

func TestMixedNoise(t *testing.T) {
	ps := &Poisson{Interval: 10, Number: 1000, Start: 0, Noise: 0.5, Rand: srand.NewPhilox(3, 1)}
	ps.Init()
	prv, _ := ps.Next()
	for i := 1; i < 1000; i++ {
		tm, _ := ps.Next()
		if tm-prv < 5-difTol {
			t.Fatalf("interval %v below the fixed part 5", tm-prv)
		}
		prv = tm
	}
}

func TestVec(t *testing.T) {
	if _, err := NewVec(1, 3, 2); err == nil {
		t.Errorf("expected error for decreasing times")
	}
	vs, err := NewVec(-1, 0, 2.5, 2.5, 7)
	if err != nil {
		t.Fatal(err)
	}
	vs.Init()
	var got []float64
	for {
		tm, ok := vs.Next()
		if !ok {
			break
		}
		got = append(got, tm)
	}
	cor := []float64{0, 2.5, 2.5, 7}
	if len(got) != len(cor) {
		t.Fatalf("got: %v, cor: %v", got, cor)
	}
	for i := range cor {
		if got[i] != cor[i] {
			t.Errorf("spike %d: %v, cor: %v", i, got[i], cor[i])
		}
	}
}
