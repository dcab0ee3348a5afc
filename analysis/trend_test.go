// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"math/rand/v2"
	"testing"
)

func TestSimulatedTrendBounds(t *testing.T) {
	t.Parallel()

	trend := NewSimulatedTrend(rand.NewPCG(1, 2))

	for _, current := range []float64{0, 45, 90, 100} {
		for range 200 {
			p := trend.Trend(current)

			if p.Current != current {
				t.Fatalf("current changed: %v != %v", p.Current, current)
			}
			if p.Previous > current || p.Previous < current-9 {
				t.Fatalf("previous %v out of range for %v", p.Previous, current)
			}
			if p.Projected < current && current <= 100 {
				t.Fatalf("projected %v below current %v", p.Projected, current)
			}
			if p.Projected > 100 || p.Projected > current+14 {
				t.Fatalf("projected %v out of range for %v", p.Projected, current)
			}
		}
	}
}

func TestSimulatedTrendDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := NewSimulatedTrend(rand.NewPCG(7, 7)).Trend(70)
	b := NewSimulatedTrend(rand.NewPCG(7, 7)).Trend(70)

	if a != b {
		t.Fatalf("expected identical trends for identical seeds: %#v vs %#v", a, b)
	}
}

func TestSimulatedTrendLowerBoundNotClamped(t *testing.T) {
	t.Parallel()

	p := FixedTrend{Drop: 9, Rise: 14}.Trend(3)
	if p.Previous != -6 {
		t.Fatalf("expected previous -6, got %v", p.Previous)
	}

	p = FixedTrend{Drop: 9, Rise: 14}.Trend(95)
	if p.Projected != 100 {
		t.Fatalf("expected projected capped at 100, got %v", p.Projected)
	}
}
