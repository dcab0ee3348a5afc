/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"math"
	"math/rand/v2"
	"sync"
)

// TrendPoints is the health score history shown on the trends chart.
type TrendPoints struct {
	Previous  float64
	Current   float64
	Projected float64
}

// TrendSource supplies the previous and projected scores around the current
// health score.
type TrendSource interface {
	Trend(current float64) TrendPoints
}

// SimulatedTrend fabricates a trend from random offsets. There is no
// historical data behind it: previous is up to 9 points below the current
// score and projected up to 14 above, capped at 100. The lower bound is not
// clamped.
type SimulatedTrend struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedTrend returns a SimulatedTrend drawing from src. A nil source
// uses a randomly seeded PCG.
func NewSimulatedTrend(src rand.Source) *SimulatedTrend {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &SimulatedTrend{rng: rand.New(src)}
}

// Trend implements TrendSource.
func (s *SimulatedTrend) Trend(current float64) TrendPoints {
	s.mu.Lock()
	drop := s.rng.IntN(10)
	rise := s.rng.IntN(15)
	s.mu.Unlock()

	return TrendPoints{
		Previous:  current - float64(drop),
		Current:   current,
		Projected: math.Min(100, current+float64(rise)),
	}
}

// FixedTrend reports a constant offset on both sides of the current score.
// It is used where the chart must be reproducible.
type FixedTrend struct {
	Drop float64
	Rise float64
}

// Trend implements TrendSource.
func (f FixedTrend) Trend(current float64) TrendPoints {
	return TrendPoints{
		Previous:  current - f.Drop,
		Current:   current,
		Projected: math.Min(100, current+f.Rise),
	}
}
