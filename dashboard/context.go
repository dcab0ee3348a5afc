/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/metabolx/metabolx/analysis"
	"github.com/metabolx/metabolx/logging"
)

const (
	defaultChartWidth  = "100%"
	defaultChartHeight = "360px"
)

// Context carries everything the section renderers depend on. It is built
// once at startup and shared by all requests.
type Context struct {
	Now         func() time.Time
	Trends      analysis.TrendSource
	ChartWidth  string
	ChartHeight string
	AssetsHost  string
	Logger      *log.Logger
}

// NewContext returns a Context with the simulated trend source, the wall
// clock and default chart sizing.
func NewContext() Context {
	return Context{
		Now:         time.Now,
		Trends:      analysis.NewSimulatedTrend(nil),
		ChartWidth:  defaultChartWidth,
		ChartHeight: defaultChartHeight,
		Logger:      logging.Logger(logging.SourceDashboard),
	}
}

func (c Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Context) logger() *log.Logger {
	if c.Logger == nil {
		return logging.Logger(logging.SourceDashboard)
	}
	return c.Logger
}

func (c Context) trends() analysis.TrendSource {
	if c.Trends == nil {
		return analysis.NewSimulatedTrend(nil)
	}
	return c.Trends
}
