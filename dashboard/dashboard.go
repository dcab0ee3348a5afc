/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"github.com/metabolx/metabolx/analysis"
)

// State is the lifecycle of a dashboard page.
type State int

const (
	StateLoading State = iota
	StateRendered
)

// Dashboard is the fully rendered page model. Nil sections are omitted from
// the page.
type Dashboard struct {
	State           State
	Header          Header
	Patient         PatientPanel
	Medicines       *MedicinePanel
	Metrics         *MetricsSection
	Metabolism      *MetabolismSection
	Recommendations RecommendationsSection
	Trends          TrendsSection

	// PayloadError is set when the payload could not be decoded. The page
	// still renders with placeholders.
	PayloadError error
}

// Orchestrator turns an analysis payload into a Dashboard.
type Orchestrator struct {
	ctx Context
}

// NewOrchestrator returns an Orchestrator using ctx for every render.
func NewOrchestrator(ctx Context) *Orchestrator {
	return &Orchestrator{ctx: ctx}
}

// Render decodes the dashboard query payload and renders every section.
// Decoding failures are logged and rendered as an empty result.
func (o *Orchestrator) Render(raw string, view MetricsView) *Dashboard {
	d := &Dashboard{State: StateLoading}

	result, err := analysis.DecodePayload(raw)
	if err != nil {
		o.ctx.logger().Warn("Failed to decode analysis payload", "error", err, "length", len(raw))
		d.PayloadError = err
	}

	d.Load(o.ctx, result, view)

	return d
}

// Load fills the dashboard from result. Only the first call has any effect.
func (d *Dashboard) Load(ctx Context, result *analysis.Result, view MetricsView) {
	if d.State == StateRendered {
		return
	}
	if result == nil {
		result = &analysis.Result{}
	}

	d.Header = renderHeader(ctx, result)
	d.Patient = renderPatientPanel(result.PatientInfo)
	d.Medicines = renderMedicinePanel(result.Medicines)
	d.Metrics = renderMetrics(ctx, result.Metrics, view)
	d.Metabolism = renderMetabolism(ctx, result.Metabolism)
	d.Recommendations = renderRecommendations(result.Recommendations)
	d.Trends = renderTrends(ctx, result.HealthScore)

	d.State = StateRendered
}
