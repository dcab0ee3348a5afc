/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/metabolx/metabolx/analysis"
	"github.com/metabolx/metabolx/backend"
	"github.com/metabolx/metabolx/dashboard"
)

const dashboardSimulationSessionKey = "dashboard_simulation"

// simulationPeriods are the scenario lengths offered on the dashboard, in
// weeks.
var simulationPeriods = []int{4, 8, 12, 24}

// ReportSender emails an analysis report.
type ReportSender interface {
	EmailReport(ctx context.Context, address string, report backend.ReportData) error
}

// ScenarioSimulator predicts the outcome of a what-if scenario.
type ScenarioSimulator interface {
	Simulate(ctx context.Context, prompt string, weeks int, current *analysis.Result) (backend.Simulation, error)
}

// dashboardForm is the payload and metrics view posted back by the dashboard
// action forms.
type dashboardForm struct {
	raw    string
	view   dashboard.MetricsView
	result *analysis.Result
}

func parseDashboardForm(c flamego.Context) (dashboardForm, error) {
	if err := c.Request().ParseForm(); err != nil {
		return dashboardForm{}, err
	}

	form := dashboardForm{
		raw:  c.Request().Form.Get(dashboardDataParam),
		view: dashboard.ParseMetricsView(c.Request().Form.Get("metrics")),
	}

	result, err := analysis.DecodePayload(form.raw)
	if err != nil {
		return form, err
	}
	form.result = result

	return form, nil
}

// EmailDashboardReport sends the posted analysis to the posted address and
// returns to the dashboard.
func EmailDashboardReport(sender ReportSender) flamego.Handler {
	return func(c flamego.Context, s session.Session) {
		form, err := parseDashboardForm(c)
		back := dashboardURL(form.raw, form.view)
		if err != nil {
			webLogger.Warn("Failed to read dashboard form", "error", err)
			SetErrorFlash(s, "Could not read the report data")
			c.Redirect(back, http.StatusSeeOther)
			return
		}

		address := strings.TrimSpace(c.Request().Form.Get("email"))

		err = sender.EmailReport(c.Request().Context(), address, backend.NewReportData(form.result))

		var appErr *backend.AppError

		switch {
		case errors.Is(err, backend.ErrEmptyEmail):
			SetErrorFlash(s, "Please enter an email address")
		case errors.Is(err, backend.ErrInvalidEmail):
			SetErrorFlash(s, "Please enter a valid email address")
		case errors.As(err, &appErr):
			SetErrorFlash(s, appErr.Message)
		case err != nil:
			webLogger.Error("Failed to email report", "error", err)
			SetErrorFlash(s, "Error sending report: "+err.Error())
		default:
			SetSuccessFlash(s, "Report sent to "+address)
		}

		c.Redirect(back, http.StatusSeeOther)
	}
}

// SimulateScenario runs a what-if simulation for the posted analysis. The
// outcome is shown once on the next dashboard render.
func SimulateScenario(simulator ScenarioSimulator) flamego.Handler {
	return func(c flamego.Context, s session.Session) {
		form, err := parseDashboardForm(c)
		back := dashboardURL(form.raw, form.view)
		if err != nil {
			webLogger.Warn("Failed to read dashboard form", "error", err)
			SetErrorFlash(s, "Could not read the report data")
			c.Redirect(back, http.StatusSeeOther)
			return
		}

		weeks, err := strconv.Atoi(strings.TrimSpace(c.Request().Form.Get("period")))
		if err != nil {
			weeks = backend.DefaultSimulationWeeks
		}

		sim, err := simulator.Simulate(c.Request().Context(), c.Request().Form.Get("prompt"), weeks, form.result)

		var appErr *backend.AppError

		switch {
		case errors.Is(err, backend.ErrEmptyPrompt):
			SetErrorFlash(s, "Please describe a scenario to simulate")
		case errors.As(err, &appErr):
			SetErrorFlash(s, appErr.Message)
		case err != nil:
			webLogger.Error("Failed to simulate scenario", "error", err)
			SetErrorFlash(s, "Error running simulation: "+err.Error())
		default:
			saveSimulation(s, sim)
		}

		c.Redirect(back, http.StatusSeeOther)
	}
}

func saveSimulation(s session.Session, sim backend.Simulation) {
	encoded, err := json.Marshal(sim)
	if err != nil {
		webLogger.Error("Failed to store simulation", "error", err)
		return
	}
	s.Set(dashboardSimulationSessionKey, string(encoded))
}

// popSimulation returns the stored simulation and removes it from the
// session.
func popSimulation(s session.Session) (*backend.Simulation, bool) {
	encoded, ok := s.Get(dashboardSimulationSessionKey).(string)
	if !ok || encoded == "" {
		return nil, false
	}
	s.Delete(dashboardSimulationSessionKey)

	var sim backend.Simulation
	if err := json.Unmarshal([]byte(encoded), &sim); err != nil {
		webLogger.Warn("Discarding unreadable simulation", "error", err)
		return nil, false
	}

	return &sim, true
}
