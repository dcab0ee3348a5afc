// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/metabolx/metabolx/analysis"
	"github.com/metabolx/metabolx/backend"
	"github.com/metabolx/metabolx/dashboard"
)

type stubReportSender struct {
	err     error
	address string
	report  backend.ReportData
	calls   int
}

func (s *stubReportSender) EmailReport(_ context.Context, address string, report backend.ReportData) error {
	s.calls++
	s.address = address
	s.report = report
	return s.err
}

type stubSimulator struct {
	sim    backend.Simulation
	err    error
	prompt string
	weeks  int
	score  float64
}

func (s *stubSimulator) Simulate(_ context.Context, prompt string, weeks int, current *analysis.Result) (backend.Simulation, error) {
	s.prompt = prompt
	s.weeks = weeks
	if current != nil {
		s.score = current.HealthScore.Float()
	}
	if s.err != nil {
		return backend.Simulation{}, s.err
	}
	sim := s.sim
	sim.Prompt = prompt
	sim.Weeks = weeks
	return sim, nil
}

func newDashboardActionsApp(s *testSession, sender ReportSender, sim ScenarioSimulator) (*flamego.Flame, template.Data) {
	data := template.Data{}
	f := newTestApp(s, &templateStub{}, data)
	f.Post("/dashboard/email", EmailDashboardReport(sender))
	f.Post("/dashboard/simulate", SimulateScenario(sim))
	return f, data
}

func dashboardActionForm(extra url.Values) url.Values {
	form := url.Values{"data": {dashboardPayload}, "metrics": {"table"}}
	for k, v := range extra {
		form[k] = v
	}
	return form
}

func TestEmailDashboardReport(t *testing.T) {
	t.Parallel()

	back := dashboardURL(dashboardPayload, dashboard.MetricsTableView)

	tests := []struct {
		name      string
		email     string
		err       error
		wantType  FlashType
		wantFlash string
	}{
		{name: "sent", email: " jane@example.com ", wantType: FlashSuccess, wantFlash: "Report sent to jane@example.com"},
		{name: "empty address", err: backend.ErrEmptyEmail, wantType: FlashError, wantFlash: "Please enter an email address"},
		{name: "invalid address", email: "jane", err: backend.ErrInvalidEmail, wantType: FlashError, wantFlash: "Please enter a valid email address"},
		{name: "backend error", email: "jane@example.com", err: &backend.AppError{Message: "SMTP unavailable"}, wantType: FlashError, wantFlash: "SMTP unavailable"},
		{
			name: "transport error", email: "jane@example.com", err: backend.ErrTransport,
			wantType: FlashError, wantFlash: "Error sending report: " + backend.ErrTransport.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			sender := &stubReportSender{err: tt.err}
			f, _ := newDashboardActionsApp(s, sender, &stubSimulator{})

			rec := performFormPOST(t, f, "/dashboard/email", dashboardActionForm(url.Values{"email": {tt.email}}))

			assertRedirect(t, rec, back)
			assertFlash(t, s, tt.wantType, tt.wantFlash)
			if sender.calls != 1 {
				t.Fatalf("expected one send, got %d", sender.calls)
			}
		})
	}
}

func TestEmailDashboardReportSendsAnalysis(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	sender := &stubReportSender{}
	f, _ := newDashboardActionsApp(s, sender, &stubSimulator{})

	performFormPOST(t, f, "/dashboard/email", dashboardActionForm(url.Values{"email": {"jane@example.com"}}))

	if sender.address != "jane@example.com" {
		t.Fatalf("unexpected address %q", sender.address)
	}
	if sender.report.PatientName != "<b>Jane</b>" || sender.report.HealthScore.Float() != 85 {
		t.Fatalf("unexpected report %#v", sender.report)
	}
}

func TestEmailDashboardReportMalformedPayload(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	sender := &stubReportSender{}
	f, _ := newDashboardActionsApp(s, sender, &stubSimulator{})

	form := url.Values{"data": {"{not json"}, "email": {"jane@example.com"}}
	rec := performFormPOST(t, f, "/dashboard/email", form)

	assertRedirect(t, rec, dashboardURL("{not json", dashboard.MetricsChartView))
	assertFlash(t, s, FlashError, "Could not read the report data")
	if sender.calls != 0 {
		t.Fatal("expected no send for a malformed payload")
	}
}

func TestSimulateScenario(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	sim := &stubSimulator{sim: backend.Simulation{
		HealthScore: 90,
		Changes:     []backend.SimulationChange{{Metric: "LDL", Impact: -12, Description: "Lower"}},
	}}
	f, _ := newDashboardActionsApp(s, &stubReportSender{}, sim)

	form := dashboardActionForm(url.Values{"prompt": {"Walk daily"}, "period": {"12"}})
	rec := performFormPOST(t, f, "/dashboard/simulate", form)

	assertRedirect(t, rec, dashboardURL(dashboardPayload, dashboard.MetricsTableView))
	assertNoFlash(t, s)
	if sim.prompt != "Walk daily" || sim.weeks != 12 || sim.score != 85 {
		t.Fatalf("unexpected simulation request %q %d %v", sim.prompt, sim.weeks, sim.score)
	}

	stored, ok := popSimulation(s)
	if !ok {
		t.Fatal("expected stored simulation")
	}
	if stored.HealthScore != 90 || stored.Weeks != 12 || len(stored.Changes) != 1 {
		t.Fatalf("unexpected stored simulation %#v", stored)
	}
	if _, ok := popSimulation(s); ok {
		t.Fatal("expected simulation to be shown once")
	}
}

func TestSimulateScenarioDefaultsPeriod(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	sim := &stubSimulator{}
	f, _ := newDashboardActionsApp(s, &stubReportSender{}, sim)

	performFormPOST(t, f, "/dashboard/simulate", dashboardActionForm(url.Values{"prompt": {"Sleep more"}, "period": {"soon"}}))

	if sim.weeks != backend.DefaultSimulationWeeks {
		t.Fatalf("expected default period, got %d", sim.weeks)
	}
}

func TestSimulateScenarioErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantFlash string
	}{
		{name: "empty prompt", err: backend.ErrEmptyPrompt, wantFlash: "Please describe a scenario to simulate"},
		{name: "backend error", err: &backend.AppError{Message: "Model overloaded"}, wantFlash: "Model overloaded"},
		{name: "transport error", err: backend.ErrTransport, wantFlash: "Error running simulation: " + backend.ErrTransport.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			f, _ := newDashboardActionsApp(s, &stubReportSender{}, &stubSimulator{err: tt.err})

			rec := performFormPOST(t, f, "/dashboard/simulate", dashboardActionForm(url.Values{"prompt": {"x"}}))

			assertRedirect(t, rec, dashboardURL(dashboardPayload, dashboard.MetricsTableView))
			assertFlash(t, s, FlashError, tt.wantFlash)
			if _, ok := popSimulation(s); ok {
				t.Fatal("expected no stored simulation on error")
			}
		})
	}
}

func TestViewDashboardShowsSimulationOnce(t *testing.T) {
	t.Parallel()

	app, data := newDashboardTestApp(t)
	s := app.session
	saveSimulation(s, backend.Simulation{Prompt: "Walk daily", Weeks: 8, HealthScore: 88})

	q := url.Values{"data": {dashboardPayload}}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard?"+q.Encode(), nil))

	sim, ok := data["Simulation"].(*backend.Simulation)
	if !ok || sim.Prompt != "Walk daily" || sim.Weeks != 8 {
		t.Fatalf("expected simulation in template data, got %#v", data["Simulation"])
	}
	if _, ok := popSimulation(s); ok {
		t.Fatal("expected simulation to be consumed by the render")
	}
	if data["DashboardData"] != dashboardPayload {
		t.Fatalf("expected raw payload for the action forms, got %v", data["DashboardData"])
	}
}
