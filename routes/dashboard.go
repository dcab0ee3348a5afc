/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/metabolx/metabolx/dashboard"
)

const dashboardDataParam = "data"

// ViewDashboard renders the analysis payload from the "data" query
// parameter. A malformed payload renders with placeholders.
func ViewDashboard(o *dashboard.Orchestrator) flamego.Handler {
	return func(c flamego.Context, s session.Session, t template.Template, data template.Data) {
		raw := c.Query(dashboardDataParam)
		view := dashboard.ParseMetricsView(c.Query("metrics"))

		d := o.Render(raw, view)

		data["Dashboard"] = d
		data["MetricsChartURL"] = dashboardURL(raw, dashboard.MetricsChartView)
		data["MetricsTableURL"] = dashboardURL(raw, dashboard.MetricsTableView)
		data["ShareQRURL"] = "/dashboard/qr?" + url.Values{dashboardDataParam: {raw}}.Encode()
		data["DashboardData"] = raw
		data["MetricsView"] = string(view)
		data["SimulationPeriods"] = simulationPeriods
		if sim, ok := popSimulation(s); ok {
			data["Simulation"] = sim
		}
		data["IsDashboard"] = true
		setDashboardPageTitle(data)

		t.HTML(http.StatusOK, "dashboard")
	}
}

func dashboardURL(raw string, view dashboard.MetricsView) string {
	q := url.Values{}
	q.Set(dashboardDataParam, raw)
	q.Set("metrics", string(view))
	return "/dashboard?" + q.Encode()
}

// DashboardQRCode serves a PNG QR code linking to the dashboard for the same
// payload.
func DashboardQRCode(c flamego.Context) {
	raw := c.Query(dashboardDataParam)

	target := url.URL{
		Scheme:   requestScheme(c),
		Host:     c.Request().Host,
		Path:     "/dashboard",
		RawQuery: url.Values{dashboardDataParam: {raw}}.Encode(),
	}

	png, err := dashboard.ShareQRCode(target.String())
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dashboard.ErrShareURLTooLong) {
			status = http.StatusRequestEntityTooLarge
		}

		webLogger.Warn("Failed to build share QR code", "error", err, "length", len(raw))
		http.Error(c.ResponseWriter(), http.StatusText(status), status)
		return
	}

	header := c.ResponseWriter().Header()
	header.Set("Content-Type", "image/png")
	header.Set("Content-Length", strconv.Itoa(len(png)))
	c.ResponseWriter().WriteHeader(http.StatusOK)
	_, _ = c.ResponseWriter().Write(png)
}

func requestScheme(c flamego.Context) string {
	if proto := c.Request().Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		return proto
	}
	if c.Request().TLS != nil {
		return "https"
	}
	return "http"
}
