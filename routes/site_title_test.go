// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"testing"

	"github.com/flamego/template"
)

func TestSetPublicSiteTitleUsesEnvironmentValue(t *testing.T) {
	t.Setenv(publicSiteTitleEnvVar, "  Clinic Reports  ")

	data := template.Data{}
	setPublicSiteTitle(data)

	title, _ := data["PageTitle"].(string)
	if title != "Clinic Reports" {
		t.Fatalf("expected public site title from environment, got %q", title)
	}
}

func TestSetPublicSiteTitleFallsBackToDefault(t *testing.T) {
	t.Setenv(publicSiteTitleEnvVar, "   ")

	data := template.Data{}
	setPublicSiteTitle(data)

	title, _ := data["SiteTitle"].(string)
	if title != defaultSiteTitle {
		t.Fatalf("expected default site title %q, got %q", defaultSiteTitle, title)
	}
}

func TestSetDashboardPageTitle(t *testing.T) {
	t.Setenv(publicSiteTitleEnvVar, "")

	data := template.Data{}
	setDashboardPageTitle(data)

	title, _ := data["PageTitle"].(string)
	if title != "Health Dashboard · MetabolX" {
		t.Fatalf("unexpected dashboard title %q", title)
	}
}
