/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"os"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

const (
	defaultSiteTitle      = "MetabolX"
	publicSiteTitleEnvVar = "PUBLIC_SITE_TITLE"
	dashboardPageTitle    = "Health Dashboard"
)

func siteTitle() string {
	title := strings.TrimSpace(os.Getenv(publicSiteTitleEnvVar))
	if title == "" {
		return defaultSiteTitle
	}
	return title
}

func setPublicSiteTitle(data template.Data) {
	data["SiteTitle"] = siteTitle()
	data["PageTitle"] = siteTitle()
}

func setDashboardPageTitle(data template.Data) {
	data["PageTitle"] = dashboardPageTitle + " · " + siteTitle()
}

// SiteTitleInjector sets the default page and site titles.
func SiteTitleInjector() flamego.Handler {
	return func(data template.Data) {
		setPublicSiteTitle(data)
	}
}
