/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/metabolx/metabolx/backend"
)

const (
	reportDraftSessionKey    = "report_draft"
	reportAnalysisSessionKey = "report_analysis"
	reportFormField          = "text_report"

	emptyReportMessage = "Please enter your blood report text"
)

// ReportAnalyzer submits report text to the analysis backend.
type ReportAnalyzer interface {
	Analyze(ctx context.Context, text string) (backend.AnalyzeResponse, error)
}

// ReportForm renders the report submission page. The draft of a failed
// submission is restored into the form and an analysis-only response is
// shown once.
func ReportForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	if draft, ok := s.Get(reportDraftSessionKey).(string); ok {
		data["Draft"] = draft
	}

	if analysis, ok := s.Get(reportAnalysisSessionKey).(string); ok && analysis != "" {
		data["Analysis"] = analysis
		s.Delete(reportAnalysisSessionKey)
	}

	data["IsHome"] = true
	t.HTML(http.StatusOK, "index")
}

// SubmitReport posts the form text to the analysis backend and follows the
// redirect it returns.
func SubmitReport(analyzer ReportAnalyzer) flamego.Handler {
	return func(c flamego.Context, s session.Session) {
		if err := c.Request().ParseForm(); err != nil {
			SetErrorFlash(s, "Failed to parse form")
			c.Redirect("/", http.StatusSeeOther)
			return
		}

		text := c.Request().Form.Get(reportFormField)

		// Kept until the backend accepts the report so that a failure
		// returns to the form as it was.
		s.Set(reportDraftSessionKey, text)

		resp, err := analyzer.Analyze(c.Request().Context(), text)
		if err != nil {
			var appErr *backend.AppError

			switch {
			case errors.Is(err, backend.ErrEmptyReport):
				SetErrorFlash(s, emptyReportMessage)
			case errors.As(err, &appErr):
				SetErrorFlash(s, appErr.Message)
			default:
				webLogger.Error("Report analysis failed", "error", err)
				SetErrorFlash(s, "Error analyzing report: "+err.Error())
			}

			c.Redirect("/", http.StatusSeeOther)
			return
		}

		s.Delete(reportDraftSessionKey)

		if resp.Redirect != "" {
			c.Redirect(resp.Redirect, http.StatusSeeOther)
			return
		}

		if resp.Analysis != "" {
			s.Set(reportAnalysisSessionKey, resp.Analysis)
		} else {
			SetInfoFlash(s, "The report was submitted but no analysis was returned")
		}

		c.Redirect("/", http.StatusSeeOther)
	}
}
