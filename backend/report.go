/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package backend

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"

	"github.com/metabolx/metabolx/analysis"
)

// DefaultSimulationWeeks is the simulated period when none is given.
const DefaultSimulationWeeks = 4

// ReportData is the analysis as sent to POST /email_report. Lists are never
// null.
type ReportData struct {
	PatientName      string                         `json:"patientName"`
	Age              analysis.Text                  `json:"age"`
	Gender           analysis.Text                  `json:"gender"`
	BMI              analysis.Text                  `json:"bmi"`
	Ethnicity        analysis.Text                  `json:"ethnicity"`
	Conditions       []string                       `json:"conditions"`
	Medications      []string                       `json:"medications"`
	Allergies        []string                       `json:"allergies"`
	HealthScore      analysis.Number                `json:"healthScore"`
	CriticalMarkers  []string                       `json:"criticalMarkers"`
	ImprovementAreas []string                       `json:"improvementAreas"`
	Medicines        []analysis.Medicine            `json:"medicines"`
	Metabolism       []analysis.MetabolismComponent `json:"metabolism"`
	Analysis         ReportAnalysis                 `json:"analysis"`
}

// ReportAnalysis is the free-text part of an emailed report.
type ReportAnalysis struct {
	Recommendations  []string `json:"recommendations"`
	FollowUpPlan     string   `json:"followUpPlan,omitempty"`
	DetailedAnalysis string   `json:"detailedAnalysis,omitempty"`
}

// NewReportData flattens an analysis result into the emailed report layout.
// Lifestyle and diet advice become the recommendation list and follow-up
// advice becomes the follow-up plan.
func NewReportData(r *analysis.Result) ReportData {
	if r == nil {
		r = &analysis.Result{}
	}

	info := r.PatientInfo
	data := ReportData{
		PatientName:      string(info.Name),
		Age:              info.Age,
		Gender:           info.Gender,
		BMI:              info.BMI,
		Ethnicity:        info.Ethnicity,
		Conditions:       nonNil(info.Conditions),
		Medications:      nonNil(info.Medications),
		Allergies:        nonNil(info.Allergies),
		HealthScore:      r.HealthScore,
		CriticalMarkers:  nonNil(r.CriticalMarkers),
		ImprovementAreas: nonNil(r.ImprovementAreas),
		Medicines:        r.Medicines,
		Metabolism:       r.Metabolism,
		Analysis: ReportAnalysis{
			Recommendations:  []string{},
			DetailedAnalysis: r.DetailedAnalysis,
		},
	}

	if data.Medicines == nil {
		data.Medicines = []analysis.Medicine{}
	}
	if data.Metabolism == nil {
		data.Metabolism = []analysis.MetabolismComponent{}
	}

	if rec := r.Recommendations; rec != nil {
		data.Analysis.Recommendations = append(data.Analysis.Recommendations, rec.Lifestyle...)
		data.Analysis.Recommendations = append(data.Analysis.Recommendations, rec.Diet...)
		data.Analysis.FollowUpPlan = strings.Join(rec.FollowUp, " ")
	}

	return data
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

type emailRequest struct {
	Email      string     `json:"email"`
	ReportData ReportData `json:"reportData"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// EmailReport asks the backend to email the report as a PDF to address.
// The address is checked before anything is sent.
func (c *Client) EmailReport(ctx context.Context, address string, report ReportData) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrEmptyEmail
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return ErrInvalidEmail
	}

	var out successResponse
	status, err := c.post(ctx, "/email_report", emailRequest{Email: address, ReportData: report}, &out)
	if err != nil {
		return err
	}

	if out.Error != "" {
		logger.Warn("Backend failed to email report", "status", status, "error", out.Error)
		return &AppError{Message: out.Error}
	}

	if !out.Success || status < 200 || status > 299 {
		return fmt.Errorf("%w: status %d without success", ErrTransport, status)
	}

	logger.Info("Report emailed")

	return nil
}

// SimulationChange is the predicted change of one health area, in percent.
type SimulationChange struct {
	Metric      string  `json:"metric"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
}

// Simulation is the what-if outcome for a scenario.
type Simulation struct {
	Prompt      string             `json:"prompt"`
	Weeks       int                `json:"weeks"`
	HealthScore float64            `json:"simulatedHealthScore"`
	Changes     []SimulationChange `json:"predictedChanges"`
	Details     string             `json:"simulationDetails"`
}

type simulateRequest struct {
	Prompt          string          `json:"prompt"`
	Period          int             `json:"period"`
	CurrentAnalysis currentAnalysis `json:"currentAnalysis"`
}

type currentAnalysis struct {
	HealthScore float64 `json:"healthScore"`
}

type simulateResponse struct {
	successResponse
	Simulation
}

// Simulate asks the backend how the health score would change if the
// scenario in prompt were followed for the given number of weeks. A
// non-positive period uses DefaultSimulationWeeks.
func (c *Client) Simulate(ctx context.Context, prompt string, weeks int, current *analysis.Result) (Simulation, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Simulation{}, ErrEmptyPrompt
	}
	if weeks <= 0 {
		weeks = DefaultSimulationWeeks
	}

	score := 0.0
	if current != nil {
		score = current.HealthScore.Float()
		if math.IsNaN(score) {
			score = 0
		}
	}

	req := simulateRequest{
		Prompt:          prompt,
		Period:          weeks,
		CurrentAnalysis: currentAnalysis{HealthScore: score},
	}

	var out simulateResponse
	status, err := c.post(ctx, "/simulate", req, &out)
	if err != nil {
		return Simulation{}, err
	}

	if out.Error != "" {
		logger.Warn("Backend failed to simulate", "status", status, "error", out.Error)
		return Simulation{}, &AppError{Message: out.Error}
	}

	if !out.Success || status < 200 || status > 299 {
		return Simulation{}, fmt.Errorf("%w: status %d without success", ErrTransport, status)
	}

	sim := out.Simulation
	sim.Prompt = prompt
	sim.Weeks = weeks

	logger.Info("Scenario simulated", "weeks", weeks, "changes", len(sim.Changes))

	return sim, nil
}
