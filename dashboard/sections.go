/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	htmltemplate "html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/metabolx/metabolx/analysis"
)

const (
	notAvailable  = "N/A"
	dateLayout    = "Jan 2, 2006"
	payloadLayout = "2006-01-02"
)

// ========== Header ==========

// Header is the top summary: date, health score banner, markers and the
// free-form analysis text.
type Header struct {
	Date             string
	Score            string
	ScoreLabel       string
	ScoreBadge       string
	CriticalMarkers  []string
	ImprovementAreas []string
	DetailedAnalysis htmltemplate.HTML
}

func renderHeader(ctx Context, r *analysis.Result) Header {
	score := r.HealthScore.Float()
	if math.IsNaN(score) {
		score = 0
	}
	tier := analysis.ScoreTier(score)

	scoreText := r.HealthScore.String()
	if scoreText == "" {
		scoreText = "0"
	}

	return Header{
		Date:             analysisDate(ctx, r.AnalysisDate),
		Score:            scoreText,
		ScoreLabel:       tier.HealthLabel(),
		ScoreBadge:       tier.BadgeClass(),
		CriticalMarkers:  r.CriticalMarkers,
		ImprovementAreas: r.ImprovementAreas,
		DetailedAnalysis: SanitizeMarkup(r.DetailedAnalysis),
	}
}

func analysisDate(ctx Context, stamped string) string {
	if stamped != "" {
		if t, err := time.Parse(payloadLayout, strings.TrimSpace(stamped)); err == nil {
			return t.Format(dateLayout)
		}
	}
	return ctx.now().Format(dateLayout)
}

// ========== Patient panel ==========

// Field is a labelled scalar.
type Field struct {
	Label string
	Value string
}

// ListBlock is a list with the text shown when it has no entries.
type ListBlock struct {
	Items       []string
	Placeholder string
}

// PatientPanel is the patient information card.
type PatientPanel struct {
	Name        string
	Fields      []Field
	Conditions  ListBlock
	Medications ListBlock
	Allergies   ListBlock
}

func renderPatientPanel(info analysis.PatientInfo) PatientPanel {
	return PatientPanel{
		Name: info.Name.OrNA(),
		Fields: []Field{
			{Label: "Name", Value: info.Name.OrNA()},
			{Label: "Age", Value: info.Age.OrNA()},
			{Label: "Gender", Value: info.Gender.OrNA()},
			{Label: "BMI", Value: info.BMI.OrNA()},
			{Label: "Ethnicity", Value: info.Ethnicity.OrNA()},
		},
		Conditions:  listBlock(info.Conditions, "No conditions reported"),
		Medications: listBlock(info.Medications, "No medications reported"),
		Allergies:   listBlock(info.Allergies, "No allergies reported"),
	}
}

func listBlock(items []string, placeholder string) ListBlock {
	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		trimmed = append(trimmed, strings.TrimSpace(item))
	}
	return ListBlock{Items: trimmed, Placeholder: placeholder}
}

// ========== Medicines ==========

// MedicineCard is the view of a single medicine.
type MedicineCard struct {
	Name           string
	Category       string
	Score          string
	ScoreColor     string
	EfficacyClass  string
	EfficacyLabel  string
	EfficacyWidth  int
	Description    string
	PrimaryUse     string
	Mechanism      string
	Dosage         string
	Warnings       []string
	Interactions   []string
	SideEffects    []string
	Monitoring     []string
	Alternatives   []string
	KeyWarning     string
	KeyInteraction string
}

// HasDetails reports whether the collapsed card has anything to expand.
func (m MedicineCard) HasDetails() bool {
	return m.Mechanism != "" || len(m.SideEffects) > 0 || len(m.Monitoring) > 0 || len(m.Alternatives) > 0
}

// MedicinePanel holds the top pick and the remaining cards. It is nil when
// there are no medicines.
type MedicinePanel struct {
	Top    MedicineCard
	Others []MedicineCard
}

func renderMedicinePanel(medicines []analysis.Medicine) *MedicinePanel {
	if len(medicines) == 0 {
		return nil
	}

	panel := &MedicinePanel{
		Top:    topMedicineCard(medicines[0]),
		Others: make([]MedicineCard, 0, len(medicines)-1),
	}
	for _, m := range medicines[1:] {
		panel.Others = append(panel.Others, medicineCard(m))
	}

	return panel
}

func medicineCard(m analysis.Medicine) MedicineCard {
	score := m.Score.Float()
	if math.IsNaN(score) {
		score = 0
	}
	tier := analysis.ScoreTier(score)

	scoreText := m.Score.String()
	if scoreText == "" {
		scoreText = "0"
	}

	return MedicineCard{
		Name:           orNA(m.Name),
		Category:       m.Category,
		Score:          scoreText,
		ScoreColor:     tier.TextColor(),
		EfficacyClass:  tier.EfficacyClass(),
		EfficacyLabel:  tier.EfficacyLabel(),
		EfficacyWidth:  int(math.Round(math.Max(0, math.Min(100, score)))),
		Description:    m.Description,
		PrimaryUse:     orNA(m.PrimaryUse),
		Mechanism:      m.Mechanism,
		Dosage:         orNA(m.Dosage),
		Warnings:       m.Warnings,
		Interactions:   m.Interactions,
		SideEffects:    m.SideEffects,
		Monitoring:     m.MonitoringNeeded,
		Alternatives:   m.Alternatives,
		KeyWarning:     m.Warnings.First(),
		KeyInteraction: m.Interactions.First(),
	}
}

// topMedicineCard shows every scalar field, with N/A for the missing ones.
func topMedicineCard(m analysis.Medicine) MedicineCard {
	card := medicineCard(m)
	card.Category = orNA(m.Category)
	card.Description = orNA(m.Description)
	card.Mechanism = orNA(m.Mechanism)
	return card
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// ========== Metrics ==========

// MetricsView selects which metrics view is visible.
type MetricsView string

const (
	MetricsChartView MetricsView = "chart"
	MetricsTableView MetricsView = "table"
)

// ParseMetricsView returns the table view for "table" and the chart view for
// anything else.
func ParseMetricsView(s string) MetricsView {
	if strings.EqualFold(strings.TrimSpace(s), string(MetricsTableView)) {
		return MetricsTableView
	}
	return MetricsChartView
}

// MetricRow is a row of the metrics table.
type MetricRow struct {
	Name        string
	Value       string
	NormalValue string
	Status      analysis.Status
	StatusLabel string
}

// MetricsSection renders the same metrics twice; exactly one view is shown.
type MetricsSection struct {
	View      MetricsView
	ShowChart bool
	ShowTable bool
	Chart     htmltemplate.HTML
	Rows      []MetricRow
}

func renderMetrics(ctx Context, metrics []analysis.Metric, view MetricsView) *MetricsSection {
	if len(metrics) == 0 {
		return nil
	}

	section := &MetricsSection{
		View:      view,
		ShowChart: view != MetricsTableView,
		ShowTable: view == MetricsTableView,
		Rows:      make([]MetricRow, 0, len(metrics)),
	}

	for _, m := range metrics {
		status := m.Status()
		section.Rows = append(section.Rows, MetricRow{
			Name:        m.Name,
			Value:       m.Value.String(),
			NormalValue: m.NormalValue.String(),
			Status:      status,
			StatusLabel: status.Label(),
		})
	}

	chart, err := generateMetricsChart(ctx, metrics)
	if err != nil {
		ctx.logger().Warn("Failed to render metrics chart", "error", err)
	}
	section.Chart = chart

	return section
}

// ========== Metabolism ==========

// MetabolismLine is one "type: percentage%" entry.
type MetabolismLine struct {
	Type       string
	Percentage string
}

// MetabolismSection is the chart and the derived insight.
type MetabolismSection struct {
	Dominant        string
	Lines           []MetabolismLine
	Recommendations []string
	Chart           htmltemplate.HTML
}

func renderMetabolism(ctx Context, components []analysis.MetabolismComponent) *MetabolismSection {
	dominant, ok := analysis.DominantMetabolism(components)
	if !ok {
		return nil
	}

	dominantType := strings.ToLower(dominant.Type)

	section := &MetabolismSection{
		Dominant: dominantType,
		Lines:    make([]MetabolismLine, 0, len(components)),
		Recommendations: []string{
			"Adjust diet according to your " + dominantType + " metabolism",
			"Focus on balanced nutrient intake",
			"Consider metabolic optimization supplements",
		},
	}

	for _, c := range components {
		section.Lines = append(section.Lines, MetabolismLine{
			Type:       c.Type,
			Percentage: c.Percentage.String(),
		})
	}

	chart, err := generateMetabolismChart(ctx, components)
	if err != nil {
		ctx.logger().Warn("Failed to render metabolism chart", "error", err)
	}
	section.Chart = chart

	return section
}

// ========== Recommendations ==========

// RecommendationsSection holds the three advice lists. Empty lists are not
// shown.
type RecommendationsSection struct {
	Lifestyle []string
	Diet      []string
	FollowUp  []string
}

// IsEmpty reports whether all lists are empty.
func (r RecommendationsSection) IsEmpty() bool {
	return len(r.Lifestyle) == 0 && len(r.Diet) == 0 && len(r.FollowUp) == 0
}

func renderRecommendations(rec *analysis.Recommendations) RecommendationsSection {
	if rec == nil {
		return RecommendationsSection{}
	}
	return RecommendationsSection{
		Lifestyle: rec.Lifestyle,
		Diet:      rec.Diet,
		FollowUp:  rec.FollowUp,
	}
}

// ========== Trends ==========

// TrendsSection shows the simulated score history.
type TrendsSection struct {
	Previous  string
	Current   string
	Projected string
	Chart     htmltemplate.HTML
}

func renderTrends(ctx Context, score analysis.Number) TrendsSection {
	current := score.Float()
	if math.IsNaN(current) {
		current = 0
	}

	points := ctx.trends().Trend(current)

	chart, err := generateTrendChart(ctx, points)
	if err != nil {
		ctx.logger().Warn("Failed to render trend chart", "error", err)
	}

	return TrendsSection{
		Previous:  formatScore(points.Previous),
		Current:   formatScore(points.Current),
		Projected: formatScore(points.Projected),
		Chart:     chart,
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
