/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

// Result is the structured interpretation of a blood report produced by the
// analysis backend. It is decoded once per dashboard page load and never
// mutated afterwards.
type Result struct {
	PatientInfo      PatientInfo           `json:"patientInfo"`
	HealthScore      Number                `json:"healthScore"`
	CriticalMarkers  StringList            `json:"criticalMarkers"`
	ImprovementAreas StringList            `json:"improvementAreas"`
	DetailedAnalysis string                `json:"detailedAnalysis"`
	Medicines        []Medicine            `json:"medicines"`
	Metrics          []Metric              `json:"metrics"`
	Metabolism       []MetabolismComponent `json:"metabolism"`
	Recommendations  *Recommendations      `json:"recommendations"`
	AnalysisDate     string                `json:"analysisDate,omitempty"`
}

// PatientInfo holds the demographic and history fields shown in the patient
// panel. Scalars are kept as display text since the backend is inconsistent
// about sending them as numbers or strings.
type PatientInfo struct {
	Name        Text       `json:"name"`
	Age         Text       `json:"age"`
	Gender      Text       `json:"gender"`
	BMI         Text       `json:"bmi"`
	Ethnicity   Text       `json:"ethnicity"`
	Conditions  StringList `json:"conditions"`
	Medications StringList `json:"medications"`
	Allergies   StringList `json:"allergies"`
}

// Medicine is a single recommendation. The backend sorts medicines by
// descending score; the order is kept as received.
type Medicine struct {
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Score            Number     `json:"score"`
	Description      string     `json:"description"`
	PrimaryUse       string     `json:"primaryUse"`
	Mechanism        string     `json:"mechanism"`
	Dosage           string     `json:"dosage"`
	Warnings         StringList `json:"warnings"`
	Interactions     StringList `json:"interactions"`
	SideEffects      StringList `json:"sideEffects"`
	MonitoringNeeded StringList `json:"monitoringNeeded"`
	Alternatives     StringList `json:"alternatives"`
}

// Metric is a lab value paired with its reference value.
type Metric struct {
	Name        string `json:"name"`
	Value       Number `json:"value"`
	NormalValue Number `json:"normalValue"`
}

// Status classifies the metric against its reference value.
func (m Metric) Status() Status {
	return Classify(m.Value.Float(), m.NormalValue.Float())
}

// MetabolismComponent is one slice of the metabolic type breakdown.
type MetabolismComponent struct {
	Type       string `json:"type"`
	Percentage Number `json:"percentage"`
}

// Recommendations groups the three advice lists.
type Recommendations struct {
	Lifestyle StringList `json:"lifestyle"`
	Diet      StringList `json:"diet"`
	FollowUp  StringList `json:"followUp"`
}
