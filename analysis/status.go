/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "math"

// Status is the classification of a metric against its reference value.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// deviationThreshold is the relative deviation allowed before a metric
// leaves the normal band. The warning band ends at twice this value.
const deviationThreshold = 0.2

// Classify maps a value and its reference to a status. A zero reference
// collapses both bands, so any deviation from it is critical.
func Classify(value, normal float64) Status {
	d := math.Abs(value - normal)

	switch {
	case d <= deviationThreshold*normal:
		return StatusNormal
	case d <= deviationThreshold*2*normal:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// Label returns the badge text for the status.
func (s Status) Label() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusWarning:
		return "Monitor"
	default:
		return "Critical"
	}
}
