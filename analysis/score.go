/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

// Tier is a three-level bucket for 0-100 scores. The same cut points are
// used for the overall health score and for each medicine score.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

const (
	highScoreCutoff   = 80
	mediumScoreCutoff = 60
)

// ScoreTier buckets a score: >= 80 high, >= 60 medium, otherwise low.
func ScoreTier(score float64) Tier {
	switch {
	case score >= highScoreCutoff:
		return TierHigh
	case score >= mediumScoreCutoff:
		return TierMedium
	default:
		return TierLow
	}
}

// HealthLabel is the banner text for an overall health score in this tier.
func (t Tier) HealthLabel() string {
	switch t {
	case TierHigh:
		return "Excellent"
	case TierMedium:
		return "Good"
	default:
		return "Needs Attention"
	}
}

// BadgeClass is the status-badge class shared with metric statuses.
func (t Tier) BadgeClass() string {
	switch t {
	case TierHigh:
		return string(StatusNormal)
	case TierMedium:
		return string(StatusWarning)
	default:
		return string(StatusCritical)
	}
}

// TextColor is the text colour class for a medicine score.
func (t Tier) TextColor() string {
	switch t {
	case TierHigh:
		return "text-success-color"
	case TierMedium:
		return "text-warning-color"
	default:
		return "text-danger-color"
	}
}

// EfficacyClass is the class of the efficacy bar fill.
func (t Tier) EfficacyClass() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// EfficacyLabel is the human readable efficacy level.
func (t Tier) EfficacyLabel() string {
	switch t {
	case TierHigh:
		return "High Efficacy"
	case TierMedium:
		return "Moderate Efficacy"
	default:
		return "Low Efficacy"
	}
}
