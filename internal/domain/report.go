package domain

import "time"

// TraitScoreResult holds the normalized trait inventory outcome.
type TraitScoreResult struct {
	Percentiles  map[string]int    `json:"percentiles"`
	Descriptions map[string]string `json:"descriptions"`
	Summary      string            `json:"summary"`
	Strengths    []string          `json:"strengths"`
	Challenges   []string          `json:"challenges"`
	Implications []string          `json:"implications"`
}

// TypeCode holds the four signed axis strengths (-100..100) and the composed
// four-letter code in fixed axis order EI, SN, TF, JP.
type TypeCode struct {
	Code      string             `json:"code"`
	Strengths map[string]float64 `json:"strengths"`
}

// StyleProfile holds the four 0-100 factor scores and the primary style.
type StyleProfile struct {
	Scores       map[string]float64 `json:"scores"`
	PrimaryStyle string             `json:"primary_style"`
}

// PersonalityReport combines whatever instrument results are available.
// Assembled once, never mutated afterwards; a report with no completed
// instruments is valid.
type PersonalityReport struct {
	ID          string            `json:"id,omitempty"`
	UserID      string            `json:"user_id,omitempty"`
	BankVersion string            `json:"bank_version,omitempty"`
	Trait       *TraitScoreResult `json:"trait,omitempty"`
	Type        *TypeCode         `json:"type,omitempty"`
	Style       *StyleProfile     `json:"style,omitempty"`
	Completed   CompletionFlags   `json:"completed"`
	CreatedAt   time.Time         `json:"created_at,omitempty"`
}

// CompletionFlags records which instruments contributed to a report, so a
// partial report is distinguishable from a full one.
type CompletionFlags struct {
	Trait bool `json:"trait"`
	Type  bool `json:"type"`
	Style bool `json:"style"`
}
