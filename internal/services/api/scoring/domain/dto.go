// Package domain holds DTOs for scoring http and service contracts
package domain

import (
	"time"

	"creditclear/internal/core/batch"
	"creditclear/internal/core/features"
	"creditclear/internal/core/schema"
	"creditclear/internal/core/scoring"
	"creditclear/internal/core/whatif"
)

// Source tags where a recorded prediction came from
type Source string

// Prediction sources
const (
	SourceSingle  Source = "single"
	SourceBatch   Source = "batch"
	SourceWhatIf  Source = "whatif"
	SourceCompare Source = "compare"
)

// PredictInput scores one raw record
type PredictInput struct {
	Features schema.RawRecord `json:"features" validate:"required" swaggertype:"object"`
	// Narrate asks the text service for extra prose, falling back to a fixed sentence
	Narrate bool `json:"narrate,omitempty" example:"false"`
}

// PredictOutput is one scored record
type PredictOutput struct {
	PredictionID  string                       `json:"prediction_id" example:"2b1f0c9e-6a51-4e0c-9a8e-0f4c1d2e3f40"`
	PartnerID     string                       `json:"partner_id,omitempty" example:"partner_1042"`
	Category      scoring.Category             `json:"category" example:"Good"`
	Probabilities map[scoring.Category]float64 `json:"probabilities"`
	Explanation   string                       `json:"explanation"`
	Narrative     string                       `json:"narrative,omitempty"`
	Score         float64                      `json:"score" example:"75"`
	Confidence    float64                      `json:"confidence" example:"0.75"`
	Contributions []scoring.Contribution       `json:"contributions,omitempty"`
	Model         scoring.ModelInfo            `json:"model"`
}

// BatchInput carries CSV text when the body is JSON rather than text/csv
type BatchInput struct {
	CSV string `json:"csv" validate:"required" example:"partner_id,credit_score\npartner_1,720"`
}

// BatchRow is one scored CSV row
type BatchRow struct {
	Row          int            `json:"row" example:"2"`
	PredictionID string         `json:"prediction_id"`
	PartnerID    string         `json:"partner_id,omitempty" example:"partner_1"`
	Result       scoring.Result `json:"result"`
}

// BatchOutput lists successes in input order plus the rows that were dropped
type BatchOutput struct {
	BatchID        string            `json:"batch_id"`
	Rows           int               `json:"rows" example:"3"`
	Scored         int               `json:"scored" example:"2"`
	Results        []BatchRow        `json:"results"`
	Skipped        []batch.Rejection `json:"skipped,omitempty"`
	UnknownColumns []string          `json:"unknown_columns,omitempty"`
}

// WhatIfInput compares a baseline record against an edited copy
type WhatIfInput struct {
	Baseline schema.RawRecord `json:"baseline" validate:"required" swaggertype:"object"`
	Modified schema.RawRecord `json:"modified" validate:"required" swaggertype:"object"`
}

// WhatIfOutput is the comparator delta
type WhatIfOutput struct {
	whatif.Delta
	Improved bool `json:"improved"`
}

// CompareInput holds two partner scenarios
type CompareInput struct {
	ScenarioA schema.RawRecord `json:"scenario_a" validate:"required" swaggertype:"object"`
	ScenarioB schema.RawRecord `json:"scenario_b" validate:"required" swaggertype:"object"`
}

// CompareOutput scores both scenarios and carries a comparative narrative
type CompareOutput struct {
	ScenarioA scoring.Result `json:"scenario_a"`
	ScenarioB scoring.Result `json:"scenario_b"`
	// Stronger is "A", "B" or "tie" by raw score
	Stronger  string `json:"stronger" example:"A"`
	Analysis  string `json:"analysis"`
	Generated bool   `json:"generated"`
}

// FeatureGroup is one display group with its features
type FeatureGroup struct {
	Name     string                `json:"name" example:"Financial"`
	Features []features.Definition `json:"features"`
}

// FeatureExplanation is prose about one feature
type FeatureExplanation struct {
	Feature     string `json:"feature" example:"savings_rate"`
	Explanation string `json:"explanation"`
	Generated   bool   `json:"generated"`
}

// RetrainOutput acknowledges a retrain request
type RetrainOutput struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Model retraining completed successfully!"`
}

// HistoryInput filters recorded predictions
type HistoryInput struct {
	PartnerID string `json:"partner_id,omitempty" validate:"omitempty,max=200" example:"partner_1042"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
}

// HistoryRow is one recorded prediction
type HistoryRow struct {
	ID            string                       `json:"id"`
	PartnerID     string                       `json:"partner_id,omitempty"`
	Source        Source                       `json:"source" example:"single"`
	Category      scoring.Category             `json:"category" example:"Fair"`
	Score         float64                      `json:"score" example:"60"`
	Confidence    float64                      `json:"confidence" example:"0.6"`
	Probabilities map[scoring.Category]float64 `json:"probabilities"`
	Features      map[string]any               `json:"features,omitempty"`
	BatchID       string                       `json:"batch_id,omitempty"`
	CreatedAt     time.Time                    `json:"created_at"`
}

// CategoryStatsInput selects the analytics window in days
type CategoryStatsInput struct {
	Days int `json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// CategoryCount is the number of predictions landing in a band
type CategoryCount struct {
	Category scoring.Category `json:"category" example:"Good"`
	Count    uint64           `json:"count" example:"128"`
}
