package domain

import (
	"context"

	"creditclear/internal/core/features"
	"creditclear/internal/core/scoring"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Features(ctx context.Context) ([]features.Definition, error)
	Groups(ctx context.Context) ([]FeatureGroup, error)
	Feature(ctx context.Context, name string) (features.Definition, error)
	Template(ctx context.Context) (string, error)
	Sample(ctx context.Context, seed uint64) (map[string]any, error)
	ExplainFeature(ctx context.Context, name string) (FeatureExplanation, error)

	Predict(ctx context.Context, in PredictInput) (PredictOutput, error)
	PredictBatch(ctx context.Context, csv string) (BatchOutput, error)
	WhatIf(ctx context.Context, in WhatIfInput) (WhatIfOutput, error)
	CompareScenarios(ctx context.Context, in CompareInput) (CompareOutput, error)

	Retrain(ctx context.Context) (RetrainOutput, error)
	ModelInfo(ctx context.Context) (scoring.ModelInfo, error)

	History(ctx context.Context, in HistoryInput) ([]HistoryRow, error)
	Prediction(ctx context.Context, id string) (HistoryRow, error)
	CategoryStats(ctx context.Context, in CategoryStatsInput) ([]CategoryCount, error)
}
