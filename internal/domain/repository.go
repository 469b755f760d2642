package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RiskClassifier classifies free-text product information for gluten risk.
// Implementations must be total: every input yields a result.
type RiskClassifier interface {
	Analyze(productName, ingredients, barcode, additionalInfo string) ClassificationResult
}

// AnalysisRecorder receives the outcome of every classification (metrics, audit).
type AnalysisRecorder interface {
	RecordAnalysis(level RiskLevel, cached bool)
}
