// Package analysis defines the interface for language-model call analysis
// and the fixed instruction and output schema sent with every request.
package analysis

import (
	"context"

	"sales-call-insights-service/internal/models"
)

// Analyzer extracts structured sales intelligence from a formatted,
// speaker-labeled transcript. Implementations wrap a single vendor API
// (OpenAI, mock) and must be safe for concurrent use.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (models.SalesAnalysis, error)
}
