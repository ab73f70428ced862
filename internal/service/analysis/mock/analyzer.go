// Package mock provides a canned analysis.Analyzer for local runs and tests
// without vendor credentials.
package mock

import (
	"context"
	"sync"

	"sales-call-insights-service/internal/models"
)

// DefaultAnalysis is returned when no custom analysis is set.
var DefaultAnalysis = models.SalesAnalysis{
	IsSalesCall:       true,
	Summary:           "Renewal pricing discussed. Customer is waiting on a revised quote.",
	TopicsDiscussed:   []string{"renewal", "pricing"},
	CustomerSentiment: models.SentimentNeutral,
	ObjectionsRaised:  []string{"price too high"},
	ActionItems: []models.ActionItem{
		{Task: "Send revised quote"},
	},
}

// Analyzer implements analysis.Analyzer with canned responses. It records
// each invocation so tests can assert whether the language model was
// contacted.
type Analyzer struct {
	mu       sync.Mutex
	analysis models.SalesAnalysis
	err      error
	calls    int
}

// New returns a mock analyzer producing DefaultAnalysis.
func New() *Analyzer {
	return &Analyzer{analysis: DefaultAnalysis}
}

// NewWithAnalysis returns a mock analyzer producing the given analysis.
func NewWithAnalysis(a models.SalesAnalysis) *Analyzer {
	return &Analyzer{analysis: a}
}

// NewWithError returns a mock analyzer that fails every call.
func NewWithError(err error) *Analyzer {
	return &Analyzer{err: err}
}

// Analyze returns the canned analysis or error.
func (a *Analyzer) Analyze(ctx context.Context, transcript string) (models.SalesAnalysis, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return models.SalesAnalysis{}, a.err
	}
	return a.analysis, nil
}

// Calls returns how many times Analyze was invoked.
func (a *Analyzer) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}
