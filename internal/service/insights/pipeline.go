// Package insights runs the call analysis pipeline: transcription, transcript
// formatting and language-model analysis, in strict sequence.
package insights

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"sales-call-insights-service/internal/events"
	"sales-call-insights-service/internal/models"
	"sales-call-insights-service/internal/observability/metrics"
	"sales-call-insights-service/internal/service/analysis"
	"sales-call-insights-service/internal/service/stt"
	"sales-call-insights-service/internal/service/transcript"
)

// NoSpeechSummary is the placeholder summary returned for silent uploads.
const NoSpeechSummary = "No speech detected"

// Pipeline coordinates the two vendor calls for one uploaded recording.
// Stateless across requests; every Run is one independent pass with no
// retries and no caching.
type Pipeline struct {
	transcriber stt.Transcriber
	analyzer    analysis.Analyzer
	publisher   *events.Publisher
	ids         *events.IDGenerator
	metrics     *metrics.Metrics
}

// New creates a pipeline over the given vendor adapters.
func New(transcriber stt.Transcriber, analyzer analysis.Analyzer, publisher *events.Publisher) *Pipeline {
	return &Pipeline{
		transcriber: transcriber,
		analyzer:    analyzer,
		publisher:   publisher,
		ids:         events.NewIDGenerator(),
		metrics:     metrics.DefaultMetrics,
	}
}

// NoSpeechResult is the fixed placeholder returned when transcription finds
// no words. The language model is never contacted for silence.
func NoSpeechResult() models.AnalysisResult {
	return models.AnalysisResult{
		Transcription: "",
		Analysis: models.SalesAnalysis{
			IsSalesCall:       false,
			Summary:           NoSpeechSummary,
			TopicsDiscussed:   []string{},
			CustomerSentiment: models.SentimentNeutral,
			ObjectionsRaised:  []string{},
			ActionItems:       []models.ActionItem{},
		},
	}
}

// Run executes one pass of the pipeline. The transcription and analysis
// calls happen in strict sequence since the second consumes the first's
// output. Vendor failure detail is logged here; the returned error carries
// only what the caller may see.
func (p *Pipeline) Run(ctx context.Context, audio []byte, contentType string) (models.AnalysisResult, error) {
	logger := log.With().Str("component", "pipeline").Logger()
	p.metrics.RecordUpload(len(audio))

	start := time.Now()
	words, err := p.transcriber.Transcribe(ctx, audio, contentType)
	if err != nil {
		logger.Error().Err(err).Msg("Transcription vendor call failed")
		p.metrics.RecordFailure(string(StageTranscription))
		return models.AnalysisResult{}, stageErr(StageTranscription, "Transcription failed")
	}
	p.metrics.RecordTranscription(len(words), time.Since(start).Seconds())

	transcription := transcript.Format(words)
	if transcription == "" {
		logger.Warn().Msg("No speech detected, skipping analysis")
		return NoSpeechResult(), nil
	}

	start = time.Now()
	salesAnalysis, err := p.analyzer.Analyze(ctx, transcription)
	if err != nil {
		logger.Error().Err(err).Msg("Call analysis failed")
		p.metrics.RecordFailure(string(StageAnalysis))
		return models.AnalysisResult{}, &Error{Stage: StageAnalysis, Err: err}
	}
	p.metrics.RecordAnalysis(salesAnalysis.IsSalesCall, time.Since(start).Seconds())

	result := models.AnalysisResult{
		Transcription: transcription,
		Analysis:      salesAnalysis,
	}
	p.publishAnalyzed(ctx, result, len(transcript.Group(words)))

	return result, nil
}

// publishAnalyzed emits the call-analyzed event. Publish failures are logged
// and never fail the request.
func (p *Pipeline) publishAnalyzed(ctx context.Context, result models.AnalysisResult, lineCount int) {
	if p.publisher == nil {
		return
	}
	ev := models.CallAnalyzedEvent{
		EventType:       "sales.call.analyzed",
		AnalysisID:      p.ids.Next(),
		Timestamp:       time.Now().UnixMilli(),
		IsSalesCall:     result.Analysis.IsSalesCall,
		Sentiment:       result.Analysis.CustomerSentiment,
		TranscriptLines: lineCount,
		ObjectionCount:  len(result.Analysis.ObjectionsRaised),
		ActionItemCount: len(result.Analysis.ActionItems),
	}
	if err := p.publisher.Publish(ctx, ev.AnalysisID, ev); err != nil {
		log.Error().Err(err).Str("analysisId", ev.AnalysisID).Msg("Failed to publish call-analyzed event")
	}
}
