// Package app wires configuration, vendor adapters and the pipeline into a
// runnable application.
package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"sales-call-insights-service/internal/config"
	"sales-call-insights-service/internal/events"
	"sales-call-insights-service/internal/observability/logging"
	"sales-call-insights-service/internal/service/analysis"
	analysismock "sales-call-insights-service/internal/service/analysis/mock"
	"sales-call-insights-service/internal/service/analysis/openai"
	"sales-call-insights-service/internal/service/insights"
	"sales-call-insights-service/internal/service/stt"
	"sales-call-insights-service/internal/service/stt/deepgram"
	sttmock "sales-call-insights-service/internal/service/stt/mock"
)

// Application holds process-wide state for the service.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Configuration
	Publisher   *events.Publisher
	Pipeline    *insights.Pipeline
}

// New constructs the application from the provided configuration, selecting
// vendor adapters per the provider settings.
func New(cfg *config.Configuration) (*Application, error) {
	logging.Init(logging.Config{
		Level:  cfg.Observability.LogLevel,
		Format: cfg.Observability.LogFormat,
	})
	logger := logging.WithComponent("application")

	transcriber, err := buildTranscriber(cfg)
	if err != nil {
		return nil, err
	}
	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	publisher := events.New(&events.Config{
		Enabled:   cfg.Kafka.Enabled,
		Brokers:   cfg.Kafka.Brokers,
		Topic:     cfg.Kafka.Topic,
		Principal: cfg.Service.Principal,
	})

	a := &Application{
		StartupTime: time.Now().UTC(),
		Logger:      logger,
		Cfg:         cfg,
		Publisher:   publisher,
		Pipeline:    insights.New(transcriber, analyzer, publisher),
	}

	if cfg.MissingCredentials() {
		logger.Warn().Msg("Vendor API keys missing, analyze requests will be rejected")
	}
	logger.Info().
		Str("transcriber", cfg.Providers.Transcriber).
		Str("analyzer", cfg.Providers.Analyzer).
		Msg("Sales call insights application created")
	return a, nil
}

// Shutdown performs a best-effort cleanup before process exit.
func (a *Application) Shutdown() {
	a.Logger.Info().Msg("Sales call insights service shutting down")
	if err := a.Publisher.Close(); err != nil {
		a.Logger.Error().Err(err).Msg("Error closing event publisher")
	}
}

func buildTranscriber(cfg *config.Configuration) (stt.Transcriber, error) {
	switch cfg.Providers.Transcriber {
	case "deepgram":
		dg := deepgram.DefaultConfig(cfg.Deepgram.APIKey)
		dg.Model = cfg.Deepgram.Model
		dg.Language = cfg.Deepgram.Language
		dg.SmartFormat = cfg.Deepgram.SmartFormat
		dg.Diarize = cfg.Deepgram.Diarize
		dg.Punctuate = cfg.Deepgram.Punctuate
		dg.FillerWords = cfg.Deepgram.FillerWords
		dg.UttSplit = cfg.Deepgram.UttSplit
		return deepgram.New(dg), nil
	case "mock":
		return sttmock.New(), nil
	default:
		return nil, fmt.Errorf("unknown transcriber provider: %s", cfg.Providers.Transcriber)
	}
}

func buildAnalyzer(cfg *config.Configuration) (analysis.Analyzer, error) {
	switch cfg.Providers.Analyzer {
	case "openai":
		oa := openai.DefaultConfig(cfg.OpenAI.APIKey)
		oa.Model = cfg.OpenAI.Model
		return openai.New(oa), nil
	case "mock":
		return analysismock.New(), nil
	default:
		return nil, fmt.Errorf("unknown analyzer provider: %s", cfg.Providers.Analyzer)
	}
}
