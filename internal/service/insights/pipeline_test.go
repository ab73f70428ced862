package insights

import (
	"context"
	"errors"
	"testing"

	"sales-call-insights-service/internal/events"
	"sales-call-insights-service/internal/models"
	analysismock "sales-call-insights-service/internal/service/analysis/mock"
	sttmock "sales-call-insights-service/internal/service/stt/mock"
)

func disabledPublisher() *events.Publisher {
	return events.New(&events.Config{Enabled: false})
}

func TestRun_Success(t *testing.T) {
	transcriber := sttmock.NewWithWords([]models.Word{
		{Text: "Hello", Speaker: 0},
		{Text: "there", Speaker: 0},
		{Text: "Hi", Speaker: 1},
		{Text: "yes", Speaker: 1},
	})
	analyzer := analysismock.New()
	p := New(transcriber, analyzer, disabledPublisher())

	result, err := p.Run(context.Background(), []byte("audio"), "audio/wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Speaker 0: Hello there\nSpeaker 1: Hi yes\n"
	if result.Transcription != want {
		t.Errorf("expected transcription %q, got %q", want, result.Transcription)
	}
	if result.Analysis.Summary != analysismock.DefaultAnalysis.Summary {
		t.Errorf("unexpected analysis summary: %q", result.Analysis.Summary)
	}
	if analyzer.Calls() != 1 {
		t.Errorf("expected 1 analyzer call, got %d", analyzer.Calls())
	}
}

func TestRun_NoSpeechSkipsAnalyzer(t *testing.T) {
	transcriber := sttmock.NewWithWords(nil)
	analyzer := analysismock.New()
	p := New(transcriber, analyzer, disabledPublisher())

	result, err := p.Run(context.Background(), []byte("silence"), "audio/wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analyzer.Calls() != 0 {
		t.Errorf("analyzer should not be called for silence, got %d calls", analyzer.Calls())
	}
	if result.Transcription != "" {
		t.Errorf("expected empty transcription, got %q", result.Transcription)
	}
	if result.Analysis.Summary != NoSpeechSummary {
		t.Errorf("expected placeholder summary, got %q", result.Analysis.Summary)
	}
	if result.Analysis.IsSalesCall {
		t.Error("expected is_sales_call false for silence")
	}
	if result.Analysis.CustomerSentiment != models.SentimentNeutral {
		t.Errorf("expected Neutral sentiment, got %s", result.Analysis.CustomerSentiment)
	}
	if result.Analysis.TopicsDiscussed == nil || result.Analysis.ObjectionsRaised == nil || result.Analysis.ActionItems == nil {
		t.Error("placeholder collections must be empty, not null")
	}
}

func TestRun_TranscriptionFailureIsGeneric(t *testing.T) {
	transcriber := sttmock.NewWithError(errors.New("deepgram http 401: invalid credentials"))
	analyzer := analysismock.New()
	p := New(transcriber, analyzer, disabledPublisher())

	_, err := p.Run(context.Background(), []byte("audio"), "audio/wav")
	if err == nil {
		t.Fatal("expected error")
	}

	// Vendor detail stays in the logs; the caller sees the generic message.
	if err.Error() != "Transcription failed" {
		t.Errorf("expected generic message, got %q", err.Error())
	}
	var perr *Error
	if !errors.As(err, &perr) || perr.Stage != StageTranscription {
		t.Errorf("expected transcription-stage error, got %v", err)
	}
	if analyzer.Calls() != 0 {
		t.Errorf("analyzer should not run after transcription failure, got %d calls", analyzer.Calls())
	}
}

func TestRun_AnalysisFailure(t *testing.T) {
	transcriber := sttmock.New()
	analyzer := analysismock.NewWithError(errors.New("malformed analysis JSON: invalid character 's'"))
	p := New(transcriber, analyzer, disabledPublisher())

	_, err := p.Run(context.Background(), []byte("audio"), "audio/wav")
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *Error
	if !errors.As(err, &perr) || perr.Stage != StageAnalysis {
		t.Errorf("expected analysis-stage error, got %v", err)
	}
}
