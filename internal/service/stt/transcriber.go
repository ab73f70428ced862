// Package stt defines the interface for speech-to-text transcription
// providers.
package stt

import (
	"context"

	"sales-call-insights-service/internal/models"
)

// Transcriber converts a prerecorded audio payload into a time-ordered word
// sequence with speaker ids. Implementations wrap a single vendor API
// (Deepgram, mock) and must be safe for concurrent use.
type Transcriber interface {
	// Transcribe submits the full audio payload and blocks until the vendor
	// responds. contentType is the MIME type of the upload when known.
	// An empty word slice with a nil error means no speech was detected.
	Transcribe(ctx context.Context, audio []byte, contentType string) ([]models.Word, error)
}
