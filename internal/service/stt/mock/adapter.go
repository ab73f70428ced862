// Package mock provides a canned stt.Transcriber for local runs and tests
// without vendor credentials.
package mock

import (
	"context"
	"sync"

	"sales-call-insights-service/internal/models"
)

// DefaultWords is the conversation returned when no custom words are set.
var DefaultWords = []models.Word{
	{Text: "Good", Speaker: 0},
	{Text: "morning,", Speaker: 0},
	{Text: "I'm", Speaker: 0},
	{Text: "calling", Speaker: 0},
	{Text: "about", Speaker: 0},
	{Text: "the", Speaker: 0},
	{Text: "renewal.", Speaker: 0},
	{Text: "Sure,", Speaker: 1},
	{Text: "what's", Speaker: 1},
	{Text: "the", Speaker: 1},
	{Text: "new", Speaker: 1},
	{Text: "price?", Speaker: 1},
}

// Adapter implements stt.Transcriber with canned responses. It records each
// invocation so tests can assert whether and how it was called.
type Adapter struct {
	mu    sync.Mutex
	words []models.Word
	err   error
	calls int
}

// New returns a mock adapter producing DefaultWords.
func New() *Adapter {
	return &Adapter{words: DefaultWords}
}

// NewWithWords returns a mock adapter producing the given word sequence.
func NewWithWords(words []models.Word) *Adapter {
	return &Adapter{words: words}
}

// NewWithError returns a mock adapter that fails every call.
func NewWithError(err error) *Adapter {
	return &Adapter{err: err}
}

// Transcribe returns the canned words or error.
func (a *Adapter) Transcribe(ctx context.Context, audio []byte, contentType string) ([]models.Word, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.words, nil
}

// Calls returns how many times Transcribe was invoked.
func (a *Adapter) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}
