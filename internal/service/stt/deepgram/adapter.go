// Package deepgram implements stt.Transcriber against the Deepgram
// prerecorded listen API.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"sales-call-insights-service/internal/models"
)

const defaultBaseURL = "https://api.deepgram.com"

// Config holds the transcription options sent with every request.
type Config struct {
	APIKey      string
	BaseURL     string // defaults to the Deepgram API
	Model       string
	Language    string
	SmartFormat bool
	Diarize     bool
	Punctuate   bool
	FillerWords bool
	UttSplit    float64 // utterance split threshold in seconds

	HTTPClient *http.Client
}

// DefaultConfig returns the transcription options tuned for field sales
// calls: diarization on, punctuation and smart formatting on, filler words
// kept, and a low utterance split threshold to catch quick speaker turns.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:      apiKey,
		BaseURL:     defaultBaseURL,
		Model:       "nova-2",
		Language:    "hi",
		SmartFormat: true,
		Diarize:     true,
		Punctuate:   true,
		FillerWords: true,
		UttSplit:    0.5,
	}
}

// Adapter implements stt.Transcriber over the Deepgram REST API.
type Adapter struct {
	cfg    Config
	client *http.Client
}

// New creates a Deepgram adapter from the given config.
func New(cfg Config) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Adapter{cfg: cfg, client: client}
}

// Wire types for the prerecorded listen response. Only the fields the
// pipeline consumes are mapped.

type listenResponse struct {
	ErrCode string         `json:"err_code"`
	ErrMsg  string         `json:"err_msg"`
	Results *listenResults `json:"results"`
}

type listenResults struct {
	Channels []listenChannel `json:"channels"`
}

type listenChannel struct {
	Alternatives []listenAlternative `json:"alternatives"`
}

type listenAlternative struct {
	Transcript string       `json:"transcript"`
	Words      []listenWord `json:"words"`
}

type listenWord struct {
	Word           string `json:"word"`
	PunctuatedWord string `json:"punctuated_word"`
	Speaker        int    `json:"speaker"`
}

// Transcribe posts the audio payload to /v1/listen and maps the first
// channel's first alternative into the pipeline word model.
func (a *Adapter) Transcribe(ctx context.Context, audio []byte, contentType string) ([]models.Word, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.listenURL(), bytes.NewReader(audio))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+a.cfg.APIKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("deepgram read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("deepgram http %d: %s", resp.StatusCode, string(body))
	}

	var lr listenResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("deepgram decode response: %w", err)
	}

	// The API can report an error inside an otherwise successful response.
	if lr.ErrCode != "" || lr.ErrMsg != "" {
		return nil, fmt.Errorf("deepgram error %s: %s", lr.ErrCode, lr.ErrMsg)
	}

	if lr.Results == nil || len(lr.Results.Channels) == 0 {
		log.Warn().Str("component", "deepgram").Msg("response carried no channels")
		return nil, nil
	}
	// Mono audio: take the first channel's first alternative.
	channel := lr.Results.Channels[0]
	if len(channel.Alternatives) == 0 {
		return nil, nil
	}

	alt := channel.Alternatives[0]
	words := make([]models.Word, 0, len(alt.Words))
	for _, w := range alt.Words {
		text := w.PunctuatedWord
		if text == "" {
			text = w.Word
		}
		words = append(words, models.Word{Text: text, Speaker: w.Speaker})
	}
	return words, nil
}

func (a *Adapter) listenURL() string {
	q := url.Values{}
	q.Set("model", a.cfg.Model)
	q.Set("language", a.cfg.Language)
	q.Set("smart_format", strconv.FormatBool(a.cfg.SmartFormat))
	q.Set("diarize", strconv.FormatBool(a.cfg.Diarize))
	q.Set("punctuate", strconv.FormatBool(a.cfg.Punctuate))
	q.Set("filler_words", strconv.FormatBool(a.cfg.FillerWords))
	q.Set("utt_split", strconv.FormatFloat(a.cfg.UttSplit, 'f', -1, 64))
	return a.cfg.BaseURL + "/v1/listen?" + q.Encode()
}
