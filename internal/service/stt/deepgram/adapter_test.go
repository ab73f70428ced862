package deepgram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig("test-key")
	cfg.BaseURL = baseURL
	return cfg
}

func TestTranscribe_MapsWords(t *testing.T) {
	var gotAuth, gotContentType string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": {"channels": [{"alternatives": [{
				"transcript": "Hello there. Hi yes.",
				"words": [
					{"word": "hello", "punctuated_word": "Hello", "speaker": 0},
					{"word": "there", "punctuated_word": "there.", "speaker": 0},
					{"word": "hi", "punctuated_word": "Hi", "speaker": 1},
					{"word": "yes", "speaker": 1}
				]
			}]}]}
		}`))
	}))
	defer srv.Close()

	adapter := New(testConfig(srv.URL))
	words, err := adapter.Transcribe(context.Background(), []byte("audio-bytes"), "audio/wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Token test-key" {
		t.Errorf("expected Token auth header, got %q", gotAuth)
	}
	if gotContentType != "audio/wav" {
		t.Errorf("expected audio/wav content type, got %q", gotContentType)
	}
	for key, want := range map[string]string{
		"model":        "nova-2",
		"language":     "hi",
		"diarize":      "true",
		"smart_format": "true",
		"punctuate":    "true",
		"filler_words": "true",
		"utt_split":    "0.5",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query %s: expected %q, got %v", key, want, got)
		}
	}

	if len(words) != 4 {
		t.Fatalf("expected 4 words, got %d", len(words))
	}
	// Punctuated form preferred, plain word as fallback.
	if words[1].Text != "there." {
		t.Errorf("expected punctuated word, got %q", words[1].Text)
	}
	if words[3].Text != "yes" {
		t.Errorf("expected fallback to plain word, got %q", words[3].Text)
	}
	if words[2].Speaker != 1 {
		t.Errorf("expected speaker 1, got %d", words[2].Speaker)
	}
}

func TestTranscribe_VendorErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"err_code": "Bad Request", "err_msg": "unsupported encoding"}`))
	}))
	defer srv.Close()

	adapter := New(testConfig(srv.URL))
	_, err := adapter.Transcribe(context.Background(), []byte("x"), "")
	if err == nil {
		t.Fatal("expected error when response carries err_msg")
	}
	if !strings.Contains(err.Error(), "unsupported encoding") {
		t.Errorf("expected vendor message in error, got %v", err)
	}
}

func TestTranscribe_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	adapter := New(testConfig(srv.URL))
	_, err := adapter.Transcribe(context.Background(), []byte("x"), "")
	if err == nil {
		t.Fatal("expected error on non-2xx status")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestTranscribe_NoChannels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": {"channels": []}}`))
	}))
	defer srv.Close()

	adapter := New(testConfig(srv.URL))
	words, err := adapter.Transcribe(context.Background(), []byte("x"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("expected no words, got %d", len(words))
	}
}

func TestTranscribe_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	adapter := New(testConfig(srv.URL))
	if _, err := adapter.Transcribe(ctx, []byte("x"), ""); err == nil {
		t.Fatal("expected error when context is cancelled")
	}
}
