package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-call-insights-service/internal/models"
)

// completionFixture builds a minimal chat completions response whose message
// content is the given string.
func completionFixture(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func newTestAnalyzer(srvURL string) *Analyzer {
	cfg := DefaultConfig("test-key")
	cfg.BaseURL = srvURL + "/v1"
	return New(cfg)
}

func TestAnalyze_ParsesResponse(t *testing.T) {
	var gotBody struct {
		Model          string  `json:"model"`
		Temperature    float64 `json:"temperature"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionFixture(`{
			"is_sales_call": true,
			"customer_name": null,
			"summary": "Renewal discussed.",
			"topics_discussed": ["renewal"],
			"customer_sentiment": "Neutral",
			"objections_raised": [],
			"action_items": []
		}`))
	}))
	defer srv.Close()

	a := newTestAnalyzer(srv.URL)
	got, err := a.Analyze(context.Background(), "Speaker 0: Hello\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CustomerSentiment != models.SentimentNeutral {
		t.Errorf("unexpected sentiment: %s", got.CustomerSentiment)
	}
	if gotBody.Model != "gpt-4o" {
		t.Errorf("unexpected model: %s", gotBody.Model)
	}
	if gotBody.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", gotBody.Temperature)
	}
	if gotBody.ResponseFormat.Type != "json_object" {
		t.Errorf("expected json_object response format, got %s", gotBody.ResponseFormat.Type)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %v", gotBody.Messages)
	}
	if gotBody.Messages[1].Content != "Speaker 0: Hello\n" {
		t.Errorf("transcript should be the user turn, got %q", gotBody.Messages[1].Content)
	}
}

func TestAnalyze_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionFixture("sorry, I cannot help with that"))
	}))
	defer srv.Close()

	a := newTestAnalyzer(srv.URL)
	if _, err := a.Analyze(context.Background(), "Speaker 0: Hello\n"); err == nil {
		t.Fatal("expected parse error for non-JSON content")
	}
}

func TestAnalyze_VendorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAnalyzer(srv.URL)
	if _, err := a.Analyze(context.Background(), "Speaker 0: Hello\n"); err == nil {
		t.Fatal("expected error on vendor failure")
	}
}
