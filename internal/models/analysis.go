package models

// Sentiment is a categorical judgment of the prospect's disposition.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
	SentimentHostile  Sentiment = "Hostile"
)

// Valid reports whether s is a member of the closed sentiment set.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentHostile:
		return true
	}
	return false
}

// ActionItem is a task extracted from the conversation, optionally with an
// approximate due time.
type ActionItem struct {
	Task    string  `json:"task"`
	DueDate *string `json:"due_date"`
}

// SalesAnalysis is the structured intelligence extracted from one call.
// Content is sourced entirely from the language model; the service only
// enforces the shape.
type SalesAnalysis struct {
	IsSalesCall       bool         `json:"is_sales_call"`
	CustomerName      *string      `json:"customer_name"`
	Summary           string       `json:"summary"`
	TopicsDiscussed   []string     `json:"topics_discussed"`
	CustomerSentiment Sentiment    `json:"customer_sentiment"`
	ObjectionsRaised  []string     `json:"objections_raised"`
	ActionItems       []ActionItem `json:"action_items"`
}

// AnalysisResult is the sole output contract of the pipeline and the sole
// input contract of the dashboard.
type AnalysisResult struct {
	Transcription string        `json:"transcription"`
	Analysis      SalesAnalysis `json:"analysis"`
}
