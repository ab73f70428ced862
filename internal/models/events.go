package models

// CallAnalyzedEvent is published after a call has been analyzed
// successfully. Downstream consumers (CRM sync, reporting) key off
// AnalysisID.
type CallAnalyzedEvent struct {
	EventType       string    `json:"eventType"`
	AnalysisID      string    `json:"analysisId"`
	Timestamp       int64     `json:"timestamp"`
	IsSalesCall     bool      `json:"isSalesCall"`
	Sentiment       Sentiment `json:"sentiment"`
	TranscriptLines int       `json:"transcriptLines"`
	ObjectionCount  int       `json:"objectionCount"`
	ActionItemCount int       `json:"actionItemCount"`
}
