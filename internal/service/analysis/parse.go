package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"sales-call-insights-service/internal/models"
)

// rawAnalysis probes for required keys with pointer fields so a response
// that omits part of the schema is rejected instead of silently defaulted.
type rawAnalysis struct {
	IsSalesCall       *bool                `json:"is_sales_call"`
	CustomerName      *string              `json:"customer_name"`
	Summary           *string              `json:"summary"`
	TopicsDiscussed   *[]string            `json:"topics_discussed"`
	CustomerSentiment *string              `json:"customer_sentiment"`
	ObjectionsRaised  *[]string            `json:"objections_raised"`
	ActionItems       *[]models.ActionItem `json:"action_items"`
}

// Parse decodes a language-model response into a SalesAnalysis, enforcing
// the schema from SystemPrompt: all required keys present, sentiment in the
// closed set, null rejected for the required arrays. customer_name and
// due_date stay optional.
func Parse(payload []byte) (models.SalesAnalysis, error) {
	var raw rawAnalysis
	if err := json.Unmarshal(stripFences(payload), &raw); err != nil {
		return models.SalesAnalysis{}, fmt.Errorf("malformed analysis JSON: %w", err)
	}

	var missing []string
	if raw.IsSalesCall == nil {
		missing = append(missing, "is_sales_call")
	}
	if raw.Summary == nil {
		missing = append(missing, "summary")
	}
	if raw.TopicsDiscussed == nil {
		missing = append(missing, "topics_discussed")
	}
	if raw.CustomerSentiment == nil {
		missing = append(missing, "customer_sentiment")
	}
	if raw.ObjectionsRaised == nil {
		missing = append(missing, "objections_raised")
	}
	if raw.ActionItems == nil {
		missing = append(missing, "action_items")
	}
	if len(missing) > 0 {
		return models.SalesAnalysis{}, fmt.Errorf("analysis missing required fields: %s", strings.Join(missing, ", "))
	}

	sentiment := models.Sentiment(*raw.CustomerSentiment)
	if !sentiment.Valid() {
		return models.SalesAnalysis{}, fmt.Errorf("invalid customer_sentiment %q", *raw.CustomerSentiment)
	}

	return models.SalesAnalysis{
		IsSalesCall:       *raw.IsSalesCall,
		CustomerName:      raw.CustomerName,
		Summary:           *raw.Summary,
		TopicsDiscussed:   *raw.TopicsDiscussed,
		CustomerSentiment: sentiment,
		ObjectionsRaised:  *raw.ObjectionsRaised,
		ActionItems:       *raw.ActionItems,
	}, nil
}

// stripFences removes a markdown code fence if the model wrapped its output
// despite the instruction not to.
func stripFences(payload []byte) []byte {
	s := strings.TrimSpace(string(payload))
	if !strings.HasPrefix(s, "```") {
		return payload
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
