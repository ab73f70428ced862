// Package models defines the data structures exchanged across the
// transcription and analysis pipeline.
package models

import (
	"fmt"
	"strings"
)

// Word is one recognized token from the transcription vendor.
// Text carries the punctuated form when the vendor supplies one.
type Word struct {
	Text    string `json:"text"`
	Speaker int    `json:"speaker"`
}

// TranscriptLine is one contiguous run of words attributed to a single
// speaker.
type TranscriptLine struct {
	Speaker int      `json:"speaker"`
	Words   []string `json:"words"`
}

// String renders the line in the dashboard label format.
func (l TranscriptLine) String() string {
	return fmt.Sprintf("Speaker %d: %s", l.Speaker, strings.Join(l.Words, " "))
}
