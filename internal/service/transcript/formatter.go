// Package transcript converts flat word sequences from the transcription
// vendor into speaker-labeled transcript lines.
package transcript

import (
	"strings"

	"sales-call-insights-service/internal/models"
)

// Group folds a time-ordered word sequence into speaker turns. A new line
// starts whenever the speaker id changes. The concatenation of all returned
// lines, in order, reproduces the input word sequence exactly.
func Group(words []models.Word) []models.TranscriptLine {
	if len(words) == 0 {
		return nil
	}

	var lines []models.TranscriptLine
	current := words[0].Speaker
	buffer := make([]string, 0, len(words))

	for _, w := range words {
		if w.Speaker != current {
			lines = append(lines, models.TranscriptLine{Speaker: current, Words: buffer})
			buffer = make([]string, 0, len(words))
			current = w.Speaker
		}
		buffer = append(buffer, w.Text)
	}
	lines = append(lines, models.TranscriptLine{Speaker: current, Words: buffer})

	return lines
}

// Format renders the grouped transcript as newline-terminated lines in the
// form "Speaker <id>: <words>". An empty word sequence yields an empty
// string, which the pipeline treats as "no speech detected".
func Format(words []models.Word) string {
	lines := Group(words)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}
