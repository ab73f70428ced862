package transcript

import (
	"fmt"
	"reflect"
	"testing"

	"sales-call-insights-service/internal/models"
)

func TestFormat_SpeakerTurns(t *testing.T) {
	words := []models.Word{
		{Text: "Hello", Speaker: 0},
		{Text: "there", Speaker: 0},
		{Text: "Hi", Speaker: 1},
		{Text: "yes", Speaker: 1},
	}

	got := Format(words)
	want := "Speaker 0: Hello there\nSpeaker 1: Hi yes\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormat_Empty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("expected empty string for empty input, got %q", got)
	}
	if lines := Group(nil); len(lines) != 0 {
		t.Errorf("expected no lines for empty input, got %d", len(lines))
	}
}

func TestGroup_SingleSpeaker(t *testing.T) {
	words := []models.Word{
		{Text: "one", Speaker: 3},
		{Text: "two", Speaker: 3},
		{Text: "three", Speaker: 3},
	}

	lines := Group(words)
	if len(lines) != 1 {
		t.Fatalf("expected exactly 1 line for single speaker, got %d", len(lines))
	}
	if lines[0].Speaker != 3 {
		t.Errorf("expected speaker 3, got %d", lines[0].Speaker)
	}
	if len(lines[0].Words) != 3 {
		t.Errorf("expected 3 words, got %d", len(lines[0].Words))
	}
}

func TestGroup_AlternatingSpeakers(t *testing.T) {
	var words []models.Word
	for i := 0; i < 8; i++ {
		words = append(words, models.Word{Text: fmt.Sprintf("w%d", i), Speaker: i % 2})
	}

	lines := Group(words)
	if len(lines) != len(words) {
		t.Errorf("expected one line per word when speaker alternates, got %d lines for %d words",
			len(lines), len(words))
	}
}

func TestGroup_RoundTrip(t *testing.T) {
	words := []models.Word{
		{Text: "Good", Speaker: 0},
		{Text: "morning,", Speaker: 0},
		{Text: "Hello.", Speaker: 1},
		{Text: "I", Speaker: 1},
		{Text: "wanted", Speaker: 1},
		{Text: "Sure.", Speaker: 0},
		{Text: "Thanks,", Speaker: 2},
		{Text: "bye.", Speaker: 2},
	}

	lines := Group(words)

	var rebuilt []models.Word
	for _, line := range lines {
		for _, w := range line.Words {
			rebuilt = append(rebuilt, models.Word{Text: w, Speaker: line.Speaker})
		}
	}

	if !reflect.DeepEqual(words, rebuilt) {
		t.Errorf("round trip lost or reordered words:\n in: %v\nout: %v", words, rebuilt)
	}
}

func TestTranscriptLine_String(t *testing.T) {
	line := models.TranscriptLine{Speaker: 1, Words: []string{"Hi", "yes"}}
	if got := line.String(); got != "Speaker 1: Hi yes" {
		t.Errorf("unexpected line format: %q", got)
	}
}
