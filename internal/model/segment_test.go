package model

import (
	"testing"
	"time"
)

func TestSegment_Timestamp(t *testing.T) {
	tests := []struct {
		start    time.Duration
		expected string
	}{
		{0, "00:00:00"},
		{30 * time.Second, "00:00:30"},
		{90 * time.Second, "00:01:30"},
		{3661 * time.Second, "01:01:01"},
	}

	for _, test := range tests {
		seg := Segment{Start: test.start}
		if got := seg.Timestamp(); got != test.expected {
			t.Errorf("Timestamp() for %v = %s, expected %s", test.start, got, test.expected)
		}
	}
}

func TestFormattedTranscript(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 2 * time.Second, Text: " Hello world."},
		{Start: 2 * time.Second, End: 5 * time.Second, Text: ""},
		{Start: 65 * time.Second, End: 70 * time.Second, Text: "Second line."},
	}

	expected := "[00:00:00] Hello world.\n[00:01:05] Second line.\n"
	if got := FormattedTranscript(segments); got != expected {
		t.Errorf("FormattedTranscript() = %q, expected %q", got, expected)
	}
}

func TestPlainTranscript(t *testing.T) {
	segments := []Segment{
		{Text: " Hello world."},
		{Text: ""},
		{Text: "Second line. "},
	}

	expected := "Hello world. Second line."
	if got := PlainTranscript(segments); got != expected {
		t.Errorf("PlainTranscript() = %q, expected %q", got, expected)
	}

	if got := PlainTranscript(nil); got != "" {
		t.Errorf("PlainTranscript(nil) = %q, expected empty", got)
	}
}
