package model

import (
	"fmt"
	"strings"
	"time"
)

// Segment is a single timed fragment of a transcript
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Timestamp returns the segment start formatted as HH:MM:SS
func (s Segment) Timestamp() string {
	total := int(s.Start.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormattedTranscript renders segments as "[HH:MM:SS] text" lines
func FormattedTranscript(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("[%s] %s\n", seg.Timestamp(), text))
	}
	return b.String()
}

// PlainTranscript joins segment texts into a single plain-text transcript
func PlainTranscript(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}
