package model

import (
	"testing"
	"time"
)

func TestTranscriptionJob_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title     string
		source    string
		kind      SourceKind
		mediaPath string
		expected  string
	}{
		{"Conference Talk", "https://youtube.com/watch?v=123", SourceKindYouTube, "", "Conference Talk"},
		{"", "https://youtube.com/watch?v=123", SourceKindYouTube, "", "https://youtube.com/watch?v=123"},
		{"", "/home/user/talk.mp4", SourceKindLocal, "", "talk"},
		{"", "https://youtu.be/abc", SourceKindYouTube, "/tmp/downloads/Some Talk.mp3", "Some Talk"},
		{"http://not-a-title", "/home/user/lecture.wav", SourceKindLocal, "", "lecture"},
	}

	for _, test := range tests {
		job := &TranscriptionJob{
			Title:     test.title,
			Source:    test.source,
			Kind:      test.kind,
			MediaPath: test.mediaPath,
		}
		result := job.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', source='%s' = '%s', expected '%s'",
				test.title, test.source, result, test.expected)
		}
	}
}

func TestTranscriptionJob_GetElapsedString(t *testing.T) {
	job := &TranscriptionJob{}
	if got := job.GetElapsedString(); got != "—" {
		t.Errorf("GetElapsedString() before start = %s, expected —", got)
	}

	start := time.Now().Add(-90 * time.Second)
	job.StartedAt = start
	job.FinishedAt = start.Add(90 * time.Second)
	if got := job.GetElapsedString(); got != "01:30" {
		t.Errorf("GetElapsedString() for 90s = %s, expected 01:30", got)
	}

	job.FinishedAt = start.Add(3661 * time.Second)
	if got := job.GetElapsedString(); got != "01:01:01" {
		t.Errorf("GetElapsedString() for 3661s = %s, expected 01:01:01", got)
	}
}

func TestTranscriptionJob_Creation(t *testing.T) {
	now := time.Now()
	job := &TranscriptionJob{
		ID:        "job-123",
		Source:    "/media/talk.mp4",
		Kind:      SourceKindLocal,
		Status:    JobStatusPending,
		Progress:  0.0,
		Percent:   0,
		StartedAt: now,
	}

	if job.ID != "job-123" {
		t.Errorf("Expected ID to be 'job-123', got '%s'", job.ID)
	}

	if job.Status != JobStatusPending {
		t.Errorf("Expected status to be JobStatusPending, got %s", job.Status)
	}

	if !job.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, job.StartedAt)
	}
}
