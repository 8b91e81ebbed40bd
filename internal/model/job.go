package model

import (
	"fmt"
	"strings"
	"time"
)

// SourceKind tells whether a job's source is a local file or a YouTube URL
type SourceKind string

const (
	// SourceKindLocal means the source is a file on disk
	SourceKindLocal SourceKind = "local"

	// SourceKindYouTube means the source is a YouTube URL that must be downloaded first
	SourceKindYouTube SourceKind = "youtube"
)

// TranscriptionJob represents a single unit of work in the batch queue
type TranscriptionJob struct {
	ID         string
	Source     string     // original file path or URL as entered
	Kind       SourceKind // local or youtube
	Status     JobStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	MediaPath  string  // resolved local media file (equals Source for local jobs)
	OutputPath string  // path to the transcript text file
	Text       string  // transcript text once completed
	Segments   []Segment
	Title      string    // video title for downloaded sources
	StartedAt  time.Time // when processing started
	FinishedAt time.Time // when processing finished
}

// GetDisplayTitle returns title, media filename, or the raw source in order of preference
func (j *TranscriptionJob) GetDisplayTitle() string {
	// First priority: video title (non-URL)
	if j.Title != "" && !strings.HasPrefix(j.Title, "http") {
		return j.Title
	}

	// Second priority: filename from MediaPath or a local Source
	path := j.MediaPath
	if path == "" && j.Kind == SourceKindLocal {
		path = j.Source
	}
	if path != "" {
		// Extract just the filename without path (support both / and \ separators)
		parts := strings.FieldsFunc(path, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			// Remove file extension for cleaner display
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	// Fallback: raw source (preserve full URL for tests; UI can compact if needed)
	return j.Source
}

// GetElapsedString returns the processing time formatted as mm:ss or hh:mm:ss, or "—" before start
func (j *TranscriptionJob) GetElapsedString() string {
	if j.StartedAt.IsZero() {
		return "—"
	}

	end := j.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}

	total := int(end.Sub(j.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
