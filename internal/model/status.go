package model

// JobStatus represents the status of a transcription job
type JobStatus string

const (
	// JobStatusPending means the job is queued but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusDownloading means the source media is being downloaded
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusTranscribing means speech-to-text is in progress
	JobStatusTranscribing JobStatus = "Transcribing"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"

	// JobStatusCancelled means the job was skipped by a batch cancellation
	JobStatusCancelled JobStatus = "Cancelled"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is currently being processed
func (js JobStatus) IsActive() bool {
	return js == JobStatusDownloading || js == JobStatusTranscribing
}

// IsFinished returns true if the job is in a terminal state (completed, error, or cancelled)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusError || js == JobStatusCancelled
}
