package batch

// Package batch queues transcription jobs and processes them one at a time
// on a single background worker. Jobs run in FIFO order; cancellation is
// cooperative and takes effect between jobs, never inside an external call.
