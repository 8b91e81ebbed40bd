package batch

import "errors"

var (
	// ErrInvalidSource indicates the source is neither an existing media
	// file nor a recognized video URL.
	ErrInvalidSource = errors.New("invalid source")

	// ErrInvalidState indicates the operation is not allowed in the
	// queue's or job's current state.
	ErrInvalidState = errors.New("invalid state")

	// ErrAlreadyRunning indicates a batch run is already active.
	ErrAlreadyRunning = errors.New("batch already running")

	// ErrFileWrite indicates the transcript could not be written to disk.
	ErrFileWrite = errors.New("file write failed")
)
