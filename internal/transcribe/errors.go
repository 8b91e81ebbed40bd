package transcribe

import "errors"

// Common error types for the transcribe package
var (
	// ErrModelLoad indicates that the requested model/device combination could
	// not be initialized (missing model file, failed download, engine refused
	// to load the model)
	ErrModelLoad = errors.New("model load failed")

	// ErrTranscription indicates a runtime transcription failure (corrupt
	// media, unsupported codec, engine crash)
	ErrTranscription = errors.New("transcription failed")
)
