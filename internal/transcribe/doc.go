package transcribe

// Package transcribe implements the speech-to-text pipeline built on external
// CLI tooling: ffmpeg/ffprobe for audio preprocessing and whisper.cpp for
// transcription. It also manages the local model catalog (with HuggingFace
// auto-download) and GPU availability detection.
