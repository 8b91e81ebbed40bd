package download

// Package download fetches YouTube audio for transcription jobs on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It reports download progress
// through a callback and resolves the resulting local media file path.
