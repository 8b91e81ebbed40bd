package download

import "errors"

var (
	// ErrDownload indicates yt-dlp failed to fetch the source.
	// Wrapped errors carry the underlying cause.
	ErrDownload = errors.New("download failed")
)
