package download

import "context"

// Progress carries one progress snapshot of a running download
type Progress struct {
	Percent int    // 0..100, -1 when total size is unknown
	Title   string // video title, empty until yt-dlp reports it
}

// Downloader fetches a remote source into a local media file
type Downloader interface {
	// Download fetches url and returns the local file path of the
	// downloaded audio. Single attempt, cancellable via ctx.
	Download(ctx context.Context, url string, onProgress func(Progress)) (string, error)
}
