package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/media-scribe/internal/platform"
)

// Audio extraction settings passed to yt-dlp
const (
	AudioFormat      = "mp3"
	AudioQualityBest = "0"
	FormatSelector   = "bestaudio"
	OutputTemplate   = "%(title)s.%(ext)s"

	progressInterval = 500 * time.Millisecond
)

// Service downloads YouTube audio into a local directory via yt-dlp
type Service struct {
	downloadDir string
}

// NewService creates a download service writing into downloadDir
func NewService(downloadDir string) *Service {
	return &Service{downloadDir: downloadDir}
}

// Download fetches url as an mp3 audio file and returns its local path.
// Errors wrap ErrDownload; cancellation surfaces the context error.
func (s *Service) Download(ctx context.Context, url string, onProgress func(Progress)) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(s.downloadDir); err != nil {
		return "", fmt.Errorf("%w: cannot create download directory: %v", ErrDownload, err)
	}

	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		Format(FormatSelector).
		ExtractAudio().
		AudioFormat(AudioFormat).
		AudioQuality(AudioQualityBest).
		Output(s.downloadDir + "/" + OutputTemplate)

	var lastTitle string
	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		if onProgress == nil {
			return
		}
		progress := Progress{Percent: -1}
		if update.TotalBytes > 0 {
			progress.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
		}
		if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" {
			lastTitle = *update.Info.Title
		}
		progress.Title = lastTitle
		onProgress(progress)
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	path, err := s.resolveOutputPath(result)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	log.Printf("[download] saved %s", path)
	return path, nil
}

// resolveOutputPath extracts the downloaded file path from the yt-dlp result,
// falling back to a directory scan when the metadata omits the filename.
func (s *Service) resolveOutputPath(result *ytdlp.Result) (string, error) {
	reported := filepath.Join(s.downloadDir, "audio."+AudioFormat)
	if result != nil {
		info, err := result.GetExtractedInfo()
		if err == nil && len(info) > 0 && info[0].Filename != nil && *info[0].Filename != "" {
			reported = *info[0].Filename
		}
	}

	// yt-dlp reports the pre-extraction filename; after --extract-audio the
	// extension changes, so search by stem when the exact path is gone.
	path, err := platform.FindFileWithFallback(reported)
	if err != nil {
		return "", fmt.Errorf("downloaded file not found in %s: %v", s.downloadDir, err)
	}
	return path, nil
}
