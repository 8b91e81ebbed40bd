package transcribe

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/media-scribe/internal/model"
	"github.com/ytget/media-scribe/internal/platform"
)

// External tool constants
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
	WhisperCommand = "whisper-cli"

	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"

	// Audio preprocessing settings required by whisper.cpp
	AudioSampleRate = "16000"
	AudioChannels   = "1"
	AudioCodec      = "pcm_s16le"

	ProgressPipeTarget = "pipe:2"
	ProgressTimePrefix = "out_time_us="

	NoGPUFlag = "-ng"

	// Auto language marker: whisper.cpp detects the language itself
	LanguageAuto = "auto"
)

// Progress milestones (percent of the whole job)
const (
	ModelReadyPercent       = 10
	PreprocessDonePercent   = 30
	TranscribeDonePercent   = 95
	ProgressCompletePercent = 100
)

// Settings is the immutable per-run transcription configuration
type Settings struct {
	Language string // ISO code or "auto"
	Model    ModelSize
	Device   Device
}

// Request describes one transcription call
type Request struct {
	MediaPath  string
	Settings   Settings
	OnProgress func(percent int) // 0..100, optional
}

// Result contains the transcript produced by one call
type Result struct {
	Text     string
	Segments []model.Segment
	Duration time.Duration
}

// Service runs the ffmpeg + whisper.cpp transcription pipeline
type Service struct {
	ffmpegPath  string
	ffprobePath string
	whisperPath string
	modelsDir   string
	threads     int
	parser      *platform.WhisperOutputParser
}

// NewService creates a new transcription service storing models in modelsDir
func NewService(modelsDir string) *Service {
	return &Service{
		ffmpegPath:  FFmpegCommand,
		ffprobePath: FFprobeCommand,
		whisperPath: WhisperCommand,
		modelsDir:   modelsDir,
		threads:     runtime.NumCPU(),
		parser:      platform.NewWhisperOutputParser(),
	}
}

// Transcribe converts one media file to text. Single attempt, no retries;
// errors wrap ErrModelLoad or ErrTranscription.
func (s *Service) Transcribe(ctx context.Context, req Request) (*Result, error) {
	if _, err := os.Stat(req.MediaPath); err != nil {
		return nil, fmt.Errorf("%w: cannot access input media %s: %v", ErrTranscription, req.MediaPath, err)
	}

	emitProgress(req.OnProgress, 0)

	modelPath, err := EnsureModel(s.modelsDir, req.Settings.Model)
	if err != nil {
		return nil, err
	}
	device := ResolveDevice(req.Settings.Device)
	emitProgress(req.OnProgress, ModelReadyPercent)

	duration, err := s.getMediaDuration(req.MediaPath)
	if err != nil {
		// Progress becomes coarse-grained but transcription can still proceed
		log.Printf("[transcribe] failed to probe duration of %s: %v", req.MediaPath, err)
		duration = 0
	}

	tempDir, err := os.MkdirTemp("", "media-scribe-*")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create temporary workspace: %v", ErrTranscription, err)
	}
	defer os.RemoveAll(tempDir)

	wavPath := filepath.Join(tempDir, "audio-16k-mono.wav")
	if err := s.preprocess(ctx, req, wavPath, duration); err != nil {
		return nil, err
	}
	emitProgress(req.OnProgress, PreprocessDonePercent)

	segments, err := s.runWhisper(ctx, req, modelPath, wavPath, device, duration)
	if err != nil {
		return nil, err
	}
	emitProgress(req.OnProgress, TranscribeDonePercent)

	result := &Result{
		Text:     model.PlainTranscript(segments),
		Segments: segments,
		Duration: duration,
	}
	emitProgress(req.OnProgress, ProgressCompletePercent)
	return result, nil
}

// preprocess converts the input media to 16 kHz mono PCM WAV via ffmpeg
func (s *Service) preprocess(ctx context.Context, req Request, wavPath string, totalDuration time.Duration) error {
	args := BuildFFmpegArgs(req.MediaPath, wavPath)
	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("%w: failed to create stderr pipe: %v", ErrTranscription, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: failed to start ffmpeg: %v", ErrTranscription, err)
	}

	s.monitorPreprocessProgress(stderr, req.OnProgress, totalDuration)

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%w: ffmpeg audio conversion failed: %v", ErrTranscription, err)
	}

	if _, err := os.Stat(wavPath); err != nil {
		return fmt.Errorf("%w: ffmpeg completed but output file is missing: %v", ErrTranscription, err)
	}
	return nil
}

// monitorPreprocessProgress reads ffmpeg -progress output and maps it into the
// ModelReadyPercent..PreprocessDonePercent range.
func (s *Service) monitorPreprocessProgress(stderr io.ReadCloser, onProgress func(int), totalDuration time.Duration) {
	defer stderr.Close()
	scanner := bufio.NewScanner(stderr)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Parse progress line: out_time_us=123456
		if !strings.HasPrefix(line, ProgressTimePrefix) {
			continue
		}
		timeMicroseconds, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
		if err != nil {
			continue
		}

		if totalDuration <= 0 {
			continue
		}
		done := float64(timeMicroseconds) / float64(totalDuration.Microseconds())
		if done > 1.0 {
			done = 1.0
		}
		span := PreprocessDonePercent - ModelReadyPercent
		emitProgress(onProgress, ModelReadyPercent+int(done*float64(span)))
	}
}

// runWhisper executes whisper.cpp and streams its stdout into segments
func (s *Service) runWhisper(ctx context.Context, req Request, modelPath, wavPath string, device Device, totalDuration time.Duration) ([]model.Segment, error) {
	args := BuildWhisperArgs(modelPath, wavPath, req.Settings.Language, device, s.threads)
	cmd := exec.CommandContext(ctx, s.whisperPath, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create stdout pipe: %v", ErrTranscription, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: failed to start %s: %v", ErrTranscription, s.whisperPath, err)
	}

	var segments []model.Segment
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		seg, ok := s.parser.ParseSegmentLine(scanner.Text())
		if !ok {
			continue
		}
		segments = append(segments, seg)

		if percent := s.parser.ProgressPercent(seg.End, totalDuration); percent >= 0 {
			span := TranscribeDonePercent - PreprocessDonePercent
			emitProgress(req.OnProgress, PreprocessDonePercent+percent*span/100)
		}
	}

	if err := cmd.Wait(); err != nil {
		return nil, classifyWhisperError(stderrBuf.String(), err)
	}

	if len(segments) == 0 {
		log.Printf("[transcribe] %s produced no segments for %s", s.whisperPath, req.MediaPath)
	}
	return segments, nil
}

// getMediaDuration gets the duration of a media file using ffprobe
func (s *Service) getMediaDuration(filePath string) (time.Duration, error) {
	cmd := exec.Command(s.ffprobePath, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	durationStr := strings.TrimSpace(string(output))
	seconds, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// BuildFFmpegArgs builds preprocessing CLI args for mono 16k PCM WAV output
func BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",            // Overwrite output file
		"-i", inputPath, // Input file
		"-vn", // Drop video streams
		"-ac", AudioChannels,
		"-ar", AudioSampleRate,
		"-c:a", AudioCodec,
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats", // No stats output
		outputPath, // Output file
	}
}

// BuildWhisperArgs builds whisper.cpp CLI args for stdout segment output
func BuildWhisperArgs(modelPath, audioPath, language string, device Device, threads int) []string {
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-t", strconv.Itoa(threads),
	}

	if lang := NormalizeLanguage(language); lang != "" {
		args = append(args, "-l", lang)
	}
	if device == DeviceCPU {
		args = append(args, NoGPUFlag)
	}

	return args
}

// NormalizeLanguage maps "auto" and empty language to no CLI override
func NormalizeLanguage(raw string) string {
	lang := strings.TrimSpace(raw)
	if lang == "" || strings.EqualFold(lang, LanguageAuto) {
		return ""
	}
	return lang
}

// classifyWhisperError distinguishes model-load failures from runtime failures
// based on whisper.cpp stderr output.
func classifyWhisperError(stderr string, err error) error {
	lowered := strings.ToLower(stderr)
	if strings.Contains(lowered, "failed to load model") ||
		strings.Contains(lowered, "error loading model") ||
		strings.Contains(lowered, "failed to initialize") {
		return fmt.Errorf("%w: %v: %s", ErrModelLoad, err, lastLine(stderr))
	}
	return fmt.Errorf("%w: %v: %s", ErrTranscription, err, lastLine(stderr))
}

// lastLine returns the last non-empty line of s for compact error messages
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// emitProgress forwards progress when the callback is configured
func emitProgress(cb func(int), percent int) {
	if cb != nil {
		cb(percent)
	}
}
