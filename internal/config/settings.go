package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/media-scribe/internal/platform"
	"github.com/ytget/media-scribe/internal/transcribe"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir           = "download_directory"
	KeyModelsDir             = "models_directory"
	KeyTranscriptionLanguage = "transcription_language"
	KeyModelSize             = "model_size"
	KeyDevice                = "device"
	KeyLanguage              = "app_language"
	KeyAutoRevealComplete    = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultTranscriptionLanguage = "auto"
	DefaultModelSize             = transcribe.ModelBase
	DefaultLanguage              = "system"
	DefaultAutoRevealComplete    = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetModelsDirectory returns the directory holding whisper model files
func (s *Settings) GetModelsDirectory() string {
	dir := s.app.Preferences().String(KeyModelsDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultModelsDir()
		if err != nil {
			defaultDir = "/tmp/models"
		}
		s.SetModelsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetModelsDirectory sets the models directory
func (s *Settings) SetModelsDirectory(dir string) {
	s.app.Preferences().SetString(KeyModelsDir, dir)
}

// GetTranscriptionLanguage returns the transcription language code or "auto"
func (s *Settings) GetTranscriptionLanguage() string {
	lang := s.app.Preferences().String(KeyTranscriptionLanguage)
	if lang == "" {
		s.SetTranscriptionLanguage(DefaultTranscriptionLanguage)
		return DefaultTranscriptionLanguage
	}
	return lang
}

// SetTranscriptionLanguage sets the transcription language
func (s *Settings) SetTranscriptionLanguage(lang string) {
	s.app.Preferences().SetString(KeyTranscriptionLanguage, lang)
}

// GetTranscriptionLanguageOptions returns the selectable transcription languages
func (s *Settings) GetTranscriptionLanguageOptions() []string {
	return []string{"auto", "pt", "en", "es", "fr", "de", "it", "ja", "zh", "ru", "ar"}
}

// GetModelSize returns the configured whisper model size
func (s *Settings) GetModelSize() transcribe.ModelSize {
	size := transcribe.ModelSize(s.app.Preferences().String(KeyModelSize))
	if !size.IsValid() {
		s.SetModelSize(DefaultModelSize)
		return DefaultModelSize
	}
	return size
}

// SetModelSize sets the whisper model size
func (s *Settings) SetModelSize(size transcribe.ModelSize) {
	if !size.IsValid() {
		size = DefaultModelSize
	}
	s.app.Preferences().SetString(KeyModelSize, size.String())
}

// GetDevice returns the configured compute device, probing the hardware
// for a default on first run.
func (s *Settings) GetDevice() transcribe.Device {
	device := transcribe.Device(s.app.Preferences().String(KeyDevice))
	if device != transcribe.DeviceCPU && device != transcribe.DeviceGPU {
		device = transcribe.DefaultDevice()
		s.SetDevice(device)
	}
	return device
}

// SetDevice sets the compute device
func (s *Settings) SetDevice(device transcribe.Device) {
	s.app.Preferences().SetString(KeyDevice, device.String())
}

// TranscriptionSettings bundles the per-run settings snapshot
func (s *Settings) TranscriptionSettings() transcribe.Settings {
	return transcribe.Settings{
		Language: s.GetTranscriptionLanguage(),
		Model:    s.GetModelSize(),
		Device:   s.GetDevice(),
	}
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal the transcript file
// when a job completes
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed transcripts
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available UI language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
