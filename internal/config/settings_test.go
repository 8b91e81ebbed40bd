package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/media-scribe/internal/transcribe"
)

func TestDownloadDirectory(t *testing.T) {
	settings := NewSettings(test.NewApp())

	// First access falls back to a usable default and persists it
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Fatal("Expected a non-empty default download directory")
	}
	if settings.GetDownloadDirectory() != dir {
		t.Error("Expected the default to be persisted")
	}

	settings.SetDownloadDirectory("/custom/dir")
	if got := settings.GetDownloadDirectory(); got != "/custom/dir" {
		t.Errorf("Expected /custom/dir, got %s", got)
	}
}

func TestModelsDirectory(t *testing.T) {
	settings := NewSettings(test.NewApp())

	dir := settings.GetModelsDirectory()
	if dir == "" {
		t.Fatal("Expected a non-empty default models directory")
	}

	settings.SetModelsDirectory("/custom/models")
	if got := settings.GetModelsDirectory(); got != "/custom/models" {
		t.Errorf("Expected /custom/models, got %s", got)
	}
}

func TestTranscriptionLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetTranscriptionLanguage(); got != DefaultTranscriptionLanguage {
		t.Errorf("Expected default %s, got %s", DefaultTranscriptionLanguage, got)
	}

	settings.SetTranscriptionLanguage("pt")
	if got := settings.GetTranscriptionLanguage(); got != "pt" {
		t.Errorf("Expected pt, got %s", got)
	}
}

func TestTranscriptionLanguageOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())
	options := settings.GetTranscriptionLanguageOptions()

	if len(options) == 0 || options[0] != "auto" {
		t.Errorf("Expected auto as the first option, got %v", options)
	}
}

func TestModelSize(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetModelSize(); got != DefaultModelSize {
		t.Errorf("Expected default %s, got %s", DefaultModelSize, got)
	}

	settings.SetModelSize(transcribe.ModelLarge)
	if got := settings.GetModelSize(); got != transcribe.ModelLarge {
		t.Errorf("Expected large, got %s", got)
	}

	// Invalid writes are normalized to the default
	settings.SetModelSize(transcribe.ModelSize("huge"))
	if got := settings.GetModelSize(); got != DefaultModelSize {
		t.Errorf("Expected invalid size to reset to default, got %s", got)
	}
}

func TestDevice(t *testing.T) {
	settings := NewSettings(test.NewApp())

	device := settings.GetDevice()
	if device != transcribe.DeviceCPU && device != transcribe.DeviceGPU {
		t.Fatalf("Expected a concrete device by default, got %s", device)
	}

	settings.SetDevice(transcribe.DeviceCPU)
	if got := settings.GetDevice(); got != transcribe.DeviceCPU {
		t.Errorf("Expected cpu, got %s", got)
	}
}

func TestTranscriptionSettings(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetTranscriptionLanguage("en")
	settings.SetModelSize(transcribe.ModelSmall)
	settings.SetDevice(transcribe.DeviceCPU)

	snapshot := settings.TranscriptionSettings()
	if snapshot.Language != "en" {
		t.Errorf("Expected language en, got %s", snapshot.Language)
	}
	if snapshot.Model != transcribe.ModelSmall {
		t.Errorf("Expected model small, got %s", snapshot.Model)
	}
	if snapshot.Device != transcribe.DeviceCPU {
		t.Errorf("Expected device cpu, got %s", snapshot.Device)
	}
}

func TestAppLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected ru, got %s", got)
	}

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Missing language option %s", code)
		}
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal enabled by default")
	}

	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal disabled after set")
	}
}
