package download

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewService(t *testing.T) {
	service := NewService("/tmp/downloads")
	if service == nil {
		t.Fatal("NewService returned nil")
	}
	if service.downloadDir != "/tmp/downloads" {
		t.Errorf("Expected download dir /tmp/downloads, got %s", service.downloadDir)
	}
}

func TestResolveOutputPath_NoResultScansDirectory(t *testing.T) {
	dir := t.TempDir()
	mediaFile := filepath.Join(dir, "talk.mp3")
	if err := os.WriteFile(mediaFile, []byte("audio"), 0644); err != nil {
		t.Fatalf("Failed to create media file: %v", err)
	}

	service := NewService(dir)
	path, err := service.resolveOutputPath(nil)
	if err != nil {
		t.Fatalf("resolveOutputPath failed: %v", err)
	}
	if path != mediaFile {
		t.Errorf("Expected %s, got %s", mediaFile, path)
	}
}

func TestResolveOutputPath_PrefersMostRecent(t *testing.T) {
	dir := t.TempDir()
	oldFile := filepath.Join(dir, "old.mp3")
	newFile := filepath.Join(dir, "new.mp3")
	if err := os.WriteFile(oldFile, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(newFile, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(oldFile, past, past); err != nil {
		t.Fatal(err)
	}

	service := NewService(dir)
	path, err := service.resolveOutputPath(nil)
	if err != nil {
		t.Fatalf("resolveOutputPath failed: %v", err)
	}
	if path != newFile {
		t.Errorf("Expected most recent file %s, got %s", newFile, path)
	}
}

func TestResolveOutputPath_EmptyDirectory(t *testing.T) {
	service := NewService(t.TempDir())
	if _, err := service.resolveOutputPath(nil); err == nil {
		t.Fatal("Expected error when no media files exist")
	}
}

func TestResolveOutputPath_SkipsPartialFiles(t *testing.T) {
	dir := t.TempDir()
	partial := filepath.Join(dir, "talk.mp3.part")
	complete := filepath.Join(dir, "talk.mp3")
	if err := os.WriteFile(partial, []byte("partial"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(complete, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	service := NewService(dir)
	path, err := service.resolveOutputPath(nil)
	if err != nil {
		t.Fatalf("resolveOutputPath failed: %v", err)
	}
	if path != complete {
		t.Errorf("Expected %s, got %s", complete, path)
	}
}
