package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidMediaFile(t *testing.T) {
	dir := t.TempDir()

	// Every supported extension should validate when the file exists
	for ext := range MediaExtensions {
		path := filepath.Join(dir, "sample"+ext)
		if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		if !IsValidMediaFile(path) {
			t.Errorf("IsValidMediaFile(%s) = false, expected true", path)
		}
	}

	// Unsupported extension
	txtPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if IsValidMediaFile(txtPath) {
		t.Error("IsValidMediaFile should reject .txt files")
	}

	// Nonexistent path with valid extension
	if IsValidMediaFile(filepath.Join(dir, "missing.mp4")) {
		t.Error("IsValidMediaFile should reject nonexistent files")
	}

	// Directory with a media-like name
	mediaDir := filepath.Join(dir, "folder.mp4")
	if err := os.Mkdir(mediaDir, 0755); err != nil {
		t.Fatalf("Failed to create test dir: %v", err)
	}
	if IsValidMediaFile(mediaDir) {
		t.Error("IsValidMediaFile should reject directories")
	}

	// Empty path
	if IsValidMediaFile("") {
		t.Error("IsValidMediaFile should reject empty path")
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"http://youtu.be/dQw4w9WgXcQ", true},
		{"https://www.youtu.be/dQw4w9WgXcQ", true},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://vimeo.com/12345", false},
		{"https://example.com/youtube.com", false},
		{"ftp://youtube.com/watch", false},
		{"not a url at all", false},
		{"://broken", false},
		{"", false},
		{"   ", false},
	}

	for _, test := range tests {
		if got := IsYouTubeURL(test.url); got != test.expected {
			t.Errorf("IsYouTubeURL(%q) = %v, expected %v", test.url, got, test.expected)
		}
	}
}

func TestFileStem(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/home/user/talk.mp4", "talk"},
		{"talk.mp4", "talk"},
		{"/home/user/archive.tar.gz", "archive.tar"},
		{"/home/user/noext", "noext"},
	}

	for _, test := range tests {
		if got := FileStem(test.path); got != test.expected {
			t.Errorf("FileStem(%s) = %s, expected %s", test.path, got, test.expected)
		}
	}
}

func TestTranscriptPath(t *testing.T) {
	got := TranscriptPath(filepath.Join("media", "talk.mp4"))
	expected := filepath.Join("media", "talk.txt")
	if got != expected {
		t.Errorf("TranscriptPath() = %s, expected %s", got, expected)
	}
}

func TestSaveTextFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "transcript.txt")
	text := "Hello, transcript!\nSecond line with unicode: áéíóú 日本語"

	if err := SaveTextFile(path, text); err != nil {
		t.Fatalf("SaveTextFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != text {
		t.Errorf("Round-trip mismatch: got %q, expected %q", string(data), text)
	}
}

func TestSaveTextFile_EmptyPath(t *testing.T) {
	if err := SaveTextFile("", "text"); err == nil {
		t.Error("SaveTextFile should fail for empty path")
	}
}

func TestFindMediaFilesInFolder(t *testing.T) {
	dir := t.TempDir()

	// Layout: two media files (one nested), one non-media file
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	mediaFiles := []string{
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "sub", "b.mkv"),
	}
	for _, f := range mediaFiles {
		if err := os.WriteFile(f, []byte("data"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("doc"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	found, err := FindMediaFilesInFolder(dir)
	if err != nil {
		t.Fatalf("FindMediaFilesInFolder failed: %v", err)
	}

	if len(found) != 2 {
		t.Fatalf("Expected 2 media files, got %d: %v", len(found), found)
	}
	if found[0] != mediaFiles[0] || found[1] != mediaFiles[1] {
		t.Errorf("Unexpected result order: %v", found)
	}
}

func TestFindMediaFilesInFolder_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.mp3")
	if err := os.WriteFile(file, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := FindMediaFilesInFolder(file); err == nil {
		t.Error("Expected error for non-directory argument")
	}
	if _, err := FindMediaFilesInFolder(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing folder")
	}
}

func TestFindFileWithFallback(t *testing.T) {
	dir := t.TempDir()

	// Exact path wins
	exact := filepath.Join(dir, "video.mp4")
	if err := os.WriteFile(exact, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	found, err := FindFileWithFallback(exact)
	if err != nil {
		t.Fatalf("FindFileWithFallback failed: %v", err)
	}
	if found != exact {
		t.Errorf("Expected exact path %s, got %s", exact, found)
	}

	// Same stem, different extension (audio extraction renamed the output)
	audio := filepath.Join(dir, "lecture.mp3")
	if err := os.WriteFile(audio, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	found, err = FindFileWithFallback(filepath.Join(dir, "lecture.webm"))
	if err != nil {
		t.Fatalf("FindFileWithFallback failed: %v", err)
	}
	if found != audio {
		t.Errorf("Expected fallback to %s, got %s", audio, found)
	}

	// Partial files are never returned
	partial := filepath.Join(dir, "other.mp3.part")
	if err := os.WriteFile(partial, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if found, _ := FindFileWithFallback(filepath.Join(dir, "other.mp3")); found == partial {
		t.Error("FindFileWithFallback must not return .part files")
	}

	// Empty directory
	empty := t.TempDir()
	if _, err := FindFileWithFallback(filepath.Join(empty, "missing.mp3")); err == nil {
		t.Error("Expected error when nothing matches")
	}
}
