package transcribe

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// ModelSize identifies one of the fixed whisper model presets
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// ModelBaseURL is the base URL for whisper.cpp model files
const ModelBaseURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/"

// ModelFileNames maps model size to its ggml file name
var ModelFileNames = map[ModelSize]string{
	ModelTiny:   "ggml-tiny.bin",
	ModelBase:   "ggml-base.bin",
	ModelSmall:  "ggml-small.bin",
	ModelMedium: "ggml-medium.bin",
	ModelLarge:  "ggml-large-v3.bin",
}

// String returns the string representation of ModelSize
func (m ModelSize) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known model presets
func (m ModelSize) IsValid() bool {
	_, ok := ModelFileNames[m]
	return ok
}

// ModelSizeOptions returns the selectable model presets in ascending size order
func ModelSizeOptions() []ModelSize {
	return []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}
}

// EnsureModel returns the local path of the model file for size, downloading
// it into modelsDir when missing.
func EnsureModel(modelsDir string, size ModelSize) (string, error) {
	fileName, ok := ModelFileNames[size]
	if !ok {
		return "", fmt.Errorf("%w: unknown model size: %s", ErrModelLoad, size)
	}

	modelFile := filepath.Join(modelsDir, fileName)

	if _, err := os.Stat(modelFile); err == nil {
		return modelFile, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: cannot access model file: %v", ErrModelLoad, err)
	}

	log.Printf("[model] %s not found, downloading to %s", fileName, modelsDir)

	if err := os.MkdirAll(modelsDir, 0755); err != nil {
		return "", fmt.Errorf("%w: cannot create models directory: %v", ErrModelLoad, err)
	}

	if err := downloadModelFile(modelFile, ModelBaseURL+fileName); err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelLoad, err)
	}

	log.Printf("[model] downloaded %s", modelFile)
	return modelFile, nil
}

// downloadModelFile fetches one model file over HTTP with progress logging
func downloadModelFile(outputPath, url string) error {
	// HEAD first to learn the size
	resp, err := http.Head(url)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download model: HTTP %s", resp.Status)
	}

	contentLength := resp.ContentLength
	if contentLength > 0 {
		log.Printf("[model] downloading %d MB, this may take a while", contentLength/1024/1024)
	} else {
		log.Printf("[model] downloading, size unknown")
	}

	resp, err = http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	reader := io.TeeReader(resp.Body, &progressWriter{total: contentLength})

	if _, err := io.Copy(out, reader); err != nil {
		// Clean up the partial file on error
		out.Close()
		os.Remove(outputPath)
		return err
	}

	return nil
}

// progressWriter logs download progress every 10 MB
type progressWriter struct {
	total        int64
	downloaded   int64
	lastReported int64
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n := len(p)
	pw.downloaded += int64(n)

	if pw.total > 0 && (pw.downloaded-pw.lastReported > 10*1024*1024 || pw.downloaded == pw.total) {
		percentage := float64(pw.downloaded) / float64(pw.total) * 100
		log.Printf("[model] downloaded %.1f MB of %.1f MB (%.1f%%)",
			float64(pw.downloaded)/1024/1024, float64(pw.total)/1024/1024, percentage)
		pw.lastReported = pw.downloaded
	}

	return n, nil
}
