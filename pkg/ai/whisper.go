package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/meetmind-team/meetmind-backend/pkg/config"
)

// WhisperClient wraps the whisper-server REST API. The model field selects
// the size/quality of the loaded model (ggml-tiny, ggml-base, ...); the
// server keeps the selected model resident, so per-request cost is
// inference only.
type WhisperClient struct {
	apiURL   string
	model    string
	language string
	client   *http.Client
}

// TranscriptionResult is the JSON shape returned by the transcription
// endpoint.
type TranscriptionResult struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// NewWhisperClient creates a whisper client using values from the provided
// config. The HTTP client carries no timeout: transcription of long
// recordings is the slow step of the pipeline and runs to completion.
func NewWhisperClient(cfg *config.WhisperConfig) *WhisperClient {
	c := &WhisperClient{client: &http.Client{}}
	if cfg != nil {
		c.apiURL = cfg.URL
		c.model = cfg.Model
		c.language = cfg.Language
	}
	if c.model == "" {
		c.model = "ggml-tiny"
	}
	return c
}

// Transcribe sends the audio file as multipart/form-data and returns the
// plain transcript text. The file extension matters: the server picks its
// decoder from it.
func (w *WhisperClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("audio", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	if err := writer.WriteField("model", w.model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", fmt.Errorf("failed to write response_format field: %w", err)
	}
	if w.language != "" {
		if err := writer.WriteField("language", w.language); err != nil {
			return "", fmt.Errorf("failed to write language field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/whisper/transcribe", w.apiURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("whisper returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result TranscriptionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse whisper response: %w", err)
	}
	return result.Text, nil
}
