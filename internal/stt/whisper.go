package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// whisperLanguages maps API language codes to the names the whisper sidecar
// expects. Unknown codes are passed through unchanged.
var whisperLanguages = map[string]string{
	"hi":    "Hindi",
	"hi-IN": "Hindi",
	"en":    "English",
	"en-US": "English",
}

// WhisperClient talks to a whisper speech-to-text sidecar over HTTP. The
// sidecar owns model loading and audio decoding; this client only uploads
// bytes and decodes the JSON reply.
type WhisperClient struct {
	url        string
	httpClient *http.Client
}

func NewWhisperClient(url string, timeout time.Duration) *WhisperClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &WhisperClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type whisperResponse struct {
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration"`
}

func (c *WhisperClient) Transcribe(ctx context.Context, audio []byte, filename, language string) (*Transcription, error) {
	if filename == "" {
		filename = "recording.webm"
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, err
	}
	if language != "" {
		hint := language
		if mapped, ok := whisperLanguages[language]; ok {
			hint = mapped
		}
		if err := writer.WriteField("language", hint); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("STT API error: %s - %s", resp.Status, string(raw))
	}

	var result whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode STT response: %w", err)
	}

	detected := result.Language
	if detected == "" {
		detected = language
	}
	confidence := result.Confidence
	if confidence == 0 {
		// whisper does not report confidence; keep the original's fixed value
		confidence = 0.9
	}

	return &Transcription{
		Transcript: result.Text,
		Language:   detected,
		Confidence: confidence,
		Duration:   result.Duration,
	}, nil
}
