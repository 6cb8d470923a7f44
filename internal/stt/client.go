// Package stt is the speech-to-text service boundary. Availability is gated
// on a configured API key: without one the client reports unavailable and
// never attempts network I/O, and upstream recording is disabled entirely.
package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// ErrUnavailable is returned when no API key is configured.
var ErrUnavailable = errors.New("transcription unavailable: no API key configured")

// Client is a client for an OpenAI-compatible audio transcriptions API.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

// NewClient creates a new transcription client.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		client:  http.DefaultClient,
	}
}

// Available reports whether the transcription backend is configured.
func (c *Client) Available() bool {
	return c.APIKey != ""
}

// transcriptionResponse represents the response from the transcriptions API.
type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads an encoded audio clip and returns its transcript.
// Returns ErrUnavailable without any network call when no key is configured.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType, fileName string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio payload: %w", err)
	}
	if err := writer.WriteField("model", c.Model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	url := fmt.Sprintf("%s/v1/audio/transcriptions", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var transcriptionResp transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&transcriptionResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := strings.TrimSpace(transcriptionResp.Text)
	if text == "" {
		return "", fmt.Errorf("no transcription returned")
	}

	return text, nil
}
