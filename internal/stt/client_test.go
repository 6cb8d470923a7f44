package stt

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Available(t *testing.T) {
	if NewClient("http://localhost", "", "whisper-1").Available() {
		t.Error("Available() = true without API key")
	}
	if !NewClient("http://localhost", "sk-test", "whisper-1").Available() {
		t.Error("Available() = false with API key")
	}
}

func TestClient_Transcribe_Unavailable(t *testing.T) {
	// Must fail deterministically with no network I/O; the URL would not
	// resolve if a call were attempted.
	client := NewClient("http://no-such-host.invalid", "", "whisper-1")

	_, err := client.Transcribe(context.Background(), []byte("audio"), "audio/webm;codecs=opus", "clip.webm")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Transcribe() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_Transcribe(t *testing.T) {
	tests := []struct {
		name       string
		serverResp func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantText   string
		wantErr    bool
	}{
		{
			name: "successful transcription",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/audio/transcriptions" {
					t.Errorf("expected /v1/audio/transcriptions, got %s", r.URL.Path)
				}
				if !strings.Contains(r.Header.Get("Authorization"), "Bearer sk-test") {
					t.Error("missing Authorization header")
				}
				if err := r.ParseMultipartForm(1 << 20); err != nil {
					t.Fatalf("failed to parse multipart form: %v", err)
				}
				if got := r.FormValue("model"); got != "whisper-1" {
					t.Errorf("model field = %v, want whisper-1", got)
				}
				file, header, err := r.FormFile("file")
				if err != nil {
					t.Fatalf("missing file part: %v", err)
				}
				defer func() {
					_ = file.Close()
				}()
				if header.Filename != "clip.webm" {
					t.Errorf("file name = %v, want clip.webm", header.Filename)
				}
				data, _ := io.ReadAll(file)
				if string(data) != "audio-bytes" {
					t.Errorf("file payload = %q, want audio-bytes", data)
				}

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"text":"Entry #5 needs repainting by Friday"}`))
			},
			wantText: "Entry #5 needs repainting by Friday",
		},
		{
			name: "empty text returned",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"text":"  "}`))
			},
			wantErr: true,
		},
		{
			name: "server error",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("upstream failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.serverResp(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "sk-test", "whisper-1")
			text, err := client.Transcribe(context.Background(), []byte("audio-bytes"), "audio/webm;codecs=opus", "clip.webm")

			if tt.wantErr {
				if err == nil {
					t.Errorf("Transcribe() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Transcribe() unexpected error: %v", err)
				return
			}
			if text != tt.wantText {
				t.Errorf("Transcribe() = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestClient_Transcribe_EmptyAudio(t *testing.T) {
	client := NewClient("http://localhost", "sk-test", "whisper-1")
	if _, err := client.Transcribe(context.Background(), nil, "audio/webm", "clip.webm"); err == nil {
		t.Error("Transcribe() expected error for empty audio")
	}
}
