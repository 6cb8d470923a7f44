package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TranscriptHandler serves on-demand transcription.
type TranscriptHandler struct {
	service VoiceNoteService
}

// NewTranscriptHandler creates a new TranscriptHandler.
func NewTranscriptHandler(service VoiceNoteService) *TranscriptHandler {
	return &TranscriptHandler{service: service}
}

// TranscriptResponse is the transcription payload. Cached reports whether the
// text was served from the store without a service call.
type TranscriptResponse struct {
	RecordingID   string `json:"recording_id"`
	Transcription string `json:"transcription"`
	Cached        bool   `json:"cached"`
}

// ServeHTTP returns the recording's transcript, transcribing on first
// request.
func (h *TranscriptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	result, err := h.service.RequestTranscript(ctx, id)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to transcribe recording")
		return
	}

	writeJSON(w, http.StatusOK, TranscriptResponse{
		RecordingID:   id,
		Transcription: result.Text,
		Cached:        result.Cached,
	})
}
