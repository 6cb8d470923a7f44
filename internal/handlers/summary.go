package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitevoice/internal/contextutil"
	"sitevoice/internal/summary"
)

// SummaryHandler serves the enriched detail view: a fresh summary alongside
// the stored transcript. With ?stream=true the summary arrives as SSE chunks.
type SummaryHandler struct {
	service  VoiceNoteService
	renderer *summary.Renderer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(service VoiceNoteService, renderer *summary.Renderer) *SummaryHandler {
	return &SummaryHandler{service: service, renderer: renderer}
}

// SummaryResponse is the detail view payload. Failed marks the fallback text;
// the transcript tab stays populated either way.
type SummaryResponse struct {
	RecordingID   string `json:"recording_id"`
	Summary       string `json:"summary"`
	SummaryHTML   string `json:"summary_html,omitempty"`
	Failed        bool   `json:"failed,omitempty"`
	Transcription string `json:"transcription"`
}

// ServeHTTP returns fresh enriched content for a recording.
func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")

	if r.URL.Query().Get("stream") == "true" {
		h.stream(w, r, id)
		return
	}

	view, err := h.service.Summary(ctx, id)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to summarize recording")
		return
	}

	resp := SummaryResponse{
		RecordingID:   view.RecordingID,
		Summary:       view.Summary,
		Failed:        view.Failed,
		Transcription: view.Transcription,
	}
	if !view.Failed {
		html, err := h.renderer.RenderHTML(view.Summary)
		if err != nil {
			logger.WarnContext(ctx, "failed to render summary html", "recording_id", id, "error", err)
		} else {
			resp.SummaryHTML = html
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// stream sends the summary as Server-Sent Events.
func (h *SummaryHandler) stream(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := h.service.StreamSummary(ctx, id, func(chunk string) error {
		if _, err := fmt.Fprintf(w, "data: %s\n\n", chunk); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "error streaming summary", "recording_id", id, "error", err)
		_, _ = fmt.Fprintf(w, "data: {\"error\":%q}\n\n", err.Error())
		flusher.Flush()
		return
	}

	_, _ = fmt.Fprintf(w, "data: [DONE]\n\n")
	flusher.Flush()
}
