package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"sitevoice/internal/contextutil"
	"sitevoice/internal/voicenote"
)

// RecordingsHandler serves the recording list, the audio blobs, playback
// control and deletion.
type RecordingsHandler struct {
	service VoiceNoteService
	store   voicenote.RecordingStore
}

// NewRecordingsHandler creates a new RecordingsHandler.
func NewRecordingsHandler(service VoiceNoteService, store voicenote.RecordingStore) *RecordingsHandler {
	return &RecordingsHandler{service: service, store: store}
}

// RecordingResponse is one list entry. Audio payloads are never included;
// they are served from the audio endpoint.
type RecordingResponse struct {
	ID               string `json:"id"`
	ProjectName      string `json:"project_name"`
	FileName         string `json:"file_name"`
	MIMEType         string `json:"mime_type"`
	HasTranscription bool   `json:"has_transcription"`
	CreatedAt        string `json:"created_at"`
}

// List returns the recordings for a project, most recent first.
func (h *RecordingsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project := strings.TrimSpace(r.URL.Query().Get("project"))
	if project == "" {
		writeError(w, http.StatusBadRequest, "Project is required")
		return
	}

	recordings, err := h.store.ListByProject(ctx, project)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to list recordings")
		return
	}
	sort.Slice(recordings, func(i, j int) bool {
		return recordings[i].CreatedAt.After(recordings[j].CreatedAt)
	})

	resp := make([]RecordingResponse, 0, len(recordings))
	for _, rec := range recordings {
		resp = append(resp, RecordingResponse{
			ID:               rec.ID,
			ProjectName:      rec.ProjectName,
			FileName:         rec.FileName,
			MIMEType:         rec.MIMEType,
			HasTranscription: rec.Transcription != "",
			CreatedAt:        rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"recordings": resp})
}

// Audio streams a recording's blob with its negotiated content type.
func (h *RecordingsHandler) Audio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	rec, err := h.store.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to load recording")
		return
	}

	w.Header().Set("Content-Type", rec.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", rec.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(rec.Audio)))
	if _, err := w.Write(rec.Audio); err != nil {
		logger.WarnContext(ctx, "failed to stream audio", "recording_id", id, "error", err)
	}
}

// Play claims the playback slot for a recording.
func (h *RecordingsHandler) Play(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if err := h.service.Play(ctx, id); err != nil {
		writeServiceError(w, ctx, err, "Failed to start playback")
		return
	}

	writeJSON(w, http.StatusOK, h.service.Snapshot())
}

// StopPlaybackRequest optionally names the clip whose natural end the
// surface is reporting. Without it the stop is treated as a user action.
type StopPlaybackRequest struct {
	ID    string `json:"id,omitempty"`
	Ended bool   `json:"ended,omitempty"`
}

// StopPlayback releases the playback slot.
func (h *RecordingsHandler) StopPlayback(w http.ResponseWriter, r *http.Request) {
	var req StopPlaybackRequest
	if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
		_ = json.Unmarshal(body, &req)
	}

	if req.Ended && req.ID != "" {
		h.service.NotifyPlaybackEnded(req.ID)
	} else {
		h.service.StopPlayback()
	}

	writeJSON(w, http.StatusOK, h.service.Snapshot())
}

// Delete removes a recording.
func (h *RecordingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(ctx, id); err != nil {
		writeServiceError(w, ctx, err, "Failed to delete recording")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
