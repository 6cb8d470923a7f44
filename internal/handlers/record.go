package handlers

import (
	"net/http"

	"sitevoice/internal/contextutil"
)

// RecordHandler drives the capture state machine.
type RecordHandler struct {
	service VoiceNoteService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(service VoiceNoteService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Start opens a capture session.
func (h *RecordHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.service.StartRecording(ctx); err != nil {
		writeServiceError(w, ctx, err, "Failed to start recording")
		return
	}

	writeJSON(w, http.StatusOK, h.service.Snapshot())
}

// SavedResponse is returned after a capture session is persisted.
type SavedResponse struct {
	ID          string `json:"id"`
	ProjectName string `json:"project_name"`
	FileName    string `json:"file_name"`
	MIMEType    string `json:"mime_type"`
	Size        int    `json:"size"`
}

// Stop finalizes the capture session and persists the clip.
func (h *RecordHandler) Stop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	rec, err := h.service.StopRecording(ctx)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to save recording")
		return
	}

	logger.InfoContext(ctx, "recording saved", "recording_id", rec.ID)
	writeJSON(w, http.StatusCreated, SavedResponse{
		ID:          rec.ID,
		ProjectName: rec.ProjectName,
		FileName:    rec.FileName,
		MIMEType:    rec.MIMEType,
		Size:        len(rec.Audio),
	})
}
