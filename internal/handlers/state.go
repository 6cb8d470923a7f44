package handlers

import (
	"net/http"
)

// StateHandler serves the controller snapshot backing the presentation
// surface.
type StateHandler struct {
	service VoiceNoteService
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(service VoiceNoteService) *StateHandler {
	return &StateHandler{service: service}
}

// ServeHTTP returns the current controller snapshot.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Snapshot())
}
