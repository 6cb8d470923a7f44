package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"sitevoice/internal/contextutil"
	"sitevoice/internal/storage"
)

// ProjectHandler manages the project scope: listing known projects and
// selecting the active one.
type ProjectHandler struct {
	service  VoiceNoteService
	projects storage.ProjectStore
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service VoiceNoteService, projects storage.ProjectStore) *ProjectHandler {
	return &ProjectHandler{service: service, projects: projects}
}

// SelectRequest is the payload for selecting a project.
type SelectRequest struct {
	Project string `json:"project"`
}

// Select registers the project if new and makes it the active scope.
func (h *ProjectHandler) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Project)
	if name == "" {
		writeError(w, http.StatusBadRequest, "Project is required")
		return
	}

	if _, err := h.projects.GetOrCreateByName(ctx, name); err != nil {
		writeServiceError(w, ctx, err, "Failed to register project")
		return
	}
	if err := h.service.SelectProject(ctx, name); err != nil {
		writeServiceError(w, ctx, err, "Failed to select project")
		return
	}

	writeJSON(w, http.StatusOK, h.service.Snapshot())
}

// List returns all known projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projects.ListAll(ctx)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to list projects")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}
