package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sitevoice/internal/capture"
	"sitevoice/internal/contextutil"
	"sitevoice/internal/storage"
	"sitevoice/internal/stt"
	"sitevoice/internal/voicenote"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// writeServiceError maps controller errors to HTTP status codes. State
// machine violations surface as conflicts; capability gates as forbidden;
// unavailable backends as 503.
func writeServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *voicenote.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Recording not found")
	case errors.Is(err, voicenote.ErrAlreadyRecording),
		errors.Is(err, voicenote.ErrNotRecording):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, voicenote.ErrRecordingDisabled):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, capture.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, "Microphone access denied")
	case errors.Is(err, capture.ErrNoSupportedEncoding):
		writeError(w, http.StatusInternalServerError, "No supported audio encoding available")
	case errors.Is(err, capture.ErrEmptyCapture):
		writeError(w, http.StatusUnprocessableEntity, "Capture produced no audio")
	case errors.Is(err, voicenote.ErrPlaybackTimeout):
		writeError(w, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, voicenote.ErrNoTranscript):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, stt.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Transcription service unavailable")
	default:
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}
