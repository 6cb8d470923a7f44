package voicenote

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRecording is returned when capture is started outside Idle.
	ErrAlreadyRecording = errors.New("a capture session is already active")
	// ErrNotRecording is returned when stop is requested outside Recording.
	ErrNotRecording = errors.New("no capture session is active")
	// ErrRecordingDisabled is returned by the capability gate when the
	// transcription backend is not configured.
	ErrRecordingDisabled = errors.New("recording is disabled: transcription API key is not configured")
	// ErrPlaybackTimeout is returned when a clip cannot be buffered for
	// playback within the bounded wait.
	ErrPlaybackTimeout = errors.New("playback timed out waiting for audio to buffer")
	// ErrNoTranscript is returned when a summary is requested for a recording
	// that could not be transcribed.
	ErrNoTranscript = errors.New("recording has no transcript")
)

// SummaryFallback is rendered in place of the summary pane when
// summarization fails; the raw transcript stays available.
const SummaryFallback = "Failed to summarize transcript."

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
