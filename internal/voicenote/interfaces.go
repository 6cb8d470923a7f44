package voicenote

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mocks.go -package=mocks sitevoice/internal/voicenote RecordingStore,Transcriber,Summarizer,Capturer,Player,Playback,TranscriptIndex

import (
	"context"

	"sitevoice/internal/capture"
	"sitevoice/internal/storage"
)

// RecordingStore is the persistence boundary for voice recordings.
// This interface is defined from the controller's perspective (consumer-first).
type RecordingStore interface {
	// Save inserts a new recording, assigning its ID and CreatedAt.
	Save(ctx context.Context, rec *storage.Recording) error
	// ListByProject returns all recordings for a project, unordered and
	// without audio payloads.
	ListByProject(ctx context.Context, projectName string) ([]*storage.Recording, error)
	// GetByID returns the full recording including audio.
	// Returns storage.ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*storage.Recording, error)
	// AttachTranscription sets the transcription text, the recording's only
	// permitted mutation. Returns storage.ErrNotFound when missing.
	AttachTranscription(ctx context.Context, id, text string) error
	// Delete removes a recording; deleting a missing id succeeds silently.
	Delete(ctx context.Context, id string) error
}

// Transcriber is the speech-to-text service boundary.
type Transcriber interface {
	// Available reports whether the backend is configured. When false the
	// controller refuses to start recording at all.
	Available() bool
	// Transcribe converts an encoded clip to text.
	Transcribe(ctx context.Context, audio []byte, mimeType, fileName string) (string, error)
}

// Summarizer is the summarization service boundary.
type Summarizer interface {
	// Summarize produces a structured markdown summary of a transcript.
	Summarize(ctx context.Context, transcript string) (string, error)
	// StreamSummarize streams the summary via callback.
	StreamSummarize(ctx context.Context, transcript string, callback func(chunk string) error) error
}

// Capturer opens and finalizes microphone capture sessions.
// Implemented by *capture.Recorder.
type Capturer interface {
	Begin(ctx context.Context, projectName string) (*capture.Session, error)
	End(ctx context.Context, session *capture.Session) (*capture.Clip, error)
}

// Playback is a transient handle over one playing clip. Stop is idempotent
// and releases the underlying playback resource.
type Playback interface {
	Stop()
}

// Player prepares a clip for playback. Play blocks until the clip is fully
// bufferable, honoring the context deadline, so callers can bound the wait.
type Player interface {
	Play(ctx context.Context, data []byte, mimeType string) (Playback, error)
}

// TranscriptIndex feeds transcripts into the optional semantic search
// backend. Implemented by *search.Engine.
type TranscriptIndex interface {
	IndexTranscript(ctx context.Context, rec *storage.Recording) error
	RemoveRecording(ctx context.Context, recordingID string) error
}
