// Package handlers contains the HTTP layer: request decoding, error to
// status mapping, and response shaping over the voice note controller.
package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mocks.go -package=mocks sitevoice/internal/handlers VoiceNoteService,TranscriptSearcher

import (
	"context"

	"sitevoice/internal/search"
	"sitevoice/internal/storage"
	"sitevoice/internal/voicenote"
)

// VoiceNoteService is the controller surface the HTTP layer depends on.
// This interface is defined from the handlers' perspective (consumer-first).
type VoiceNoteService interface {
	Snapshot() voicenote.Snapshot
	SelectProject(ctx context.Context, name string) error
	StartRecording(ctx context.Context) error
	StopRecording(ctx context.Context) (*storage.Recording, error)
	Play(ctx context.Context, id string) error
	StopPlayback()
	NotifyPlaybackEnded(id string)
	Delete(ctx context.Context, id string) error
	RequestTranscript(ctx context.Context, id string) (voicenote.TranscriptResult, error)
	Summary(ctx context.Context, id string) (voicenote.SummaryView, error)
	StreamSummary(ctx context.Context, id string, callback func(chunk string) error) error
}

// TranscriptSearcher answers semantic queries over transcripts.
// Implemented by *search.Engine.
type TranscriptSearcher interface {
	Search(ctx context.Context, query, project string, k int) ([]search.Hit, error)
}
