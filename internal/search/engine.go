// Package search provides semantic search over voice note transcripts.
//
// The feature is optional: when the vector backend is not configured the
// engine is simply absent and every surface that would use it reports
// unavailable instead of failing.
package search

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks sitevoice/internal/search Embedder

import (
	"context"
	"fmt"

	"sitevoice/internal/contextutil"
	"sitevoice/internal/storage"
	"sitevoice/internal/vectorstore"
)

// Embedder generates embedding vectors for texts.
// This interface is defined from the engine's perspective (consumer-first).
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Hit is one scored transcript match.
type Hit struct {
	RecordingID string  `json:"recording_id"`
	Project     string  `json:"project"`
	FileName    string  `json:"file_name"`
	Snippet     string  `json:"snippet"`
	Score       float32 `json:"score"`
}

// Engine embeds transcripts into a vector collection and answers similarity
// queries against it. Points are keyed by recording id so re-indexing a
// recording overwrites its previous vector.
type Engine struct {
	embedder   Embedder
	store      vectorstore.VectorStore
	collection string
}

// NewEngine creates a new search engine.
func NewEngine(embedder Embedder, store vectorstore.VectorStore, collection string) *Engine {
	return &Engine{
		embedder:   embedder,
		store:      store,
		collection: collection,
	}
}

// IndexTranscript embeds a recording's transcript and upserts it into the
// collection.
func (e *Engine) IndexTranscript(ctx context.Context, rec *storage.Recording) error {
	if rec.Transcription == "" {
		return fmt.Errorf("recording %s has no transcription to index", rec.ID)
	}

	vectors, err := e.embedder.EmbedTexts(ctx, []string{rec.Transcription})
	if err != nil {
		return fmt.Errorf("failed to embed transcript: %w", err)
	}

	point := vectorstore.Point{
		ID:  rec.ID,
		Vec: vectors[0],
		Meta: map[string]any{
			"project":   rec.ProjectName,
			"file_name": rec.FileName,
			"snippet":   snippet(rec.Transcription),
		},
	}
	if err := e.store.Upsert(ctx, e.collection, []vectorstore.Point{point}); err != nil {
		return err
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "indexed transcript",
		"recording_id", rec.ID, "project", rec.ProjectName)
	return nil
}

// RemoveRecording removes a recording's vector from the collection. Removing
// an unindexed recording is a no-op.
func (e *Engine) RemoveRecording(ctx context.Context, recordingID string) error {
	return e.store.Delete(ctx, e.collection, []string{recordingID})
}

// Search returns the k closest transcripts to the query, optionally scoped to
// one project.
func (e *Engine) Search(ctx context.Context, query, project string, k int) ([]Hit, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if k <= 0 {
		k = 5
	}

	vectors, err := e.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	filters := map[string]any{}
	if project != "" {
		filters["project"] = project
	}

	results, err := e.store.Search(ctx, e.collection, vectors[0], k, filters)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(results))
	for _, result := range results {
		hits = append(hits, Hit{
			RecordingID: result.PointID,
			Project:     metaString(result.Meta, "project"),
			FileName:    metaString(result.Meta, "file_name"),
			Snippet:     metaString(result.Meta, "snippet"),
			Score:       result.Score,
		})
	}

	return hits, nil
}

const snippetLimit = 200

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLimit {
		return text
	}
	return string(runes[:snippetLimit])
}

func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}
