// Package http wires the API routes and request middleware.
package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sitevoice/internal/handlers"
	"sitevoice/internal/storage"
	"sitevoice/internal/summary"
	"sitevoice/internal/vectorstore"
	"sitevoice/internal/voicenote"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Service        handlers.VoiceNoteService
	Store          voicenote.RecordingStore
	Projects       storage.ProjectStore
	Renderer       *summary.Renderer
	Searcher       handlers.TranscriptSearcher
	DB             *sql.DB
	VectorStore    vectorstore.VectorStore
	CollectionName string
	Logger         *slog.Logger
}

// NewRouter creates the API router.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORS)

	stateHandler := handlers.NewStateHandler(deps.Service)
	projectHandler := handlers.NewProjectHandler(deps.Service, deps.Projects)
	recordHandler := handlers.NewRecordHandler(deps.Service)
	recordingsHandler := handlers.NewRecordingsHandler(deps.Service, deps.Store)
	transcriptHandler := handlers.NewTranscriptHandler(deps.Service)
	summaryHandler := handlers.NewSummaryHandler(deps.Service, deps.Renderer)
	searchHandler := handlers.NewSearchHandler(deps.Searcher)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.VectorStore, deps.CollectionName)

	r.Route("/api/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodGet, "/state", stateHandler)

		r.Get("/projects", projectHandler.List)
		r.Post("/projects/select", projectHandler.Select)

		r.Post("/record/start", recordHandler.Start)
		r.Post("/record/stop", recordHandler.Stop)

		r.Get("/recordings", recordingsHandler.List)
		r.Get("/recordings/{id}/audio", recordingsHandler.Audio)
		r.Post("/recordings/{id}/play", recordingsHandler.Play)
		r.Delete("/recordings/{id}", recordingsHandler.Delete)
		r.Method(http.MethodPost, "/recordings/{id}/transcript", transcriptHandler)
		r.Method(http.MethodGet, "/recordings/{id}/summary", summaryHandler)

		r.Post("/playback/stop", recordingsHandler.StopPlayback)

		r.Method(http.MethodGet, "/search", searchHandler)
	})

	return r
}
