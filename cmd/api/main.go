package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"sitevoice/internal/capture"
	"sitevoice/internal/config"
	"sitevoice/internal/http"
	"sitevoice/internal/llm"
	"sitevoice/internal/playback"
	"sitevoice/internal/search"
	"sitevoice/internal/storage"
	"sitevoice/internal/stt"
	"sitevoice/internal/summary"
	"sitevoice/internal/vectorstore"
	"sitevoice/internal/voicenote"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	recordingRepo := storage.NewRecordingRepo(db)
	projectRepo := storage.NewProjectRepo(db)

	// Speech-to-text and summarization clients
	sttClient := stt.NewClient(cfg.STTBaseURL, cfg.STTAPIKey, cfg.STTModel)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	if !sttClient.Available() {
		slog.Warn("STT_API_KEY is not set; recording is disabled")
	}

	// Optional semantic transcript search
	ctx := context.Background()
	var searchEngine *search.Engine
	var vectorStore vectorstore.VectorStore
	if cfg.SearchEnabled() {
		qdrantStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		if err := qdrantStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
		searchEngine = search.NewEngine(embedder, qdrantStore, cfg.QdrantCollection)
		vectorStore = qdrantStore
		slog.Info("Transcript search enabled", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)
	} else {
		slog.Info("Transcript search not configured")
	}

	// Capture and playback
	device := capture.NewFFmpegDevice(cfg.AudioInputFormat, cfg.AudioInputDevice)
	recorder := capture.NewRecorder(device)
	player := playback.NewBufferPlayer()

	controllerDeps := voicenote.Deps{
		Store:       recordingRepo,
		Capturer:    recorder,
		Transcriber: sttClient,
		Summarizer:  llmClient,
		Player:      player,
		Logger:      logger,
	}
	if searchEngine != nil {
		controllerDeps.Index = searchEngine
	}
	controller := voicenote.NewController(controllerDeps)
	defer controller.Close()
	slog.Info("Voice note controller initialized")

	deps := &http.Deps{
		Service:        controller,
		Store:          recordingRepo,
		Projects:       projectRepo,
		Renderer:       summary.NewRenderer(),
		DB:             db,
		VectorStore:    vectorStore,
		CollectionName: cfg.QdrantCollection,
		Logger:         logger,
	}
	if searchEngine != nil {
		deps.Searcher = searchEngine
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	server := &nethttp.Server{Addr: addr, Handler: router}

	// Release the microphone and playback slot on shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		slog.Info("Shutting down")
		controller.Close()
		_ = server.Shutdown(context.Background())
	}()

	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	if err := server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		log.Fatalf("API server failed to start: %v", err)
	}
}
