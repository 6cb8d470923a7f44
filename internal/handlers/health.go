package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"sitevoice/internal/contextutil"
	"sitevoice/internal/vectorstore"
)

// HealthHandler reports the health of the store and, when configured, the
// search backend.
type HealthHandler struct {
	db                 *sql.DB
	vectorStore        vectorstore.VectorStore
	collectionName     string
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. vectorStore may be nil when
// search is not configured.
func NewHealthHandler(db *sql.DB, vectorStore vectorstore.VectorStore, collectionName string) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		vectorStore:        vectorStore,
		collectionName:     collectionName,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Issues    []string          `json:"issues,omitempty"`
}

// ServeHTTP runs the dependency checks. 200 when healthy, 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if err := h.db.PingContext(checkCtx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
	} else {
		checks["database"] = "ok"
	}

	if h.vectorStore != nil {
		exists, err := h.vectorStore.CollectionExists(checkCtx, h.collectionName)
		switch {
		case err != nil:
			logger.WarnContext(ctx, "vector store health check failed", "error", err)
			checks["vector_store"] = "error"
			issues = append(issues, "vector_store_unavailable")
		case !exists:
			checks["vector_store"] = "missing_collection"
			issues = append(issues, "vector_store_collection_missing")
		default:
			checks["vector_store"] = "ok"
		}
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}
