package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"sitevoice/internal/search"
)

// SearchHandler serves semantic queries over transcripts. The feature is
// optional; with no engine configured every request gets a 503.
type SearchHandler struct {
	searcher TranscriptSearcher
}

// NewSearchHandler creates a new SearchHandler. searcher may be nil.
func NewSearchHandler(searcher TranscriptSearcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// SearchResponse holds the scored transcript matches.
type SearchResponse struct {
	Query string       `json:"query"`
	Hits  []search.Hit `json:"hits"`
}

// ServeHTTP answers a semantic transcript query.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.searcher == nil {
		writeError(w, http.StatusServiceUnavailable, "Search is not configured")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}
	project := strings.TrimSpace(r.URL.Query().Get("project"))

	k := 0
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "Invalid k parameter")
			return
		}
		k = parsed
	}
	if k > 20 {
		k = 20
	}

	hits, err := h.searcher.Search(ctx, query, project, k)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to search transcripts")
		return
	}
	if hits == nil {
		hits = []search.Hit{}
	}

	writeJSON(w, http.StatusOK, SearchResponse{Query: query, Hits: hits})
}
