package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"sitevoice/internal/handlers/mocks"
	"sitevoice/internal/storage"
	"sitevoice/internal/summary"
	"sitevoice/internal/voicenote"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockVoiceNoteService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockVoiceNoteService(ctrl)

	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	router := NewRouter(&Deps{
		Service:  mockService,
		Store:    storage.NewRecordingRepo(db),
		Projects: storage.NewProjectRepo(db),
		Renderer: summary.NewRenderer(),
		DB:       db,
		Logger:   slog.Default(),
	})
	return router, mockService
}

func TestRouter_State(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().Snapshot().Return(voicenote.Snapshot{State: voicenote.StateIdle})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("missing CORS header")
	}
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRouter_SearchNotConfigured(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=repaint", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestRouter_Preflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/record/start", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
