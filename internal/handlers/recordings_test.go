package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"sitevoice/internal/handlers/mocks"
	"sitevoice/internal/storage"
	"sitevoice/internal/voicenote"
)

type stubStore struct {
	voicenote.RecordingStore
	recordings []*storage.Recording
	byID       map[string]*storage.Recording
}

func (s *stubStore) ListByProject(ctx context.Context, projectName string) ([]*storage.Recording, error) {
	return s.recordings, nil
}

func (s *stubStore) GetByID(ctx context.Context, id string) (*storage.Recording, error) {
	if rec, ok := s.byID[id]; ok {
		return rec, nil
	}
	return nil, storage.ErrNotFound
}

func newRecordingsRouter(service VoiceNoteService, store voicenote.RecordingStore) http.Handler {
	h := NewRecordingsHandler(service, store)
	r := chi.NewRouter()
	r.Get("/api/v1/recordings", h.List)
	r.Get("/api/v1/recordings/{id}/audio", h.Audio)
	r.Post("/api/v1/recordings/{id}/play", h.Play)
	r.Delete("/api/v1/recordings/{id}", h.Delete)
	r.Post("/api/v1/playback/stop", h.StopPlayback)
	return r
}

func TestRecordingsHandler_List(t *testing.T) {
	older := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	store := &stubStore{recordings: []*storage.Recording{
		{ID: "rec-old", ProjectName: "SiteA", CreatedAt: older},
		{ID: "rec-new", ProjectName: "SiteA", CreatedAt: older.Add(time.Hour), Transcription: "text"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings?project=SiteA", nil)
	w := httptest.NewRecorder()
	newRecordingsRouter(nil, store).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Recordings []RecordingResponse `json:"recordings"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Recordings) != 2 {
		t.Fatalf("got %d recordings, want 2", len(resp.Recordings))
	}
	if resp.Recordings[0].ID != "rec-new" {
		t.Errorf("first entry = %q, want rec-new (most recent first)", resp.Recordings[0].ID)
	}
	if !resp.Recordings[0].HasTranscription {
		t.Error("rec-new should report a transcription")
	}
}

func TestRecordingsHandler_List_RequiresProject(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings", nil)
	w := httptest.NewRecorder()
	newRecordingsRouter(nil, &stubStore{}).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRecordingsHandler_Audio(t *testing.T) {
	store := &stubStore{byID: map[string]*storage.Recording{
		"rec-1": {
			ID:       "rec-1",
			FileName: "voice_command_SiteA_x.webm",
			MIMEType: "audio/webm;codecs=opus",
			Audio:    []byte("opus-bytes"),
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings/rec-1/audio", nil)
	w := httptest.NewRecorder()
	newRecordingsRouter(nil, store).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "audio/webm;codecs=opus" {
		t.Errorf("Content-Type = %q", got)
	}
	if !bytes.Equal(w.Body.Bytes(), []byte("opus-bytes")) {
		t.Error("audio payload does not match stored blob")
	}
}

func TestRecordingsHandler_Audio_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings/missing/audio", nil)
	w := httptest.NewRecorder()
	newRecordingsRouter(nil, &stubStore{}).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRecordingsHandler_Play_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockVoiceNoteService(ctrl)
	mockService.EXPECT().Play(gomock.Any(), "rec-1").Return(voicenote.ErrPlaybackTimeout)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recordings/rec-1/play", nil)
	w := httptest.NewRecorder()
	newRecordingsRouter(mockService, &stubStore{}).ServeHTTP(w, req)

	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", w.Code)
	}
}

func TestRecordingsHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockVoiceNoteService(ctrl)
	mockService.EXPECT().Delete(gomock.Any(), "rec-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recordings/rec-1", nil)
	w := httptest.NewRecorder()
	newRecordingsRouter(mockService, &stubStore{}).ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}

func TestRecordingsHandler_StopPlayback(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		mockSetup func(*mocks.MockVoiceNoteService)
	}{
		{
			name: "user stop",
			body: "",
			mockSetup: func(m *mocks.MockVoiceNoteService) {
				m.EXPECT().StopPlayback()
				m.EXPECT().Snapshot().Return(voicenote.Snapshot{})
			},
		},
		{
			name: "natural end of clip",
			body: `{"id":"rec-1","ended":true}`,
			mockSetup: func(m *mocks.MockVoiceNoteService) {
				m.EXPECT().NotifyPlaybackEnded("rec-1")
				m.EXPECT().Snapshot().Return(voicenote.Snapshot{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockVoiceNoteService(ctrl)
			tt.mockSetup(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/playback/stop", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			newRecordingsRouter(mockService, &stubStore{}).ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
		})
	}
}
