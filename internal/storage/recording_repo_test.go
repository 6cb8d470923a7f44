package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func testDB(t *testing.T) *RecordingRepo {
	t.Helper()
	tmpDir := t.TempDir()
	db, err := New(tmpDir + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewRecordingRepo(db)
}

func testRecording(project string) *Recording {
	return &Recording{
		ProjectName: project,
		FileName:    "voice_command_" + project + "_2026-08-31T10-00-00-000Z.webm",
		MIMEType:    "audio/webm;codecs=opus",
		Audio:       []byte("not-really-opus"),
	}
}

func TestRecordingRepo_SaveAndGet(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	rec := testRecording("SiteA")
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Save() did not assign an ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("Save() did not set CreatedAt")
	}

	got, err := repo.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !bytes.Equal(got.Audio, rec.Audio) {
		t.Errorf("GetByID() audio mismatch")
	}
	if got.MIMEType != rec.MIMEType {
		t.Errorf("GetByID() mime type = %v, want %v", got.MIMEType, rec.MIMEType)
	}
	if got.Transcription != "" {
		t.Errorf("GetByID() transcription = %q, want empty", got.Transcription)
	}
	if got.Processed {
		t.Error("GetByID() processed = true, want false")
	}
}

func TestRecordingRepo_SaveEmptyAudio(t *testing.T) {
	repo := testDB(t)

	rec := testRecording("SiteA")
	rec.Audio = nil

	err := repo.Save(context.Background(), rec)
	if !errors.Is(err, ErrEmptyAudio) {
		t.Errorf("Save() error = %v, want ErrEmptyAudio", err)
	}

	// Nothing must have been persisted
	recordings, listErr := repo.ListByProject(context.Background(), "SiteA")
	if listErr != nil {
		t.Fatalf("ListByProject() error = %v", listErr)
	}
	if len(recordings) != 0 {
		t.Errorf("ListByProject() returned %d recordings, want 0", len(recordings))
	}
}

func TestRecordingRepo_GetByID_NotFound(t *testing.T) {
	repo := testDB(t)

	_, err := repo.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestRecordingRepo_ListByProject(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := testRecording("SiteA")
		rec.CreatedAt = time.Date(2026, 8, 31, 10, i, 0, 0, time.UTC)
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	if err := repo.Save(ctx, testRecording("SiteB")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	recordings, err := repo.ListByProject(ctx, "SiteA")
	if err != nil {
		t.Fatalf("ListByProject() error = %v", err)
	}
	if len(recordings) != 3 {
		t.Fatalf("ListByProject() returned %d recordings, want 3", len(recordings))
	}
	for _, rec := range recordings {
		if rec.ProjectName != "SiteA" {
			t.Errorf("ListByProject() returned recording for project %q", rec.ProjectName)
		}
		// List results carry metadata only
		if len(rec.Audio) != 0 {
			t.Error("ListByProject() included audio payload")
		}
	}
}

func TestRecordingRepo_AttachTranscription(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	rec := testRecording("SiteA")
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	before, err := repo.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	const text = "Entry #5 needs repainting by Friday"
	if err := repo.AttachTranscription(ctx, rec.ID, text); err != nil {
		t.Fatalf("AttachTranscription() error = %v", err)
	}

	after, err := repo.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if after.Transcription != text {
		t.Errorf("transcription = %q, want %q", after.Transcription, text)
	}

	// Every other field is unchanged
	if after.ID != before.ID {
		t.Errorf("id changed: %v -> %v", before.ID, after.ID)
	}
	if !bytes.Equal(after.Audio, before.Audio) {
		t.Error("audio changed by AttachTranscription")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", before.CreatedAt, after.CreatedAt)
	}
	if after.FileName != before.FileName {
		t.Errorf("file_name changed: %v -> %v", before.FileName, after.FileName)
	}

	// Idempotent overwrite with the same text
	if err := repo.AttachTranscription(ctx, rec.ID, text); err != nil {
		t.Fatalf("AttachTranscription() second call error = %v", err)
	}
	again, err := repo.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if again.Transcription != text {
		t.Errorf("transcription after second attach = %q, want %q", again.Transcription, text)
	}
}

func TestRecordingRepo_AttachTranscription_NotFound(t *testing.T) {
	repo := testDB(t)

	err := repo.AttachTranscription(context.Background(), "missing-id", "text")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AttachTranscription() error = %v, want ErrNotFound", err)
	}
}

func TestRecordingRepo_Delete(t *testing.T) {
	repo := testDB(t)
	ctx := context.Background()

	rec := testRecording("SiteA")
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := repo.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting a missing id is a silent success
	if err := repo.Delete(ctx, rec.ID); err != nil {
		t.Errorf("Delete() on missing id error = %v, want nil", err)
	}
	if err := repo.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete() on unknown id error = %v, want nil", err)
	}
}
