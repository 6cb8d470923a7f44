package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrEmptyAudio is returned when a recording is saved with no audio payload.
	ErrEmptyAudio = errors.New("recording has empty audio payload")
)

const timeLayout = "2006-01-02 15:04:05"

// RecordingRepo provides methods for voice recording operations.
type RecordingRepo struct {
	db *sql.DB
}

// NewRecordingRepo creates a new RecordingRepo.
func NewRecordingRepo(db *sql.DB) *RecordingRepo {
	return &RecordingRepo{db: db}
}

// Save inserts a new recording. It generates a UUID if the recording has no ID
// and sets CreatedAt. A zero-length audio payload is rejected with
// ErrEmptyAudio; recordings are never persisted without audio.
func (r *RecordingRepo) Save(ctx context.Context, rec *Recording) error {
	if len(rec.Audio) == 0 {
		return ErrEmptyAudio
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recordings (id, project_name, file_name, mime_type, audio, transcription, processed, created_at)
		 VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?)`,
		rec.ID, rec.ProjectName, rec.FileName, rec.MIMEType, rec.Audio, rec.Transcription, rec.Processed,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save recording: %w", err)
	}

	return nil
}

// ListByProject returns all recordings for the project without their audio
// payloads. No ordering is guaranteed; callers sort as needed.
func (r *RecordingRepo) ListByProject(ctx context.Context, projectName string) ([]*Recording, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_name, file_name, mime_type, COALESCE(transcription, ''), processed, created_at
		 FROM recordings WHERE project_name = ?`,
		projectName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recordings: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var recordings []*Recording
	for rows.Next() {
		var rec Recording
		var createdAtStr string
		if err := rows.Scan(&rec.ID, &rec.ProjectName, &rec.FileName, &rec.MIMEType,
			&rec.Transcription, &rec.Processed, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan recording: %w", err)
		}
		rec.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, err
		}
		recordings = append(recordings, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recordings: %w", err)
	}

	return recordings, nil
}

// GetByID returns the full recording including its audio payload.
// Returns nil and ErrNotFound if no recording exists with the given id.
func (r *RecordingRepo) GetByID(ctx context.Context, id string) (*Recording, error) {
	var rec Recording
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_name, file_name, mime_type, audio, COALESCE(transcription, ''), processed, created_at
		 FROM recordings WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.ProjectName, &rec.FileName, &rec.MIMEType, &rec.Audio,
		&rec.Transcription, &rec.Processed, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recording: %w", err)
	}

	rec.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// AttachTranscription sets the transcription text on a recording. It is the
// only permitted mutation; id, audio and created_at are untouched. The update
// is idempotent overwrite-style. Returns ErrNotFound if the recording no
// longer exists.
func (r *RecordingRepo) AttachTranscription(ctx context.Context, id, text string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE recordings SET transcription = ? WHERE id = ?",
		text, id,
	)
	if err != nil {
		return fmt.Errorf("failed to attach transcription: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check transcription update: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a recording. Deleting an id that does not exist is a silent
// success: the record is treated as already deleted. This keeps delete
// retry-safe for the controller's optimistic-removal flow.
func (r *RecordingRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM recordings WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	return nil
}

// parseTime parses a SQLite DATETIME string, falling back to RFC3339.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	return t, nil
}
