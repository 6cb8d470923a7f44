package storage

import "time"

// Project represents an inspection project that scopes recordings.
type Project struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

// Recording represents a persisted voice note.
//
// A recording is immutable after Save except for Transcription, which is
// attached exactly once after a successful transcription. Processed is stored
// but informational; nothing gates on it.
type Recording struct {
	ID            string // UUID
	ProjectName   string
	FileName      string // voice_command_<project>_<timestamp>.<ext>
	MIMEType      string // negotiated capture encoding
	Audio         []byte // encoded clip; empty in list results
	Transcription string // empty until transcription succeeds
	Processed     bool
	CreatedAt     time.Time
}
