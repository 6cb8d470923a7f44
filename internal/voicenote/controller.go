// Package voicenote orchestrates the voice note pipeline: microphone capture,
// persistence, playback, and on-demand transcription and summarization.
package voicenote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"sitevoice/internal/capture"
	"sitevoice/internal/storage"
)

// CaptureState is the controller's capture lifecycle state.
type CaptureState string

const (
	StateIdle      CaptureState = "idle"
	StateRecording CaptureState = "recording"
	StateSaving    CaptureState = "saving"
)

const defaultPlayTimeout = 5 * time.Second

// Disabled reasons surfaced while the record affordance is gated.
const (
	disabledNoProject = "Select a project before recording."
	disabledNoBackend = "Recording is disabled: transcription API key is not configured."
)

// Deps holds the controller's collaborators. Index may be nil when semantic
// search is not configured.
type Deps struct {
	Store       RecordingStore
	Capturer    Capturer
	Transcriber Transcriber
	Summarizer  Summarizer
	Player      Player
	Index       TranscriptIndex
	Logger      *slog.Logger
	Clock       func() time.Time
	PlayTimeout time.Duration
}

// Controller owns the recording lifecycle state machine and mediates between
// capture, storage, playback and the enrichment services. Its recording list
// is projected state: an in-memory cache over the store, reloaded after every
// mutation.
type Controller struct {
	store       RecordingStore
	capturer    Capturer
	transcriber Transcriber
	summarizer  Summarizer
	player      Player
	index       TranscriptIndex
	logger      *slog.Logger
	clock       func() time.Time
	playTimeout time.Duration

	mu         sync.Mutex
	state      CaptureState
	project    string
	session    *capture.Session
	elapsed    int
	tickerStop chan struct{}
	recordings []*storage.Recording
	playing    *activePlayback
	lastError  string
}

type activePlayback struct {
	recordingID string
	handle      Playback
}

// NewController creates a new Controller.
func NewController(deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	playTimeout := deps.PlayTimeout
	if playTimeout <= 0 {
		playTimeout = defaultPlayTimeout
	}

	return &Controller{
		store:       deps.Store,
		capturer:    deps.Capturer,
		transcriber: deps.Transcriber,
		summarizer:  deps.Summarizer,
		player:      deps.Player,
		index:       deps.Index,
		logger:      logger,
		clock:       clock,
		playTimeout: playTimeout,
		state:       StateIdle,
	}
}

// SelectProject sets the project scope and reloads the projected recording
// list. Any active playback is released; it may belong to another project.
func (c *Controller) SelectProject(ctx context.Context, name string) error {
	if name == "" {
		return &ValidationError{Field: "project", Message: "cannot be empty"}
	}

	c.releaseCurrent()

	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrAlreadyRecording
	}
	c.project = name
	c.lastError = ""
	c.mu.Unlock()

	return c.reload(ctx)
}

// StartRecording opens a capture session. It is allowed only from Idle, with
// a selected project and an available transcription backend: recording is
// only offered when enrichment is possible downstream.
func (c *Controller) StartRecording(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrAlreadyRecording
	}
	project := c.project
	c.mu.Unlock()

	if project == "" {
		return &ValidationError{Field: "project", Message: "no project selected"}
	}
	if !c.transcriber.Available() {
		return ErrRecordingDisabled
	}

	session, err := c.capturer.Begin(ctx, project)
	if err != nil {
		err = WrapError(err, "failed to start capture")
		c.retainError(err)
		return err
	}

	stop := make(chan struct{})

	c.mu.Lock()
	c.state = StateRecording
	c.session = session
	c.elapsed = 0
	c.lastError = ""
	c.tickerStop = stop
	c.mu.Unlock()

	go c.tick(stop)

	c.logger.InfoContext(ctx, "recording started", "project", project)
	return nil
}

// StopRecording finalizes the active capture session, persists the clip and
// reloads the recording list. The controller always returns to Idle, on
// failure too; the error is retained for the presentation surface.
func (c *Controller) StopRecording(ctx context.Context) (*storage.Recording, error) {
	c.mu.Lock()
	if c.state != StateRecording {
		c.mu.Unlock()
		return nil, ErrNotRecording
	}
	c.state = StateSaving
	c.stopTickerLocked()
	session := c.session
	c.session = nil
	project := c.project
	c.mu.Unlock()

	rec, err := c.finalizeAndSave(ctx, project, session)

	c.mu.Lock()
	c.state = StateIdle
	if err != nil {
		c.lastError = err.Error()
	}
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if reloadErr := c.reload(ctx); reloadErr != nil {
		c.logger.WarnContext(ctx, "failed to reload recordings after save", "error", reloadErr)
	}

	c.logger.InfoContext(ctx, "recording saved",
		"recording_id", rec.ID, "file_name", rec.FileName, "size", len(rec.Audio))
	return rec, nil
}

func (c *Controller) finalizeAndSave(ctx context.Context, project string, session *capture.Session) (*storage.Recording, error) {
	clip, err := c.capturer.End(ctx, session)
	if err != nil {
		return nil, WrapError(err, "failed to finalize capture")
	}

	rec := &storage.Recording{
		ProjectName: project,
		FileName:    recordingFileName(project, c.clock(), clip.Extension),
		MIMEType:    clip.MIMEType,
		Audio:       clip.Data,
	}
	if err := c.store.Save(ctx, rec); err != nil {
		return nil, WrapError(err, "failed to save recording")
	}

	return rec, nil
}

// Play starts playback of a recording. Any other active playback is stopped
// first; at most one clip plays at a time. The wait for the clip to become
// fully bufferable is bounded by the play timeout.
func (c *Controller) Play(ctx context.Context, id string) error {
	c.releaseCurrent()

	rec, err := c.store.GetByID(ctx, id)
	if err != nil {
		err = WrapError(err, "failed to load recording")
		c.retainError(err)
		return err
	}
	if len(rec.Audio) == 0 {
		return &ValidationError{Field: "audio", Message: "recording has no audio payload"}
	}

	playCtx, cancel := context.WithTimeout(ctx, c.playTimeout)
	defer cancel()

	handle, err := c.player.Play(playCtx, rec.Audio, rec.MIMEType)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrPlaybackTimeout
		} else {
			err = WrapError(err, "failed to start playback")
		}
		c.retainError(err)
		return err
	}

	c.mu.Lock()
	if c.playing != nil {
		// A competing play won the slot while this clip was buffering.
		c.mu.Unlock()
		handle.Stop()
		return nil
	}
	c.playing = &activePlayback{recordingID: id, handle: handle}
	c.mu.Unlock()

	return nil
}

// StopPlayback releases the active playback, if any.
func (c *Controller) StopPlayback() {
	c.releaseCurrent()
}

// NotifyPlaybackEnded releases the playback handle after the platform reports
// natural end-of-clip.
func (c *Controller) NotifyPlaybackEnded(id string) {
	c.mu.Lock()
	if c.playing == nil || c.playing.recordingID != id {
		c.mu.Unlock()
		return
	}
	playing := c.playing
	c.playing = nil
	c.mu.Unlock()

	playing.handle.Stop()
}

// Delete removes a recording. The entry leaves the projected list
// immediately; if the store delete then fails the error is retained and the
// list is reloaded, so the projection never misrepresents the store. If the
// recording is currently playing, playback stops before removal.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	var stopped Playback
	if c.playing != nil && c.playing.recordingID == id {
		stopped = c.playing.handle
		c.playing = nil
	}
	for i, rec := range c.recordings {
		if rec.ID == id {
			c.recordings = append(c.recordings[:i], c.recordings[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if stopped != nil {
		stopped.Stop()
	}

	if err := c.store.Delete(ctx, id); err != nil {
		err = WrapError(err, "failed to delete recording")
		c.retainError(err)
		if reloadErr := c.reload(ctx); reloadErr != nil {
			c.logger.WarnContext(ctx, "failed to reconcile after delete failure", "error", reloadErr)
		}
		return err
	}

	if c.index != nil {
		if err := c.index.RemoveRecording(ctx, id); err != nil {
			c.logger.WarnContext(ctx, "failed to remove transcript from search index",
				"recording_id", id, "error", err)
		}
	}

	return nil
}

// TranscriptResult is the outcome of a transcript request.
type TranscriptResult struct {
	Text   string
	Cached bool
}

// RequestTranscript returns the recording's transcript, transcribing on first
// request. An existing transcript is the single source of truth: it is
// returned as-is with no service call. A transcript completed for a recording
// deleted mid-flight is returned but not persisted.
func (c *Controller) RequestTranscript(ctx context.Context, id string) (TranscriptResult, error) {
	rec, err := c.store.GetByID(ctx, id)
	if err != nil {
		return TranscriptResult{}, WrapError(err, "failed to load recording")
	}

	if rec.Transcription != "" {
		return TranscriptResult{Text: rec.Transcription, Cached: true}, nil
	}

	text, err := c.transcriber.Transcribe(ctx, rec.Audio, rec.MIMEType, rec.FileName)
	if err != nil {
		err = WrapError(err, "failed to transcribe recording")
		c.retainError(err)
		return TranscriptResult{}, err
	}

	if err := c.store.AttachTranscription(ctx, id, text); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Deleted while the call was in flight; enrichment is a no-op.
			return TranscriptResult{Text: text}, nil
		}
		err = WrapError(err, "failed to persist transcription")
		c.retainError(err)
		return TranscriptResult{}, err
	}

	c.mu.Lock()
	for _, r := range c.recordings {
		if r.ID == id {
			r.Transcription = text
			break
		}
	}
	c.mu.Unlock()

	if c.index != nil {
		rec.Transcription = text
		if err := c.index.IndexTranscript(ctx, rec); err != nil {
			c.logger.WarnContext(ctx, "failed to index transcript",
				"recording_id", id, "error", err)
		}
	}

	return TranscriptResult{Text: text}, nil
}

// SummaryView is the enriched content for the detail surface's two tabs.
type SummaryView struct {
	RecordingID   string
	Summary       string
	Failed        bool
	Transcription string
}

// Summary returns fresh enriched content for a recording. Summaries are
// derived, never stored: each call issues a new summarization of the
// transcript. A summarization failure yields the fallback text in the
// summary pane while the raw transcript stays intact.
func (c *Controller) Summary(ctx context.Context, id string) (SummaryView, error) {
	result, err := c.RequestTranscript(ctx, id)
	if err != nil {
		return SummaryView{}, err
	}
	if result.Text == "" {
		return SummaryView{}, ErrNoTranscript
	}

	text, err := c.summarizer.Summarize(ctx, result.Text)
	if err != nil {
		c.logger.WarnContext(ctx, "summarization failed", "recording_id", id, "error", err)
		return SummaryView{
			RecordingID:   id,
			Summary:       SummaryFallback,
			Failed:        true,
			Transcription: result.Text,
		}, nil
	}

	return SummaryView{
		RecordingID:   id,
		Summary:       text,
		Transcription: result.Text,
	}, nil
}

// StreamSummary streams a fresh summary of the recording's transcript via
// callback.
func (c *Controller) StreamSummary(ctx context.Context, id string, callback func(chunk string) error) error {
	result, err := c.RequestTranscript(ctx, id)
	if err != nil {
		return err
	}
	if result.Text == "" {
		return ErrNoTranscript
	}
	return c.summarizer.StreamSummarize(ctx, result.Text, callback)
}

// RecordingView is one list entry in a snapshot.
type RecordingView struct {
	ID               string    `json:"id"`
	ProjectName      string    `json:"project_name"`
	FileName         string    `json:"file_name"`
	MIMEType         string    `json:"mime_type"`
	HasTranscription bool      `json:"has_transcription"`
	Processed        bool      `json:"processed"`
	CreatedAt        time.Time `json:"created_at"`
	Playing          bool      `json:"playing"`
}

// Snapshot is the controller state exposed to the presentation surface.
type Snapshot struct {
	State          CaptureState    `json:"state"`
	Project        string          `json:"project"`
	ElapsedSeconds int             `json:"elapsed_seconds"`
	CanRecord      bool            `json:"can_record"`
	DisabledReason string          `json:"disabled_reason,omitempty"`
	LastError      string          `json:"last_error,omitempty"`
	PlayingID      string          `json:"playing_id,omitempty"`
	Recordings     []RecordingView `json:"recordings"`
}

// Snapshot returns the current controller state. Recordings are ordered most
// recent first.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:          c.state,
		Project:        c.project,
		ElapsedSeconds: c.elapsed,
		LastError:      c.lastError,
		Recordings:     make([]RecordingView, 0, len(c.recordings)),
	}
	if c.playing != nil {
		snap.PlayingID = c.playing.recordingID
	}

	switch {
	case c.project == "":
		snap.DisabledReason = disabledNoProject
	case !c.transcriber.Available():
		snap.DisabledReason = disabledNoBackend
	default:
		snap.CanRecord = c.state == StateIdle
	}

	for _, rec := range c.recordings {
		snap.Recordings = append(snap.Recordings, RecordingView{
			ID:               rec.ID,
			ProjectName:      rec.ProjectName,
			FileName:         rec.FileName,
			MIMEType:         rec.MIMEType,
			HasTranscription: rec.Transcription != "",
			Processed:        rec.Processed,
			CreatedAt:        rec.CreatedAt,
			Playing:          c.playing != nil && c.playing.recordingID == rec.ID,
		})
	}

	return snap
}

// Close releases the controller's resources: the elapsed ticker, any active
// playback, and a still-open capture session (so the microphone is never
// leaked on shutdown).
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopTickerLocked()
	session := c.session
	c.session = nil
	c.state = StateIdle
	c.mu.Unlock()

	c.releaseCurrent()

	if session != nil {
		if _, err := c.capturer.End(context.Background(), session); err != nil {
			c.logger.Warn("failed to release capture session on close", "error", err)
		}
	}
}

func (c *Controller) tick(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			if c.state == StateRecording {
				c.elapsed++
			}
			c.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// stopTickerLocked cancels the elapsed ticker. Called on every exit from
// Recording, error paths included, so intervals never leak.
func (c *Controller) stopTickerLocked() {
	if c.tickerStop != nil {
		close(c.tickerStop)
		c.tickerStop = nil
	}
}

func (c *Controller) releaseCurrent() {
	c.mu.Lock()
	playing := c.playing
	c.playing = nil
	c.mu.Unlock()

	if playing != nil {
		playing.handle.Stop()
	}
}

// reload replaces the projected recording list from the store, most recent
// first.
func (c *Controller) reload(ctx context.Context) error {
	c.mu.Lock()
	project := c.project
	c.mu.Unlock()

	if project == "" {
		c.mu.Lock()
		c.recordings = nil
		c.mu.Unlock()
		return nil
	}

	recordings, err := c.store.ListByProject(ctx, project)
	if err != nil {
		return WrapError(err, "failed to load recordings")
	}
	sort.Slice(recordings, func(i, j int) bool {
		return recordings[i].CreatedAt.After(recordings[j].CreatedAt)
	})

	c.mu.Lock()
	c.recordings = recordings
	c.mu.Unlock()
	return nil
}

func (c *Controller) retainError(err error) {
	c.mu.Lock()
	c.lastError = err.Error()
	c.mu.Unlock()
}

var fileNameSanitizer = strings.NewReplacer(":", "-", ".", "-")

// recordingFileName derives the human-auditable file name, embedding the
// project and capture timestamp with colons and dots replaced.
func recordingFileName(project string, t time.Time, ext string) string {
	ts := fileNameSanitizer.Replace(t.UTC().Format("2006-01-02T15:04:05.000Z"))
	return fmt.Sprintf("voice_command_%s_%s.%s", project, ts, ext)
}
