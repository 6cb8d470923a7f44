// Package capture records microphone audio into finalized encoded clips.
//
// A Recorder negotiates an encoding with the Device, opens a capture Stream
// and accumulates its chunks in a Session. End finalizes the session into a
// single Clip and always releases the underlying stream, successful or not.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ChunkInterval is the buffering interval at which streams deliver partial
// data, so audio exists even when a capture never stops cleanly.
const ChunkInterval = 500 * time.Millisecond

var (
	// ErrNoProject is returned when capture is started without a project.
	ErrNoProject = errors.New("project name is required")
	// ErrPermissionDenied is returned when microphone access is unavailable.
	ErrPermissionDenied = errors.New("microphone access denied")
	// ErrEmptyCapture is returned when a finalized session holds no audio.
	ErrEmptyCapture = errors.New("capture produced no audio data")
	// ErrNoSupportedEncoding is returned when the device supports none of the
	// preferred encodings.
	ErrNoSupportedEncoding = errors.New("no supported audio encoding")
)

// Encoding is a negotiated audio container and codec.
type Encoding struct {
	MIMEType  string
	Extension string
}

// preferredEncodings is the ordered negotiation list: the modern open
// container first, then the legacy one, then the mobile fallback.
var preferredEncodings = []Encoding{
	{MIMEType: "audio/webm;codecs=opus", Extension: "webm"},
	{MIMEType: "audio/ogg;codecs=opus", Extension: "ogg"},
	{MIMEType: "audio/mp4", Extension: "mp4"},
}

// Device abstracts a platform microphone backend.
type Device interface {
	// Supports reports whether the device can capture in the given encoding.
	Supports(mimeType string) bool
	// Open starts capturing and returns a stream of encoded chunks.
	// Returns an error wrapping ErrPermissionDenied when the platform refuses
	// microphone access.
	Open(ctx context.Context, mimeType string) (Stream, error)
}

// Stream is one live capture. Chunks are delivered roughly every
// ChunkInterval; the channel is closed after Close once buffered data has
// been flushed.
type Stream interface {
	Chunks() <-chan []byte
	// Close stops the capture and releases the underlying hardware.
	Close() error
}

// Clip is a single finalized encoded recording produced by one session.
type Clip struct {
	Data      []byte
	MIMEType  string
	Extension string
}

// Session is one in-progress capture. It owns an append-only chunk buffer fed
// from the device stream.
type Session struct {
	Project  string
	Encoding Encoding
	Started  time.Time

	stream Stream
	mu     sync.Mutex
	chunks [][]byte
	done   chan struct{}
}

func (s *Session) run() {
	for chunk := range s.stream.Chunks() {
		if len(chunk) == 0 {
			continue
		}
		s.mu.Lock()
		s.chunks = append(s.chunks, chunk)
		s.mu.Unlock()
	}
	close(s.done)
}

// Recorder opens and finalizes capture sessions against a Device.
type Recorder struct {
	device Device
}

// NewRecorder creates a new Recorder.
func NewRecorder(device Device) *Recorder {
	return &Recorder{device: device}
}

// Begin opens a capture session for the given project. The encoding is the
// first entry of the preference list the device supports.
func (r *Recorder) Begin(ctx context.Context, projectName string) (*Session, error) {
	if projectName == "" {
		return nil, ErrNoProject
	}

	encoding, ok := r.negotiate()
	if !ok {
		return nil, ErrNoSupportedEncoding
	}

	stream, err := r.device.Open(ctx, encoding.MIMEType)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to open capture device: %w", err)
	}

	session := &Session{
		Project:  projectName,
		Encoding: encoding,
		Started:  time.Now(),
		stream:   stream,
		done:     make(chan struct{}),
	}
	go session.run()

	return session, nil
}

// End finalizes a session into a single Clip. The hardware stream is released
// first, unconditionally, so a failing finalize can never leak the
// microphone. Returns ErrEmptyCapture when no audio was accumulated.
func (r *Recorder) End(ctx context.Context, session *Session) (*Clip, error) {
	closeErr := session.stream.Close()

	// Wait for the stop acknowledgment: the stream flushes buffered data and
	// closes its channel, which ends the session's accumulate loop.
	select {
	case <-session.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	total := 0
	for _, chunk := range session.chunks {
		total += len(chunk)
	}
	if total == 0 {
		if closeErr != nil {
			return nil, fmt.Errorf("capture stream close failed: %w", closeErr)
		}
		return nil, ErrEmptyCapture
	}

	data := make([]byte, 0, total)
	for _, chunk := range session.chunks {
		data = append(data, chunk...)
	}

	return &Clip{
		Data:      data,
		MIMEType:  session.Encoding.MIMEType,
		Extension: session.Encoding.Extension,
	}, nil
}

func (r *Recorder) negotiate() (Encoding, bool) {
	for _, encoding := range preferredEncodings {
		if r.device.Supports(encoding.MIMEType) {
			return encoding, true
		}
	}
	return Encoding{}, false
}
