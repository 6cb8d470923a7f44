package capture

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeDevice is a scriptable Device for tests.
type fakeDevice struct {
	supported map[string]bool
	openErr   error
	stream    *fakeStream
}

func (d *fakeDevice) Supports(mimeType string) bool {
	return d.supported[mimeType]
}

func (d *fakeDevice) Open(ctx context.Context, mimeType string) (Stream, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.stream.openedWith = mimeType
	return d.stream, nil
}

type fakeStream struct {
	openedWith string
	chunks     chan []byte
	closed     bool
	closeErr   error
}

func newFakeStream() *fakeStream {
	return &fakeStream{chunks: make(chan []byte, 16)}
}

func (s *fakeStream) Chunks() <-chan []byte {
	return s.chunks
}

func (s *fakeStream) Close() error {
	s.closed = true
	close(s.chunks)
	return s.closeErr
}

func webmDevice(stream *fakeStream) *fakeDevice {
	return &fakeDevice{
		supported: map[string]bool{"audio/webm;codecs=opus": true},
		stream:    stream,
	}
}

func TestRecorder_Begin_NoProject(t *testing.T) {
	recorder := NewRecorder(webmDevice(newFakeStream()))

	_, err := recorder.Begin(context.Background(), "")
	if !errors.Is(err, ErrNoProject) {
		t.Errorf("Begin() error = %v, want ErrNoProject", err)
	}
}

func TestRecorder_Begin_PermissionDenied(t *testing.T) {
	device := webmDevice(newFakeStream())
	device.openErr = ErrPermissionDenied
	recorder := NewRecorder(device)

	_, err := recorder.Begin(context.Background(), "SiteA")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("Begin() error = %v, want ErrPermissionDenied", err)
	}
}

func TestRecorder_Begin_NoSupportedEncoding(t *testing.T) {
	recorder := NewRecorder(&fakeDevice{supported: map[string]bool{}, stream: newFakeStream()})

	_, err := recorder.Begin(context.Background(), "SiteA")
	if !errors.Is(err, ErrNoSupportedEncoding) {
		t.Errorf("Begin() error = %v, want ErrNoSupportedEncoding", err)
	}
}

func TestRecorder_EncodingNegotiation(t *testing.T) {
	tests := []struct {
		name      string
		supported map[string]bool
		wantMIME  string
		wantExt   string
	}{
		{
			name: "prefers webm",
			supported: map[string]bool{
				"audio/webm;codecs=opus": true,
				"audio/ogg;codecs=opus":  true,
				"audio/mp4":              true,
			},
			wantMIME: "audio/webm;codecs=opus",
			wantExt:  "webm",
		},
		{
			name: "falls back to ogg",
			supported: map[string]bool{
				"audio/ogg;codecs=opus": true,
				"audio/mp4":             true,
			},
			wantMIME: "audio/ogg;codecs=opus",
			wantExt:  "ogg",
		},
		{
			name:      "falls back to mp4",
			supported: map[string]bool{"audio/mp4": true},
			wantMIME:  "audio/mp4",
			wantExt:   "mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := newFakeStream()
			recorder := NewRecorder(&fakeDevice{supported: tt.supported, stream: stream})

			session, err := recorder.Begin(context.Background(), "SiteA")
			if err != nil {
				t.Fatalf("Begin() error = %v", err)
			}
			if session.Encoding.MIMEType != tt.wantMIME {
				t.Errorf("negotiated MIME = %v, want %v", session.Encoding.MIMEType, tt.wantMIME)
			}
			if session.Encoding.Extension != tt.wantExt {
				t.Errorf("negotiated extension = %v, want %v", session.Encoding.Extension, tt.wantExt)
			}
			if stream.openedWith != tt.wantMIME {
				t.Errorf("device opened with %v, want %v", stream.openedWith, tt.wantMIME)
			}
		})
	}
}

func TestRecorder_End_ConcatenatesChunks(t *testing.T) {
	stream := newFakeStream()
	recorder := NewRecorder(webmDevice(stream))

	session, err := recorder.Begin(context.Background(), "SiteA")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	sizes := []int{4000, 4000, 2000}
	for _, size := range sizes {
		stream.chunks <- make([]byte, size)
	}

	clip, err := recorder.End(context.Background(), session)
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}

	if len(clip.Data) != 10000 {
		t.Errorf("clip size = %d, want 10000", len(clip.Data))
	}
	if clip.MIMEType != "audio/webm;codecs=opus" {
		t.Errorf("clip MIME = %v, want negotiated encoding", clip.MIMEType)
	}
	if !stream.closed {
		t.Error("End() did not release the stream")
	}
}

func TestRecorder_End_EmptyCapture(t *testing.T) {
	stream := newFakeStream()
	recorder := NewRecorder(webmDevice(stream))

	session, err := recorder.Begin(context.Background(), "SiteA")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	_, err = recorder.End(context.Background(), session)
	if !errors.Is(err, ErrEmptyCapture) {
		t.Errorf("End() error = %v, want ErrEmptyCapture", err)
	}
	if !stream.closed {
		t.Error("End() did not release the stream on empty capture")
	}
}

func TestRecorder_End_ZeroLengthChunksOnly(t *testing.T) {
	stream := newFakeStream()
	recorder := NewRecorder(webmDevice(stream))

	session, err := recorder.Begin(context.Background(), "SiteA")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	stream.chunks <- []byte{}
	stream.chunks <- nil

	_, err = recorder.End(context.Background(), session)
	if !errors.Is(err, ErrEmptyCapture) {
		t.Errorf("End() error = %v, want ErrEmptyCapture", err)
	}
}

func TestRecorder_End_ReleasesStreamOnCloseError(t *testing.T) {
	stream := newFakeStream()
	stream.closeErr = errors.New("device wedged")
	recorder := NewRecorder(webmDevice(stream))

	session, err := recorder.Begin(context.Background(), "SiteA")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	// No chunks plus a close failure: the close error wins, and the stream
	// was still released.
	_, err = recorder.End(context.Background(), session)
	if err == nil {
		t.Fatal("End() expected error")
	}
	if !stream.closed {
		t.Error("End() did not release the stream on close failure")
	}
}

func TestRecorder_End_ChunksSurviveCloseError(t *testing.T) {
	stream := newFakeStream()
	stream.closeErr = errors.New("stop ack lost")
	recorder := NewRecorder(webmDevice(stream))

	session, err := recorder.Begin(context.Background(), "SiteA")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	stream.chunks <- []byte("audio")

	clip, err := recorder.End(context.Background(), session)
	if err != nil {
		t.Fatalf("End() error = %v, want captured data despite close failure", err)
	}
	if string(clip.Data) != "audio" {
		t.Errorf("clip data = %q, want %q", clip.Data, "audio")
	}
}

func TestRecorder_End_ContextCancelled(t *testing.T) {
	// A stream that never closes its chunk channel after Close
	stuck := &stuckStream{chunks: make(chan []byte)}
	recorder := NewRecorder(&stuckDevice{stuck})

	session, err := recorder.Begin(context.Background(), "SiteA")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = recorder.End(ctx, session)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("End() error = %v, want DeadlineExceeded", err)
	}
}

type stuckStream struct {
	chunks chan []byte
}

func (s *stuckStream) Chunks() <-chan []byte { return s.chunks }
func (s *stuckStream) Close() error          { return nil }

type stuckDevice struct {
	stream *stuckStream
}

func (d *stuckDevice) Supports(mimeType string) bool {
	return mimeType == "audio/webm;codecs=opus"
}

func (d *stuckDevice) Open(ctx context.Context, mimeType string) (Stream, error) {
	return d.stream, nil
}
