package capture

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// FFmpegDevice captures the microphone by spawning ffmpeg and reading the
// encoded container from its stdout.
type FFmpegDevice struct {
	// InputFormat is the ffmpeg input backend ("pulse", "alsa", "avfoundation").
	InputFormat string
	// InputDevice is the device name passed to -i (usually "default").
	InputDevice string
}

// NewFFmpegDevice creates a new FFmpegDevice.
func NewFFmpegDevice(inputFormat, inputDevice string) *FFmpegDevice {
	return &FFmpegDevice{
		InputFormat: inputFormat,
		InputDevice: inputDevice,
	}
}

// Supports reports whether ffmpeg can stream the given encoding to a pipe.
// mp4 needs a seekable output, so it never negotiates here and the webm/ogg
// fallback chain applies.
func (d *FFmpegDevice) Supports(mimeType string) bool {
	switch containerOf(mimeType) {
	case "webm", "ogg":
		_, err := exec.LookPath("ffmpeg")
		return err == nil
	default:
		return false
	}
}

// Open starts an ffmpeg capture process. A missing ffmpeg binary or an input
// backend it cannot open surfaces as ErrPermissionDenied, matching how a
// denied microphone prompt behaves.
func (d *FFmpegDevice) Open(ctx context.Context, mimeType string) (Stream, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg not found", ErrPermissionDenied)
	}

	muxer := containerOf(mimeType)
	if muxer != "webm" && muxer != "ogg" {
		return nil, fmt.Errorf("unsupported encoding for ffmpeg capture: %s", mimeType)
	}

	cmd := exec.Command("ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-f", d.InputFormat,
		"-i", d.InputDevice,
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "libopus",
		"-f", muxer,
		"pipe:1",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open ffmpeg stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: failed to start ffmpeg: %v", ErrPermissionDenied, err)
	}

	stream := &ffmpegStream{
		cmd:    cmd,
		chunks: make(chan []byte, 8),
		eof:    make(chan struct{}),
	}
	go stream.read(stdout)
	go stream.deliver()

	return stream, nil
}

type ffmpegStream struct {
	cmd    *exec.Cmd
	chunks chan []byte
	eof    chan struct{}

	mu      sync.Mutex
	pending []byte

	closeOnce sync.Once
	closeErr  error
}

func (s *ffmpegStream) Chunks() <-chan []byte {
	return s.chunks
}

// read accumulates encoder output; deliver flushes it on the chunk interval
// so partial data exists even if the process dies mid-capture.
func (s *ffmpegStream) read(r io.Reader) {
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.pending = append(s.pending, buf[:n]...)
			s.mu.Unlock()
		}
		if err != nil {
			close(s.eof)
			return
		}
	}
}

func (s *ffmpegStream) deliver() {
	ticker := time.NewTicker(ChunkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.flush()
		case <-s.eof:
			s.flush()
			close(s.chunks)
			return
		}
	}
}

func (s *ffmpegStream) flush() {
	s.mu.Lock()
	chunk := s.pending
	s.pending = nil
	s.mu.Unlock()
	if len(chunk) > 0 {
		s.chunks <- chunk
	}
}

// Close interrupts ffmpeg so it finalizes the container, waits for the
// encoder output to drain and reaps the process.
func (s *ffmpegStream) Close() error {
	s.closeOnce.Do(func() {
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Signal(os.Interrupt)
		}

		select {
		case <-s.eof:
		case <-time.After(2 * time.Second):
			if s.cmd.Process != nil {
				_ = s.cmd.Process.Kill()
			}
			<-s.eof
		}

		err := s.cmd.Wait()
		// ffmpeg exits non-zero on SIGINT; that is a normal stop, not a failure.
		if _, ok := err.(*exec.ExitError); err != nil && !ok {
			s.closeErr = err
		}
	})
	return s.closeErr
}

// containerOf maps a MIME type like "audio/webm;codecs=opus" to its container.
func containerOf(mimeType string) string {
	base := mimeType
	if i := strings.Index(base, ";"); i >= 0 {
		base = base[:i]
	}
	return strings.TrimPrefix(strings.TrimSpace(base), "audio/")
}
