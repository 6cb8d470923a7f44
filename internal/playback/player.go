// Package playback provides the server-side playback slot backing the
// presentation surface's audio element.
package playback

import (
	"bytes"
	"context"
	"sync"

	"sitevoice/internal/voicenote"
)

// BufferPlayer hands a fully buffered clip to the presentation surface. Play
// returns once the clip data is staged; the surface streams it from the audio
// endpoint and reports end-of-clip back to the controller. The context bounds
// the staging wait so a wedged slot cannot block a caller indefinitely.
type BufferPlayer struct {
	mu      sync.Mutex
	current *bufferHandle
}

// NewBufferPlayer creates a new BufferPlayer.
func NewBufferPlayer() *BufferPlayer {
	return &BufferPlayer{}
}

// Play stages a clip in the player's single slot, displacing whatever
// occupied it.
func (p *BufferPlayer) Play(ctx context.Context, data []byte, mimeType string) (voicenote.Playback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	handle := &bufferHandle{
		player:   p,
		reader:   bytes.NewReader(data),
		mimeType: mimeType,
	}

	p.mu.Lock()
	previous := p.current
	p.current = handle
	p.mu.Unlock()

	if previous != nil {
		previous.Stop()
	}

	return handle, nil
}

// Current returns the occupant of the playback slot, or nil.
func (p *BufferPlayer) Current() (*bytes.Reader, string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil, "", false
	}
	return p.current.reader, p.current.mimeType, true
}

func (p *BufferPlayer) release(h *bufferHandle) {
	p.mu.Lock()
	if p.current == h {
		p.current = nil
	}
	p.mu.Unlock()
}

type bufferHandle struct {
	player   *BufferPlayer
	reader   *bytes.Reader
	mimeType string
	once     sync.Once
}

// Stop vacates the slot. Idempotent.
func (h *bufferHandle) Stop() {
	h.once.Do(func() {
		h.player.release(h)
	})
}
