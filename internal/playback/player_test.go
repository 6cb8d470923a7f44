package playback

import (
	"context"
	"testing"
	"time"
)

func TestBufferPlayer_PlayStagesClip(t *testing.T) {
	player := NewBufferPlayer()

	handle, err := player.Play(context.Background(), []byte("audio-bytes"), "audio/webm")
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	reader, mimeType, ok := player.Current()
	if !ok {
		t.Fatal("Current() reported empty slot after Play")
	}
	if mimeType != "audio/webm" {
		t.Errorf("Current() mimeType = %q, want audio/webm", mimeType)
	}
	if reader.Len() != len("audio-bytes") {
		t.Errorf("Current() buffered %d bytes, want %d", reader.Len(), len("audio-bytes"))
	}

	handle.Stop()
	if _, _, ok := player.Current(); ok {
		t.Error("Current() reported occupied slot after Stop")
	}
}

func TestBufferPlayer_PlayDisplacesPrevious(t *testing.T) {
	player := NewBufferPlayer()

	first, err := player.Play(context.Background(), []byte("first"), "audio/webm")
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if _, err := player.Play(context.Background(), []byte("second"), "audio/ogg"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	_, mimeType, ok := player.Current()
	if !ok || mimeType != "audio/ogg" {
		t.Fatalf("Current() = %q, %v; want audio/ogg, true", mimeType, ok)
	}

	// Stopping the displaced handle must not vacate the new occupant.
	first.Stop()
	if _, _, ok := player.Current(); !ok {
		t.Error("stopping a displaced handle vacated the slot")
	}
}

func TestBufferPlayer_PlayHonorsContext(t *testing.T) {
	player := NewBufferPlayer()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	if _, err := player.Play(ctx, []byte("audio"), "audio/webm"); err == nil {
		t.Error("Play() expected error for expired context")
	}
}

func TestBufferPlayer_StopIdempotent(t *testing.T) {
	player := NewBufferPlayer()

	handle, err := player.Play(context.Background(), []byte("audio"), "audio/webm")
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	handle.Stop()
	handle.Stop()

	if _, _, ok := player.Current(); ok {
		t.Error("Current() reported occupied slot after Stop")
	}
}
