package main

import (
	"testing"
	"time"
)

func TestFrameCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := newFrameCounter(start)

	for i := 1; i < 10; i++ {
		if c.tick(start.Add(time.Duration(i) * 5 * time.Millisecond)) {
			t.Fatalf("refreshed after %d frames inside the window", i)
		}
	}
	if !c.tick(start.Add(fpsWindow)) {
		t.Fatal("did not refresh once the window elapsed")
	}
	if c.fps < 99.999 || c.fps > 100.001 {
		t.Errorf("fps = %v, want 100", c.fps)
	}
	if c.frames != 0 {
		t.Errorf("frames = %d after refresh, want 0", c.frames)
	}
}

func TestOverlayLines(t *testing.T) {
	got := overlayLines(59.94, 3, 108)
	want := []string{"FPS: 59.9", "Cubes: 3", "Vertices: 108"}

	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
