package main

import (
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const fpsWindow = 100 * time.Millisecond

// frameCounter averages frames over fpsWindow.
type frameCounter struct {
	frames int
	start  time.Time
	fps    float64
}

func newFrameCounter(now time.Time) *frameCounter {
	return &frameCounter{start: now}
}

// tick records a frame and reports whether fps was refreshed.
func (c *frameCounter) tick(now time.Time) bool {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < fpsWindow {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

func overlayLines(fps float64, cubes, vertices int) []string {
	return []string{
		"FPS: " + strconv.FormatFloat(mgl64.Round(fps, 1), 'f', -1, 64),
		"Cubes: " + strconv.Itoa(cubes),
		"Vertices: " + strconv.Itoa(vertices),
	}
}
