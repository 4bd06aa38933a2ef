package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		want   command
	}{
		{"f3 press", glfw.KeyF3, glfw.Press, cmdToggleDebug},
		{"f11 press", glfw.KeyF11, glfw.Press, cmdToggleFullscreen},
		{"escape press", glfw.KeyEscape, glfw.Press, cmdClose},
		{"f3 release", glfw.KeyF3, glfw.Release, cmdNone},
		{"escape repeat", glfw.KeyEscape, glfw.Repeat, cmdNone},
		{"unbound key", glfw.KeyW, glfw.Press, cmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyCommand(tt.key, tt.action); got != tt.want {
				t.Errorf("keyCommand() = %d, want %d", got, tt.want)
			}
		})
	}
}
