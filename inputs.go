package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type command int

const (
	cmdNone command = iota
	cmdToggleDebug
	cmdToggleFullscreen
	cmdClose
)

func keyCommand(key glfw.Key, action glfw.Action) command {
	if action != glfw.Press {
		return cmdNone
	}
	switch key {
	case glfw.KeyF3:
		return cmdToggleDebug
	case glfw.KeyF11:
		return cmdToggleFullscreen
	case glfw.KeyEscape:
		return cmdClose
	}
	return cmdNone
}

// windowState is the mutable state the key handler flips.
type windowState struct {
	showDebug bool
	monitor   *glfw.Monitor

	// windowed size restored when leaving fullscreen
	width, height int
}

func (s *windowState) input(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch keyCommand(key, action) {
	case cmdToggleDebug:
		s.showDebug = !s.showDebug
	case cmdToggleFullscreen:
		s.toggleFullscreen(window)
	case cmdClose:
		logger().Info("escape pressed; stopping")
		window.SetShouldClose(true)
	}
}

func (s *windowState) toggleFullscreen(window *glfw.Window) {
	if s.monitor == nil {
		s.monitor = glfw.GetPrimaryMonitor()
		mode := s.monitor.GetVideoMode()
		window.SetMonitor(s.monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return
	}
	mode := s.monitor.GetVideoMode()
	s.monitor = nil
	window.SetMonitor(nil, (mode.Width-s.width)/2, (mode.Height-s.height)/2, s.width, s.height, 0)
}
