package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"voxelcube/config"
	"voxelcube/cube"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		logger().Error("fatal", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a JSON settings file")
	vsync := flag.Bool("vsync", config.Vsync, "wait for vertical sync")
	debug := flag.Bool("debug", config.ShowDebug, "show the debug overlay (needs a font)")
	logLevel := flag.String("log-level", config.LogLevel, "debug, info, warn or error")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			return err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vsync":
			config.Vsync = *vsync
		case "debug":
			config.ShowDebug = *debug
		case "log-level":
			config.LogLevel = *logLevel
		}
	})
	if err := config.Validate(); err != nil {
		return err
	}

	level, err := parseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	setLogger(newTextLogger(os.Stderr, level))

	memory := buildMemory()
	return runWindow(memory)
}

func buildMemory() *cube.Memory {
	if config.TerrainRadius == 0 {
		return cube.NewMemory()
	}
	opts := cube.DefaultTerrainOptions()
	opts.Seed = config.TerrainSeed
	opts.Radius = config.TerrainRadius
	opts.Floor = config.TerrainFloor
	opts.Amplitude = config.TerrainAmplitude
	opts.Scale = config.TerrainScale

	start := time.Now()
	memory := cube.GenerateTerrain(opts)
	logger().Debug("terrain generated", "radius", opts.Radius, "cubes", memory.Len(), "took", time.Since(start))
	return memory
}

func runWindow(memory *cube.Memory) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if config.Vsync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger().Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	fbWidth, fbHeight := window.GetFramebufferSize()
	reconfigureSize(window, fbWidth, fbHeight)
	window.SetFramebufferSizeCallback(reconfigureSize)

	state := &windowState{
		showDebug: config.ShowDebug,
		width:     config.WindowWidth,
		height:    config.WindowHeight,
	}
	window.SetKeyCallback(state.input)
	window.SetCloseCallback(func(w *glfw.Window) {
		logger().Info("the close button was pressed; stopping")
	})

	r, err := newRenderer(memory)
	if err != nil {
		return err
	}
	defer r.delete()

	var hud *overlay
	if config.FontPath != "" {
		hud, err = newOverlay(config.FontPath, config.FontSize, config.TextVertexPath, config.TextFragmentPath)
		if err != nil {
			return err
		}
		defer hud.delete()
	} else if state.showDebug {
		logger().Warn("debug overlay requested without a font path")
	}

	counter := newFrameCounter(time.Now())
	c := config.ClearColor
	for !window.ShouldClose() {
		gl.ClearColor(c[0], c[1], c[2], c[3])
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		r.draw()

		refreshed := counter.tick(time.Now())
		if hud != nil && state.showDebug {
			if refreshed {
				if err := hud.setText(overlayLines(counter.fps, memory.Len(), r.vertexCount())); err != nil {
					return err
				}
			}
			w, h := window.GetFramebufferSize()
			hud.draw(w, h)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func reconfigureSize(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger().Debug("framebuffer resized", "width", width, "height", height)
}
