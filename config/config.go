// Package config holds the application settings. Every value has a usable
// default; Load overlays a JSON file on top of the defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrInvalid = errors.New("invalid config")

var (
	WindowWidth  = 1600
	WindowHeight = 900
	WindowTitle  = "voxelcube"
	Vsync        = true

	// ClearColor is the RGBA background of every frame.
	ClearColor = [4]float32{0.05, 0.062, 0.08, 1.0}

	VertexShaderPath   = "shaders/cube.vert"
	FragmentShaderPath = "shaders/cube.frag"
	TextVertexPath     = "shaders/text.vert"
	TextFragmentPath   = "shaders/text.frag"

	// FontPath enables the debug overlay when set.
	FontPath  = ""
	ShowDebug = false
	FontSize  = 24.0

	LogLevel = "info"

	// ViewExtent is the half-size of the orthographic volume the world is drawn in.
	ViewExtent float32 = 1

	// TerrainRadius > 0 replaces the single origin cube with a noise heightmap.
	TerrainRadius    int32   = 0
	TerrainSeed      int64   = 12
	TerrainFloor     int32   = 0
	TerrainAmplitude float32 = 30
	TerrainScale     float32 = 100
)

// File is the JSON form of the settings. Absent fields keep their current value.
type File struct {
	WindowWidth        *int        `json:"window_width"`
	WindowHeight       *int        `json:"window_height"`
	WindowTitle        *string     `json:"window_title"`
	Vsync              *bool       `json:"vsync"`
	ClearColor         *[4]float32 `json:"clear_color"`
	VertexShaderPath   *string     `json:"vertex_shader"`
	FragmentShaderPath *string     `json:"fragment_shader"`
	TextVertexPath     *string     `json:"text_vertex_shader"`
	TextFragmentPath   *string     `json:"text_fragment_shader"`
	FontPath           *string     `json:"font_path"`
	ShowDebug          *bool       `json:"show_debug"`
	FontSize           *float64    `json:"font_size"`
	LogLevel           *string     `json:"log_level"`
	ViewExtent         *float32    `json:"view_extent"`
	TerrainRadius      *int32      `json:"terrain_radius"`
	TerrainSeed        *int64      `json:"terrain_seed"`
	TerrainFloor       *int32      `json:"terrain_floor"`
	TerrainAmplitude   *float32    `json:"terrain_amplitude"`
	TerrainScale       *float32    `json:"terrain_scale"`
}

// Load reads a JSON settings file, applies it and validates the result.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	f.apply()
	return Validate()
}

func (f File) apply() {
	set(&WindowWidth, f.WindowWidth)
	set(&WindowHeight, f.WindowHeight)
	set(&WindowTitle, f.WindowTitle)
	set(&Vsync, f.Vsync)
	set(&ClearColor, f.ClearColor)
	set(&VertexShaderPath, f.VertexShaderPath)
	set(&FragmentShaderPath, f.FragmentShaderPath)
	set(&TextVertexPath, f.TextVertexPath)
	set(&TextFragmentPath, f.TextFragmentPath)
	set(&FontPath, f.FontPath)
	set(&ShowDebug, f.ShowDebug)
	set(&FontSize, f.FontSize)
	set(&LogLevel, f.LogLevel)
	set(&ViewExtent, f.ViewExtent)
	set(&TerrainRadius, f.TerrainRadius)
	set(&TerrainSeed, f.TerrainSeed)
	set(&TerrainFloor, f.TerrainFloor)
	set(&TerrainAmplitude, f.TerrainAmplitude)
	set(&TerrainScale, f.TerrainScale)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the current settings.
func Validate() error {
	if WindowWidth <= 0 || WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, WindowWidth, WindowHeight)
	}
	for i, c := range ClearColor {
		if c < 0 || c > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %v outside [0, 1]", ErrInvalid, i, c)
		}
	}
	if VertexShaderPath == "" || FragmentShaderPath == "" {
		return fmt.Errorf("%w: shader paths are required", ErrInvalid)
	}
	if ViewExtent <= 0 {
		return fmt.Errorf("%w: view_extent must be positive, got %v", ErrInvalid, ViewExtent)
	}
	if FontSize <= 0 {
		return fmt.Errorf("%w: font_size must be positive, got %v", ErrInvalid, FontSize)
	}
	if TerrainRadius < 0 {
		return fmt.Errorf("%w: terrain_radius cannot be negative, got %d", ErrInvalid, TerrainRadius)
	}
	if TerrainScale <= 0 {
		return fmt.Errorf("%w: terrain_scale must be positive, got %v", ErrInvalid, TerrainScale)
	}
	switch strings.ToLower(LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, LogLevel)
	}
	return nil
}
