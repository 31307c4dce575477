// Package config loads the viewer configuration from an ini file, the
// same config.ini layout the batch renderer uses.
package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// Config holds every recognized option, grouped by ini section. All
// options are optional; missing keys fall back to the defaults below.
type Config struct {
	Window      WindowConfig
	Framebuffer FramebufferConfig
	Mandelbrot  MandelbrotConfig
	Export      ExportConfig
	Debug       DebugConfig
}

// WindowConfig sets the initial window geometry. The window stays
// resizable afterwards.
type WindowConfig struct {
	Width  int
	Height int
}

// FramebufferConfig controls the offscreen compute buffer.
type FramebufferConfig struct {
	// Enable toggles two-pass rendering. Off means the compute pass
	// runs at display resolution.
	Enable bool
	// Size is the target dimension of the buffer's longer axis, pixels.
	Size int
	// Antialias selects linear instead of nearest upsampling.
	Antialias bool
}

// MandelbrotConfig holds the evaluator parameters.
type MandelbrotConfig struct {
	// Depth is the iteration cap.
	Depth int
	// ZoomFactor is a reserved multiplier for discrete zoom steps.
	// It is parsed but not wired to any input; wheel zoom derives its
	// step from the wheel delta instead.
	ZoomFactor float64
	// Invert flips the escape depth before quantization.
	Invert bool
}

// ExportConfig controls PNG snapshots.
type ExportConfig struct {
	// Folder is the preset directory offered by the save dialog.
	Folder string
	// Colormap picks the export rendering: "gray" or "poly".
	Colormap string
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	// Log enables debug-level logging of viewport/resolution state.
	Log bool
	// Overlay draws the on-screen state readout and pointer crosshair.
	Overlay bool
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Window:      WindowConfig{Width: 800, Height: 600},
		Framebuffer: FramebufferConfig{Enable: true, Size: 256, Antialias: false},
		Mandelbrot:  MandelbrotConfig{Depth: 100, ZoomFactor: 1.1, Invert: false},
		Export:      ExportConfig{Folder: "", Colormap: "gray"},
		Debug:       DebugConfig{Log: false, Overlay: false},
	}
}

// Load reads the configuration from path. A missing file is not an
// error: the defaults apply. A file that exists but cannot be parsed is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	win := file.Section("window")
	cfg.Window.Width = win.Key("width").MustInt(cfg.Window.Width)
	cfg.Window.Height = win.Key("height").MustInt(cfg.Window.Height)

	fb := file.Section("framebuffer")
	cfg.Framebuffer.Enable = fb.Key("enable").MustBool(cfg.Framebuffer.Enable)
	cfg.Framebuffer.Size = fb.Key("size").MustInt(cfg.Framebuffer.Size)
	cfg.Framebuffer.Antialias = fb.Key("antialias").MustBool(cfg.Framebuffer.Antialias)

	mb := file.Section("mandelbrot")
	cfg.Mandelbrot.Depth = mb.Key("depth").MustInt(cfg.Mandelbrot.Depth)
	cfg.Mandelbrot.ZoomFactor = mb.Key("zoom_factor").MustFloat64(cfg.Mandelbrot.ZoomFactor)
	cfg.Mandelbrot.Invert = mb.Key("invert").MustBool(cfg.Mandelbrot.Invert)

	exp := file.Section("export")
	cfg.Export.Folder = exp.Key("folder").MustString(cfg.Export.Folder)
	cfg.Export.Colormap = exp.Key("colormap").In(cfg.Export.Colormap, []string{"gray", "poly"})

	dbg := file.Section("debug")
	cfg.Debug.Log = dbg.Key("log").MustBool(cfg.Debug.Log)
	cfg.Debug.Overlay = dbg.Key("overlay").MustBool(cfg.Debug.Overlay)

	cfg.clamp()
	return cfg, nil
}

// clamp pulls out-of-range numeric options back to usable values rather
// than failing the session.
func (c *Config) clamp() {
	if c.Window.Width < 1 {
		c.Window.Width = 1
	}
	if c.Window.Height < 1 {
		c.Window.Height = 1
	}
	if c.Framebuffer.Size < 1 {
		c.Framebuffer.Size = 1
	}
	if c.Mandelbrot.Depth < 1 {
		c.Mandelbrot.Depth = 1
	}
	if c.Mandelbrot.ZoomFactor <= 0 {
		c.Mandelbrot.ZoomFactor = 1.1
	}
}
