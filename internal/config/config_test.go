package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("default window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Framebuffer.Enable || cfg.Framebuffer.Size != 256 || cfg.Framebuffer.Antialias {
		t.Errorf("default framebuffer = %+v", cfg.Framebuffer)
	}
	if cfg.Mandelbrot.Depth != 100 || cfg.Mandelbrot.Invert {
		t.Errorf("default mandelbrot = %+v", cfg.Mandelbrot)
	}
	if cfg.Export.Colormap != "gray" {
		t.Errorf("default colormap = %q, want gray", cfg.Export.Colormap)
	}
	if cfg.Debug.Log || cfg.Debug.Overlay {
		t.Errorf("default debug = %+v, want all off", cfg.Debug)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	if err != nil {
		t.Fatalf("Load() on a missing file returned %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1280
height = 720

[framebuffer]
enable = false
size = 512
antialias = true

[mandelbrot]
depth = 250
zoom_factor = 1.25
invert = true

[export]
folder = /tmp/fractals
colormap = poly

[debug]
log = true
overlay = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Framebuffer.Enable || cfg.Framebuffer.Size != 512 || !cfg.Framebuffer.Antialias {
		t.Errorf("framebuffer = %+v", cfg.Framebuffer)
	}
	if cfg.Mandelbrot.Depth != 250 || cfg.Mandelbrot.ZoomFactor != 1.25 || !cfg.Mandelbrot.Invert {
		t.Errorf("mandelbrot = %+v", cfg.Mandelbrot)
	}
	if cfg.Export.Folder != "/tmp/fractals" || cfg.Export.Colormap != "poly" {
		t.Errorf("export = %+v", cfg.Export)
	}
	if !cfg.Debug.Log || !cfg.Debug.Overlay {
		t.Errorf("debug = %+v", cfg.Debug)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[mandelbrot]\ndepth = 42\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mandelbrot.Depth != 42 {
		t.Errorf("depth = %d, want 42", cfg.Mandelbrot.Depth)
	}
	if cfg.Framebuffer.Size != 256 {
		t.Errorf("framebuffer size = %d, want default 256", cfg.Framebuffer.Size)
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[window]
width = -100
height = 0

[framebuffer]
size = 0

[mandelbrot]
depth = -1
zoom_factor = 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width < 1 || cfg.Window.Height < 1 {
		t.Errorf("window = %+v, want clamped to >= 1", cfg.Window)
	}
	if cfg.Framebuffer.Size < 1 {
		t.Errorf("framebuffer size = %d, want >= 1", cfg.Framebuffer.Size)
	}
	if cfg.Mandelbrot.Depth < 1 {
		t.Errorf("depth = %d, want >= 1", cfg.Mandelbrot.Depth)
	}
	if cfg.Mandelbrot.ZoomFactor <= 0 {
		t.Errorf("zoom factor = %v, want > 0", cfg.Mandelbrot.ZoomFactor)
	}
}

func TestLoadUnknownColormapFallsBack(t *testing.T) {
	path := writeConfig(t, "[export]\ncolormap = sepia\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Export.Colormap != "gray" {
		t.Errorf("colormap = %q, want fallback gray", cfg.Export.Colormap)
	}
}
