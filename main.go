package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gilbertfrancois/art-fractals/internal/app"
	"github.com/gilbertfrancois/art-fractals/internal/config"
)

func main() {
	configPath := flag.String("config", "config.ini", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := newLogger(cfg.Debug.Log)
	log.Debug("configuration loaded", "path", *configPath,
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"framebuffer_enable", cfg.Framebuffer.Enable,
		"framebuffer_size", cfg.Framebuffer.Size,
		"depth", cfg.Mandelbrot.Depth)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Fractals - drag: pan, wheel: zoom, R: reset, F: framebuffer, A: antialias, I: invert, S: save PNG, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := app.New(cfg, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a debug-level text logger when diagnostics are
// enabled, and a silent logger otherwise.
func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(nopHandler{})
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
