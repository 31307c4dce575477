// Package export renders a computed depth field to an image and writes
// it to disk as a PNG snapshot.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/ncruces/zenity"
)

// Colormap renders a depth field (values in [0,1], row-major, w*h long)
// to an RGBA image.
type Colormap interface {
	Apply(field []float64, w, h int) *image.RGBA
}

// ByName returns the colormap for a config name. Unknown names fall back
// to grayscale.
func ByName(name string) Colormap {
	if name == "poly" {
		return NewPolyColor(3, time.Now().UnixNano())
	}
	return Gray{}
}

// Dialog opens a native save dialog preset to folder and returns the
// chosen path. ok is false when the user cancels.
func Dialog(folder string) (path string, ok bool, err error) {
	name := fmt.Sprintf("%d_mandelbrot.png", time.Now().Unix())
	path, err = zenity.SelectFileSave(
		zenity.Title("Save Fractal Image"),
		zenity.Filename(filepath.Join(folder, name)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return path, true, nil
}

// SavePNG writes img to path, creating the parent directory if needed.
func SavePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output folder: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
