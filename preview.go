package firepal

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// PreviewOptions controls the PNG swatch strip.
type PreviewOptions struct {
	Cell   int // swatch width in pixels per entry
	Height int
}

// PreviewImage renders pal as a horizontal strip, one Cell-wide swatch per entry.
func PreviewImage(pal Palette, opts ...func(o *PreviewOptions)) (image.Image, error) {
	opt := PreviewOptions{
		Cell:   defaultPreviewCell,
		Height: defaultPreviewHeight,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if len(pal) == 0 {
		return nil, errors.New("empty palette")
	}
	if opt.Cell <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("invalid preview dimensions: cell %d, height %d", opt.Cell, opt.Height)
	}

	strip := image.NewRGBA(image.Rect(0, 0, len(pal), 1))
	for i, e := range pal {
		strip.SetRGBA(i, 0, e.RGB8())
	}
	return resize.Resize(uint(len(pal)*opt.Cell), uint(opt.Height), strip, resize.NearestNeighbor), nil
}

// WritePreviewPNG encodes the preview strip of pal as PNG.
func WritePreviewPNG(w io.Writer, pal Palette, opts ...func(o *PreviewOptions)) error {
	img, err := PreviewImage(pal, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePreviewFile writes the PNG preview of pal to path, creating missing parent directories.
func WritePreviewFile(path string, pal Palette, opts ...func(o *PreviewOptions)) error {
	var buf bytes.Buffer
	if err := WritePreviewPNG(&buf, pal, opts...); err != nil {
		return err
	}
	path = filepath.Clean(path)
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	Logger().Debug("preview written", "path", path, "entries", len(pal), "bytes", buf.Len())
	return nil
}
