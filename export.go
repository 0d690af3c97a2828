package firepal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteOptions controls WriteFile.
type WriteOptions struct {
	Format Format
	// Label names the FASM table.
	Label string
}

// WriteFile encodes pal into path, creating missing parent directories.
func WriteFile(path string, pal Palette, opts ...func(o *WriteOptions)) error {
	opt := WriteOptions{
		Format: FormatFASM,
		Label:  DefaultLabel,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, pal, opt.Format, opt.Label); err != nil {
		return fmt.Errorf("encode %s: %w", opt.Format, err)
	}
	path = filepath.Clean(path)
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write palette: %w", err)
	}
	Logger().Debug("palette written",
		"path", path, "format", opt.Format.String(), "entries", len(pal), "bytes", buf.Len())
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
