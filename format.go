package firepal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned for output format names other than fasm, hex and raw.
var ErrUnknownFormat = errors.New("unknown format")

// ErrInvalidRaw is returned when a raw dump is not a sequence of DAC triplets.
var ErrInvalidRaw = errors.New("invalid raw palette")

// Format identifies a palette serialization.
type Format int

const (
	FormatFASM Format = iota
	FormatHex
	FormatRaw
)

var formatNames = [...]string{
	FormatFASM: "fasm",
	FormatHex:  "hex",
	FormatRaw:  "raw",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Binary reports whether f produces unencoded bytes rather than text.
func (f Format) Binary() bool { return f == FormatRaw }

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want fasm, hex or raw)", ErrUnknownFormat, s)
}

// Set implements flag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Encode writes pal to w in the given format. The label is only used by FormatFASM.
func Encode(w io.Writer, pal Palette, f Format, label string) error {
	switch f {
	case FormatFASM:
		return WriteFASM(w, pal, label)
	case FormatHex:
		return WriteHex(w, pal)
	case FormatRaw:
		return WriteRaw(w, pal)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// WriteFASM writes a labelled FASM data table:
//
//	FirePalette:
//	  ; index 00
//	  db 0,0,0
func WriteFASM(w io.Writer, pal Palette, label string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s:\n", label)
	for i, e := range pal {
		fmt.Fprintf(bw, "  ; index %02d\n", i)
		fmt.Fprintf(bw, "  db %d,%d,%d\n", e.R, e.G, e.B)
	}
	return bw.Flush()
}

// WriteHex writes one "0xRR 0xGG 0xBB" line per entry.
func WriteHex(w io.Writer, pal Palette) error {
	bw := bufio.NewWriter(w)
	for _, e := range pal {
		fmt.Fprintf(bw, "0x%02X 0x%02X 0x%02X\n", e.R, e.G, e.B)
	}
	return bw.Flush()
}

// WriteRaw writes exactly 3*len(pal) bytes with no header or padding.
func WriteRaw(w io.Writer, pal Palette) error {
	_, err := w.Write(pal.Bytes())
	return err
}

// ReadRaw decodes a dump produced by WriteRaw.
func ReadRaw(r io.Reader) (Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read raw palette: %w", err)
	}
	if len(data)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 3", ErrInvalidRaw, len(data))
	}
	pal := make(Palette, 0, len(data)/3)
	for i := 0; i < len(data); i += 3 {
		for _, v := range data[i : i+3] {
			if v > dacMax {
				return nil, fmt.Errorf("%w: entry %d has component %d above %d", ErrInvalidRaw, i/3, v, dacMax)
			}
		}
		pal = append(pal, Entry{R: data[i], G: data[i+1], B: data[i+2]})
	}
	return pal, nil
}
