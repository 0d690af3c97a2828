package firepal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteHex(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHex(&buf, Palette{{63, 0, 0}}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "0x3F 0x00 0x00\n" {
		t.Fatalf("unexpected hex output: %q", got)
	}

	buf.Reset()
	if err := WriteHex(&buf, Palette{{0, 10, 31}, {32, 62, 63}}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0x00 0x0A 0x1F\n0x20 0x3E 0x3F\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWriteRaw(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRaw(&buf, Palette{{1, 2, 3}, {4, 5, 6}}); err != nil {
		t.Fatal(err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected raw output: % x", got)
	}
}

func TestWriteFASM(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFASM(&buf, Palette{{0, 0, 0}, {13, 0, 0}, {63, 63, 63}}, "FirePalette"); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"FirePalette:",
		"  ; index 00",
		"  db 0,0,0",
		"  ; index 01",
		"  db 13,0,0",
		"  ; index 02",
		"  db 63,63,63",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteFASMWideIndex(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFASM(&buf, Build(120, SRGB()), "Fire"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 1+2*120 {
		t.Fatalf("unexpected line count %d", len(lines))
	}
	if lines[1] != "  ; index 00" || lines[2*100+1] != "  ; index 100" {
		t.Fatalf("unexpected index lines: %q %q", lines[1], lines[2*100+1])
	}
}

func TestRawRoundTrip(t *testing.T) {
	pal := Build(37, SRGB())
	var buf bytes.Buffer
	if err := WriteRaw(&buf, pal); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 3*37 {
		t.Fatalf("raw length %d", buf.Len())
	}
	got, err := ReadRaw(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(pal) {
		t.Fatalf("len mismatch: got %d want %d", len(got), len(pal))
	}
	for i := range pal {
		if got[i] != pal[i] {
			t.Fatalf("entry %d: got %v want %v", i, got[i], pal[i])
		}
	}
}

func TestReadRawInvalid(t *testing.T) {
	for _, data := range [][]byte{{1, 2}, {1, 2, 3, 4}, {0, 64, 0}} {
		if _, err := ReadRaw(bytes.NewReader(data)); !errors.Is(err, ErrInvalidRaw) {
			t.Errorf("ReadRaw(% x): got %v, want ErrInvalidRaw", data, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatFASM, FormatHex, FormatRaw} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFormat("bin"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if !FormatRaw.Binary() || FormatHex.Binary() {
		t.Fatal("unexpected Binary result")
	}
}

func TestEncodeDispatch(t *testing.T) {
	pal := Palette{{63, 0, 0}}
	cases := map[Format]string{
		FormatFASM: "Fire:\n  ; index 00\n  db 63,0,0\n",
		FormatHex:  "0x3F 0x00 0x00\n",
		FormatRaw:  "\x3f\x00\x00",
	}
	for f, want := range cases {
		var buf bytes.Buffer
		if err := Encode(&buf, pal, f, "Fire"); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if buf.String() != want {
			t.Errorf("%s: got %q want %q", f, buf.String(), want)
		}
	}
	if err := Encode(&bytes.Buffer{}, pal, Format(42), ""); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
