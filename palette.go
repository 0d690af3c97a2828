package firepal

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Entry is a single DAC triplet, each component in 0..63.
type Entry struct {
	R, G, B uint8
}

// RGBA implements color.Color, widening 6-bit components to the full 16-bit range.
func (e Entry) RGBA() (r, g, b, a uint32) {
	return widen6(e.R), widen6(e.G), widen6(e.B), 0xffff
}

// RGB8 returns the entry as an opaque 8-bit color.
func (e Entry) RGB8() color.RGBA {
	return color.RGBA{R: expand6(e.R), G: expand6(e.G), B: expand6(e.B), A: 0xff}
}

func widen6(v uint8) uint32 {
	if v > dacMax {
		v = dacMax
	}
	return uint32(v) * 0xffff / dacMax
}

// Palette is an ordered list of DAC entries; index 0 is the coldest color.
type Palette []Entry

// Bytes returns the flat R0,G0,B0,R1,... sequence.
func (p Palette) Bytes() []byte {
	out := make([]byte, 0, 3*len(p))
	for _, e := range p {
		out = append(out, e.R, e.G, e.B)
	}
	return out
}

// Colors returns p as a color.Palette.
func (p Palette) Colors() color.Palette {
	out := make(color.Palette, len(p))
	for i, e := range p {
		out[i] = e
	}
	return out
}

// Build samples the fire ramp at size evenly spaced positions, first stop to last stop.
// A single entry is sampled at the first stop. Non-positive sizes yield an empty palette.
func Build(size int, mode GammaMode) Palette {
	if size <= 0 {
		return Palette{}
	}
	blend, finish := mode.strategy()
	pal := make(Palette, size)
	for i := range pal {
		t := 0.0
		if size > 1 {
			t = float64(i) / float64(size-1)
		}
		c := finish(interpolateStops(fireStops, t, blend))
		pal[i] = Entry{R: toDAC(c.R), G: toDAC(c.G), B: toDAC(c.B)}
	}
	return pal
}

// interpolateStops returns the color at t. Segments are inclusive on both ends and
// scanned in ascending order, so a t sitting on a stop resolves to the earlier segment.
func interpolateStops(stops []Stop, t float64, blend blendFunc) colorful.Color {
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.Pos {
		return first.Color
	}
	if t >= last.Pos {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		s0, s1 := stops[i], stops[i+1]
		if s0.Pos <= t && t <= s1.Pos {
			return blend(s0.Color, s1.Color, (t-s0.Pos)/(s1.Pos-s0.Pos))
		}
	}
	return last.Color
}
