package firepal

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type rgb struct {
	r, g, b float64
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func srgbInvOetf(c colorful.Color) rgb {
	r, g, b := c.LinearRgb()
	return rgb{r: r, g: g, b: b}
}

// srgbOetf clamps linear light to [0,1] before encoding.
func srgbOetf(v rgb) colorful.Color {
	return colorful.LinearRgb(clamp01(v.r), clamp01(v.g), clamp01(v.b))
}

func powGamma(c colorful.Color, gamma float64) colorful.Color {
	inv := 1.0 / gamma
	return colorful.Color{
		R: math.Pow(c.R, inv),
		G: math.Pow(c.G, inv),
		B: math.Pow(c.B, inv),
	}
}

// toDAC scales [0,1] to 0..63, rounding half to even.
func toDAC(v float64) uint8 {
	q := math.RoundToEven(v * dacMax)
	if !(q > 0) {
		return 0
	}
	if q > dacMax {
		return dacMax
	}
	return uint8(q)
}

// expand6 widens a 6-bit DAC value to 8 bits.
func expand6(v uint8) uint8 {
	if v > dacMax {
		v = dacMax
	}
	return uint8((uint16(v)*255 + dacMax/2) / dacMax)
}
