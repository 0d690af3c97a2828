package firepal

import "github.com/lucasb-eyer/go-colorful"

// Stop anchors a gamma-encoded sRGB color at a position in [0,1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// fireStops must stay sorted by Pos and span [0,1].
var fireStops = []Stop{
	{Pos: 0.00, Color: colorful.Color{R: 0.00, G: 0.00, B: 0.00}}, // black
	{Pos: 0.15, Color: colorful.Color{R: 0.20, G: 0.00, B: 0.00}}, // deep red
	{Pos: 0.35, Color: colorful.Color{R: 0.80, G: 0.00, B: 0.00}}, // red
	{Pos: 0.55, Color: colorful.Color{R: 1.00, G: 0.35, B: 0.00}}, // orange
	{Pos: 0.75, Color: colorful.Color{R: 1.00, G: 0.75, B: 0.10}}, // yellowish
	{Pos: 1.00, Color: colorful.Color{R: 1.00, G: 1.00, B: 1.00}}, // white-hot
}

// Stops returns a copy of the fire ramp color stops.
func Stops() []Stop {
	return append([]Stop(nil), fireStops...)
}
