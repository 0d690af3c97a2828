// Package firepal generates the fire-effect color ramp for a 6-bit VGA DAC.
//
// A fixed list of color stops (black, deep red, red, orange, yellow, white) is sampled at
// evenly spaced positions, blended either in linear light or with a simple power gamma,
// and quantized to 0..63 per channel. The resulting Palette can be written as a FASM data
// table, hex triplets or raw bytes, and previewed as a PNG strip.
package firepal
