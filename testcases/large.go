package testcases

import "seehuhn.de/go/geom/matrix"

var largeCases = []TestCase{
	TestCase{Name: "grid_512", Width: 512, Height: 512}.with(
		grid(16, 511, red, green, blue, white)),
	TestCase{Name: "fan_512_clipped", Width: 512, Height: 512, Clip: clip(0, 0, 300, 200)}.with(
		fan(256, 256, 300, 12, grey, red, yellow, green, cyan, blue, magenta)),
	TestCase{Name: "grid_scaled_512", Width: 512, Height: 384, Format: BGR24, CTM: matrix.Scale(8, 6)}.with(
		grid(8, 64, black, white, white, black)),
}
