package testcases

import "seehuhn.de/go/geom/matrix"

var meshCases = []TestCase{
	TestCase{Name: "quad", Width: 64, Height: 64}.with(
		grid(1, 56, red, green, blue, white)),
	TestCase{Name: "grid_4x4", Width: 64, Height: 64}.with(
		grid(4, 60, black, red, blue, yellow)),
	TestCase{Name: "hexagon_fan", Width: 64, Height: 64}.with(
		fan(32, 32, 28, 6, white, red, yellow, green, cyan, blue, magenta)),
	TestCase{Name: "grid_rotated", Width: 96, Height: 96, CTM: matrix.RotateDeg(30).Translate(48, 8)}.with(
		grid(3, 60, cyan, magenta, yellow, black)),
	TestCase{Name: "grid_scaled_bgr24", Width: 96, Height: 96, Format: BGR24, CTM: matrix.Scale(1.5, 1.5).Translate(3, 3)}.with(
		grid(2, 58, green, blue, red, white)),
}
