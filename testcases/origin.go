package testcases

import "seehuhn.de/go/geom/vec"

var originCases = []TestCase{
	TestCase{Name: "shifted", Width: 64, Height: 64, Origin: &vec.Vec2{X: 16, Y: 8}, Clip: clip(0, 0, 40, 40)}.with(
		triangle(10, 10, red, 60, 20, green, 20, 60, blue)),
	TestCase{Name: "negative", Width: 32, Height: 32, Origin: &vec.Vec2{X: -8, Y: -8}}.with(
		triangle(-8, -8, white, 30, -4, red, 0, 30, green)),
	TestCase{Name: "shifted_bgr24", Width: 64, Height: 64, Format: BGR24, Origin: &vec.Vec2{X: 16, Y: 8}, Clip: clip(0, 0, 40, 40)}.with(
		triangle(10, 10, red, 60, 20, green, 20, 60, blue)),
}
