package testcases

import "seehuhn.de/go/geom/vec"

var degenerateCases = []TestCase{
	TestCase{Name: "coincident_vertices", Width: 16, Height: 16}.with(
		triangle(2, 2, red, 2, 2, green, 12, 12, blue)),
	TestCase{Name: "horizontal_line", Width: 16, Height: 16}.with(
		triangle(1, 8, red, 8, 8, green, 14, 8, blue)),
	TestCase{Name: "single_point", Width: 16, Height: 16}.with(
		triangle(5, 5, red, 5, 5, green, 5, 5, blue)),
	TestCase{Name: "vertical_line", Width: 16, Height: 16}.with(
		triangle(7, 1, red, 7, 8, green, 7, 14, blue)),
	TestCase{Name: "collinear_diagonal", Width: 16, Height: 16}.with(
		triangle(1, 1, red, 7, 7, green, 14, 14, blue)),
	TestCase{Name: "bad_index", Width: 16, Height: 16}.with(
		[]vec.Vec2{pt(1, 1), pt(14, 3), pt(4, 14)},
		[]RGB{red, green, blue},
		[][3]int{{0, 1, 7}, {0, 1, 2}, {-1, 0, 1}}),
}
