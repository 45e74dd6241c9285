package testcases

var clipCases = []TestCase{
	TestCase{Name: "inner_window", Width: 64, Height: 64, Clip: clip(0, 0, 31, 31)}.with(
		triangle(2, 2, red, 62, 20, green, 20, 62, blue)),
	TestCase{Name: "oversized_window", Width: 32, Height: 32, Clip: clip(0, 0, 1000, 1000)}.with(
		triangle(0, 0, white, 31, 0, red, 0, 31, blue)),
	TestCase{Name: "offscreen_vertices", Width: 32, Height: 32}.with(
		triangle(-40, -10, red, 70, 5, green, 10, 80, blue)),
	TestCase{Name: "single_pixel_window", Width: 32, Height: 32, Clip: clip(5, 5, 5, 5)}.with(
		triangle(0, 0, red, 31, 0, green, 0, 31, blue)),
	TestCase{Name: "offscreen_bgr24", Width: 32, Height: 32, Format: BGR24, Clip: clip(0, 0, 20, 12)}.with(
		triangle(-40, -10, red, 70, 5, green, 10, 80, blue)),
}
