package testcases

var basicCases = []TestCase{
	TestCase{Name: "rgb_corner", Width: 4, Height: 4}.with(
		triangle(0, 0, red, 3, 0, green, 0, 3, blue)),
	TestCase{Name: "rgb_corner_bgr24", Width: 4, Height: 4, Format: BGR24}.with(
		triangle(0, 0, red, 3, 0, green, 0, 3, blue)),
	TestCase{Name: "flat_grey", Width: 32, Height: 32}.with(
		triangle(4, 4, grey, 28, 10, grey, 12, 28, grey)),
	TestCase{Name: "rgb_large", Width: 64, Height: 64}.with(
		triangle(32, 4, red, 60, 58, green, 4, 50, blue)),
	TestCase{Name: "rgb_large_bgr24", Width: 64, Height: 64, Format: BGR24}.with(
		triangle(32, 4, red, 60, 58, green, 4, 50, blue)),
	TestCase{Name: "reversed_winding", Width: 64, Height: 64}.with(
		triangle(4, 50, blue, 60, 58, green, 32, 4, red)),
	TestCase{Name: "flat_top", Width: 48, Height: 48}.with(
		triangle(4, 6, white, 44, 6, black, 24, 42, magenta)),
	TestCase{Name: "flat_bottom", Width: 48, Height: 48}.with(
		triangle(24, 4, cyan, 44, 40, yellow, 4, 40, black)),
	TestCase{Name: "half_alpha", Width: 32, Height: 32, Alpha: 128}.with(
		triangle(2, 2, yellow, 30, 16, cyan, 2, 30, magenta)),
	TestCase{Name: "thin_sliver", Width: 64, Height: 16}.with(
		triangle(1, 2, red, 62, 8, blue, 2, 14, green)),
}
