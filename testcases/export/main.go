// Command export writes test case definitions to JSON for external tools.
// Run from the go-gradient module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/gradient/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Format    string       `json:"format"`
	Alpha     uint8        `json:"alpha"`
	Vertices  []jsonVertex `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
	Clip      []float64    `json:"clip,omitempty"`
	Origin    []float64    `json:"origin,omitempty"`
}

type jsonVertex struct {
	X     int32     `json:"x"`
	Y     int32     `json:"y"`
	Color [3]uint16 `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	alpha := tc.Alpha
	if alpha == 0 {
		alpha = 255
	}
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Format:    tc.Format.String(),
		Alpha:     alpha,
		Triangles: tc.Triangles,
	}

	// positions are exported in device space, after the CTM
	for i, p := range tc.Device() {
		c := tc.Colors[i]
		jtc.Vertices = append(jtc.Vertices, jsonVertex{
			X:     p[0],
			Y:     p[1],
			Color: [3]uint16{c.R, c.G, c.B},
		})
	}

	if tc.Clip != nil {
		jtc.Clip = []float64{tc.Clip.LLx, tc.Clip.LLy, tc.Clip.URx, tc.Clip.URy}
	}
	if tc.Origin != nil {
		jtc.Origin = []float64{tc.Origin.X, tc.Origin.Y}
	}
	return jtc
}
