// seehuhn.de/go/gradient - gradient triangle rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTOML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "rgb.toml"))
	require.NoError(t, err)

	assert.Equal(t, 32, s.Width)
	assert.Equal(t, 32, s.Height)
	assert.Equal(t, FormatBGRA32, s.Format)
	require.NotNil(t, s.Alpha)
	assert.Equal(t, uint8(255), *s.Alpha)
	require.Len(t, s.Vertices, 3)
	assert.Equal(t, Vertex{X: 31, Y: 0, Color: [3]uint16{0, 65535, 0}}, s.Vertices[1])
	assert.Equal(t, [][3]int{{0, 1, 2}}, s.Triangles)

	img, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(31, 31))
}

func TestLoadYAML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "quad.yaml"))
	require.NoError(t, err)

	assert.Equal(t, FormatBGR24, s.Format)
	assert.Equal(t, [3]uint8{64, 64, 64}, s.Background)
	assert.Equal(t, []int{4, 4}, s.Origin)
	assert.Equal(t, []int{0, 0, 40, 40}, s.Clip)
	require.Len(t, s.Vertices, 4)
	assert.Len(t, s.Triangles, 2)

	img, err := s.Render()
	require.NoError(t, err)

	// Pixels are addressed relative to the clip window at (4, 4), so the
	// red corner lands in the top left of the buffer.
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(0, 0))
	// The last column and row are not covered and keep the background.
	assert.Equal(t, color.NRGBA{R: 64, G: 64, B: 64, A: 255}, img.NRGBAAt(47, 47))
}

func TestTOMLAndYAMLAgree(t *testing.T) {
	const tomlScene = `
width = 16
height = 16
triangles = [[0, 1, 2]]
vertices = [
  {x = 1, y = 1, color = [65535, 0, 0]},
  {x = 14, y = 3, color = [0, 65535, 0]},
  {x = 5, y = 14, color = [0, 0, 65535]},
]
`
	const yamlScene = `
width: 16
height: 16
triangles: [[0, 1, 2]]
vertices:
  - {x: 1, y: 1, color: [65535, 0, 0]}
  - {x: 14, y: 3, color: [0, 65535, 0]}
  - {x: 5, y: 14, color: [0, 0, 65535]}
`
	a, err := Decode([]byte(tomlScene), TOML)
	require.NoError(t, err)
	b, err := Decode([]byte(yamlScene), YAML)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	imgA, err := a.Render()
	require.NoError(t, err)
	imgB, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, imgA.Pix, imgB.Pix)
}

func TestValidate(t *testing.T) {
	valid := func() *Scene {
		return &Scene{
			Width:     8,
			Height:    8,
			Format:    FormatBGRA32,
			Vertices:  []Vertex{{X: 0, Y: 0}, {X: 7, Y: 0}, {X: 0, Y: 7}},
			Triangles: [][3]int{{0, 1, 2}},
		}
	}
	require.NoError(t, valid().Validate())

	cases := []struct {
		name   string
		modify func(s *Scene)
	}{
		{"zero width", func(s *Scene) { s.Width = 0 }},
		{"negative height", func(s *Scene) { s.Height = -1 }},
		{"unknown format", func(s *Scene) { s.Format = "cmyk" }},
		{"short origin", func(s *Scene) { s.Origin = []int{1} }},
		{"short clip", func(s *Scene) { s.Clip = []int{0, 0, 4} }},
		{"inverted clip", func(s *Scene) { s.Clip = []int{5, 5, 2, 2} }},
		{"one vertex", func(s *Scene) { s.Vertices = s.Vertices[:1] }},
		{"no triangles", func(s *Scene) { s.Triangles = nil }},
		{"short transform", func(s *Scene) { s.Transform = []float64{1, 0, 0, 1} }},
		{"bad index", func(s *Scene) { s.Triangles = [][3]int{{0, 1, 3}} }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid()
			c.modify(s)
			err := s.Validate()
			assert.ErrorIs(t, err, errInvalid)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("scene.json")
	assert.ErrorIs(t, err, errUnknownKind)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestRenderWithoutErase(t *testing.T) {
	erase := false
	s := &Scene{
		Width:      4,
		Height:     4,
		Format:     FormatBGR24,
		Background: [3]uint8{1, 2, 3},
		Erase:      &erase,
		Vertices:   []Vertex{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}},
		Triangles:  [][3]int{{0, 1, 2}},
	}
	img, err := s.Render()
	require.NoError(t, err)
	// the background is not painted, the untouched corner stays black
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(3, 3))
}

func TestRenderTransform(t *testing.T) {
	base := &Scene{
		Width:     16,
		Height:    16,
		Format:    FormatBGRA32,
		Vertices:  []Vertex{{X: 0, Y: 0, Color: [3]uint16{65535, 0, 0}}, {X: 6, Y: 0}, {X: 0, Y: 6}},
		Triangles: [][3]int{{0, 1, 2}},
	}
	shifted := *base
	shifted.Transform = []float64{2, 0, 0, 2, 3, 4}
	require.NoError(t, shifted.Validate())

	img, err := shifted.Render()
	require.NoError(t, err)
	// the red corner moves from (0, 0) to (3, 4)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(3, 4))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0))
}
