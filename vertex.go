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

package gradient

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
)

// Vertex is a coloured triangle corner in device coordinates.
// Colour channels use the full 16-bit range 0-65535.
// Alpha is carried along for callers but ignored by the rasterizer.
type Vertex struct {
	X, Y  int32
	Red   uint16
	Green uint16
	Blue  uint16
	Alpha uint16
}

// Triangle holds three indices into a vertex slice.
// Edges are formed from the pairs (0,1), (1,2) and (2,0).
type Triangle [3]int

// VertexFromColor returns a vertex at (x, y) with the colour c.
func VertexFromColor(x, y int32, c color.Color) Vertex {
	r, g, b, a := c.RGBA()
	return Vertex{
		X:     x,
		Y:     y,
		Red:   uint16(r),
		Green: uint16(g),
		Blue:  uint16(b),
		Alpha: uint16(a),
	}
}

// TransformVertices applies the affine transformation m to the positions of
// vs and returns the result as a new slice. Transformed coordinates are
// truncated toward zero. Colours are copied unchanged.
func TransformVertices(m matrix.Matrix, vs []Vertex) []Vertex {
	res := make([]Vertex, len(vs))
	for i, v := range vs {
		x := float64(v.X)
		y := float64(v.Y)
		v.X = int32(m[0]*x + m[2]*y + m[4])
		v.Y = int32(m[1]*x + m[3]*y + m[5])
		res[i] = v
	}
	return res
}

// PixelFormat describes the memory layout of a destination buffer.
type PixelFormat int

const (
	// Format32BPP stores four bytes per pixel in the order blue, green, red, alpha.
	Format32BPP PixelFormat = iota

	// Format24BPP stores three bytes per pixel in the order blue, green, red.
	Format24BPP
)

// BytesPerPixel returns the number of bytes used for one pixel.
func (f PixelFormat) BytesPerPixel() int {
	if f == Format24BPP {
		return 3
	}
	return 4
}

func (f PixelFormat) String() string {
	switch f {
	case Format32BPP:
		return "bgra32"
	case Format24BPP:
		return "bgr24"
	default:
		return "unknown"
	}
}
