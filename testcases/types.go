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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single gradient rendering test.
//
// The triangles are rendered into a freshly allocated buffer of
// Width×Height pixels. If Origin is set, the origin is moved first; if Clip
// is set, its size is applied as the clip rectangle afterwards.
type TestCase struct {
	Name      string        // lowercase a-z, 0-9 and _ only
	Width     int           // canvas width in pixels
	Height    int           // canvas height in pixels
	Format    Format        // destination pixel layout
	Alpha     uint8         // constant alpha for 32bpp output (0 means 255)
	Points    []vec.Vec2    // vertex positions
	Colors    []RGB         // vertex colours, parallel to Points
	Triangles [][3]int      // indices into Points
	CTM       matrix.Matrix // transformation matrix (zero-value means no transform)
	Clip      *rect.Rect    // clip rectangle (nil means whole canvas)
	Origin    *vec.Vec2     // origin (nil means (0, 0))
}

// Format selects the destination pixel layout of a test case.
type Format int

const (
	BGRA32 Format = iota // 4 bytes per pixel: blue, green, red, alpha
	BGR24                // 3 bytes per pixel: blue, green, red
)

func (f Format) String() string {
	if f == BGR24 {
		return "bgr24"
	}
	return "bgra32"
}

// RGB is a vertex colour with 16-bit channels.
type RGB struct {
	R, G, B uint16
}

// Device returns the vertex positions in device coordinates: the CTM is
// applied and the coordinates are truncated toward zero.
func (tc *TestCase) Device() [][2]int32 {
	m := tc.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	res := make([][2]int32, len(tc.Points))
	for i, p := range tc.Points {
		res[i] = [2]int32{
			int32(m[0]*p.X + m[2]*p.Y + m[4]),
			int32(m[1]*p.X + m[3]*p.Y + m[5]),
		}
	}
	return res
}

// TriangleColors returns the mean colour of each triangle, with channels
// in the range [0, 1]. This is used for flat-shaded previews.
func (tc *TestCase) TriangleColors() [][3]float64 {
	res := make([][3]float64, len(tc.Triangles))
	for i, tri := range tc.Triangles {
		var sum [3]float64
		for _, k := range tri {
			if k < 0 || k >= len(tc.Colors) {
				continue
			}
			c := tc.Colors[k]
			sum[0] += float64(c.R) / 65535
			sum[1] += float64(c.G) / 65535
			sum[2] += float64(c.B) / 65535
		}
		res[i] = [3]float64{sum[0] / 3, sum[1] / 3, sum[2] / 3}
	}
	return res
}

// Common vertex colours.
var (
	black   = RGB{0, 0, 0}
	white   = RGB{65535, 65535, 65535}
	red     = RGB{65535, 0, 0}
	green   = RGB{0, 65535, 0}
	blue    = RGB{0, 0, 65535}
	yellow  = RGB{65535, 65535, 0}
	cyan    = RGB{0, 65535, 65535}
	magenta = RGB{65535, 0, 65535}
	grey    = RGB{32768, 32768, 32768}
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// clip is a helper to create a clip rectangle.
func clip(x0, y0, x1, y1 float64) *rect.Rect {
	return &rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}

// triangle returns the points, colours and index list of a single triangle.
func triangle(x1, y1 float64, c1 RGB, x2, y2 float64, c2 RGB, x3, y3 float64, c3 RGB) ([]vec.Vec2, []RGB, [][3]int) {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)},
		[]RGB{c1, c2, c3},
		[][3]int{{0, 1, 2}}
}

// grid returns an n×n grid of quads, each split into two triangles,
// covering [0, size]×[0, size]. Corner colours are interpolated bilinearly
// between c00 (top-left), c10, c01 and c11.
func grid(n int, size float64, c00, c10, c01, c11 RGB) ([]vec.Vec2, []RGB, [][3]int) {
	var pts []vec.Vec2
	var cols []RGB
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			u := float64(i) / float64(n)
			v := float64(j) / float64(n)
			pts = append(pts, pt(u*size, v*size))
			cols = append(cols, bilinear(u, v, c00, c10, c01, c11))
		}
	}
	var tris [][3]int
	for j := range n {
		for i := range n {
			a := j*(n+1) + i
			b := a + 1
			c := a + n + 1
			d := c + 1
			tris = append(tris, [3]int{a, b, d}, [3]int{a, d, c})
		}
	}
	return pts, cols, tris
}

func bilinear(u, v float64, c00, c10, c01, c11 RGB) RGB {
	mix := func(a, b, c, d uint16) uint16 {
		top := (1-u)*float64(a) + u*float64(b)
		bot := (1-u)*float64(c) + u*float64(d)
		return uint16((1-v)*top + v*bot)
	}
	return RGB{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
	}
}

// fan returns a regular polygon with n corners around (cx, cy), split into
// triangles which share the centre vertex. The rim colours cycle through
// the given palette.
func fan(cx, cy, r float64, n int, centre RGB, palette ...RGB) ([]vec.Vec2, []RGB, [][3]int) {
	pts := []vec.Vec2{pt(cx, cy)}
	cols := []RGB{centre}
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
		cols = append(cols, palette[i%len(palette)])
	}
	var tris [][3]int
	for i := range n {
		tris = append(tris, [3]int{0, 1 + i, 1 + (i+1)%n})
	}
	return pts, cols, tris
}

// with returns a copy of tc using the given geometry.
func (tc TestCase) with(pts []vec.Vec2, cols []RGB, tris [][3]int) TestCase {
	tc.Points = pts
	tc.Colors = cols
	tc.Triangles = tris
	return tc
}
