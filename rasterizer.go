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

// Package gradient rasterizes gradient-filled triangles into packed BGR and
// BGRA pixel buffers.
//
// Each triangle vertex carries its own colour. Colours are interpolated
// linearly, first along the triangle edges for every scanline and then along
// every horizontal span. All conversions truncate toward zero, so the output
// is reproducible bit for bit.
package gradient

import (
	"image"
	"image/color"
)

// Rasterizer draws gradient triangles into a caller-owned pixel buffer.
//
// The buffer passed to SetupContext32BPP or SetupContext24BPP stays bound
// to the Rasterizer until the next setup call. The Rasterizer never
// allocates or frees it, but it writes into it during RenderTriangles and
// EraseBackground, so the caller must keep the slice alive and must not
// access it concurrently.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	buf        []byte
	width      int
	height     int
	format     PixelFormat
	alpha      uint8
	background color.RGBA
	clip       ClipState
	ready      bool
}

// NewRasterizer returns a Rasterizer without a bound buffer.
// The zero value is equivalent.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// SetupContext32BPP binds a BGRA buffer of width×height pixels.
// Every pixel written by RenderTriangles gets the constant alpha value.
// The clip window is reset to the whole buffer and the origin to (0, 0).
//
// The result is false, and the Rasterizer becomes unusable until the next
// successful setup, if buf is nil or shorter than width*height*4 bytes,
// or if width or height is negative.
func (r *Rasterizer) SetupContext32BPP(width, height int, buf []byte, alpha uint8) bool {
	if !r.bind(width, height, buf, Format32BPP) {
		return false
	}
	r.alpha = alpha
	return true
}

// SetupContext24BPP binds a BGR buffer of width×height pixels.
// The background colour is used by EraseBackground.
// The clip window is reset to the whole buffer and the origin to (0, 0).
//
// The result is false, and the Rasterizer becomes unusable until the next
// successful setup, if buf is nil or shorter than width*height*3 bytes,
// or if width or height is negative.
func (r *Rasterizer) SetupContext24BPP(width, height int, buf []byte, background color.RGBA) bool {
	if !r.bind(width, height, buf, Format24BPP) {
		return false
	}
	r.background = background
	return true
}

func (r *Rasterizer) bind(width, height int, buf []byte, f PixelFormat) bool {
	r.ready = false
	if buf == nil {
		Logger().Debug("gradient: setup rejected, nil buffer", "format", f)
		return false
	}
	if width < 0 || height < 0 {
		Logger().Debug("gradient: setup rejected, negative size",
			"width", width, "height", height)
		return false
	}
	need := width * height * f.BytesPerPixel()
	if len(buf) < need {
		Logger().Debug("gradient: setup rejected, buffer too short",
			"format", f, "len", len(buf), "need", need)
		return false
	}

	// Bytes past width*height pixels belong to the caller.
	r.buf = buf[:need:need]
	r.width = width
	r.height = height
	r.format = f
	r.clip = NewClipState(width, height)
	r.ready = true
	return true
}

// Ready reports whether a buffer has been bound successfully.
func (r *Rasterizer) Ready() bool {
	return r.ready
}

// Size returns the dimensions of the bound buffer in pixels.
func (r *Rasterizer) Size() (width, height int) {
	return r.width, r.height
}

// Format returns the pixel format of the bound buffer.
func (r *Rasterizer) Format() PixelFormat {
	return r.format
}

// Clip returns the current clip state.
func (r *Rasterizer) Clip() ClipState {
	return r.clip
}

// SetOrigin moves the clip window so that its minimum corner is at p,
// keeping its width and height. See [ClipState.WithOrigin].
func (r *Rasterizer) SetOrigin(p image.Point) {
	r.clip = r.clip.WithOrigin(p)
}

// SetClipRect resizes the clip window to the size of c, anchored at the
// current origin. See [ClipState.WithRect] for details. The result is false,
// and nothing changes, if c.Min lies right of or below c.Max.
func (r *Rasterizer) SetClipRect(c image.Rectangle) bool {
	clip, ok := r.clip.WithRect(c, r.width, r.height)
	if !ok {
		return false
	}
	r.clip = clip
	return true
}

// EraseBackground clears the whole bound buffer, ignoring the clip window.
//
// A 32bpp buffer is filled with zero bytes, which sets the alpha channel
// to 0 rather than to the configured alpha value. A 24bpp buffer is filled
// with the background colour. Without a bound buffer this does nothing.
func (r *Rasterizer) EraseBackground() {
	if !r.ready {
		return
	}

	n := r.width * r.height
	switch r.format {
	case Format32BPP:
		clear(r.buf[:n*4])
	case Format24BPP:
		bg := [3]byte{r.background.B, r.background.G, r.background.R}
		pix := r.buf[:n*3]
		for i := 0; i < len(pix); i += 3 {
			copy(pix[i:i+3], bg[:])
		}
	}
}

// RenderTriangles draws the given triangles into the bound buffer.
//
// Pixels outside the clip window are never written. Triangles without
// vertical extent are skipped silently, as are triangles referring to
// vertices outside the vertex slice.
//
// The result is false if no buffer is bound, if fewer than two vertices are
// given, or if triangles is empty.
func (r *Rasterizer) RenderTriangles(vertices []Vertex, triangles []Triangle) bool {
	if !r.ready {
		Logger().Debug("gradient: render rejected, no buffer bound")
		return false
	}
	if len(vertices) < 2 || len(triangles) == 0 {
		Logger().Debug("gradient: render rejected",
			"vertices", len(vertices), "triangles", len(triangles))
		return false
	}

	n := len(vertices)
	for k, tri := range triangles {
		if !validIndex(tri[0], n) || !validIndex(tri[1], n) || !validIndex(tri[2], n) {
			Logger().Debug("gradient: triangle skipped, index out of range",
				"triangle", k, "v1", tri[0], "v2", tri[1], "v3", tri[2])
			continue
		}
		r.drawTriangle(&vertices[tri[0]], &vertices[tri[1]], &vertices[tri[2]])
	}
	return true
}

func validIndex(i, n int) bool {
	return i >= 0 && i < n
}

// drawTriangle splits the triangle at the edge with the largest vertical
// extent and fills the two halves.
func (r *Rasterizer) drawTriangle(v1, v2, v3 *Vertex) {
	edges := [3]edge{
		newEdge(v1, v2),
		newEdge(v2, v3),
		newEdge(v3, v1),
	}

	maxLength := int32(0)
	long := -1
	for i := range edges {
		if length := edges[i].y2 - edges[i].y1; length > maxLength {
			maxLength = length
			long = i
		}
	}
	if long < 0 {
		return // no vertical extent
	}

	r.drawSpans(&edges[long], &edges[(long+1)%3])
	r.drawSpans(&edges[long], &edges[(long+2)%3])
}

// drawSpans fills the scanlines covered by the short edge, between the
// short edge and the long edge.
func (r *Rasterizer) drawSpans(long, short *edge) {
	longHeight := float64(long.y2 - long.y1)
	if longHeight == 0 {
		return
	}
	shortHeight := float64(short.y2 - short.y1)
	if shortHeight == 0 {
		return
	}

	longDX := float64(long.x2 - long.x1)
	shortDX := float64(short.x2 - short.x1)
	longDC := long.c2.sub(long.c1)
	shortDC := short.c2.sub(short.c1)

	// The factors advance on every scanline, including clipped ones.
	longFactor := float64(short.y1-long.y1) / longHeight
	longStep := 1 / longHeight
	shortFactor := 0.0
	shortStep := 1 / shortHeight

	for y := int(short.y1); y <= int(short.y2); y++ {
		if y >= r.clip.Min.Y && y <= r.clip.Max.Y {
			s := newSpan(
				long.x1+int32(longDX*longFactor), long.c1.add(longDC.scale(longFactor)),
				short.x1+int32(shortDX*shortFactor), short.c1.add(shortDC.scale(shortFactor)),
			)
			r.drawSpan(&s, y)
		}
		longFactor += longStep
		shortFactor += shortStep
	}
}

// drawSpan writes the pixels of one horizontal span on scanline y.
// A span of width zero produces no output.
func (r *Rasterizer) drawSpan(s *span, y int) {
	x1, x2 := int(s.x1), int(s.x2)
	width := x2 - x1
	if width == 0 {
		return
	}
	dc := s.c2.sub(s.c1)

	bpp := r.format.BytesPerPixel()
	row := (y - r.clip.Min.Y) * r.width
	for x := x1; x <= x2; x++ {
		if x < r.clip.Min.X || x > r.clip.Max.X {
			continue
		}

		factor := float64(x-x1) / float64(width)
		c := s.c1.add(dc.scale(factor))

		pos := (row + x - r.clip.Min.X) * bpp
		if pos < 0 || pos+bpp > len(r.buf) {
			continue
		}
		pix := r.buf[pos : pos+bpp]
		pix[0] = toByte(c.b)
		pix[1] = toByte(c.g)
		pix[2] = toByte(c.r)
		if bpp == 4 {
			pix[3] = r.alpha
		}
	}
}

// toByte clamps v to [0, 1] and scales it to 0-255, truncating.
func toByte(v float64) uint8 {
	v = max(0, min(1, v))
	return uint8(v * 255.0)
}

// rgb is a colour with channels in the range [0, 1].
type rgb struct {
	r, g, b float64
}

func (c rgb) add(d rgb) rgb {
	return rgb{c.r + d.r, c.g + d.g, c.b + d.b}
}

func (c rgb) sub(d rgb) rgb {
	return rgb{c.r - d.r, c.g - d.g, c.b - d.b}
}

func (c rgb) scale(f float64) rgb {
	return rgb{c.r * f, c.g * f, c.b * f}
}

func vertexColor(v *Vertex) rgb {
	return rgb{
		r: float64(v.Red) / 65535,
		g: float64(v.Green) / 65535,
		b: float64(v.Blue) / 65535,
	}
}

// edge is a triangle side with y1 <= y2.
type edge struct {
	x1, y1 int32
	c1     rgb
	x2, y2 int32
	c2     rgb
}

func newEdge(a, b *Vertex) edge {
	if a.Y > b.Y {
		a, b = b, a
	}
	return edge{
		x1: a.X, y1: a.Y, c1: vertexColor(a),
		x2: b.X, y2: b.Y, c2: vertexColor(b),
	}
}

// span is a horizontal run of pixels with x1 <= x2.
type span struct {
	x1 int32
	c1 rgb
	x2 int32
	c2 rgb
}

func newSpan(x1 int32, c1 rgb, x2 int32, c2 rgb) span {
	if x1 > x2 {
		x1, x2 = x2, x1
		c1, c2 = c2, c1
	}
	return span{x1: x1, c1: c1, x2: x2, c2: c2}
}
