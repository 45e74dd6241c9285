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
	"image"

	"seehuhn.de/go/geom/rect"
)

// ClipState describes the writable window of a destination buffer.
//
// Min and Max are both inclusive. Pixel writes are addressed relative to
// Min, so Min is the buffer position of the top-left pixel of the window.
// Origin is the point Min gets anchored to whenever the window is moved or
// resized.
type ClipState struct {
	Origin image.Point
	Min    image.Point
	Max    image.Point
}

// NewClipState returns the clip state covering a whole buffer of the given
// size, with the origin at (0, 0).
func NewClipState(width, height int) ClipState {
	return ClipState{
		Max: image.Point{X: width, Y: height},
	}
}

// Size returns the extent of the clip window, Max-Min.
func (c ClipState) Size() (width, height int) {
	return c.Max.X - c.Min.X, c.Max.Y - c.Min.Y
}

// WithOrigin moves the clip window so that its minimum corner sits at p.
// The width and height of the window are kept.
func (c ClipState) WithOrigin(p image.Point) ClipState {
	w, h := c.Size()
	return c.anchored(p, w, h)
}

// WithRect returns the clip state for a new clip rectangle r.
//
// Only the size of r is used: the resulting window starts at the current
// origin. A width or height larger than the buffer size bufW×bufH is
// reduced to the buffer size. The second return value is false, and c is
// returned unchanged, if r.Min lies right of or below r.Max.
//
// Note that image.Rect canonicalises its arguments; use a struct literal to
// pass an inverted rectangle.
func (c ClipState) WithRect(r image.Rectangle, bufW, bufH int) (ClipState, bool) {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return c, false
	}
	w := min(r.Max.X-r.Min.X, bufW)
	h := min(r.Max.Y-r.Min.Y, bufH)
	return c.anchored(c.Origin, w, h), true
}

func (c ClipState) anchored(p image.Point, w, h int) ClipState {
	return ClipState{
		Origin: p,
		Min:    p,
		Max:    image.Point{X: p.X + w, Y: p.Y + h},
	}
}

// Contains reports whether (x, y) lies inside the clip window.
// Both edges of the window are inclusive.
func (c ClipState) Contains(x, y int) bool {
	return x >= c.Min.X && x <= c.Max.X && y >= c.Min.Y && y <= c.Max.Y
}

// Bounds returns the clip window as a half-open image rectangle.
func (c ClipState) Bounds() image.Rectangle {
	return image.Rectangle{Min: c.Min, Max: c.Max.Add(image.Point{X: 1, Y: 1})}
}

// Rect returns the clip window as a device space rectangle.
func (c ClipState) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(c.Min.X),
		LLy: float64(c.Min.Y),
		URx: float64(c.Max.X),
		URy: float64(c.Max.Y),
	}
}
